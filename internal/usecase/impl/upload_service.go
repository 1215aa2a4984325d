package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"academy/config"
	deliverycontext "academy/internal/delivery/context"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/service"
	"academy/internal/errors"
	"academy/internal/usecase"
	"academy/internal/util"

	"go.uber.org/fx"
)

var (
	extensionPattern = regexp.MustCompile(`^[a-z0-9]{1,10}$`)
	// storedNamePattern matches names produced by generateFilename and nothing else,
	// so path separators and dot segments never reach the object store.
	storedNamePattern = regexp.MustCompile(`^[0-9]+-[0-9a-f]{16}(\.[a-z0-9]{1,10})?$`)

	errFileTooLarge = errors.New("file exceeds the size limit")
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	store         service.ObjectStore
	metrics       service.MetricsRecorder
	publicBaseURL string
	maxFileSize   int64
	maxFiles      int
	logger        *slog.Logger
	now           func() time.Time
	random        io.Reader
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Store   service.ObjectStore
	Metrics service.MetricsRecorder
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	uploadCfg := params.Config.Upload

	return &uploadService{
		store:         params.Store,
		metrics:       params.Metrics,
		publicBaseURL: strings.TrimRight(uploadCfg.PublicBaseURL, "/"),
		maxFileSize:   uploadCfg.MaxFileSize,
		maxFiles:      uploadCfg.MaxFiles,
		logger:        params.Logger,
		now:           time.Now,
		random:        rand.Reader,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *uploadService) AcceptImage(ctx context.Context, file *usecase.FileUpload) (*usecase.UploadedFile, error) {
	if file == nil {
		return nil, errors.WithStack(domainerrors.ErrNoFilesUploaded)
	}

	contentType, err := srv.check(file)
	if err != nil {
		return nil, err
	}

	return srv.put(ctx, file, contentType)
}

func (srv *uploadService) AcceptImages(ctx context.Context, files []*usecase.FileUpload) ([]*usecase.UploadedFile, error) {
	if len(files) == 0 {
		return nil, errors.WithStack(domainerrors.ErrNoFilesUploaded)
	}
	if len(files) > srv.maxFiles {
		return nil, domainerrors.ErrTooManyFiles.WithDetails("at most " + strconv.Itoa(srv.maxFiles) + " files per request")
	}

	// Nothing is stored until every file has passed the checks.
	contentTypes := make([]string, len(files))
	for i, file := range files {
		if file == nil {
			return nil, errors.WithStack(domainerrors.ErrNoFilesUploaded)
		}

		contentType, err := srv.check(file)
		if err != nil {
			return nil, err
		}
		contentTypes[i] = contentType
	}

	uploaded := make([]*usecase.UploadedFile, 0, len(files))
	for i, file := range files {
		result, err := srv.put(ctx, file, contentTypes[i])
		if err != nil {
			srv.discard(ctx, uploaded)

			return nil, err
		}
		uploaded = append(uploaded, result)
	}

	return uploaded, nil
}

// check validates the declared metadata and returns the normalized media type.
func (srv *uploadService) check(file *usecase.FileUpload) (string, error) {
	mediaType, _, err := mime.ParseMediaType(file.ContentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return "", domainerrors.ErrUnsupportedMediaType.WithDetails(file.Filename + ": " + file.ContentType)
	}
	if file.Size > srv.maxFileSize {
		return "", srv.tooLarge(file.Filename)
	}

	return mediaType, nil
}

func (srv *uploadService) put(ctx context.Context, file *usecase.FileUpload, contentType string) (*usecase.UploadedFile, error) {
	name, err := srv.generateFilename(file.Filename)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	src, err := file.Open()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	// The declared size is client supplied; the limit is enforced again while streaming.
	body := &limitedReader{r: src, remaining: srv.maxFileSize}
	if err := srv.store.Put(ctx, name, contentType, body); err != nil {
		if body.exceeded || errors.Is(err, errFileTooLarge) {
			_ = srv.store.Delete(ctx, name)

			return nil, srv.tooLarge(file.Filename)
		}

		srv.log(ctx).Error("Failed to store upload", slog.String("filename", name), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, "put object")
	}

	srv.metrics.RecordUpload(body.read)
	srv.log(ctx).Info("File uploaded", slog.String("filename", name), slog.Int64("size", body.read))

	return &usecase.UploadedFile{
		Filename:     name,
		OriginalName: filepath.Base(file.Filename),
		URL:          srv.publicBaseURL + "/" + name,
		Size:         body.read,
		ContentType:  contentType,
	}, nil
}

// discard removes files stored earlier in a batch that failed part way.
func (srv *uploadService) discard(ctx context.Context, files []*usecase.UploadedFile) {
	for _, f := range files {
		if err := srv.store.Delete(ctx, f.Filename); err != nil {
			srv.log(ctx).Warn("Failed to remove partial upload", slog.String("filename", f.Filename), slog.Any("error", err))
		}
	}
}

func (srv *uploadService) tooLarge(filename string) error {
	return domainerrors.ErrPayloadTooLarge.WithDetails(filename + " exceeds " + util.FormatBytes(srv.maxFileSize))
}

// generateFilename returns <unix-millis>-<16 hex>.<ext>. The original name only
// contributes its extension, and only when it is short and alphanumeric.
func (srv *uploadService) generateFilename(original string) (string, error) {
	var buf [8]byte
	if _, err := io.ReadFull(srv.random, buf[:]); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	name := strconv.FormatInt(srv.now().UnixMilli(), 10) + "-" + hex.EncodeToString(buf[:])

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(original), "."))
	if extensionPattern.MatchString(ext) {
		name += "." + ext
	}

	return name, nil
}

func (srv *uploadService) Open(ctx context.Context, filename string) (io.ReadCloser, *service.ObjectInfo, error) {
	if !storedNamePattern.MatchString(filename) {
		return nil, nil, errors.WithStack(domainerrors.ErrInvalidFilename)
	}

	reader, info, err := srv.store.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, nil, errors.Wrapf(domainerrors.ErrNotFound, "file %s", filename)
		}

		srv.log(ctx).Error("Failed to open upload", slog.String("filename", filename), slog.Any("error", err))

		return nil, nil, errors.Wrap(domainerrors.ErrStorageFailed, "open object")
	}

	return reader, info, nil
}

func (srv *uploadService) Delete(ctx context.Context, filename string) error {
	if !storedNamePattern.MatchString(filename) {
		return errors.WithStack(domainerrors.ErrInvalidFilename)
	}

	if err := srv.store.Delete(ctx, filename); err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return errors.Wrapf(domainerrors.ErrNotFound, "file %s", filename)
		}

		srv.log(ctx).Error("Failed to delete upload", slog.String("filename", filename), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrStorageFailed, "delete object")
	}

	srv.log(ctx).Info("File deleted", slog.String("filename", filename))

	return nil
}

// limitedReader fails once more than remaining bytes have been read. io.LimitReader
// would silently truncate an oversize file into a stored partial image, and
// http.MaxBytesReader needs a ResponseWriter and bounds the whole body rather than
// one part. Reading one byte past the limit is what separates an exact-size file
// from an oversize one, and read feeds the upload metrics.
type limitedReader struct {
	r         io.Reader
	remaining int64
	read      int64
	exceeded  bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.exceeded {
		return 0, errFileTooLarge
	}

	// Read one byte past the limit so an exact-size file is not rejected.
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}

	n, err := l.r.Read(p)
	l.read += int64(n)
	if int64(n) > l.remaining {
		l.exceeded = true

		return 0, errFileTooLarge
	}
	l.remaining -= int64(n)

	return n, err //nolint:wrapcheck // io.Reader contract requires the raw error
}
