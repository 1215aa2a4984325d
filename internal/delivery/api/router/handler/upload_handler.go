package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"academy/internal/delivery/api/response"
	deliverycontext "academy/internal/delivery/context"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/errors"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	singleImageField = "image"
	multiImageField  = "images"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts, serves and removes uploaded images.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadImage handles POST /api/uploads/image with the file in the "image" field.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	header, err := c.FormFile(singleImageField)
	if err != nil {
		return response.HandleAppError(c, h.formError(c, err))
	}

	uploaded, err := h.uploadUC.AcceptImage(c.Request().Context(), toFileUpload(header))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "File uploaded", uploaded)
}

// UploadImages handles POST /api/uploads/images with the files in the "images" field.
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.HandleAppError(c, h.formError(c, err))
	}

	headers := form.File[multiImageField]
	files := make([]*usecase.FileUpload, 0, len(headers))
	for _, header := range headers {
		files = append(files, toFileUpload(header))
	}

	uploaded, err := h.uploadUC.AcceptImages(c.Request().Context(), files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, strconv.Itoa(len(uploaded))+" files uploaded", uploaded)
}

// Serve handles GET /api/uploads/:filename by streaming the stored object.
func (h *UploadHandler) Serve(c echo.Context) error {
	reader, info, err := h.uploadUC.Open(c.Request().Context(), c.Param("filename"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	header.Set("Cache-Control", "public, max-age=31536000, immutable")
	header.Set("X-Content-Type-Options", "nosniff")

	return c.Stream(http.StatusOK, info.ContentType, reader)
}

// Delete handles DELETE /api/uploads/:filename
func (h *UploadHandler) Delete(c echo.Context) error {
	if err := h.uploadUC.Delete(c.Request().Context(), c.Param("filename")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "File deleted", nil)
}

// formError maps multipart parsing failures. A body cut off by the route's
// body limit is reported as too large.
func (h *UploadHandler) formError(c echo.Context, err error) error {
	if errors.Is(err, http.ErrMissingFile) {
		return errors.WithStack(domainerrors.ErrNoFilesUploaded)
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok && httpErr.Code == http.StatusRequestEntityTooLarge {
		return errors.WithStack(domainerrors.ErrPayloadTooLarge)
	}
	if _, ok := errors.AsType[*http.MaxBytesError](err); ok {
		return errors.WithStack(domainerrors.ErrPayloadTooLarge)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Debug("Malformed multipart body", slog.Any("error", err))

	return domainerrors.ErrBadRequest.WithDetails("expected a multipart/form-data body")
}

func toFileUpload(header *multipart.FileHeader) *usecase.FileUpload {
	return &usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open() //nolint:wrapcheck // surfaced as a bad request by the use case
		},
	}
}
