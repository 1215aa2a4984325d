package usecase

import (
	"context"
	"io"

	"academy/internal/domain/service"
)

// FileUpload describes one file received by the delivery layer.
// Open is called only after every file in the request passed validation.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// UploadedFile is the public description of a stored file.
type UploadedFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
}

// UploadUsecase validates images and stores them under generated names.
type UploadUsecase interface {
	// AcceptImage stores a single image.
	AcceptImage(ctx context.Context, file *FileUpload) (*UploadedFile, error)

	// AcceptImages validates every file before storing any of them.
	AcceptImages(ctx context.Context, files []*FileUpload) ([]*UploadedFile, error)

	// Open streams a stored file. The caller closes the reader.
	Open(ctx context.Context, filename string) (io.ReadCloser, *service.ObjectInfo, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, filename string) error
}
