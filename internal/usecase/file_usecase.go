package usecase

import (
	"context"
	"io"

	"postboard/internal/domain/entity"
)

// UploadInput describes a file received from a client.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
	// DownloadBaseURL is used to build links when the bucket has no public URL.
	DownloadBaseURL string
}

// UploadOutput locates the stored object.
type UploadOutput struct {
	Key string
	URL string
}

// ListFilesInput filters a listing by key prefix.
type ListFilesInput struct {
	Prefix          string
	DownloadBaseURL string
}

// FileUsecase defines upload, listing and download of user files.
type FileUsecase interface {
	Upload(ctx context.Context, owner *entity.User, input *UploadInput) (*UploadOutput, error)
	List(ctx context.Context, input *ListFilesInput) ([]*entity.StoredFile, error)
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}
