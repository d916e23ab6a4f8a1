package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"postboard/config"
	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/service"
	"postboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const userFilesPrefix = "users/"

type fileService struct {
	store          service.FileStore
	maxUploadBytes int64
	logger         *slog.Logger
}

// FileServiceParams holds dependencies for FileService, injected by Fx.
type FileServiceParams struct {
	fx.In

	Store  service.FileStore
	Config *config.Config
	Logger *slog.Logger
}

// NewFileService is the constructor for fileService.
func NewFileService(params FileServiceParams) usecase.FileUsecase {
	var maxUpload int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUpload = params.Config.Storage.MaxUploadBytes
	}

	return &fileService{
		store:          params.Store,
		maxUploadBytes: maxUpload,
		logger:         params.Logger,
	}
}

func (srv *fileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores a file under the owner's key prefix.
func (srv *fileService) Upload(ctx context.Context, owner *entity.User, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if srv.maxUploadBytes > 0 && input.Size > srv.maxUploadBytes {
		return nil, errors.WithStack(domainerrors.ErrPayloadTooLarge.WithDetails(
			"limit is " + strconv.FormatInt(srv.maxUploadBytes, 10) + " bytes"))
	}

	name := sanitizeFilename(input.Filename)
	if name == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("A file name is required"))
	}

	key := userFilesPrefix + strconv.FormatInt(owner.ID, 10) + "/" + name

	content := input.Content
	if srv.maxUploadBytes > 0 {
		// Size is client supplied; bound the read as well.
		content = io.LimitReader(content, srv.maxUploadBytes+1)
	}

	if err := srv.store.Put(ctx, key, input.ContentType, content); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("File uploaded", slog.String("key", key), slog.Int64("size", input.Size))

	return &usecase.UploadOutput{Key: key, URL: srv.fileURL(key, input.DownloadBaseURL)}, nil
}

// List returns the stored files whose key starts with the prefix.
func (srv *fileService) List(ctx context.Context, input *usecase.ListFilesInput) ([]*entity.StoredFile, error) {
	files, err := srv.store.List(ctx, input.Prefix)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		file.URL = srv.fileURL(file.Key, input.DownloadBaseURL)
	}

	return files, nil
}

// Open streams a stored file.
func (srv *fileService) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if key == "" || strings.Contains(key, "..") {
		return nil, "", errors.WithStack(domainerrors.ErrFileNotFound)
	}

	return srv.store.Open(ctx, key)
}

func (srv *fileService) fileURL(key, downloadBase string) string {
	if url := srv.store.URL(key); url != "" {
		return url
	}

	return downloadBase + "/files/" + key
}

// sanitizeFilename keeps the base name and drops characters that are unsafe in object keys.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		return ""
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	return strings.Trim(b.String(), ".")
}
