package handler

import (
	"net/http"
	"time"

	"postboard/config"
	"postboard/internal/delivery/http/response"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/usecase"
	"postboard/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FileHandler serves uploads to and downloads from the storage bucket.
type FileHandler struct {
	files usecase.FileUsecase
	cfg   *config.Config
}

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	Files  usecase.FileUsecase
	Config *config.Config
}

// NewFileHandler is the constructor for FileHandler.
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{files: params.Files, cfg: params.Config}
}

type uploadResponse struct {
	Detail  string `json:"detail"`
	FileURL string `json:"file_url"`
}

type fileResponse struct {
	FileName        string    `json:"file_name"`
	Size            int64     `json:"size"`
	SizeHuman       string    `json:"size_human"`
	UploadTimestamp time.Time `json:"upload_timestamp"`
	URL             string    `json:"url"`
}

type listFilesResponse struct {
	Files []fileResponse `json:"files"`
	Count int            `json:"count"`
}

// Upload handles POST /upload with a multipart "file" field.
func (h *FileHandler) Upload(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile("file")
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return err
		}

		return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("A multipart field named 'file' is required"))
	}

	src, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	output, err := h.files.Upload(c.Request().Context(), user, &usecase.UploadInput{
		Filename:        header.Filename,
		ContentType:     header.Header.Get(echo.HeaderContentType),
		Size:            header.Size,
		Content:         src,
		DownloadBaseURL: baseURL(h.cfg, c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, uploadResponse{
		Detail:  "Successfully uploaded " + header.Filename,
		FileURL: output.URL,
	})
}

// List handles GET /files?prefix=.
func (h *FileHandler) List(c echo.Context) error {
	files, err := h.files.List(c.Request().Context(), &usecase.ListFilesInput{
		Prefix:          c.QueryParam("prefix"),
		DownloadBaseURL: baseURL(h.cfg, c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]fileResponse, 0, len(files))
	for _, file := range files {
		out = append(out, fileResponse{
			FileName:        file.Key,
			Size:            file.Size,
			SizeHuman:       util.FormatBytes(file.Size),
			UploadTimestamp: file.ModifiedAt,
			URL:             file.URL,
		})
	}

	return response.Success(c, http.StatusOK, listFilesResponse{Files: out, Count: len(out)})
}

// Download handles GET /files/* and streams the object.
func (h *FileHandler) Download(c echo.Context) error {
	rc, contentType, err := h.files.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer rc.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, rc)
}
