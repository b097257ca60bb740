package ports

import (
	"context"
	"mime/multipart"

	"filedrop-api/internal/domain/file"
)

type FileService interface {
	Ingest(ctx context.Context, in *multipart.FileHeader) (*file.File, error)
	ListFiles(ctx context.Context) (file.Files, error)
}
