package file

import (
	"context"
)

type Repository interface {
	// FetchFiles returns every record in insertion order.
	FetchFiles(ctx context.Context) (Files, error)
	CreateFile(ctx context.Context, req *File) (*File, error)
}
