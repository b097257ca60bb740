package file

import (
	"context"
	"errors"

	domain "filedrop-api/internal/domain/file"
	"filedrop-api/internal/infrastructure/db/postgres"
)

// ErrStoragePathConflict means the UNIQUE(storage_path) constraint fired:
// the namer produced an already-used path, which should never happen.
var ErrStoragePathConflict = errors.New("storage path already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFiles(ctx context.Context) (domain.Files, error) {
	rows, err := r.db.Query(ctx, SelectFiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.UUID,

			&f.FileName,
			&f.StoragePath,
			&f.SizeBytes,
			&f.DownloadURL,

			&f.UploadedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) CreateFile(ctx context.Context, req *domain.File) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.FileName, req.StoragePath, req.SizeBytes, req.DownloadURL,
	).Scan(
		&f.ID,
		&f.UUID,

		&f.FileName,
		&f.StoragePath,
		&f.SizeBytes,
		&f.DownloadURL,

		&f.UploadedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrStoragePathConflict
		}
		return nil, err
	}

	return fromDBModel(f), err
}
