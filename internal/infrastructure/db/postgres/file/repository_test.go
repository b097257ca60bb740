package file

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "filedrop-api/internal/domain/file"
)

func fileColumns() []string {
	return []string{"id", "uuid", "file_name", "storage_path", "size_bytes", "download_url", "uploaded_at"}
}

func TestCreateFile(t *testing.T) {
	uid := uuid.New()
	now := time.Now().UTC()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
		WithArgs("note.txt", "1700000000-abcd1234-note.txt", uint64(5), "/uploads/1700000000-abcd1234-note.txt").
		WillReturnRows(pgxmock.NewRows(fileColumns()).
			AddRow(uint64(1), uid, "note.txt", "1700000000-abcd1234-note.txt", uint64(5), "/uploads/1700000000-abcd1234-note.txt", now))

	repo := NewRepository(mock)
	got, err := repo.CreateFile(context.Background(), &domain.File{
		FileName:    "note.txt",
		StoragePath: "1700000000-abcd1234-note.txt",
		SizeBytes:   5,
		DownloadURL: "/uploads/1700000000-abcd1234-note.txt",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "note.txt", got.FileName)
	assert.Equal(t, uint64(5), got.SizeBytes)
	assert.Equal(t, now, got.UploadedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFile_StoragePathConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
		WithArgs("note.txt", "dup-path", uint64(5), "/uploads/dup-path").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "files_storage_path_key"})

	repo := NewRepository(mock)
	_, err = repo.CreateFile(context.Background(), &domain.File{
		FileName:    "note.txt",
		StoragePath: "dup-path",
		SizeBytes:   5,
		DownloadURL: "/uploads/dup-path",
	})
	require.ErrorIs(t, err, ErrStoragePathConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFiles_InsertionOrder(t *testing.T) {
	now := time.Now().UTC()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(fileColumns()).
		AddRow(uint64(1), uuid.New(), "a.txt", "1-a.txt", uint64(1), "/uploads/1-a.txt", now).
		AddRow(uint64(2), uuid.New(), "b.txt", "2-b.txt", uint64(2), "/uploads/2-b.txt", now.Add(time.Second))
	mock.ExpectQuery(regexp.QuoteMeta(SelectFiles)).WillReturnRows(rows)

	repo := NewRepository(mock)
	got, err := repo.FetchFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "a.txt", got[0].FileName)
	assert.Equal(t, "b.txt", got[1].FileName)
	assert.False(t, got[1].UploadedAt.Before(got[0].UploadedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFiles_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(SelectFiles)).
		WillReturnRows(pgxmock.NewRows(fileColumns()))

	repo := NewRepository(mock)
	got, err := repo.FetchFiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
