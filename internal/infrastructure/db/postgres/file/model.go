package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID   uint64
		UUID uuid.UUID

		FileName    string
		StoragePath string
		SizeBytes   uint64
		DownloadURL string

		UploadedAt time.Time
	}
	Files []*File
)
