package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		UUID uuid.UUID

		FileName    string
		StoragePath string
		SizeBytes   uint64
		DownloadURL string

		UploadedAt time.Time
	}
	Files []*File
)
