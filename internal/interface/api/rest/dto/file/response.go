package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		UUID        uuid.UUID `json:"uuid"`
		FileName    string    `json:"file_name"`
		SizeBytes   uint64    `json:"size_bytes"`
		StoragePath string    `json:"storage_path"`
		DownloadURL string    `json:"download_url"`
		UploadedAt  time.Time `json:"upload_date"`
	}
	Files        []File
	ResponseData struct {
		Data Files `json:"data"`
	}
)
