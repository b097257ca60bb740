package ports

import (
	"io"
)

type BlobStore interface {
	// Save durably writes r at storagePath and returns the number of
	// bytes written. storagePath must not escape the store's data dir.
	Save(storagePath string, r io.Reader) (int64, error)
	GetPublicURL(storagePath string) string
	Dir() string
}
