// Package storage is a disk-backed blob store. Uploaded bytes land in a
// single data directory and are later served statically by the router.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"filedrop-api/config"
)

var ErrUnsafePath = errors.New("storage path escapes data directory")

type Client struct {
	logger  *zap.Logger
	dir     string
	baseURL string
}

func New(logger *zap.Logger, cfg config.Storage) (*Client, error) {
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir %s: %w", cfg.Dir, err)
	}

	return &Client{
		logger:  logger,
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Save writes r durably at storagePath inside the data directory.
// Write goes to a temp file first, then fsync + atomic rename, so a
// concurrent reader never observes a half-written blob. Paths that
// resolve outside the data directory are rejected.
func (c *Client) Save(storagePath string, r io.Reader) (int64, error) {
	fullPath, err := c.resolve(storagePath)
	if err != nil {
		return 0, err
	}
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	size, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to write blob: %w", err)
	}
	if err = f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return 0, fmt.Errorf("fsync failed: %w", err)
	}
	if err = f.Close(); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("atomic rename failed: %w", err)
	}

	return size, nil
}

func (c *Client) GetPublicURL(storagePath string) string {
	return c.baseURL + "/" + storagePath
}

func (c *Client) Dir() string { return c.dir }

// resolve joins storagePath with the data dir and contains traversal:
// the cleaned result must stay inside the directory.
func (c *Client) resolve(storagePath string) (string, error) {
	if storagePath == "" {
		return "", ErrUnsafePath
	}
	fullPath := filepath.Join(c.dir, filepath.Clean("/"+storagePath))
	rel, err := filepath.Rel(c.dir, fullPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", ErrUnsafePath
	}
	return fullPath, nil
}
