package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"filedrop-api/internal/application/ports"
	domain "filedrop-api/internal/domain/file"
	fileDTO "filedrop-api/internal/interface/api/rest/dto/file"
	"filedrop-api/internal/infrastructure/mq"
)

const maxBaseNameLen = 100

type FileService struct {
	store          ports.BlobStore
	fileRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	store ports.BlobStore,
	fileRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		store:          store,
		fileRepository: fileRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// Ingest writes the payload to the blob store under a freshly generated
// storage name, then records metadata with the client-declared filename
// and size. If the metadata insert fails after the bytes landed, the
// orphaned blob stays on disk: there is no cross-store transaction.
func (fs *FileService) Ingest(ctx context.Context, in *multipart.FileHeader) (*domain.File, error) {
	f := new(domain.File)
	f.FileName = in.Filename
	f.SizeBytes = uint64(in.Size)
	f.StoragePath = genStorageName(in.Filename)
	f.DownloadURL = fs.store.GetPublicURL(f.StoragePath)

	src, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if _, err = fs.store.Save(f.StoragePath, src); err != nil {
		return nil, err
	}

	out, err := fs.fileRepository.CreateFile(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("metadata insert failed, blob %s orphaned: %w", f.StoragePath, err)
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Kind:    mq.KeyFileUploaded,
		Payload: fileDTO.ToResponseFile(*out),
	}

	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return out, nil
}

func (fs *FileService) ListFiles(ctx context.Context) (domain.Files, error) {
	fls, err := fs.fileRepository.FetchFiles(ctx)
	if err != nil {
		return nil, err
	}

	return fls, nil
}

// genStorageName: "<unix-nanos>-<8 hex of a fresh uuid>-<sanitized name>".
// The nanosecond timestamp keeps names time-sortable; the uuid fragment
// breaks ties between uploads landing on the same clock tick.
func genStorageName(originalFilename string) string {
	disambiguator := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]

	return fmt.Sprintf(
		"%d-%s-%s",
		time.Now().UTC().UnixNano(),
		disambiguator,
		sanitizeFileName(originalFilename),
	)
}

// sanitizeFileName makes the client-supplied name ASCII and flat: path
// segments are dropped, combining marks stripped, anything outside
// [a-z0-9._-] collapsed to '-'.
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)

	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9' || r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
