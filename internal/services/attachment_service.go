package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/datatypes"

	"lciportal_backend/internal/models"
	"lciportal_backend/internal/storage"
	"lciportal_backend/pkg/apperrors"
)

// PublicUploadsPrefix is the URL path under which stored files are served.
const PublicUploadsPrefix = "/uploads"

// AttachmentConfig is passed in at construction; the resolver never reads
// ambient environment state.
type AttachmentConfig struct {
	MaxSize      int64
	AllowedTypes []string
	BaseURL      string
}

// AttachmentService accepts uploaded files from named multipart slots and
// rehydrates stored relative paths into externally fetchable URLs.
type AttachmentService interface {
	// SaveSlot persists every file of a named slot, bounded by maxCount.
	SaveSlot(ctx context.Context, form *multipart.Form, slot string, maxCount int) ([]models.FileMeta, error)

	// SaveOne persists a single file header.
	SaveOne(ctx context.Context, fh *multipart.FileHeader) (*models.FileMeta, error)

	// ResolveURL turns a stored relative path into an absolute URL.
	// Idempotent: a full URL passes through unchanged.
	ResolveURL(path string) string

	// Entity projections: applied uniformly to every file-bearing field.
	ProjectQuote(q *models.Quote)
	ProjectMessage(m *models.Message)
	ProjectApplication(a *models.MentorshipApplication)
}

type attachmentService struct {
	storage storage.Storage
	cfg     AttachmentConfig
	allowed map[string]bool
}

func NewAttachmentService(store storage.Storage, cfg AttachmentConfig) AttachmentService {
	allowed := make(map[string]bool, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed[strings.ToLower(t)] = true
	}

	return &attachmentService{
		storage: store,
		cfg:     cfg,
		allowed: allowed,
	}
}

func (s *attachmentService) SaveSlot(ctx context.Context, form *multipart.Form, slot string, maxCount int) ([]models.FileMeta, error) {
	if form == nil {
		return nil, nil
	}

	headers := form.File[slot]
	if len(headers) == 0 {
		return nil, nil
	}
	if maxCount > 0 && len(headers) > maxCount {
		return nil, apperrors.New(apperrors.CodeTooManyFiles,
			fmt.Sprintf("Slot '%s' accepts at most %d files", slot, maxCount), 400)
	}

	metas := make([]models.FileMeta, 0, len(headers))
	for _, fh := range headers {
		meta, err := s.SaveOne(ctx, fh)
		if err != nil {
			return nil, err
		}
		metas = append(metas, *meta)
	}
	return metas, nil
}

func (s *attachmentService) SaveOne(ctx context.Context, fh *multipart.FileHeader) (*models.FileMeta, error) {
	if err := s.validate(fh); err != nil {
		return nil, err
	}

	name := s.generateName(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	if err := s.storage.Save(ctx, name, src, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &models.FileMeta{
		Filename:     name,
		Path:         PublicUploadsPrefix + "/" + name,
		OriginalName: fh.Filename,
	}, nil
}

// validate rejects before anything touches storage: no partial writes.
func (s *attachmentService) validate(fh *multipart.FileHeader) error {
	if s.cfg.MaxSize > 0 && fh.Size > s.cfg.MaxSize {
		return apperrors.ErrFileTooLarge.WithDetails(fmt.Sprintf(
			"file %q is %d bytes, the limit is %d", fh.Filename, fh.Size, s.cfg.MaxSize))
	}

	contentType := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	// Declared media types may carry parameters, e.g. "text/plain; charset=utf-8".
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if !s.allowed[contentType] {
		return apperrors.ErrInvalidFileType.WithDetails(contentType)
	}

	return nil
}

// generateName builds a collision-resistant storage name:
// <unix-ms>-<random hex>-<sanitized original>. Concurrent uploads never
// collide on the random component.
func (s *attachmentService) generateName(original string) string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand failing means the process is in serious trouble;
		// a nanosecond component keeps names usable regardless.
		return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), time.Now().UnixNano()%1e9, sanitizeFilename(original))
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix), sanitizeFilename(original))
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

func (s *attachmentService) ResolveURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := strings.TrimSuffix(s.cfg.BaseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func (s *attachmentService) resolveList(paths []string) []string {
	if len(paths) == 0 {
		return paths
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = s.ResolveURL(p)
	}
	return out
}

func newJSONMeta(m models.FileMeta) datatypes.JSONType[models.FileMeta] {
	return datatypes.NewJSONType(m)
}

func (s *attachmentService) resolveMeta(meta models.FileMeta) models.FileMeta {
	if meta.Filename != "" {
		meta.DownloadURL = s.ResolveURL(PublicUploadsPrefix + "/" + meta.Filename)
	}
	return meta
}

// ProjectQuote rewrites every file-bearing field of a quote to full URLs.
func (s *attachmentService) ProjectQuote(q *models.Quote) {
	q.Files = s.resolveList(q.Files)
	q.ReplyFiles = s.resolveList(q.ReplyFiles)
	q.PaymentScreenshot = s.ResolveURL(q.PaymentScreenshot)
}

// ProjectMessage rewrites the reply files of a message to full URLs.
func (s *attachmentService) ProjectMessage(m *models.Message) {
	m.ReplyFiles = s.resolveList(m.ReplyFiles)
}

// ProjectApplication rewrites the CV, cover letter and reply files of an
// application to carry download URLs.
func (s *attachmentService) ProjectApplication(a *models.MentorshipApplication) {
	a.CV = newJSONMeta(s.resolveMeta(a.CV.Data()))
	a.CoverLetter = newJSONMeta(s.resolveMeta(a.CoverLetter.Data()))

	if len(a.ReplyFiles) > 0 {
		resolved := make([]models.FileMeta, len(a.ReplyFiles))
		for i, f := range a.ReplyFiles {
			resolved[i] = s.resolveMeta(f)
		}
		a.ReplyFiles = resolved
	}
}
