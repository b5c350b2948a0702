package upload

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/service/event"
	"github.com/sanari/health-api/internal/store"
	"github.com/sanari/health-api/pkg/dateutil"
	apperrors "github.com/sanari/health-api/pkg/errors"
	"github.com/sanari/health-api/pkg/identity"
	"github.com/sanari/health-api/pkg/metrics"
	"github.com/sanari/health-api/pkg/validate"
)

const recordType = "upload"

// DefaultMaxFiles is the free-tier cap on stored files.
const DefaultMaxFiles = 10

// Ingestor turns raw uploaded bytes into an opaque URL reference. Blob
// storage is out of scope, so the default implementation keeps the bytes
// inline as a data URL.
type Ingestor interface {
	Ingest(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// DataURLIngestor encodes uploads as data URLs, mirroring how the record
// viewer consumes them.
type DataURLIngestor struct{}

func (DataURLIngestor) Ingest(_ context.Context, _, contentType string, data []byte) (string, error) {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}

type Service struct {
	store    *store.Store[*model.UploadedFile]
	ingestor Ingestor
	events   *event.Publisher
	metrics  *metrics.Metrics
	maxFiles int
	now      func() time.Time
}

func NewService(s *store.Store[*model.UploadedFile], ingestor Ingestor, events *event.Publisher, m *metrics.Metrics, maxFiles int) *Service {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	return &Service{
		store:    s,
		ingestor: ingestor,
		events:   events,
		metrics:  m,
		maxFiles: maxFiles,
		now:      time.Now,
	}
}

// Create ingests an uploaded file and prepends its record. Name and content
// type come from the upload itself; size and upload date are generated here,
// never taken from user input.
func (s *Service) Create(ctx context.Context, name, contentType string, data []byte) (*model.UploadedFile, error) {
	name = strings.TrimSpace(name)
	contentType = strings.TrimSpace(contentType)

	err := validate.Required(
		validate.Field{Name: "name", Value: name},
		validate.Field{Name: "type", Value: contentType},
	)
	if err != nil {
		s.metrics.ValidationFailures.WithLabelValues(recordType).Inc()
		return nil, err
	}

	url, err := s.ingestor.Ingest(ctx, name, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest file: %w", err)
	}

	f := &model.UploadedFile{
		Base: model.Base{
			ID:        identity.NewID(),
			CreatedAt: identity.NowISO(),
		},
		Name:       name,
		Type:       Classify(contentType),
		UploadDate: identity.FormatISO(s.now()),
		Size:       FormatSize(len(data)),
		URL:        url,
	}

	// Cap check and insert are one atomic store operation; two uploads
	// racing at one-below-the-cap cannot both land.
	if !s.store.AddWithLimit(f, s.maxFiles) {
		return nil, apperrors.LimitExceeded(
			fmt.Sprintf("free plan allows up to %d files, upgrade to add more", s.maxFiles), nil)
	}
	s.metrics.RecordsCreated.WithLabelValues(recordType).Inc()
	s.events.RecordCreated(ctx, recordType, f.ID)

	return f, nil
}

// List returns all uploads newest-first with the relative day label used
// on the dashboard.
func (s *Service) List(_ context.Context) []*model.UploadedFileView {
	now := s.now()
	files := s.store.List()
	views := make([]*model.UploadedFileView, 0, len(files))
	for _, f := range files {
		views = append(views, &model.UploadedFileView{
			UploadedFile:  *f,
			UploadedLabel: dateutil.RelativeDayLabel(f.UploadDate, now),
		})
	}
	return views
}

// Delete removes an uploaded file. Unknown ids are a silent no-op.
func (s *Service) Delete(ctx context.Context, id string) {
	if s.store.Delete(id) {
		s.metrics.RecordsDeleted.WithLabelValues(recordType).Inc()
		s.events.RecordDeleted(ctx, recordType, id)
	}
}

// Classify maps an upload's MIME type onto the two display categories.
func Classify(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return model.FileTypeImage
	}
	return model.FileTypeDocument
}

// FormatSize renders a byte count the way the upload cards show it.
func FormatSize(bytes int) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
