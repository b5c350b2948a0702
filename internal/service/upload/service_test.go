package upload

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/service/event"
	"github.com/sanari/health-api/internal/store"
	apperrors "github.com/sanari/health-api/pkg/errors"
	"github.com/sanari/health-api/pkg/messaging"
	"github.com/sanari/health-api/pkg/metrics"
	"github.com/sanari/health-api/pkg/validate"
)

func newTestService(t *testing.T, maxFiles int) *Service {
	t.Helper()
	logger := zerolog.Nop()
	m := metrics.NewMetricsWith("test", prometheus.NewRegistry())
	events := event.NewPublisher(messaging.NewLogBroker(&logger), &logger, m, "test")
	svc := NewService(store.New[*model.UploadedFile](), DataURLIngestor{}, events, m, maxFiles)
	svc.now = func() time.Time {
		return time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestCreate(t *testing.T) {
	svc := newTestService(t, 0)

	f, err := svc.Create(context.Background(), "scan.png", "image/png", []byte("fake-png"))
	require.NoError(t, err)

	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "scan.png", f.Name)
	assert.Equal(t, model.FileTypeImage, f.Type)
	assert.Equal(t, "8 B", f.Size)
	assert.Equal(t, "2024-06-10T09:00:00.000Z", f.UploadDate)
	assert.Contains(t, f.URL, "data:image/png;base64,")
}

func TestCreateDocumentClassification(t *testing.T) {
	svc := newTestService(t, 0)

	f, err := svc.Create(context.Background(), "report.pdf", "application/pdf", []byte("pdf"))
	require.NoError(t, err)
	assert.Equal(t, model.FileTypeDocument, f.Type)
}

func TestCreateRequiresNameAndType(t *testing.T) {
	svc := newTestService(t, 0)

	_, err := svc.Create(context.Background(), "  ", "image/png", []byte("x"))
	require.Error(t, err)
	field, ok := validate.IsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "name", field)

	_, err = svc.Create(context.Background(), "scan.png", "", []byte("x"))
	require.Error(t, err)
	field, ok = validate.IsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "type", field)
}

func TestCreateEnforcesFileLimit(t *testing.T) {
	svc := newTestService(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, fmt.Sprintf("f%d.pdf", i), "application/pdf", []byte("x"))
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, "one-too-many.pdf", "application/pdf", []byte("x"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrLimitExceeded, appErr.Code)

	assert.Len(t, svc.List(ctx), 3, "rejected upload is not stored")
}

func TestLimitHoldsUnderConcurrentUploads(t *testing.T) {
	const maxFiles = 3
	svc := newTestService(t, maxFiles)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = svc.Create(ctx, fmt.Sprintf("f%d.pdf", i), "application/pdf", []byte("x"))
		}(i)
	}
	wg.Wait()

	assert.Len(t, svc.List(ctx), maxFiles, "concurrent uploads never exceed the cap")
}

func TestLimitFreesUpAfterDelete(t *testing.T) {
	svc := newTestService(t, 1)
	ctx := context.Background()

	f, err := svc.Create(ctx, "a.pdf", "application/pdf", []byte("x"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, "b.pdf", "application/pdf", []byte("x"))
	require.Error(t, err)

	svc.Delete(ctx, f.ID)

	_, err = svc.Create(ctx, "b.pdf", "application/pdf", []byte("x"))
	assert.NoError(t, err)
}

func TestListUploadedLabel(t *testing.T) {
	svc := newTestService(t, 0)
	ctx := context.Background()

	_, err := svc.Create(ctx, "today.pdf", "application/pdf", []byte("x"))
	require.NoError(t, err)

	views := svc.List(ctx)
	require.Len(t, views, 1)
	assert.Equal(t, "Today", views[0].UploadedLabel)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, model.FileTypeImage, Classify("image/jpeg"))
	assert.Equal(t, model.FileTypeImage, Classify("image/png"))
	assert.Equal(t, model.FileTypeDocument, Classify("application/pdf"))
	assert.Equal(t, model.FileTypeDocument, Classify("text/plain"))
	assert.Equal(t, model.FileTypeDocument, Classify(""))
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024*1024 - 1, "1024.0 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.bytes), "bytes=%d", tt.bytes)
	}
}
