package vaccination

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/service/event"
	"github.com/sanari/health-api/internal/store"
	"github.com/sanari/health-api/pkg/messaging"
	"github.com/sanari/health-api/pkg/metrics"
	"github.com/sanari/health-api/pkg/validate"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := zerolog.Nop()
	m := metrics.NewMetricsWith("test", prometheus.NewRegistry())
	events := event.NewPublisher(messaging.NewLogBroker(&logger), &logger, m, "test")
	svc := NewService(store.New[*model.Vaccination](), events, m)
	svc.now = func() time.Time {
		return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func validRequest() *model.CreateVaccinationRequest {
	return &model.CreateVaccinationRequest{
		VaccineName:      "Tetanus",
		DoseNumber:       "2",
		DateAdministered: "2024-05-20",
		NextDueDate:      "2024-06-15",
		AdministeredBy:   "Dr. Rao",
		Location:         "City Clinic",
		BatchNumber:      "TB-991",
		Notes:            " booster ",
	}
}

func TestCreate(t *testing.T) {
	svc := newTestService(t)

	v, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.NotEmpty(t, v.CreatedAt)
	assert.Equal(t, "Tetanus", v.VaccineName)
	assert.Equal(t, "booster", v.Notes, "optional fields are trimmed too")
}

func TestCreateFirstMissingFieldWins(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.CreateVaccinationRequest)
		wantField string
	}{
		{"vaccine name blank", func(r *model.CreateVaccinationRequest) { r.VaccineName = "  " }, "vaccineName"},
		{"dose number blank", func(r *model.CreateVaccinationRequest) { r.DoseNumber = "" }, "doseNumber"},
		{"everything blank reports the first", func(r *model.CreateVaccinationRequest) {
			*r = model.CreateVaccinationRequest{}
		}, "vaccineName"},
		{"location blank", func(r *model.CreateVaccinationRequest) { r.Location = "" }, "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)

			field, ok := validate.IsFieldError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestCreateRejectsBadDates(t *testing.T) {
	svc := newTestService(t)

	req := validRequest()
	req.NextDueDate = "15/06/2024"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	field, ok := validate.IsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "nextDueDate", field)
}

func TestCreateNextDueDateOptional(t *testing.T) {
	svc := newTestService(t)

	req := validRequest()
	req.NextDueDate = ""

	v, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, v.NextDueDate)
}

func TestListBadges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	overdue := validRequest()
	overdue.VaccineName = "Polio"
	overdue.NextDueDate = "2024-05-01"
	_, err := svc.Create(ctx, overdue)
	require.NoError(t, err)

	upcoming := validRequest()
	upcoming.NextDueDate = "2024-06-15"
	_, err = svc.Create(ctx, upcoming)
	require.NoError(t, err)

	views := svc.List(ctx)
	require.Len(t, views, 2)

	assert.Equal(t, "Tetanus", views[0].VaccineName, "newest first")
	assert.True(t, views[0].Upcoming)
	assert.False(t, views[0].Overdue)
	assert.Equal(t, "June 15, 2024", views[0].DisplayNextDueDate)

	assert.True(t, views[1].Overdue)
	assert.False(t, views[1].Upcoming)
}

func TestDeleteIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	svc.Delete(ctx, v.ID)
	svc.Delete(ctx, v.ID)
	assert.Empty(t, svc.List(ctx))
}
