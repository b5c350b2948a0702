package vaccination

import (
	"context"
	"strings"
	"time"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/service/event"
	"github.com/sanari/health-api/internal/store"
	"github.com/sanari/health-api/pkg/dateutil"
	"github.com/sanari/health-api/pkg/identity"
	"github.com/sanari/health-api/pkg/metrics"
	"github.com/sanari/health-api/pkg/validate"
)

const recordType = "vaccination"

type Service struct {
	store   *store.Store[*model.Vaccination]
	events  *event.Publisher
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(s *store.Store[*model.Vaccination], events *event.Publisher, m *metrics.Metrics) *Service {
	return &Service{
		store:   s,
		events:  events,
		metrics: m,
		now:     time.Now,
	}
}

// Create validates the submitted dose record and prepends it. Required
// fields are checked in form order; the first missing one is reported.
func (s *Service) Create(ctx context.Context, req *model.CreateVaccinationRequest) (*model.Vaccination, error) {
	vaccineName := strings.TrimSpace(req.VaccineName)
	doseNumber := strings.TrimSpace(req.DoseNumber)
	dateAdministered := strings.TrimSpace(req.DateAdministered)
	nextDueDate := strings.TrimSpace(req.NextDueDate)
	administeredBy := strings.TrimSpace(req.AdministeredBy)
	location := strings.TrimSpace(req.Location)

	err := validate.Required(
		validate.Field{Name: "vaccineName", Value: vaccineName},
		validate.Field{Name: "doseNumber", Value: doseNumber},
		validate.Field{Name: "dateAdministered", Value: dateAdministered},
		validate.Field{Name: "administeredBy", Value: administeredBy},
		validate.Field{Name: "location", Value: location},
	)
	if err == nil {
		err = validate.Date("dateAdministered", dateAdministered)
	}
	if err == nil {
		err = validate.Date("nextDueDate", nextDueDate)
	}
	if err != nil {
		s.metrics.ValidationFailures.WithLabelValues(recordType).Inc()
		return nil, err
	}

	v := &model.Vaccination{
		Base: model.Base{
			ID:        identity.NewID(),
			CreatedAt: identity.NowISO(),
		},
		VaccineName:      vaccineName,
		DoseNumber:       doseNumber,
		DateAdministered: dateAdministered,
		NextDueDate:      nextDueDate,
		AdministeredBy:   administeredBy,
		Location:         location,
		BatchNumber:      strings.TrimSpace(req.BatchNumber),
		Notes:            strings.TrimSpace(req.Notes),
	}

	s.store.Add(v)
	s.metrics.RecordsCreated.WithLabelValues(recordType).Inc()
	s.events.RecordCreated(ctx, recordType, v.ID)

	return v, nil
}

// List returns all vaccinations newest-first with due-date badges computed
// against the current day.
func (s *Service) List(_ context.Context) []*model.VaccinationView {
	now := s.now()
	vaccinations := s.store.List()
	views := make([]*model.VaccinationView, 0, len(vaccinations))
	for _, v := range vaccinations {
		views = append(views, &model.VaccinationView{
			Vaccination:             *v,
			DisplayDateAdministered: dateutil.DisplayDate(v.DateAdministered),
			DisplayNextDueDate:      dateutil.DisplayDate(v.NextDueDate),
			Overdue:                 dateutil.Overdue(v.NextDueDate, now),
			Upcoming:                dateutil.Upcoming(v.NextDueDate, now),
		})
	}
	return views
}

// Delete removes a vaccination record. Unknown ids are a silent no-op.
func (s *Service) Delete(ctx context.Context, id string) {
	if s.store.Delete(id) {
		s.metrics.RecordsDeleted.WithLabelValues(recordType).Inc()
		s.events.RecordDeleted(ctx, recordType, id)
	}
}
