package appointment

import (
	"context"
	"strings"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/service/event"
	"github.com/sanari/health-api/internal/store"
	"github.com/sanari/health-api/pkg/dateutil"
	"github.com/sanari/health-api/pkg/identity"
	"github.com/sanari/health-api/pkg/metrics"
	"github.com/sanari/health-api/pkg/validate"
)

const recordType = "appointment"

type Service struct {
	store   *store.Store[*model.Appointment]
	events  *event.Publisher
	metrics *metrics.Metrics
}

func NewService(s *store.Store[*model.Appointment], events *event.Publisher, m *metrics.Metrics) *Service {
	return &Service{
		store:   s,
		events:  events,
		metrics: m,
	}
}

// Create validates the appointment form and prepends the record. The tests
// list is embedded as given, each entry stamped with its own id; an empty
// list is fine but a blank test name is not.
func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	doctorName := strings.TrimSpace(req.DoctorName)
	specialty := strings.TrimSpace(req.Specialty)
	date := strings.TrimSpace(req.Date)
	clock := strings.TrimSpace(req.Time)

	err := validate.Required(
		validate.Field{Name: "doctorName", Value: doctorName},
		validate.Field{Name: "specialty", Value: specialty},
		validate.Field{Name: "date", Value: date},
		validate.Field{Name: "time", Value: clock},
	)
	if err == nil {
		err = validate.Date("date", date)
	}
	if err == nil {
		err = validate.Clock("time", clock)
	}

	var tests []model.Test
	if err == nil {
		tests, err = buildTests(req.Tests)
	}
	if err != nil {
		s.metrics.ValidationFailures.WithLabelValues(recordType).Inc()
		return nil, err
	}

	a := &model.Appointment{
		Base: model.Base{
			ID:        identity.NewID(),
			CreatedAt: identity.NowISO(),
		},
		DoctorName: doctorName,
		Specialty:  specialty,
		Date:       date,
		Time:       clock,
		Notes:      strings.TrimSpace(req.Notes),
		Tests:      tests,
	}

	s.store.Add(a)
	s.metrics.RecordsCreated.WithLabelValues(recordType).Inc()
	s.events.RecordCreated(ctx, recordType, a.ID)

	return a, nil
}

func buildTests(names []string) ([]model.Test, error) {
	tests := make([]model.Test, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, &validate.MissingFieldError{Field: "testName"}
		}
		tests = append(tests, model.Test{
			ID:   identity.NewID(),
			Name: trimmed,
		})
	}
	return tests, nil
}

// List returns all appointments newest-first with display formatting.
func (s *Service) List(_ context.Context) []*model.AppointmentView {
	appointments := s.store.List()
	views := make([]*model.AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		views = append(views, &model.AppointmentView{
			Appointment: *a,
			DisplayDate: dateutil.DisplayDateWeekday(a.Date),
			DisplayTime: dateutil.DisplayTime(a.Time),
		})
	}
	return views
}

// Delete removes an appointment. Unknown ids are a silent no-op.
func (s *Service) Delete(ctx context.Context, id string) {
	if s.store.Delete(id) {
		s.metrics.RecordsDeleted.WithLabelValues(recordType).Inc()
		s.events.RecordDeleted(ctx, recordType, id)
	}
}
