package reminder

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

const recordType = "reminder"

// DefaultDosage is stored when the dosage field is left blank.
const DefaultDosage = "As prescribed"

type Service struct {
	store   *store.Store[*model.Reminder]
	events  *event.Publisher
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(s *store.Store[*model.Reminder], events *event.Publisher, m *metrics.Metrics) *Service {
	return &Service{
		store:   s,
		events:  events,
		metrics: m,
		now:     time.Now,
	}
}

// Create validates the submitted form, derives the end date from the
// duration type, stamps identity fields and prepends the reminder.
func (s *Service) Create(ctx context.Context, req *model.CreateReminderRequest) (*model.Reminder, error) {
	medicineName := strings.TrimSpace(req.MedicineName)
	dosage := strings.TrimSpace(req.Dosage)
	clock := strings.TrimSpace(req.Time)
	phoneNumber := strings.TrimSpace(req.PhoneNumber)
	durationType := strings.TrimSpace(req.DurationType)
	startDate := strings.TrimSpace(req.StartDate)
	endDate := strings.TrimSpace(req.EndDate)

	if durationType == "" {
		durationType = dateutil.DurationEveryday
	}

	if err := s.validateForm(medicineName, clock, phoneNumber, durationType, startDate, endDate); err != nil {
		s.metrics.ValidationFailures.WithLabelValues(recordType).Inc()
		return nil, err
	}

	if dosage == "" {
		dosage = DefaultDosage
	}
	if startDate == "" {
		startDate = s.now().Format(dateutil.DateLayout)
	}

	derivedEnd, err := dateutil.EndDate(durationType, startDate, endDate)
	if err != nil {
		s.metrics.ValidationFailures.WithLabelValues(recordType).Inc()
		return nil, &validate.InvalidFieldError{Field: "startDate", Reason: "must be a valid date (YYYY-MM-DD)"}
	}

	r := &model.Reminder{
		Base: model.Base{
			ID:        identity.NewID(),
			CreatedAt: identity.NowISO(),
		},
		MedicineName: medicineName,
		Dosage:       dosage,
		Time:         clock,
		PhoneNumber:  phoneNumber,
		Active:       true,
		DurationType: durationType,
		StartDate:    startDate,
		EndDate:      derivedEnd,
	}

	s.store.Add(r)
	s.metrics.RecordsCreated.WithLabelValues(recordType).Inc()
	s.events.RecordCreated(ctx, recordType, r.ID)

	return r, nil
}

func (s *Service) validateForm(medicineName, clock, phoneNumber, durationType, startDate, endDate string) error {
	fields := []validate.Field{
		{Name: "medicineName", Value: medicineName},
		{Name: "time", Value: clock},
		{Name: "phoneNumber", Value: phoneNumber},
	}
	// The source UI implied custom-duration dates were required but never
	// checked them. That gap is treated as a bug here: custom reminders
	// must carry both dates.
	if durationType == dateutil.DurationCustom {
		fields = append(fields,
			validate.Field{Name: "startDate", Value: startDate},
			validate.Field{Name: "endDate", Value: endDate},
		)
	}
	if err := validate.Required(fields...); err != nil {
		return err
	}

	switch durationType {
	case dateutil.DurationEveryday, dateutil.DurationWeek, dateutil.DurationCustom:
	default:
		return &validate.InvalidFieldError{Field: "durationType", Reason: "must be one of everyday, week, custom"}
	}

	if err := validate.Clock("time", clock); err != nil {
		return err
	}
	if err := validate.Date("startDate", startDate); err != nil {
		return err
	}
	return validate.Date("endDate", endDate)
}

// List returns all reminders newest-first, with display fields filled in.
func (s *Service) List(_ context.Context) []*model.ReminderView {
	reminders := s.store.List()
	views := make([]*model.ReminderView, 0, len(reminders))
	for _, r := range reminders {
		views = append(views, &model.ReminderView{
			Reminder:     *r,
			DisplayTime:  dateutil.DisplayTime(r.Time),
			DurationText: dateutil.DurationText(r.DurationType, r.StartDate, r.EndDate),
		})
	}
	return views
}

// Active returns the reminders currently switched on, for the due-time
// checker.
func (s *Service) Active(_ context.Context) []*model.Reminder {
	var active []*model.Reminder
	for _, r := range s.store.List() {
		if r.Active {
			active = append(active, r)
		}
	}
	return active
}

// Toggle flips a reminder's active flag. The stored record is replaced
// with a flipped copy rather than written in place, so concurrent List and
// Active readers never observe a half-written record. Unknown ids leave
// the store untouched.
func (s *Service) Toggle(_ context.Context, id string) (*model.Reminder, bool) {
	var toggled *model.Reminder
	found := s.store.Update(id, func(r *model.Reminder) *model.Reminder {
		flipped := *r
		flipped.Active = !flipped.Active
		toggled = &flipped
		return &flipped
	})
	return toggled, found
}

// Delete removes a reminder. Deleting an unknown id is a silent no-op.
func (s *Service) Delete(ctx context.Context, id string) {
	if s.store.Delete(id) {
		s.metrics.RecordsDeleted.WithLabelValues(recordType).Inc()
		s.events.RecordDeleted(ctx, recordType, id)
	}
}
