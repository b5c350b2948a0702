package worker

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/pkg/metrics"
)

type stubSource struct {
	reminders []*model.Reminder
}

func (s *stubSource) Active(_ context.Context) []*model.Reminder {
	return s.reminders
}

type captureSender struct {
	recipients []string
	messages   []string
	err        error
}

func (s *captureSender) Send(_ context.Context, recipient, message string) error {
	if s.err != nil {
		return s.err
	}
	s.recipients = append(s.recipients, recipient)
	s.messages = append(s.messages, message)
	return nil
}

func reminderAt(clock string) *model.Reminder {
	return &model.Reminder{
		Base:         model.Base{ID: "r-" + clock},
		MedicineName: "Aspirin",
		Dosage:       "100mg",
		Time:         clock,
		PhoneNumber:  "+15550100",
		Active:       true,
	}
}

func newChecker(t *testing.T, source ReminderSource, sender *captureSender, at time.Time) *ReminderChecker {
	t.Helper()
	logger := zerolog.Nop()
	m := metrics.NewMetricsWith("test", prometheus.NewRegistry())
	c := NewReminderChecker(source, sender, &logger, m, CheckerConfig{Enabled: true, Interval: time.Minute})
	c.now = func() time.Time { return at }
	return c
}

func TestCheckFiresMatchingMinute(t *testing.T) {
	source := &stubSource{reminders: []*model.Reminder{
		reminderAt("08:30"),
		reminderAt("09:00"),
	}}
	sender := &captureSender{}
	c := newChecker(t, source, sender, time.Date(2024, 6, 1, 8, 30, 45, 0, time.UTC))

	c.Check(context.Background())

	require.Len(t, sender.messages, 1, "only the 08:30 reminder is due")
	assert.Equal(t, "+15550100", sender.recipients[0])
	assert.Equal(t, "Time to take your medicine: Aspirin (100mg)", sender.messages[0])
}

func TestCheckNoMatches(t *testing.T) {
	source := &stubSource{reminders: []*model.Reminder{reminderAt("08:30")}}
	sender := &captureSender{}
	c := newChecker(t, source, sender, time.Date(2024, 6, 1, 8, 31, 0, 0, time.UTC))

	c.Check(context.Background())

	assert.Empty(t, sender.messages)
}

func TestCheckSendFailureContinues(t *testing.T) {
	source := &stubSource{reminders: []*model.Reminder{reminderAt("08:30")}}
	sender := &captureSender{err: assert.AnError}
	c := newChecker(t, source, sender, time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC))

	assert.NotPanics(t, func() { c.Check(context.Background()) })
}

func TestStartStopsOnContextCancel(t *testing.T) {
	source := &stubSource{}
	sender := &captureSender{}
	c := newChecker(t, source, sender, time.Now())
	c.config.Interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Start(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("checker did not stop after cancel")
	}
}
