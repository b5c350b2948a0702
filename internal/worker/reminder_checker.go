// Package worker runs the background reminder due-time checker. It is a
// pure poller: every tick it reads the active reminders and fires a
// notification for any whose HH:MM matches the current minute.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/service/notification"
	"github.com/sanari/health-api/pkg/dateutil"
	"github.com/sanari/health-api/pkg/metrics"
)

// CheckerConfig is read from the environment.
type CheckerConfig struct {
	Enabled  bool          `envconfig:"REMINDER_CHECK_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"REMINDER_CHECK_INTERVAL" default:"60s"`
}

func CheckerConfigFromEnv() (CheckerConfig, error) {
	var cfg CheckerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load checker config: %w", err)
	}
	return cfg, nil
}

// ReminderSource lists the reminders currently switched on.
type ReminderSource interface {
	Active(ctx context.Context) []*model.Reminder
}

type ReminderChecker struct {
	source  ReminderSource
	sender  notification.Sender
	logger  *zerolog.Logger
	metrics *metrics.Metrics
	config  CheckerConfig
	now     func() time.Time
}

func NewReminderChecker(
	source ReminderSource,
	sender notification.Sender,
	logger *zerolog.Logger,
	m *metrics.Metrics,
	cfg CheckerConfig,
) *ReminderChecker {
	return &ReminderChecker{
		source:  source,
		sender:  sender,
		logger:  logger,
		metrics: m,
		config:  cfg,
		now:     time.Now,
	}
}

// Start polls until the context is cancelled.
func (c *ReminderChecker) Start(ctx context.Context) {
	ticker := time.NewTicker(c.config.Interval)
	defer ticker.Stop()

	c.logger.Info().Dur("interval", c.config.Interval).Msg("starting reminder checker")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("reminder checker stopped")
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

// Check fires notifications for reminders due this minute.
func (c *ReminderChecker) Check(ctx context.Context) {
	c.metrics.ReminderChecks.Inc()
	current := c.now().Format(dateutil.ClockLayout)

	for _, r := range c.source.Active(ctx) {
		if r.Time != current {
			continue
		}
		message := fmt.Sprintf("Time to take your medicine: %s (%s)", r.MedicineName, r.Dosage)
		if err := c.sender.Send(ctx, r.PhoneNumber, message); err != nil {
			c.logger.Error().Err(err).
				Str("reminder_id", r.ID).
				Msg("failed to send reminder notification")
			continue
		}
		c.metrics.RemindersTriggered.Inc()
	}
}
