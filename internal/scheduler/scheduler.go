package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/mail"
)

// State identifies what the scheduler is doing right now.
type State int32

// Scheduler states.
const (
	// StateIdle means no tick is being processed.
	StateIdle State = iota

	// StateDispatching means the current tick's batch of due reminders
	// is being delivered.
	StateDispatching
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatching:
		return "dispatching"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultInterval = time.Minute
	DefaultSubject  = "Your Daily Speaking Reminder"
	DefaultMessage  = "Time for your daily English speaking practice!"
)

// ErrTickInProgress is returned by RunTick when a previous tick is still
// dispatching. The overlapping tick is skipped entirely, which is what
// guarantees at most one reminder email per recipient per matched time
// slot.
var ErrTickInProgress = errors.New("previous tick still dispatching")

// Construction errors.
var (
	ErrNilReminderSource = errors.New("reminder source cannot be nil")
	ErrNilMailer         = errors.New("mailer cannot be nil")
	ErrNilLogger         = errors.New("logger cannot be nil")
)

// ReminderSource is the slice of the persistence layer the scheduler
// reads on every tick. The scheduler never writes reminder state.
type ReminderSource interface {
	// FindDue returns the reminders whose stored minute-resolution time
	// equals hhmm ("HH:MM", 24-hour).
	FindDue(ctx context.Context, hhmm string) ([]*domain.Reminder, error)
}

// Config holds the scheduler's tunable settings.
type Config struct {
	// Interval between ticks. Intervals coarser than one minute risk
	// skipping reminder minutes that fall between ticks.
	Interval time.Duration

	// Subject and Message of the reminder email sent to every match.
	Subject string
	Message string
}

// Scheduler dispatches reminder emails for every stored reminder whose
// time-of-day matches the current minute. It is a single recurring
// background task; tick executions never overlap.
type Scheduler struct {
	reminders ReminderSource
	mailer    mail.Mailer
	logger    *slog.Logger
	cfg       Config

	mu    sync.Mutex // held for the duration of one tick
	state atomic.Int32
}

// New creates a Scheduler. Zero Config fields take the package defaults.
// Returns an error if any required dependency is nil.
func New(reminders ReminderSource, mailer mail.Mailer, logger *slog.Logger, cfg Config) (*Scheduler, error) {
	if reminders == nil {
		return nil, ErrNilReminderSource
	}
	if mailer == nil {
		return nil, ErrNilMailer
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}
	if cfg.Message == "" {
		cfg.Message = DefaultMessage
	}

	return &Scheduler{
		reminders: reminders,
		mailer:    mailer,
		logger:    logger.With(slog.String("component", "reminder_scheduler")),
		cfg:       cfg,
	}, nil
}

// State reports the scheduler's current state.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Run drives RunTick at the configured interval until the context is
// cancelled. It always returns nil after a clean shutdown; tick errors
// are logged, never fatal, so a transient failure cannot wedge the next
// scheduled tick.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		slog.Duration("interval", s.cfg.Interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case now := <-ticker.C:
			if _, err := s.RunTick(ctx, now); err != nil {
				if errors.Is(err, ErrTickInProgress) {
					s.logger.Debug("tick skipped, previous tick still dispatching")
					continue
				}
				s.logger.Error("reminder tick failed", slog.String("error", err.Error()))
			}
		}
	}
}

// RunTick processes a single tick at the given wall-clock time and
// returns the number of reminders successfully dispatched.
//
// The time is truncated to minute resolution and matched against stored
// reminder times. A persistence failure aborts the whole tick with an
// error and zero dispatches. Mail failures are isolated per recipient:
// one failed send is logged and does not affect delivery to the
// remaining matches. If a previous tick is still dispatching, the tick
// is skipped and ErrTickInProgress returned.
func (s *Scheduler) RunTick(ctx context.Context, now time.Time) (int, error) {
	if !s.mu.TryLock() {
		return 0, ErrTickInProgress
	}
	defer s.mu.Unlock()

	s.state.Store(int32(StateDispatching))
	defer s.state.Store(int32(StateIdle))

	slot := now.Format("15:04")

	due, err := s.reminders.FindDue(ctx, slot)
	if err != nil {
		return 0, fmt.Errorf("fetching due reminders for %s: %w", slot, err)
	}

	if len(due) == 0 {
		s.logger.Debug("no reminders due", slog.String("slot", slot))
		return 0, nil
	}

	// Recipients are independent, so the batch is delivered in parallel.
	var (
		wg   sync.WaitGroup
		sent atomic.Int64
	)
	for _, reminder := range due {
		wg.Add(1)
		go func(r *domain.Reminder) {
			defer wg.Done()

			if err := s.mailer.Send(ctx, r.Email, s.cfg.Subject, s.cfg.Message); err != nil {
				s.logger.Error("failed to send reminder",
					slog.String("email", r.Email),
					slog.String("slot", slot),
					slog.String("error", err.Error()))
				return
			}

			s.logger.Info("reminder sent",
				slog.String("email", r.Email),
				slog.String("slot", slot))
			sent.Add(1)
		}(reminder)
	}
	wg.Wait()

	s.logger.Info("reminder dispatch complete",
		slog.String("slot", slot),
		slog.Int("matched", len(due)),
		slog.Int64("sent", sent.Load()))

	return int(sent.Load()), nil
}
