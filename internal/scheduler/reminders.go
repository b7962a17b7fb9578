// Package scheduler sends ritual reminder nudges on cron schedules.
//
// Two schedules are supported: a morning nudge (check in with /morning)
// and a night nudge (/night). Expressions are standard 5-field cron,
// parsed by gronx; the loop ticks once per minute. Delivery goes through
// an outbound Sender; reminders are fire-and-forget with no retry.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/adhocore/gronx"

	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

const (
	morningReminderText = "Good morning. Ready to set the day? /morning set intention=.. top3=a,b,c — then /morning auto builds your plan."
	nightReminderText   = "Evening check-in time. What went well today? /night set win=.. hard=.. learn=.. tomorrow=.."
)

// Sender delivers a reminder to a sender id. Implementations that cannot
// reach a given id return an error; the service logs and moves on.
type Sender interface {
	SendText(ctx context.Context, senderID, text string) error
}

// Config holds the reminder schedules. Empty expressions disable the
// corresponding nudge.
type Config struct {
	MorningCron string // e.g. "30 7 * * *"
	NightCron   string // e.g. "0 22 * * *"
}

// Service is the reminder loop.
type Service struct {
	cfg      Config
	store    *store.Store
	sender   Sender
	gron     *gronx.Gronx
	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
}

func NewService(cfg Config, st *store.Store, sender Sender) *Service {
	return &Service{
		cfg:    cfg,
		store:  st,
		sender: sender,
		gron:   gronx.New(),
	}
}

// Start begins the minute tick loop. No-op when already running or when
// both schedules are empty.
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || (s.cfg.MorningCron == "" && s.cfg.NightCron == "") {
		return
	}
	s.stopChan = make(chan struct{})
	s.running = true
	go s.runLoop(s.stopChan)
	slog.Info("scheduler: reminders started",
		"morning", s.cfg.MorningCron,
		"night", s.cfg.NightCron,
	)
}

// Stop halts the loop.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stopChan)
	s.running = false
	slog.Info("scheduler: reminders stopped")
}

func (s *Service) runLoop(stop chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

func (s *Service) tick(now time.Time) {
	if s.isDue(s.cfg.MorningCron, now) {
		s.broadcast(morningReminderText)
	}
	if s.isDue(s.cfg.NightCron, now) {
		s.broadcast(nightReminderText)
	}
}

func (s *Service) isDue(expr string, now time.Time) bool {
	if expr == "" {
		return false
	}
	due, err := s.gron.IsDue(expr, now)
	if err != nil {
		slog.Warn("scheduler: bad cron expression", "expr", expr, "error", err)
		return false
	}
	return due
}

func (s *Service) broadcast(text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, id := range s.store.SenderIDs() {
		if err := s.sender.SendText(ctx, id, text); err != nil {
			slog.Debug("scheduler: reminder not delivered", "sender", id, "error", err)
		}
	}
}
