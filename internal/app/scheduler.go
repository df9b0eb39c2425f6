package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DialogSweeper закрывает диалоги записи, брошенные пользователями
type DialogSweeper interface {
	SweepIdle(olderThan time.Time) int
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	sweeper  DialogSweeper
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler создаёт новый планировщик
func NewScheduler(sweeper DialogSweeper, ttl, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run выполняет фоновые задачи до отмены контекста
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("Starting background scheduler",
		zap.Duration("dialog_ttl", s.ttl),
		zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweepDialogs()
		case <-ctx.Done():
			s.logger.Info("Background scheduler stopped")
			return nil
		}
	}
}

// sweepDialogs удаляет черновики записи, которые не менялись дольше ttl
func (s *Scheduler) sweepDialogs() int {
	removed := s.sweeper.SweepIdle(s.now().Add(-s.ttl))
	if removed > 0 {
		s.logger.Info("Idle booking dialogs discarded", zap.Int("count", removed))
	}
	return removed
}
