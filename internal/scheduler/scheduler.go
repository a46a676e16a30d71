package scheduler

import (
	"context"
	"hotelops/config"
	businessDateService "hotelops/internal/domains/businessdate/service"
	"hotelops/internal/domains/nightaudit/model"
	"hotelops/internal/domains/nightaudit/model/dto"
	nightAuditService "hotelops/internal/domains/nightaudit/service"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultInterval = time.Hour

// Scheduler triggers the night audit for the configured hotels once their business date has fallen
// behind the calendar. It closes at most one date per hotel per tick.
type Scheduler struct {
	nightAudit   nightAuditService.NightAudit
	businessDate businessDateService.BusinessDate
	hotels       []string
	runAfterHour int
	interval     time.Duration
	now          func() time.Time
}

func New(nightAudit nightAuditService.NightAudit, businessDate businessDateService.BusinessDate, cfg *config.Config) *Scheduler {
	interval := time.Duration(cfg.NightAudit.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Scheduler{
		nightAudit:   nightAudit,
		businessDate: businessDate,
		hotels:       cfg.NightAudit.Hotels,
		runAfterHour: cfg.NightAudit.RunAfterHour,
		interval:     interval,
		now:          timezone.Now,
	}
}

// Start blocks until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", s.interval).Strs("hotels", s.hotels).Msg("night audit scheduler started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("night audit scheduler stopped")

			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()
	if now.Hour() < s.runAfterHour {
		return
	}

	calendar := timezone.DateOf(now)

	for _, hotelID := range s.hotels {
		s.audit(ctx, hotelID, calendar)
	}
}

func (s *Scheduler) audit(ctx context.Context, hotelID string, calendar time.Time) {
	current, err := s.businessDate.Today(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to read business date")

		return
	}

	if !current.Before(calendar) {
		return
	}

	res, err := s.nightAudit.Run(ctx, hotelID, constant.SystemActor, dto.RunAuditRequest{AuditDate: timezone.FormatDate(current)})

	switch {
	case failure.GetReason(err) == model.ReasonAlreadyClosed, failure.IsRetryable(err):
		log.Info().Str("hotel_id", hotelID).Str("audit_date", timezone.FormatDate(current)).Msg("night audit handled elsewhere")
	case err != nil:
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("scheduled night audit failed")
	default:
		log.Info().
			Str("hotel_id", hotelID).
			Str("audit_date", res.AuditDate).
			Str("status", string(res.Status)).
			Msg("scheduled night audit finished")
	}
}
