package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	authrepo "leadvault_backend/internal/auth/repository"
	"leadvault_backend/internal/email"
	"leadvault_backend/internal/events"
	"leadvault_backend/internal/leads/domain"
	leadsrepo "leadvault_backend/internal/leads/repository"
	"leadvault_backend/platform/config"
	"leadvault_backend/platform/logger"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	leads  *leadsrepo.Repository
	users  *authrepo.Repository
	mail   email.Sender
	bus    events.Bus
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, pool *pgxpool.Pool, mail email.Sender, bus events.Bus, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		leads:  leadsrepo.New(pool),
		users:  authrepo.New(pool),
		mail:   mail,
		bus:    bus,
		log:    log,
	}

	mux.HandleFunc(TaskFollowupReminder, w.handleFollowupReminder)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

// handleFollowupReminder re-reads the lead at delivery time. Tasks for
// leads that were deleted, closed, or rescheduled since enqueue are dropped
// without error.
func (w *Worker) handleFollowupReminder(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseFollowupReminderPayload(task)
	if err != nil {
		return err
	}

	leadID, err := uuid.Parse(payload.LeadID)
	if err != nil {
		return err
	}
	tenantID, err := uuid.Parse(payload.TenantID)
	if err != nil {
		return err
	}

	lead, err := w.leads.GetByID(ctx, leadID, tenantID)
	if err != nil {
		if errors.Is(err, leadsrepo.ErrNotFound) {
			return nil
		}
		return err
	}

	if lead.DeletedAt != nil || !domain.Status(lead.Status).NeedsFollowup() {
		return nil
	}
	if !lead.NextFollowup.Equal(payload.ScheduledFor) {
		return nil
	}

	owner, err := w.users.GetUserByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, authrepo.ErrNotFound) {
			return nil
		}
		return err
	}

	if w.bus != nil {
		_ = w.bus.PublishSync(ctx, events.FollowupDue{
			BaseEvent:    events.NewBaseEvent(),
			LeadID:       lead.ID,
			TenantID:     tenantID,
			LeadName:     lead.Name,
			LeadEmail:    lead.Email,
			NextFollowup: lead.NextFollowup,
		})
	}

	if err := w.mail.SendFollowupReminder(ctx, owner.Email, lead.Name, lead.Email, lead.NextFollowup); err != nil {
		w.log.Error("follow-up reminder delivery failed", "error", err, "leadId", lead.ID)
		return err
	}

	return nil
}
