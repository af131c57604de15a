package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"leadvault_backend/internal/events"
	"leadvault_backend/internal/leads/domain"
	"leadvault_backend/internal/leads/followup"
	"leadvault_backend/internal/leads/repository"
	"leadvault_backend/internal/leads/transport"
	"leadvault_backend/platform/phone"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrLeadNotFound       = errors.New("lead not found")
	ErrLeadAlreadyDeleted = errors.New("lead is already deleted")
	ErrLeadNotDeleted     = errors.New("lead is not deleted")
	ErrLeadNotSoftDeleted = errors.New("lead must be soft-deleted first")
	ErrUnknownStatus      = errors.New("unknown lead status")
)

// LeadRepository is the persistence surface the service depends on. Every
// call carries the tenant id so isolation is enforced at the storage layer.
type LeadRepository interface {
	GetAll(ctx context.Context, userID uuid.UUID) ([]repository.Lead, error)
	GetDeleted(ctx context.Context, userID uuid.UUID) ([]repository.Lead, error)
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (repository.Lead, error)
	Create(ctx context.Context, params repository.CreateLeadParams) (repository.Lead, error)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, params repository.UpdateLeadParams) (repository.Lead, error)
	SoftDelete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (repository.Lead, error)
	Restore(ctx context.Context, id uuid.UUID, userID uuid.UUID) (repository.Lead, error)
	PermanentDelete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

// ReminderScheduler queues a follow-up reminder for the lead's next
// follow-up moment. A nil scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleFollowupReminder(ctx context.Context, lead repository.Lead) error
}

type Service struct {
	repo      LeadRepository
	policy    *followup.Policy
	bus       events.Bus
	scheduler ReminderScheduler
	now       func() time.Time
}

func New(repo LeadRepository, policy *followup.Policy, bus events.Bus, scheduler ReminderScheduler) *Service {
	return &Service{
		repo:      repo,
		policy:    policy,
		bus:       bus,
		scheduler: scheduler,
		now:       time.Now,
	}
}

func (s *Service) GetAll(ctx context.Context, userID uuid.UUID) (transport.LeadListResponse, error) {
	if userID == uuid.Nil {
		return transport.LeadListResponse{}, ErrNotAuthenticated
	}
	leads, err := s.repo.GetAll(ctx, userID)
	if err != nil {
		return transport.LeadListResponse{}, err
	}
	return transport.ToLeadListResponse(leads), nil
}

func (s *Service) GetDeleted(ctx context.Context, userID uuid.UUID) (transport.LeadListResponse, error) {
	if userID == uuid.Nil {
		return transport.LeadListResponse{}, ErrNotAuthenticated
	}
	leads, err := s.repo.GetDeleted(ctx, userID)
	if err != nil {
		return transport.LeadListResponse{}, err
	}
	return transport.ToLeadListResponse(leads), nil
}

func (s *Service) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (transport.LeadResponse, error) {
	if userID == uuid.Nil {
		return transport.LeadResponse{}, ErrNotAuthenticated
	}
	lead, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, ErrLeadNotFound
		}
		return transport.LeadResponse{}, err
	}
	return transport.ToLeadResponse(lead), nil
}

// Create stores a new active lead. Status, opt-in state and both contact
// timestamps are server-assigned and never taken from the request.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	if userID == uuid.Nil {
		return transport.LeadResponse{}, ErrNotAuthenticated
	}

	now := s.now().UTC()
	lead, err := s.repo.Create(ctx, repository.CreateLeadParams{
		UserID:           userID,
		Name:             req.Name,
		Email:            req.Email,
		Phone:            phone.NormalizeE164(req.Phone),
		Status:           string(domain.StatusNew),
		Source:           req.Source,
		Notes:            req.Notes,
		PropertyInterest: req.PropertyInterest,
		Budget:           req.Budget,
		Location:         req.Location,
		LastContact:      now,
		NextFollowup:     s.policy.InitialDate(),
		OptinStatus:      false,
	})
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.publish(ctx, events.LeadCreated{
		BaseEvent:    events.NewBaseEvent(),
		LeadID:       lead.ID,
		TenantID:     userID,
		Name:         lead.Name,
		Source:       lead.Source,
		NextFollowup: lead.NextFollowup,
	})
	s.scheduleReminder(ctx, lead)

	return transport.ToLeadResponse(lead), nil
}

// Update applies a partial mutation to an active lead. When the caller does
// not pin next_followup explicitly, the date extends from the previous one
// unless the lead ends up closed, in which case it stays untouched.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req transport.UpdateLeadRequest) (transport.LeadResponse, error) {
	if userID == uuid.Nil {
		return transport.LeadResponse{}, ErrNotAuthenticated
	}

	current, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, ErrLeadNotFound
		}
		return transport.LeadResponse{}, err
	}
	if current.DeletedAt != nil {
		return transport.LeadResponse{}, ErrLeadNotFound
	}

	// Status "deleted" is reserved for the soft-delete path and cannot be
	// assigned through an update.
	if req.Status != nil {
		status := domain.Status(*req.Status)
		if !domain.IsKnownStatus(status) || status == domain.StatusDeleted {
			return transport.LeadResponse{}, ErrUnknownStatus
		}
	}

	params := repository.UpdateLeadParams{
		Name:             req.Name,
		Email:            req.Email,
		Status:           req.Status,
		Source:           req.Source,
		Notes:            req.Notes,
		PropertyInterest: req.PropertyInterest,
		Budget:           req.Budget,
		Location:         req.Location,
		LastContact:      req.LastContact,
		NextFollowup:     req.NextFollowup,
		OptinStatus:      req.OptinStatus,
	}

	if req.Phone != nil {
		normalized := phone.NormalizeE164(*req.Phone)
		params.Phone = &normalized
	}

	resultingStatus := domain.Status(current.Status)
	if req.Status != nil {
		resultingStatus = domain.Status(*req.Status)
	}
	if req.NextFollowup == nil && resultingStatus.NeedsFollowup() {
		extended := s.policy.ExtendedDate(current.NextFollowup)
		params.NextFollowup = &extended
	}

	// The first opt-in consent gets a view timestamp exactly once. Later
	// toggles never move it.
	if req.OptinStatus != nil && *req.OptinStatus && !current.OptinStatus && current.OptinViewedAt == nil {
		viewedAt := s.now().UTC()
		params.OptinViewedAt = &viewedAt
	}

	lead, err := s.repo.Update(ctx, id, userID, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, ErrLeadNotFound
		}
		return transport.LeadResponse{}, err
	}

	updated := events.LeadUpdated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		TenantID:  userID,
		Status:    lead.Status,
	}
	if !lead.NextFollowup.Equal(current.NextFollowup) {
		rescheduled := lead.NextFollowup
		updated.NextFollowup = &rescheduled
		if domain.Status(lead.Status).NeedsFollowup() {
			s.scheduleReminder(ctx, lead)
		}
	}
	s.publish(ctx, updated)

	return transport.ToLeadResponse(lead), nil
}

// SoftDelete moves an active lead to the trash. The status change and the
// deletion timestamp land in one conditional statement, so a concurrent
// delete of the same lead surfaces as already deleted rather than applying
// twice.
func (s *Service) SoftDelete(ctx context.Context, userID uuid.UUID, id uuid.UUID) (transport.LeadResponse, error) {
	if userID == uuid.Nil {
		return transport.LeadResponse{}, ErrNotAuthenticated
	}

	lead, err := s.repo.SoftDelete(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, s.classifyMissing(ctx, id, userID, ErrLeadAlreadyDeleted)
		}
		return transport.LeadResponse{}, err
	}

	s.publish(ctx, events.LeadSoftDeleted{BaseEvent: events.NewBaseEvent(), LeadID: lead.ID, TenantID: userID})
	return transport.ToLeadResponse(lead), nil
}

// Restore returns a soft-deleted lead to the active set with status reset
// to new.
func (s *Service) Restore(ctx context.Context, userID uuid.UUID, id uuid.UUID) (transport.LeadResponse, error) {
	if userID == uuid.Nil {
		return transport.LeadResponse{}, ErrNotAuthenticated
	}

	lead, err := s.repo.Restore(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, s.classifyMissing(ctx, id, userID, ErrLeadNotDeleted)
		}
		return transport.LeadResponse{}, err
	}

	s.publish(ctx, events.LeadRestored{BaseEvent: events.NewBaseEvent(), LeadID: lead.ID, TenantID: userID})
	return transport.ToLeadResponse(lead), nil
}

// PermanentDelete removes a lead for good. Only leads already in the trash
// qualify.
func (s *Service) PermanentDelete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrNotAuthenticated
	}

	err := s.repo.PermanentDelete(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.classifyMissing(ctx, id, userID, ErrLeadNotSoftDeleted)
		}
		return err
	}

	s.publish(ctx, events.LeadPermanentlyDeleted{BaseEvent: events.NewBaseEvent(), LeadID: id, TenantID: userID})
	return nil
}

// classifyMissing runs after a conditional write matched no row. The lead
// either does not exist for this tenant or sits in the wrong deletion state;
// a single lookup tells the two apart.
func (s *Service) classifyMissing(ctx context.Context, id uuid.UUID, userID uuid.UUID, wrongState error) error {
	_, err := s.repo.GetByID(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrLeadNotFound
	}
	if err != nil {
		return err
	}
	return wrongState
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, event)
}

func (s *Service) scheduleReminder(ctx context.Context, lead repository.Lead) {
	if s.scheduler == nil {
		return
	}
	// Reminder delivery is best effort. A failed enqueue never fails the
	// write that triggered it.
	_ = s.scheduler.ScheduleFollowupReminder(ctx, lead)
}
