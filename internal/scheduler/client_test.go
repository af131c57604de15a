package scheduler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	leadsrepo "leadvault_backend/internal/leads/repository"
)

func TestScheduleFollowupReminder(t *testing.T) {
	mr := miniredis.RunT(t)
	opt := asynq.RedisClientOpt{Addr: mr.Addr()}

	client := &Client{client: asynq.NewClient(opt), queue: "default"}
	defer client.Close()

	lead := leadsrepo.Lead{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Name:         "Ada Byron",
		NextFollowup: time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second),
	}

	if err := client.ScheduleFollowupReminder(context.Background(), lead); err != nil {
		t.Fatalf("ScheduleFollowupReminder: %v", err)
	}

	inspector := asynq.NewInspector(opt)
	defer inspector.Close()

	tasks, err := inspector.ListScheduledTasks("default")
	if err != nil {
		t.Fatalf("ListScheduledTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 scheduled task, got %d", len(tasks))
	}
	if tasks[0].Type != TaskFollowupReminder {
		t.Fatalf("expected task type %q, got %q", TaskFollowupReminder, tasks[0].Type)
	}

	var payload FollowupReminderPayload
	if err := json.Unmarshal(tasks[0].Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.LeadID != lead.ID.String() || payload.TenantID != lead.UserID.String() {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if !payload.ScheduledFor.Equal(lead.NextFollowup) {
		t.Fatalf("expected scheduled time %v, got %v", lead.NextFollowup, payload.ScheduledFor)
	}
}

func TestNilClientIsSafe(t *testing.T) {
	var client *Client
	if err := client.ScheduleFollowupReminder(context.Background(), leadsrepo.Lead{}); err != nil {
		t.Fatalf("nil client must be a no-op, got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("nil client close: %v", err)
	}
}
