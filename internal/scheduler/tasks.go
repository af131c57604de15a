package scheduler

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TaskFollowupReminder = "leads.followup.reminder"

type FollowupReminderPayload struct {
	LeadID   string `json:"leadId"`
	TenantID string `json:"tenantId"`
	// ScheduledFor records the follow-up time the task was enqueued for.
	// The worker drops the task when the lead has been rescheduled since.
	ScheduledFor time.Time `json:"scheduledFor"`
}

func NewFollowupReminderTask(payload FollowupReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskFollowupReminder, data), nil
}

func ParseFollowupReminderPayload(task *asynq.Task) (FollowupReminderPayload, error) {
	var payload FollowupReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return FollowupReminderPayload{}, err
	}
	return payload, nil
}
