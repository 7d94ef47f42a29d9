package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/task"
)

// UpsertTaskInput contains the domain-level data extracted from an
// actionable item-creation event.
type UpsertTaskInput struct {
	ExternalItemID string
	Title          string
	Description    string
	Priority       task.Priority
	RepositoryURL  string
	UserLanguage   string
	CreatorID      string
	CreatorEmail   string
}

// TaskService manages the per-item task registry: one row per distinct board
// item, carrying lifecycle status, reactivation counters, and cooldown state.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	if client == nil {
		panic("NewTaskService: client must not be nil")
	}
	return &TaskService{client: client}
}

// UpsertTask creates the task for the board item, or returns the existing one.
// Returns created=false when the item was already known.
func (s *TaskService) UpsertTask(ctx context.Context, input UpsertTaskInput) (t *ent.Task, created bool, err error) {
	if input.ExternalItemID == "" {
		return nil, false, NewValidationError("external_item_id", "item id is required")
	}
	if input.Title == "" {
		return nil, false, NewValidationError("title", "title is required")
	}

	existing, err := s.GetByExternalItemID(ctx, input.ExternalItemID)
	if err == nil {
		return existing, false, nil
	}
	if err != ErrNotFound {
		return nil, false, err
	}

	builder := s.client.Task.Create().
		SetExternalItemID(input.ExternalItemID).
		SetTitle(input.Title)
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	if input.Priority != "" {
		builder.SetPriority(input.Priority)
	}
	if input.RepositoryURL != "" {
		builder.SetRepositoryURL(input.RepositoryURL)
	}
	if input.UserLanguage != "" {
		builder.SetUserLanguage(input.UserLanguage)
	}
	if input.CreatorID != "" {
		builder.SetCreatorID(input.CreatorID)
	}
	if input.CreatorEmail != "" {
		builder.SetCreatorEmail(input.CreatorEmail)
	}

	t, err = builder.Save(ctx)
	if err != nil {
		// Two webhooks for the same new item can race; the unique index on
		// external_item_id makes the loser pick up the winner's row.
		if ent.IsConstraintError(err) {
			existing, qerr := s.GetByExternalItemID(ctx, input.ExternalItemID)
			if qerr == nil {
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create task: %w", err)
	}
	return t, true, nil
}

// GetTask fetches one task by id.
func (s *TaskService) GetTask(ctx context.Context, taskID int64) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// GetByExternalItemID fetches the task for a board item.
func (s *TaskService) GetByExternalItemID(ctx context.Context, itemID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.ExternalItemIDEQ(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task by item id: %w", err)
	}
	return t, nil
}

// SetStatus updates the task's internal status.
func (s *TaskService) SetStatus(ctx context.Context, taskID int64, status task.InternalStatus) error {
	if err := s.client.Task.UpdateOneID(taskID).
		SetInternalStatus(status).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return nil
}

// SetLastRun records the most recent run id on the task.
func (s *TaskService) SetLastRun(ctx context.Context, taskID, runID int64) error {
	if err := s.client.Task.UpdateOneID(taskID).
		SetLastRunID(runID).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set last run: %w", err)
	}
	return nil
}

// BeginReactivation atomically increments the reactivation counter, sets the
// cooldown window, and moves the task back in progress. The update is guarded
// on is_locked so a concurrently locked task cannot be reactivated.
func (s *TaskService) BeginReactivation(ctx context.Context, taskID int64, cooldown time.Duration) (*ent.Task, error) {
	n, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.IsLockedEQ(false),
		).
		AddReactivationCount(1).
		SetCooldownUntil(time.Now().Add(cooldown)).
		SetInternalStatus(task.InternalStatusInProgress).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin reactivation: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}
	return s.GetTask(ctx, taskID)
}

// SetLocked flips the reactivation lock.
func (s *TaskService) SetLocked(ctx context.Context, taskID int64, locked bool) error {
	if err := s.client.Task.UpdateOneID(taskID).
		SetIsLocked(locked).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update task lock: %w", err)
	}
	return nil
}

// ListTasks returns tasks filtered by status (all when empty), newest first.
func (s *TaskService) ListTasks(ctx context.Context, status string, limit, offset int) ([]*ent.Task, int, error) {
	if limit <= 0 {
		limit = 50
	}
	query := s.client.Task.Query()
	if status != "" {
		query = query.Where(task.InternalStatusEQ(task.InternalStatus(status)))
	}
	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	tasks, err := query.
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}
