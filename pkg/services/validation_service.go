package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
	"github.com/forgeflow/forgeflow/pkg/models"
)

// CreateValidationInput describes a validation prompt about to be posted.
type CreateValidationInput struct {
	RunID          int64
	ParentID       *int64
	Body           string
	RequesterID    string
	RequesterEmail string
	RejectionCount int
	TimeoutSeconds int
}

// ResolveValidationInput carries an interpreted human reply.
type ResolveValidationInput struct {
	RequestID      int64
	RawReply       string
	Verdict        models.Verdict
	Confidence     float64
	Method         models.AnalysisMethod
	Instructions   string
	ReviewerID     string
	ReviewerEmail  string
	SystemNote     string
}

// ValidationService manages validation request chains and their terminal
// responses. A chain is the linked list of requests for one run, each
// re-prompt pointing at its predecessor; rejection_count never decreases
// along it.
type ValidationService struct {
	client *ent.Client
}

// NewValidationService creates a new ValidationService.
func NewValidationService(client *ent.Client) *ValidationService {
	if client == nil {
		panic("NewValidationService: client must not be nil")
	}
	return &ValidationService{client: client}
}

// CreateRequest persists a pending validation request.
func (s *ValidationService) CreateRequest(ctx context.Context, input CreateValidationInput) (*ent.ValidationRequest, error) {
	if input.RunID == 0 {
		return nil, NewValidationError("run_id", "run id is required")
	}
	if input.Body == "" {
		return nil, NewValidationError("body", "prompt body is required")
	}
	builder := s.client.ValidationRequest.Create().
		SetRunID(input.RunID).
		SetBody(input.Body).
		SetRejectionCount(input.RejectionCount)
	if input.ParentID != nil {
		builder.SetParentValidationID(*input.ParentID)
	}
	if input.RequesterID != "" {
		builder.SetRequesterID(input.RequesterID)
	}
	if input.RequesterEmail != "" {
		builder.SetRequesterEmail(input.RequesterEmail)
	}
	if input.TimeoutSeconds > 0 {
		builder.SetTimeoutSeconds(input.TimeoutSeconds)
	}
	vr, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation request: %w", err)
	}
	return vr, nil
}

// AttachComment records the board comment id once the prompt is posted.
func (s *ValidationService) AttachComment(ctx context.Context, requestID int64, commentID string) error {
	if err := s.client.ValidationRequest.UpdateOneID(requestID).
		SetExternalCommentID(commentID).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach comment id: %w", err)
	}
	return nil
}

// GetRequest fetches one validation request by id.
func (s *ValidationService) GetRequest(ctx context.Context, requestID int64) (*ent.ValidationRequest, error) {
	vr, err := s.client.ValidationRequest.Get(ctx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get validation request: %w", err)
	}
	return vr, nil
}

// Resolve writes the response row and flips the request to its terminal
// status in one transaction. Resolving an already-resolved request returns
// ErrInvalidTransition; the unique index on validation_request_id backstops
// the race.
func (s *ValidationService) Resolve(ctx context.Context, input ResolveValidationInput) (*ent.ValidationResponse, error) {
	status, err := requestStatusFor(input.Verdict)
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	update := tx.ValidationRequest.Update().
		Where(
			validationrequest.IDEQ(input.RequestID),
			validationrequest.StatusEQ(validationrequest.StatusPending),
		).
		SetStatus(status).
		SetResolvedAt(time.Now())
	if input.Verdict == models.VerdictReject {
		update.AddRejectionCount(1)
		if input.Instructions != "" {
			update.SetModificationInstructions(input.Instructions)
		}
	}
	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve validation request: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}

	builder := tx.ValidationResponse.Create().
		SetValidationRequestID(input.RequestID).
		SetRawReply(input.RawReply).
		SetVerdict(validationresponse.Verdict(input.Verdict)).
		SetConfidence(input.Confidence).
		SetAnalysisMethod(validationresponse.AnalysisMethod(input.Method))
	if input.Instructions != "" {
		builder.SetModificationInstructions(input.Instructions)
	}
	if input.ReviewerID != "" {
		builder.SetReviewerID(input.ReviewerID)
	}
	if input.ReviewerEmail != "" {
		builder.SetReviewerEmail(input.ReviewerEmail)
	}
	if input.SystemNote != "" {
		builder.SetSystemNote(input.SystemNote)
	}
	resp, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation response: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit resolution: %w", err)
	}
	return resp, nil
}

// Expire marks a pending request expired when its window closes unanswered.
func (s *ValidationService) Expire(ctx context.Context, requestID int64) error {
	n, err := s.client.ValidationRequest.Update().
		Where(
			validationrequest.IDEQ(requestID),
			validationrequest.StatusEQ(validationrequest.StatusPending),
		).
		SetStatus(validationrequest.StatusExpired).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire validation request: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// ListPending returns all pending requests, oldest first. Used on startup to
// restart the pollers that died with the previous process.
func (s *ValidationService) ListPending(ctx context.Context) ([]*ent.ValidationRequest, error) {
	reqs, err := s.client.ValidationRequest.Query().
		Where(validationrequest.StatusEQ(validationrequest.StatusPending)).
		Order(ent.Asc(validationrequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending validations: %w", err)
	}
	return reqs, nil
}

// ListForRun returns the run's validation chain in creation order, with
// responses preloaded.
func (s *ValidationService) ListForRun(ctx context.Context, runID int64) ([]*ent.ValidationRequest, error) {
	reqs, err := s.client.ValidationRequest.Query().
		Where(validationrequest.RunIDEQ(runID)).
		WithResponse().
		Order(ent.Asc(validationrequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list validations for run: %w", err)
	}
	return reqs, nil
}

func requestStatusFor(v models.Verdict) (validationrequest.Status, error) {
	switch v {
	case models.VerdictApprove:
		return validationrequest.StatusApproved, nil
	case models.VerdictReject:
		return validationrequest.StatusRejected, nil
	case models.VerdictAbandon:
		return validationrequest.StatusAbandoned, nil
	default:
		return "", NewValidationError("verdict", fmt.Sprintf("'%s' does not resolve a request", v))
	}
}
