// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/predicate"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/ent/stageexecution"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentRunID sets the "parent_run_id" field.
func (_u *RunUpdate) SetParentRunID(v int64) *RunUpdate {
	_u.mutation.ResetParentRunID()
	_u.mutation.SetParentRunID(v)
	return _u
}

// SetNillableParentRunID sets the "parent_run_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableParentRunID(v *int64) *RunUpdate {
	if v != nil {
		_u.SetParentRunID(*v)
	}
	return _u
}

// AddParentRunID adds value to the "parent_run_id" field.
func (_u *RunUpdate) AddParentRunID(v int64) *RunUpdate {
	_u.mutation.AddParentRunID(v)
	return _u
}

// ClearParentRunID clears the value of the "parent_run_id" field.
func (_u *RunUpdate) ClearParentRunID() *RunUpdate {
	_u.mutation.ClearParentRunID()
	return _u
}

// SetIsReactivation sets the "is_reactivation" field.
func (_u *RunUpdate) SetIsReactivation(v bool) *RunUpdate {
	_u.mutation.SetIsReactivation(v)
	return _u
}

// SetNillableIsReactivation sets the "is_reactivation" field if the given value is not nil.
func (_u *RunUpdate) SetNillableIsReactivation(v *bool) *RunUpdate {
	if v != nil {
		_u.SetIsReactivation(*v)
	}
	return _u
}

// SetReactivationContext sets the "reactivation_context" field.
func (_u *RunUpdate) SetReactivationContext(v string) *RunUpdate {
	_u.mutation.SetReactivationContext(v)
	return _u
}

// SetNillableReactivationContext sets the "reactivation_context" field if the given value is not nil.
func (_u *RunUpdate) SetNillableReactivationContext(v *string) *RunUpdate {
	if v != nil {
		_u.SetReactivationContext(*v)
	}
	return _u
}

// ClearReactivationContext clears the value of the "reactivation_context" field.
func (_u *RunUpdate) ClearReactivationContext() *RunUpdate {
	_u.mutation.ClearReactivationContext()
	return _u
}

// SetNewRequirements sets the "new_requirements" field.
func (_u *RunUpdate) SetNewRequirements(v string) *RunUpdate {
	_u.mutation.SetNewRequirements(v)
	return _u
}

// SetNillableNewRequirements sets the "new_requirements" field if the given value is not nil.
func (_u *RunUpdate) SetNillableNewRequirements(v *string) *RunUpdate {
	if v != nil {
		_u.SetNewRequirements(*v)
	}
	return _u
}

// ClearNewRequirements clears the value of the "new_requirements" field.
func (_u *RunUpdate) ClearNewRequirements() *RunUpdate {
	_u.mutation.ClearNewRequirements()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastMergedPrURL sets the "last_merged_pr_url" field.
func (_u *RunUpdate) SetLastMergedPrURL(v string) *RunUpdate {
	_u.mutation.SetLastMergedPrURL(v)
	return _u
}

// SetNillableLastMergedPrURL sets the "last_merged_pr_url" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLastMergedPrURL(v *string) *RunUpdate {
	if v != nil {
		_u.SetLastMergedPrURL(*v)
	}
	return _u
}

// ClearLastMergedPrURL clears the value of the "last_merged_pr_url" field.
func (_u *RunUpdate) ClearLastMergedPrURL() *RunUpdate {
	_u.mutation.ClearLastMergedPrURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdate) SetErrorMessage(v string) *RunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorMessage(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdate) ClearErrorMessage() *RunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RunUpdate) SetPodID(v string) *RunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePodID(v *string) *RunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RunUpdate) ClearPodID() *RunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RunUpdate) SetLastHeartbeatAt(v time.Time) *RunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RunUpdate) ClearLastHeartbeatAt() *RunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *RunUpdate) AddStageExecutionIDs(ids ...int64) *RunUpdate {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *RunUpdate) AddStageExecutions(v ...*StageExecution) *RunUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// AddValidationRequestIDs adds the "validation_requests" edge to the ValidationRequest entity by IDs.
func (_u *RunUpdate) AddValidationRequestIDs(ids ...int64) *RunUpdate {
	_u.mutation.AddValidationRequestIDs(ids...)
	return _u
}

// AddValidationRequests adds the "validation_requests" edges to the ValidationRequest entity.
func (_u *RunUpdate) AddValidationRequests(v ...*ValidationRequest) *RunUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationRequestIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *RunUpdate) ClearStageExecutions() *RunUpdate {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *RunUpdate) RemoveStageExecutionIDs(ids ...int64) *RunUpdate {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *RunUpdate) RemoveStageExecutions(v ...*StageExecution) *RunUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// ClearValidationRequests clears all "validation_requests" edges to the ValidationRequest entity.
func (_u *RunUpdate) ClearValidationRequests() *RunUpdate {
	_u.mutation.ClearValidationRequests()
	return _u
}

// RemoveValidationRequestIDs removes the "validation_requests" edge to ValidationRequest entities by IDs.
func (_u *RunUpdate) RemoveValidationRequestIDs(ids ...int64) *RunUpdate {
	_u.mutation.RemoveValidationRequestIDs(ids...)
	return _u
}

// RemoveValidationRequests removes "validation_requests" edges to ValidationRequest entities.
func (_u *RunUpdate) RemoveValidationRequests(v ...*ValidationRequest) *RunUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationRequestIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.task"`)
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentRunID(); ok {
		_spec.SetField(run.FieldParentRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedParentRunID(); ok {
		_spec.AddField(run.FieldParentRunID, field.TypeInt64, value)
	}
	if _u.mutation.ParentRunIDCleared() {
		_spec.ClearField(run.FieldParentRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.IsReactivation(); ok {
		_spec.SetField(run.FieldIsReactivation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReactivationContext(); ok {
		_spec.SetField(run.FieldReactivationContext, field.TypeString, value)
	}
	if _u.mutation.ReactivationContextCleared() {
		_spec.ClearField(run.FieldReactivationContext, field.TypeString)
	}
	if value, ok := _u.mutation.NewRequirements(); ok {
		_spec.SetField(run.FieldNewRequirements, field.TypeString, value)
	}
	if _u.mutation.NewRequirementsCleared() {
		_spec.ClearField(run.FieldNewRequirements, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastMergedPrURL(); ok {
		_spec.SetField(run.FieldLastMergedPrURL, field.TypeString, value)
	}
	if _u.mutation.LastMergedPrURLCleared() {
		_spec.ClearField(run.FieldLastMergedPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(run.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(run.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StageExecutionsTable,
			Columns: []string{run.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StageExecutionsTable,
			Columns: []string{run.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StageExecutionsTable,
			Columns: []string{run.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValidationRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ValidationRequestsTable,
			Columns: []string{run.ValidationRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationRequestsIDs(); len(nodes) > 0 && !_u.mutation.ValidationRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ValidationRequestsTable,
			Columns: []string{run.ValidationRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ValidationRequestsTable,
			Columns: []string{run.ValidationRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetParentRunID sets the "parent_run_id" field.
func (_u *RunUpdateOne) SetParentRunID(v int64) *RunUpdateOne {
	_u.mutation.ResetParentRunID()
	_u.mutation.SetParentRunID(v)
	return _u
}

// SetNillableParentRunID sets the "parent_run_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableParentRunID(v *int64) *RunUpdateOne {
	if v != nil {
		_u.SetParentRunID(*v)
	}
	return _u
}

// AddParentRunID adds value to the "parent_run_id" field.
func (_u *RunUpdateOne) AddParentRunID(v int64) *RunUpdateOne {
	_u.mutation.AddParentRunID(v)
	return _u
}

// ClearParentRunID clears the value of the "parent_run_id" field.
func (_u *RunUpdateOne) ClearParentRunID() *RunUpdateOne {
	_u.mutation.ClearParentRunID()
	return _u
}

// SetIsReactivation sets the "is_reactivation" field.
func (_u *RunUpdateOne) SetIsReactivation(v bool) *RunUpdateOne {
	_u.mutation.SetIsReactivation(v)
	return _u
}

// SetNillableIsReactivation sets the "is_reactivation" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableIsReactivation(v *bool) *RunUpdateOne {
	if v != nil {
		_u.SetIsReactivation(*v)
	}
	return _u
}

// SetReactivationContext sets the "reactivation_context" field.
func (_u *RunUpdateOne) SetReactivationContext(v string) *RunUpdateOne {
	_u.mutation.SetReactivationContext(v)
	return _u
}

// SetNillableReactivationContext sets the "reactivation_context" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableReactivationContext(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetReactivationContext(*v)
	}
	return _u
}

// ClearReactivationContext clears the value of the "reactivation_context" field.
func (_u *RunUpdateOne) ClearReactivationContext() *RunUpdateOne {
	_u.mutation.ClearReactivationContext()
	return _u
}

// SetNewRequirements sets the "new_requirements" field.
func (_u *RunUpdateOne) SetNewRequirements(v string) *RunUpdateOne {
	_u.mutation.SetNewRequirements(v)
	return _u
}

// SetNillableNewRequirements sets the "new_requirements" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableNewRequirements(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetNewRequirements(*v)
	}
	return _u
}

// ClearNewRequirements clears the value of the "new_requirements" field.
func (_u *RunUpdateOne) ClearNewRequirements() *RunUpdateOne {
	_u.mutation.ClearNewRequirements()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastMergedPrURL sets the "last_merged_pr_url" field.
func (_u *RunUpdateOne) SetLastMergedPrURL(v string) *RunUpdateOne {
	_u.mutation.SetLastMergedPrURL(v)
	return _u
}

// SetNillableLastMergedPrURL sets the "last_merged_pr_url" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLastMergedPrURL(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetLastMergedPrURL(*v)
	}
	return _u
}

// ClearLastMergedPrURL clears the value of the "last_merged_pr_url" field.
func (_u *RunUpdateOne) ClearLastMergedPrURL() *RunUpdateOne {
	_u.mutation.ClearLastMergedPrURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdateOne) SetErrorMessage(v string) *RunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorMessage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdateOne) ClearErrorMessage() *RunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RunUpdateOne) SetPodID(v string) *RunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePodID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RunUpdateOne) ClearPodID() *RunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RunUpdateOne) SetLastHeartbeatAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RunUpdateOne) ClearLastHeartbeatAt() *RunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *RunUpdateOne) AddStageExecutionIDs(ids ...int64) *RunUpdateOne {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *RunUpdateOne) AddStageExecutions(v ...*StageExecution) *RunUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// AddValidationRequestIDs adds the "validation_requests" edge to the ValidationRequest entity by IDs.
func (_u *RunUpdateOne) AddValidationRequestIDs(ids ...int64) *RunUpdateOne {
	_u.mutation.AddValidationRequestIDs(ids...)
	return _u
}

// AddValidationRequests adds the "validation_requests" edges to the ValidationRequest entity.
func (_u *RunUpdateOne) AddValidationRequests(v ...*ValidationRequest) *RunUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationRequestIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *RunUpdateOne) ClearStageExecutions() *RunUpdateOne {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *RunUpdateOne) RemoveStageExecutionIDs(ids ...int64) *RunUpdateOne {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *RunUpdateOne) RemoveStageExecutions(v ...*StageExecution) *RunUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// ClearValidationRequests clears all "validation_requests" edges to the ValidationRequest entity.
func (_u *RunUpdateOne) ClearValidationRequests() *RunUpdateOne {
	_u.mutation.ClearValidationRequests()
	return _u
}

// RemoveValidationRequestIDs removes the "validation_requests" edge to ValidationRequest entities by IDs.
func (_u *RunUpdateOne) RemoveValidationRequestIDs(ids ...int64) *RunUpdateOne {
	_u.mutation.RemoveValidationRequestIDs(ids...)
	return _u
}

// RemoveValidationRequests removes "validation_requests" edges to ValidationRequest entities.
func (_u *RunUpdateOne) RemoveValidationRequests(v ...*ValidationRequest) *RunUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationRequestIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.task"`)
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentRunID(); ok {
		_spec.SetField(run.FieldParentRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedParentRunID(); ok {
		_spec.AddField(run.FieldParentRunID, field.TypeInt64, value)
	}
	if _u.mutation.ParentRunIDCleared() {
		_spec.ClearField(run.FieldParentRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.IsReactivation(); ok {
		_spec.SetField(run.FieldIsReactivation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReactivationContext(); ok {
		_spec.SetField(run.FieldReactivationContext, field.TypeString, value)
	}
	if _u.mutation.ReactivationContextCleared() {
		_spec.ClearField(run.FieldReactivationContext, field.TypeString)
	}
	if value, ok := _u.mutation.NewRequirements(); ok {
		_spec.SetField(run.FieldNewRequirements, field.TypeString, value)
	}
	if _u.mutation.NewRequirementsCleared() {
		_spec.ClearField(run.FieldNewRequirements, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastMergedPrURL(); ok {
		_spec.SetField(run.FieldLastMergedPrURL, field.TypeString, value)
	}
	if _u.mutation.LastMergedPrURLCleared() {
		_spec.ClearField(run.FieldLastMergedPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(run.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(run.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StageExecutionsTable,
			Columns: []string{run.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StageExecutionsTable,
			Columns: []string{run.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StageExecutionsTable,
			Columns: []string{run.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValidationRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ValidationRequestsTable,
			Columns: []string{run.ValidationRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationRequestsIDs(); len(nodes) > 0 && !_u.mutation.ValidationRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ValidationRequestsTable,
			Columns: []string{run.ValidationRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ValidationRequestsTable,
			Columns: []string{run.ValidationRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
