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
	"github.com/forgeflow/forgeflow/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExternalItemID sets the "external_item_id" field.
func (_u *TaskUpdate) SetExternalItemID(v string) *TaskUpdate {
	_u.mutation.SetExternalItemID(v)
	return _u
}

// SetNillableExternalItemID sets the "external_item_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableExternalItemID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetExternalItemID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v task.Priority) *TaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *task.Priority) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetRepositoryURL sets the "repository_url" field.
func (_u *TaskUpdate) SetRepositoryURL(v string) *TaskUpdate {
	_u.mutation.SetRepositoryURL(v)
	return _u
}

// SetNillableRepositoryURL sets the "repository_url" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRepositoryURL(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRepositoryURL(*v)
	}
	return _u
}

// ClearRepositoryURL clears the value of the "repository_url" field.
func (_u *TaskUpdate) ClearRepositoryURL() *TaskUpdate {
	_u.mutation.ClearRepositoryURL()
	return _u
}

// SetUserLanguage sets the "user_language" field.
func (_u *TaskUpdate) SetUserLanguage(v string) *TaskUpdate {
	_u.mutation.SetUserLanguage(v)
	return _u
}

// SetNillableUserLanguage sets the "user_language" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableUserLanguage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetUserLanguage(*v)
	}
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *TaskUpdate) SetCreatorID(v string) *TaskUpdate {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCreatorID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// ClearCreatorID clears the value of the "creator_id" field.
func (_u *TaskUpdate) ClearCreatorID() *TaskUpdate {
	_u.mutation.ClearCreatorID()
	return _u
}

// SetCreatorEmail sets the "creator_email" field.
func (_u *TaskUpdate) SetCreatorEmail(v string) *TaskUpdate {
	_u.mutation.SetCreatorEmail(v)
	return _u
}

// SetNillableCreatorEmail sets the "creator_email" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCreatorEmail(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCreatorEmail(*v)
	}
	return _u
}

// ClearCreatorEmail clears the value of the "creator_email" field.
func (_u *TaskUpdate) ClearCreatorEmail() *TaskUpdate {
	_u.mutation.ClearCreatorEmail()
	return _u
}

// SetInternalStatus sets the "internal_status" field.
func (_u *TaskUpdate) SetInternalStatus(v task.InternalStatus) *TaskUpdate {
	_u.mutation.SetInternalStatus(v)
	return _u
}

// SetNillableInternalStatus sets the "internal_status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableInternalStatus(v *task.InternalStatus) *TaskUpdate {
	if v != nil {
		_u.SetInternalStatus(*v)
	}
	return _u
}

// SetReactivationCount sets the "reactivation_count" field.
func (_u *TaskUpdate) SetReactivationCount(v int) *TaskUpdate {
	_u.mutation.ResetReactivationCount()
	_u.mutation.SetReactivationCount(v)
	return _u
}

// SetNillableReactivationCount sets the "reactivation_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableReactivationCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetReactivationCount(*v)
	}
	return _u
}

// AddReactivationCount adds value to the "reactivation_count" field.
func (_u *TaskUpdate) AddReactivationCount(v int) *TaskUpdate {
	_u.mutation.AddReactivationCount(v)
	return _u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_u *TaskUpdate) SetCooldownUntil(v time.Time) *TaskUpdate {
	_u.mutation.SetCooldownUntil(v)
	return _u
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCooldownUntil(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCooldownUntil(*v)
	}
	return _u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (_u *TaskUpdate) ClearCooldownUntil() *TaskUpdate {
	_u.mutation.ClearCooldownUntil()
	return _u
}

// SetIsLocked sets the "is_locked" field.
func (_u *TaskUpdate) SetIsLocked(v bool) *TaskUpdate {
	_u.mutation.SetIsLocked(v)
	return _u
}

// SetNillableIsLocked sets the "is_locked" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIsLocked(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetIsLocked(*v)
	}
	return _u
}

// SetLastRunID sets the "last_run_id" field.
func (_u *TaskUpdate) SetLastRunID(v int64) *TaskUpdate {
	_u.mutation.ResetLastRunID()
	_u.mutation.SetLastRunID(v)
	return _u
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastRunID(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetLastRunID(*v)
	}
	return _u
}

// AddLastRunID adds value to the "last_run_id" field.
func (_u *TaskUpdate) AddLastRunID(v int64) *TaskUpdate {
	_u.mutation.AddLastRunID(v)
	return _u
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (_u *TaskUpdate) ClearLastRunID() *TaskUpdate {
	_u.mutation.ClearLastRunID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *TaskUpdate) AddRunIDs(ids ...int64) *TaskUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *TaskUpdate) AddRuns(v ...*Run) *TaskUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *TaskUpdate) ClearRuns() *TaskUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *TaskUpdate) RemoveRunIDs(ids ...int64) *TaskUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *TaskUpdate) RemoveRuns(v ...*Run) *TaskUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InternalStatus(); ok {
		if err := task.InternalStatusValidator(v); err != nil {
			return &ValidationError{Name: "internal_status", err: fmt.Errorf(`ent: validator failed for field "Task.internal_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReactivationCount(); ok {
		if err := task.ReactivationCountValidator(v); err != nil {
			return &ValidationError{Name: "reactivation_count", err: fmt.Errorf(`ent: validator failed for field "Task.reactivation_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalItemID(); ok {
		_spec.SetField(task.FieldExternalItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RepositoryURL(); ok {
		_spec.SetField(task.FieldRepositoryURL, field.TypeString, value)
	}
	if _u.mutation.RepositoryURLCleared() {
		_spec.ClearField(task.FieldRepositoryURL, field.TypeString)
	}
	if value, ok := _u.mutation.UserLanguage(); ok {
		_spec.SetField(task.FieldUserLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatorID(); ok {
		_spec.SetField(task.FieldCreatorID, field.TypeString, value)
	}
	if _u.mutation.CreatorIDCleared() {
		_spec.ClearField(task.FieldCreatorID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatorEmail(); ok {
		_spec.SetField(task.FieldCreatorEmail, field.TypeString, value)
	}
	if _u.mutation.CreatorEmailCleared() {
		_spec.ClearField(task.FieldCreatorEmail, field.TypeString)
	}
	if value, ok := _u.mutation.InternalStatus(); ok {
		_spec.SetField(task.FieldInternalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReactivationCount(); ok {
		_spec.SetField(task.FieldReactivationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReactivationCount(); ok {
		_spec.AddField(task.FieldReactivationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CooldownUntil(); ok {
		_spec.SetField(task.FieldCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(task.FieldCooldownUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsLocked(); ok {
		_spec.SetField(task.FieldIsLocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunID(); ok {
		_spec.SetField(task.FieldLastRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastRunID(); ok {
		_spec.AddField(task.FieldLastRunID, field.TypeInt64, value)
	}
	if _u.mutation.LastRunIDCleared() {
		_spec.ClearField(task.FieldLastRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RunsTable,
			Columns: []string{task.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RunsTable,
			Columns: []string{task.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RunsTable,
			Columns: []string{task.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetExternalItemID sets the "external_item_id" field.
func (_u *TaskUpdateOne) SetExternalItemID(v string) *TaskUpdateOne {
	_u.mutation.SetExternalItemID(v)
	return _u
}

// SetNillableExternalItemID sets the "external_item_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableExternalItemID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetExternalItemID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v task.Priority) *TaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *task.Priority) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetRepositoryURL sets the "repository_url" field.
func (_u *TaskUpdateOne) SetRepositoryURL(v string) *TaskUpdateOne {
	_u.mutation.SetRepositoryURL(v)
	return _u
}

// SetNillableRepositoryURL sets the "repository_url" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRepositoryURL(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRepositoryURL(*v)
	}
	return _u
}

// ClearRepositoryURL clears the value of the "repository_url" field.
func (_u *TaskUpdateOne) ClearRepositoryURL() *TaskUpdateOne {
	_u.mutation.ClearRepositoryURL()
	return _u
}

// SetUserLanguage sets the "user_language" field.
func (_u *TaskUpdateOne) SetUserLanguage(v string) *TaskUpdateOne {
	_u.mutation.SetUserLanguage(v)
	return _u
}

// SetNillableUserLanguage sets the "user_language" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableUserLanguage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetUserLanguage(*v)
	}
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *TaskUpdateOne) SetCreatorID(v string) *TaskUpdateOne {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCreatorID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// ClearCreatorID clears the value of the "creator_id" field.
func (_u *TaskUpdateOne) ClearCreatorID() *TaskUpdateOne {
	_u.mutation.ClearCreatorID()
	return _u
}

// SetCreatorEmail sets the "creator_email" field.
func (_u *TaskUpdateOne) SetCreatorEmail(v string) *TaskUpdateOne {
	_u.mutation.SetCreatorEmail(v)
	return _u
}

// SetNillableCreatorEmail sets the "creator_email" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCreatorEmail(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCreatorEmail(*v)
	}
	return _u
}

// ClearCreatorEmail clears the value of the "creator_email" field.
func (_u *TaskUpdateOne) ClearCreatorEmail() *TaskUpdateOne {
	_u.mutation.ClearCreatorEmail()
	return _u
}

// SetInternalStatus sets the "internal_status" field.
func (_u *TaskUpdateOne) SetInternalStatus(v task.InternalStatus) *TaskUpdateOne {
	_u.mutation.SetInternalStatus(v)
	return _u
}

// SetNillableInternalStatus sets the "internal_status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableInternalStatus(v *task.InternalStatus) *TaskUpdateOne {
	if v != nil {
		_u.SetInternalStatus(*v)
	}
	return _u
}

// SetReactivationCount sets the "reactivation_count" field.
func (_u *TaskUpdateOne) SetReactivationCount(v int) *TaskUpdateOne {
	_u.mutation.ResetReactivationCount()
	_u.mutation.SetReactivationCount(v)
	return _u
}

// SetNillableReactivationCount sets the "reactivation_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableReactivationCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetReactivationCount(*v)
	}
	return _u
}

// AddReactivationCount adds value to the "reactivation_count" field.
func (_u *TaskUpdateOne) AddReactivationCount(v int) *TaskUpdateOne {
	_u.mutation.AddReactivationCount(v)
	return _u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_u *TaskUpdateOne) SetCooldownUntil(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCooldownUntil(v)
	return _u
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCooldownUntil(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCooldownUntil(*v)
	}
	return _u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (_u *TaskUpdateOne) ClearCooldownUntil() *TaskUpdateOne {
	_u.mutation.ClearCooldownUntil()
	return _u
}

// SetIsLocked sets the "is_locked" field.
func (_u *TaskUpdateOne) SetIsLocked(v bool) *TaskUpdateOne {
	_u.mutation.SetIsLocked(v)
	return _u
}

// SetNillableIsLocked sets the "is_locked" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIsLocked(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetIsLocked(*v)
	}
	return _u
}

// SetLastRunID sets the "last_run_id" field.
func (_u *TaskUpdateOne) SetLastRunID(v int64) *TaskUpdateOne {
	_u.mutation.ResetLastRunID()
	_u.mutation.SetLastRunID(v)
	return _u
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastRunID(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetLastRunID(*v)
	}
	return _u
}

// AddLastRunID adds value to the "last_run_id" field.
func (_u *TaskUpdateOne) AddLastRunID(v int64) *TaskUpdateOne {
	_u.mutation.AddLastRunID(v)
	return _u
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (_u *TaskUpdateOne) ClearLastRunID() *TaskUpdateOne {
	_u.mutation.ClearLastRunID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *TaskUpdateOne) AddRunIDs(ids ...int64) *TaskUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *TaskUpdateOne) AddRuns(v ...*Run) *TaskUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *TaskUpdateOne) ClearRuns() *TaskUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *TaskUpdateOne) RemoveRunIDs(ids ...int64) *TaskUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *TaskUpdateOne) RemoveRuns(v ...*Run) *TaskUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InternalStatus(); ok {
		if err := task.InternalStatusValidator(v); err != nil {
			return &ValidationError{Name: "internal_status", err: fmt.Errorf(`ent: validator failed for field "Task.internal_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReactivationCount(); ok {
		if err := task.ReactivationCountValidator(v); err != nil {
			return &ValidationError{Name: "reactivation_count", err: fmt.Errorf(`ent: validator failed for field "Task.reactivation_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.ExternalItemID(); ok {
		_spec.SetField(task.FieldExternalItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RepositoryURL(); ok {
		_spec.SetField(task.FieldRepositoryURL, field.TypeString, value)
	}
	if _u.mutation.RepositoryURLCleared() {
		_spec.ClearField(task.FieldRepositoryURL, field.TypeString)
	}
	if value, ok := _u.mutation.UserLanguage(); ok {
		_spec.SetField(task.FieldUserLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatorID(); ok {
		_spec.SetField(task.FieldCreatorID, field.TypeString, value)
	}
	if _u.mutation.CreatorIDCleared() {
		_spec.ClearField(task.FieldCreatorID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatorEmail(); ok {
		_spec.SetField(task.FieldCreatorEmail, field.TypeString, value)
	}
	if _u.mutation.CreatorEmailCleared() {
		_spec.ClearField(task.FieldCreatorEmail, field.TypeString)
	}
	if value, ok := _u.mutation.InternalStatus(); ok {
		_spec.SetField(task.FieldInternalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReactivationCount(); ok {
		_spec.SetField(task.FieldReactivationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReactivationCount(); ok {
		_spec.AddField(task.FieldReactivationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CooldownUntil(); ok {
		_spec.SetField(task.FieldCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(task.FieldCooldownUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsLocked(); ok {
		_spec.SetField(task.FieldIsLocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunID(); ok {
		_spec.SetField(task.FieldLastRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastRunID(); ok {
		_spec.AddField(task.FieldLastRunID, field.TypeInt64, value)
	}
	if _u.mutation.LastRunIDCleared() {
		_spec.ClearField(task.FieldLastRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RunsTable,
			Columns: []string{task.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RunsTable,
			Columns: []string{task.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RunsTable,
			Columns: []string{task.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
