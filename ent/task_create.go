// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetExternalItemID sets the "external_item_id" field.
func (_c *TaskCreate) SetExternalItemID(v string) *TaskCreate {
	_c.mutation.SetExternalItemID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskCreate) SetPriority(v task.Priority) *TaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriority(v *task.Priority) *TaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetRepositoryURL sets the "repository_url" field.
func (_c *TaskCreate) SetRepositoryURL(v string) *TaskCreate {
	_c.mutation.SetRepositoryURL(v)
	return _c
}

// SetNillableRepositoryURL sets the "repository_url" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRepositoryURL(v *string) *TaskCreate {
	if v != nil {
		_c.SetRepositoryURL(*v)
	}
	return _c
}

// SetUserLanguage sets the "user_language" field.
func (_c *TaskCreate) SetUserLanguage(v string) *TaskCreate {
	_c.mutation.SetUserLanguage(v)
	return _c
}

// SetNillableUserLanguage sets the "user_language" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUserLanguage(v *string) *TaskCreate {
	if v != nil {
		_c.SetUserLanguage(*v)
	}
	return _c
}

// SetCreatorID sets the "creator_id" field.
func (_c *TaskCreate) SetCreatorID(v string) *TaskCreate {
	_c.mutation.SetCreatorID(v)
	return _c
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatorID(v *string) *TaskCreate {
	if v != nil {
		_c.SetCreatorID(*v)
	}
	return _c
}

// SetCreatorEmail sets the "creator_email" field.
func (_c *TaskCreate) SetCreatorEmail(v string) *TaskCreate {
	_c.mutation.SetCreatorEmail(v)
	return _c
}

// SetNillableCreatorEmail sets the "creator_email" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatorEmail(v *string) *TaskCreate {
	if v != nil {
		_c.SetCreatorEmail(*v)
	}
	return _c
}

// SetInternalStatus sets the "internal_status" field.
func (_c *TaskCreate) SetInternalStatus(v task.InternalStatus) *TaskCreate {
	_c.mutation.SetInternalStatus(v)
	return _c
}

// SetNillableInternalStatus sets the "internal_status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableInternalStatus(v *task.InternalStatus) *TaskCreate {
	if v != nil {
		_c.SetInternalStatus(*v)
	}
	return _c
}

// SetReactivationCount sets the "reactivation_count" field.
func (_c *TaskCreate) SetReactivationCount(v int) *TaskCreate {
	_c.mutation.SetReactivationCount(v)
	return _c
}

// SetNillableReactivationCount sets the "reactivation_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableReactivationCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetReactivationCount(*v)
	}
	return _c
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_c *TaskCreate) SetCooldownUntil(v time.Time) *TaskCreate {
	_c.mutation.SetCooldownUntil(v)
	return _c
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCooldownUntil(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCooldownUntil(*v)
	}
	return _c
}

// SetIsLocked sets the "is_locked" field.
func (_c *TaskCreate) SetIsLocked(v bool) *TaskCreate {
	_c.mutation.SetIsLocked(v)
	return _c
}

// SetNillableIsLocked sets the "is_locked" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIsLocked(v *bool) *TaskCreate {
	if v != nil {
		_c.SetIsLocked(*v)
	}
	return _c
}

// SetLastRunID sets the "last_run_id" field.
func (_c *TaskCreate) SetLastRunID(v int64) *TaskCreate {
	_c.mutation.SetLastRunID(v)
	return _c
}

// SetNillableLastRunID sets the "last_run_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastRunID(v *int64) *TaskCreate {
	if v != nil {
		_c.SetLastRunID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v int64) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_c *TaskCreate) AddRunIDs(ids ...int64) *TaskCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the Run entity.
func (_c *TaskCreate) AddRuns(v ...*Run) *TaskCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := task.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.UserLanguage(); !ok {
		v := task.DefaultUserLanguage
		_c.mutation.SetUserLanguage(v)
	}
	if _, ok := _c.mutation.InternalStatus(); !ok {
		v := task.DefaultInternalStatus
		_c.mutation.SetInternalStatus(v)
	}
	if _, ok := _c.mutation.ReactivationCount(); !ok {
		v := task.DefaultReactivationCount
		_c.mutation.SetReactivationCount(v)
	}
	if _, ok := _c.mutation.IsLocked(); !ok {
		v := task.DefaultIsLocked
		_c.mutation.SetIsLocked(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.ExternalItemID(); !ok {
		return &ValidationError{Name: "external_item_id", err: errors.New(`ent: missing required field "Task.external_item_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserLanguage(); !ok {
		return &ValidationError{Name: "user_language", err: errors.New(`ent: missing required field "Task.user_language"`)}
	}
	if _, ok := _c.mutation.InternalStatus(); !ok {
		return &ValidationError{Name: "internal_status", err: errors.New(`ent: missing required field "Task.internal_status"`)}
	}
	if v, ok := _c.mutation.InternalStatus(); ok {
		if err := task.InternalStatusValidator(v); err != nil {
			return &ValidationError{Name: "internal_status", err: fmt.Errorf(`ent: validator failed for field "Task.internal_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReactivationCount(); !ok {
		return &ValidationError{Name: "reactivation_count", err: errors.New(`ent: missing required field "Task.reactivation_count"`)}
	}
	if v, ok := _c.mutation.ReactivationCount(); ok {
		if err := task.ReactivationCountValidator(v); err != nil {
			return &ValidationError{Name: "reactivation_count", err: fmt.Errorf(`ent: validator failed for field "Task.reactivation_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsLocked(); !ok {
		return &ValidationError{Name: "is_locked", err: errors.New(`ent: missing required field "Task.is_locked"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalItemID(); ok {
		_spec.SetField(task.FieldExternalItemID, field.TypeString, value)
		_node.ExternalItemID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.RepositoryURL(); ok {
		_spec.SetField(task.FieldRepositoryURL, field.TypeString, value)
		_node.RepositoryURL = value
	}
	if value, ok := _c.mutation.UserLanguage(); ok {
		_spec.SetField(task.FieldUserLanguage, field.TypeString, value)
		_node.UserLanguage = value
	}
	if value, ok := _c.mutation.CreatorID(); ok {
		_spec.SetField(task.FieldCreatorID, field.TypeString, value)
		_node.CreatorID = value
	}
	if value, ok := _c.mutation.CreatorEmail(); ok {
		_spec.SetField(task.FieldCreatorEmail, field.TypeString, value)
		_node.CreatorEmail = value
	}
	if value, ok := _c.mutation.InternalStatus(); ok {
		_spec.SetField(task.FieldInternalStatus, field.TypeEnum, value)
		_node.InternalStatus = value
	}
	if value, ok := _c.mutation.ReactivationCount(); ok {
		_spec.SetField(task.FieldReactivationCount, field.TypeInt, value)
		_node.ReactivationCount = value
	}
	if value, ok := _c.mutation.CooldownUntil(); ok {
		_spec.SetField(task.FieldCooldownUntil, field.TypeTime, value)
		_node.CooldownUntil = &value
	}
	if value, ok := _c.mutation.IsLocked(); ok {
		_spec.SetField(task.FieldIsLocked, field.TypeBool, value)
		_node.IsLocked = value
	}
	if value, ok := _c.mutation.LastRunID(); ok {
		_spec.SetField(task.FieldLastRunID, field.TypeInt64, value)
		_node.LastRunID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
