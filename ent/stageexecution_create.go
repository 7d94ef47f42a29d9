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
	"github.com/forgeflow/forgeflow/ent/stageexecution"
)

// StageExecutionCreate is the builder for creating a StageExecution entity.
type StageExecutionCreate struct {
	config
	mutation *StageExecutionMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *StageExecutionCreate) SetRunID(v int64) *StageExecutionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *StageExecutionCreate) SetStageName(v string) *StageExecutionCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetOrdinal sets the "ordinal" field.
func (_c *StageExecutionCreate) SetOrdinal(v int) *StageExecutionCreate {
	_c.mutation.SetOrdinal(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *StageExecutionCreate) SetAttempt(v int) *StageExecutionCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableAttempt(v *int) *StageExecutionCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *StageExecutionCreate) SetInput(v map[string]interface{}) *StageExecutionCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *StageExecutionCreate) SetOutput(v map[string]interface{}) *StageExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StageExecutionCreate) SetStatus(v stageexecution.Status) *StageExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableStatus(v *stageexecution.Status) *StageExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StageExecutionCreate) SetStartedAt(v time.Time) *StageExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableStartedAt(v *time.Time) *StageExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StageExecutionCreate) SetCompletedAt(v time.Time) *StageExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableCompletedAt(v *time.Time) *StageExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StageExecutionCreate) SetErrorMessage(v string) *StageExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableErrorMessage(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageExecutionCreate) SetID(v int64) *StageExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *StageExecutionCreate) SetRun(v *Run) *StageExecutionCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the StageExecutionMutation object of the builder.
func (_c *StageExecutionCreate) Mutation() *StageExecutionMutation {
	return _c.mutation
}

// Save creates the StageExecution in the database.
func (_c *StageExecutionCreate) Save(ctx context.Context) (*StageExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageExecutionCreate) SaveX(ctx context.Context) *StageExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageExecutionCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := stageexecution.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := stageexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := stageexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageExecutionCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "StageExecution.run_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "StageExecution.stage_name"`)}
	}
	if _, ok := _c.mutation.Ordinal(); !ok {
		return &ValidationError{Name: "ordinal", err: errors.New(`ent: missing required field "StageExecution.ordinal"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "StageExecution.attempt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StageExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stageexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "StageExecution.started_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "StageExecution.run"`)}
	}
	return nil
}

func (_c *StageExecutionCreate) sqlSave(ctx context.Context) (*StageExecution, error) {
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

func (_c *StageExecutionCreate) createSpec() (*StageExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &StageExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageexecution.Table, sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(stageexecution.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.Ordinal(); ok {
		_spec.SetField(stageexecution.FieldOrdinal, field.TypeInt, value)
		_node.Ordinal = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(stageexecution.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(stageexecution.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(stageexecution.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stageexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stageexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stageexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stageexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stageexecution.RunTable,
			Columns: []string{stageexecution.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StageExecutionCreateBulk is the builder for creating many StageExecution entities in bulk.
type StageExecutionCreateBulk struct {
	config
	err      error
	builders []*StageExecutionCreate
}

// Save creates the StageExecution entities in the database.
func (_c *StageExecutionCreateBulk) Save(ctx context.Context) ([]*StageExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageExecutionMutation)
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
func (_c *StageExecutionCreateBulk) SaveX(ctx context.Context) []*StageExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
