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
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *RunCreate) SetTaskID(v int64) *RunCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetParentRunID sets the "parent_run_id" field.
func (_c *RunCreate) SetParentRunID(v int64) *RunCreate {
	_c.mutation.SetParentRunID(v)
	return _c
}

// SetNillableParentRunID sets the "parent_run_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableParentRunID(v *int64) *RunCreate {
	if v != nil {
		_c.SetParentRunID(*v)
	}
	return _c
}

// SetIsReactivation sets the "is_reactivation" field.
func (_c *RunCreate) SetIsReactivation(v bool) *RunCreate {
	_c.mutation.SetIsReactivation(v)
	return _c
}

// SetNillableIsReactivation sets the "is_reactivation" field if the given value is not nil.
func (_c *RunCreate) SetNillableIsReactivation(v *bool) *RunCreate {
	if v != nil {
		_c.SetIsReactivation(*v)
	}
	return _c
}

// SetReactivationContext sets the "reactivation_context" field.
func (_c *RunCreate) SetReactivationContext(v string) *RunCreate {
	_c.mutation.SetReactivationContext(v)
	return _c
}

// SetNillableReactivationContext sets the "reactivation_context" field if the given value is not nil.
func (_c *RunCreate) SetNillableReactivationContext(v *string) *RunCreate {
	if v != nil {
		_c.SetReactivationContext(*v)
	}
	return _c
}

// SetNewRequirements sets the "new_requirements" field.
func (_c *RunCreate) SetNewRequirements(v string) *RunCreate {
	_c.mutation.SetNewRequirements(v)
	return _c
}

// SetNillableNewRequirements sets the "new_requirements" field if the given value is not nil.
func (_c *RunCreate) SetNillableNewRequirements(v *string) *RunCreate {
	if v != nil {
		_c.SetNewRequirements(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastMergedPrURL sets the "last_merged_pr_url" field.
func (_c *RunCreate) SetLastMergedPrURL(v string) *RunCreate {
	_c.mutation.SetLastMergedPrURL(v)
	return _c
}

// SetNillableLastMergedPrURL sets the "last_merged_pr_url" field if the given value is not nil.
func (_c *RunCreate) SetNillableLastMergedPrURL(v *string) *RunCreate {
	if v != nil {
		_c.SetLastMergedPrURL(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunCreate) SetErrorMessage(v string) *RunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorMessage(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *RunCreate) SetPodID(v string) *RunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *RunCreate) SetNillablePodID(v *string) *RunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *RunCreate) SetLastHeartbeatAt(v time.Time) *RunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableLastHeartbeatAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v int64) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *RunCreate) SetTask(v *Task) *RunCreate {
	return _c.SetTaskID(v.ID)
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_c *RunCreate) AddStageExecutionIDs(ids ...int64) *RunCreate {
	_c.mutation.AddStageExecutionIDs(ids...)
	return _c
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_c *RunCreate) AddStageExecutions(v ...*StageExecution) *RunCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageExecutionIDs(ids...)
}

// AddValidationRequestIDs adds the "validation_requests" edge to the ValidationRequest entity by IDs.
func (_c *RunCreate) AddValidationRequestIDs(ids ...int64) *RunCreate {
	_c.mutation.AddValidationRequestIDs(ids...)
	return _c
}

// AddValidationRequests adds the "validation_requests" edges to the ValidationRequest entity.
func (_c *RunCreate) AddValidationRequests(v ...*ValidationRequest) *RunCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValidationRequestIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.IsReactivation(); !ok {
		v := run.DefaultIsReactivation
		_c.mutation.SetIsReactivation(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Run.task_id"`)}
	}
	if _, ok := _c.mutation.IsReactivation(); !ok {
		return &ValidationError{Name: "is_reactivation", err: errors.New(`ent: missing required field "Run.is_reactivation"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Run.task"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentRunID(); ok {
		_spec.SetField(run.FieldParentRunID, field.TypeInt64, value)
		_node.ParentRunID = &value
	}
	if value, ok := _c.mutation.IsReactivation(); ok {
		_spec.SetField(run.FieldIsReactivation, field.TypeBool, value)
		_node.IsReactivation = value
	}
	if value, ok := _c.mutation.ReactivationContext(); ok {
		_spec.SetField(run.FieldReactivationContext, field.TypeString, value)
		_node.ReactivationContext = value
	}
	if value, ok := _c.mutation.NewRequirements(); ok {
		_spec.SetField(run.FieldNewRequirements, field.TypeString, value)
		_node.NewRequirements = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastMergedPrURL(); ok {
		_spec.SetField(run.FieldLastMergedPrURL, field.TypeString, value)
		_node.LastMergedPrURL = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   run.TaskTable,
			Columns: []string{run.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ValidationRequestsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
