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
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
)

// ValidationRequestCreate is the builder for creating a ValidationRequest entity.
type ValidationRequestCreate struct {
	config
	mutation *ValidationRequestMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ValidationRequestCreate) SetRunID(v int64) *ValidationRequestCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetParentValidationID sets the "parent_validation_id" field.
func (_c *ValidationRequestCreate) SetParentValidationID(v int64) *ValidationRequestCreate {
	_c.mutation.SetParentValidationID(v)
	return _c
}

// SetNillableParentValidationID sets the "parent_validation_id" field if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableParentValidationID(v *int64) *ValidationRequestCreate {
	if v != nil {
		_c.SetParentValidationID(*v)
	}
	return _c
}

// SetExternalCommentID sets the "external_comment_id" field.
func (_c *ValidationRequestCreate) SetExternalCommentID(v string) *ValidationRequestCreate {
	_c.mutation.SetExternalCommentID(v)
	return _c
}

// SetNillableExternalCommentID sets the "external_comment_id" field if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableExternalCommentID(v *string) *ValidationRequestCreate {
	if v != nil {
		_c.SetExternalCommentID(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *ValidationRequestCreate) SetBody(v string) *ValidationRequestCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetRequesterID sets the "requester_id" field.
func (_c *ValidationRequestCreate) SetRequesterID(v string) *ValidationRequestCreate {
	_c.mutation.SetRequesterID(v)
	return _c
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableRequesterID(v *string) *ValidationRequestCreate {
	if v != nil {
		_c.SetRequesterID(*v)
	}
	return _c
}

// SetRequesterEmail sets the "requester_email" field.
func (_c *ValidationRequestCreate) SetRequesterEmail(v string) *ValidationRequestCreate {
	_c.mutation.SetRequesterEmail(v)
	return _c
}

// SetNillableRequesterEmail sets the "requester_email" field if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableRequesterEmail(v *string) *ValidationRequestCreate {
	if v != nil {
		_c.SetRequesterEmail(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ValidationRequestCreate) SetStatus(v validationrequest.Status) *ValidationRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableStatus(v *validationrequest.Status) *ValidationRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRejectionCount sets the "rejection_count" field.
func (_c *ValidationRequestCreate) SetRejectionCount(v int) *ValidationRequestCreate {
	_c.mutation.SetRejectionCount(v)
	return _c
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableRejectionCount(v *int) *ValidationRequestCreate {
	if v != nil {
		_c.SetRejectionCount(*v)
	}
	return _c
}

// SetModificationInstructions sets the "modification_instructions" field.
func (_c *ValidationRequestCreate) SetModificationInstructions(v string) *ValidationRequestCreate {
	_c.mutation.SetModificationInstructions(v)
	return _c
}

// SetNillableModificationInstructions sets the "modification_instructions" field if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableModificationInstructions(v *string) *ValidationRequestCreate {
	if v != nil {
		_c.SetModificationInstructions(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ValidationRequestCreate) SetCreatedAt(v time.Time) *ValidationRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableCreatedAt(v *time.Time) *ValidationRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ValidationRequestCreate) SetResolvedAt(v time.Time) *ValidationRequestCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableResolvedAt(v *time.Time) *ValidationRequestCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *ValidationRequestCreate) SetTimeoutSeconds(v int) *ValidationRequestCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableTimeoutSeconds(v *int) *ValidationRequestCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationRequestCreate) SetID(v int64) *ValidationRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *ValidationRequestCreate) SetRun(v *Run) *ValidationRequestCreate {
	return _c.SetRunID(v.ID)
}

// SetResponseID sets the "response" edge to the ValidationResponse entity by ID.
func (_c *ValidationRequestCreate) SetResponseID(id int64) *ValidationRequestCreate {
	_c.mutation.SetResponseID(id)
	return _c
}

// SetNillableResponseID sets the "response" edge to the ValidationResponse entity by ID if the given value is not nil.
func (_c *ValidationRequestCreate) SetNillableResponseID(id *int64) *ValidationRequestCreate {
	if id != nil {
		_c = _c.SetResponseID(*id)
	}
	return _c
}

// SetResponse sets the "response" edge to the ValidationResponse entity.
func (_c *ValidationRequestCreate) SetResponse(v *ValidationResponse) *ValidationRequestCreate {
	return _c.SetResponseID(v.ID)
}

// Mutation returns the ValidationRequestMutation object of the builder.
func (_c *ValidationRequestCreate) Mutation() *ValidationRequestMutation {
	return _c.mutation
}

// Save creates the ValidationRequest in the database.
func (_c *ValidationRequestCreate) Save(ctx context.Context) (*ValidationRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationRequestCreate) SaveX(ctx context.Context) *ValidationRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationRequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := validationrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RejectionCount(); !ok {
		v := validationrequest.DefaultRejectionCount
		_c.mutation.SetRejectionCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := validationrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		v := validationrequest.DefaultTimeoutSeconds
		_c.mutation.SetTimeoutSeconds(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationRequestCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ValidationRequest.run_id"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "ValidationRequest.body"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ValidationRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := validationrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RejectionCount(); !ok {
		return &ValidationError{Name: "rejection_count", err: errors.New(`ent: missing required field "ValidationRequest.rejection_count"`)}
	}
	if v, ok := _c.mutation.RejectionCount(); ok {
		if err := validationrequest.RejectionCountValidator(v); err != nil {
			return &ValidationError{Name: "rejection_count", err: fmt.Errorf(`ent: validator failed for field "ValidationRequest.rejection_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ValidationRequest.created_at"`)}
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		return &ValidationError{Name: "timeout_seconds", err: errors.New(`ent: missing required field "ValidationRequest.timeout_seconds"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "ValidationRequest.run"`)}
	}
	return nil
}

func (_c *ValidationRequestCreate) sqlSave(ctx context.Context) (*ValidationRequest, error) {
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

func (_c *ValidationRequestCreate) createSpec() (*ValidationRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationrequest.Table, sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentValidationID(); ok {
		_spec.SetField(validationrequest.FieldParentValidationID, field.TypeInt64, value)
		_node.ParentValidationID = &value
	}
	if value, ok := _c.mutation.ExternalCommentID(); ok {
		_spec.SetField(validationrequest.FieldExternalCommentID, field.TypeString, value)
		_node.ExternalCommentID = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(validationrequest.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.RequesterID(); ok {
		_spec.SetField(validationrequest.FieldRequesterID, field.TypeString, value)
		_node.RequesterID = value
	}
	if value, ok := _c.mutation.RequesterEmail(); ok {
		_spec.SetField(validationrequest.FieldRequesterEmail, field.TypeString, value)
		_node.RequesterEmail = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(validationrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RejectionCount(); ok {
		_spec.SetField(validationrequest.FieldRejectionCount, field.TypeInt, value)
		_node.RejectionCount = value
	}
	if value, ok := _c.mutation.ModificationInstructions(); ok {
		_spec.SetField(validationrequest.FieldModificationInstructions, field.TypeString, value)
		_node.ModificationInstructions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(validationrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(validationrequest.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(validationrequest.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationrequest.RunTable,
			Columns: []string{validationrequest.RunColumn},
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
	if nodes := _c.mutation.ResponseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   validationrequest.ResponseTable,
			Columns: []string{validationrequest.ResponseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationresponse.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ValidationRequestCreateBulk is the builder for creating many ValidationRequest entities in bulk.
type ValidationRequestCreateBulk struct {
	config
	err      error
	builders []*ValidationRequestCreate
}

// Save creates the ValidationRequest entities in the database.
func (_c *ValidationRequestCreateBulk) Save(ctx context.Context) ([]*ValidationRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationRequestMutation)
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
func (_c *ValidationRequestCreateBulk) SaveX(ctx context.Context) []*ValidationRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
