// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
)

// ValidationResponseCreate is the builder for creating a ValidationResponse entity.
type ValidationResponseCreate struct {
	config
	mutation *ValidationResponseMutation
	hooks    []Hook
}

// SetValidationRequestID sets the "validation_request_id" field.
func (_c *ValidationResponseCreate) SetValidationRequestID(v int64) *ValidationResponseCreate {
	_c.mutation.SetValidationRequestID(v)
	return _c
}

// SetRawReply sets the "raw_reply" field.
func (_c *ValidationResponseCreate) SetRawReply(v string) *ValidationResponseCreate {
	_c.mutation.SetRawReply(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *ValidationResponseCreate) SetVerdict(v validationresponse.Verdict) *ValidationResponseCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ValidationResponseCreate) SetConfidence(v float64) *ValidationResponseCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetAnalysisMethod sets the "analysis_method" field.
func (_c *ValidationResponseCreate) SetAnalysisMethod(v validationresponse.AnalysisMethod) *ValidationResponseCreate {
	_c.mutation.SetAnalysisMethod(v)
	return _c
}

// SetNillableAnalysisMethod sets the "analysis_method" field if the given value is not nil.
func (_c *ValidationResponseCreate) SetNillableAnalysisMethod(v *validationresponse.AnalysisMethod) *ValidationResponseCreate {
	if v != nil {
		_c.SetAnalysisMethod(*v)
	}
	return _c
}

// SetModificationInstructions sets the "modification_instructions" field.
func (_c *ValidationResponseCreate) SetModificationInstructions(v string) *ValidationResponseCreate {
	_c.mutation.SetModificationInstructions(v)
	return _c
}

// SetNillableModificationInstructions sets the "modification_instructions" field if the given value is not nil.
func (_c *ValidationResponseCreate) SetNillableModificationInstructions(v *string) *ValidationResponseCreate {
	if v != nil {
		_c.SetModificationInstructions(*v)
	}
	return _c
}

// SetReviewerID sets the "reviewer_id" field.
func (_c *ValidationResponseCreate) SetReviewerID(v string) *ValidationResponseCreate {
	_c.mutation.SetReviewerID(v)
	return _c
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_c *ValidationResponseCreate) SetNillableReviewerID(v *string) *ValidationResponseCreate {
	if v != nil {
		_c.SetReviewerID(*v)
	}
	return _c
}

// SetReviewerEmail sets the "reviewer_email" field.
func (_c *ValidationResponseCreate) SetReviewerEmail(v string) *ValidationResponseCreate {
	_c.mutation.SetReviewerEmail(v)
	return _c
}

// SetNillableReviewerEmail sets the "reviewer_email" field if the given value is not nil.
func (_c *ValidationResponseCreate) SetNillableReviewerEmail(v *string) *ValidationResponseCreate {
	if v != nil {
		_c.SetReviewerEmail(*v)
	}
	return _c
}

// SetSystemNote sets the "system_note" field.
func (_c *ValidationResponseCreate) SetSystemNote(v string) *ValidationResponseCreate {
	_c.mutation.SetSystemNote(v)
	return _c
}

// SetNillableSystemNote sets the "system_note" field if the given value is not nil.
func (_c *ValidationResponseCreate) SetNillableSystemNote(v *string) *ValidationResponseCreate {
	if v != nil {
		_c.SetSystemNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ValidationResponseCreate) SetCreatedAt(v time.Time) *ValidationResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ValidationResponseCreate) SetNillableCreatedAt(v *time.Time) *ValidationResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationResponseCreate) SetID(v int64) *ValidationResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequestID sets the "request" edge to the ValidationRequest entity by ID.
func (_c *ValidationResponseCreate) SetRequestID(id int64) *ValidationResponseCreate {
	_c.mutation.SetRequestID(id)
	return _c
}

// SetRequest sets the "request" edge to the ValidationRequest entity.
func (_c *ValidationResponseCreate) SetRequest(v *ValidationRequest) *ValidationResponseCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the ValidationResponseMutation object of the builder.
func (_c *ValidationResponseCreate) Mutation() *ValidationResponseMutation {
	return _c.mutation
}

// Save creates the ValidationResponse in the database.
func (_c *ValidationResponseCreate) Save(ctx context.Context) (*ValidationResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationResponseCreate) SaveX(ctx context.Context) *ValidationResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationResponseCreate) defaults() {
	if _, ok := _c.mutation.AnalysisMethod(); !ok {
		v := validationresponse.DefaultAnalysisMethod
		_c.mutation.SetAnalysisMethod(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := validationresponse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationResponseCreate) check() error {
	if _, ok := _c.mutation.ValidationRequestID(); !ok {
		return &ValidationError{Name: "validation_request_id", err: errors.New(`ent: missing required field "ValidationResponse.validation_request_id"`)}
	}
	if _, ok := _c.mutation.RawReply(); !ok {
		return &ValidationError{Name: "raw_reply", err: errors.New(`ent: missing required field "ValidationResponse.raw_reply"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "ValidationResponse.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := validationresponse.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "ValidationResponse.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ValidationResponse.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := validationresponse.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ValidationResponse.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnalysisMethod(); !ok {
		return &ValidationError{Name: "analysis_method", err: errors.New(`ent: missing required field "ValidationResponse.analysis_method"`)}
	}
	if v, ok := _c.mutation.AnalysisMethod(); ok {
		if err := validationresponse.AnalysisMethodValidator(v); err != nil {
			return &ValidationError{Name: "analysis_method", err: fmt.Errorf(`ent: validator failed for field "ValidationResponse.analysis_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ValidationResponse.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "ValidationResponse.request"`)}
	}
	return nil
}

func (_c *ValidationResponseCreate) sqlSave(ctx context.Context) (*ValidationResponse, error) {
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

func (_c *ValidationResponseCreate) createSpec() (*ValidationResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationresponse.Table, sqlgraph.NewFieldSpec(validationresponse.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RawReply(); ok {
		_spec.SetField(validationresponse.FieldRawReply, field.TypeString, value)
		_node.RawReply = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(validationresponse.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(validationresponse.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.AnalysisMethod(); ok {
		_spec.SetField(validationresponse.FieldAnalysisMethod, field.TypeEnum, value)
		_node.AnalysisMethod = value
	}
	if value, ok := _c.mutation.ModificationInstructions(); ok {
		_spec.SetField(validationresponse.FieldModificationInstructions, field.TypeString, value)
		_node.ModificationInstructions = value
	}
	if value, ok := _c.mutation.ReviewerID(); ok {
		_spec.SetField(validationresponse.FieldReviewerID, field.TypeString, value)
		_node.ReviewerID = value
	}
	if value, ok := _c.mutation.ReviewerEmail(); ok {
		_spec.SetField(validationresponse.FieldReviewerEmail, field.TypeString, value)
		_node.ReviewerEmail = value
	}
	if value, ok := _c.mutation.SystemNote(); ok {
		_spec.SetField(validationresponse.FieldSystemNote, field.TypeString, value)
		_node.SystemNote = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(validationresponse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   validationresponse.RequestTable,
			Columns: []string{validationresponse.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ValidationRequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ValidationResponseCreateBulk is the builder for creating many ValidationResponse entities in bulk.
type ValidationResponseCreateBulk struct {
	config
	err      error
	builders []*ValidationResponseCreate
}

// Save creates the ValidationResponse entities in the database.
func (_c *ValidationResponseCreateBulk) Save(ctx context.Context) ([]*ValidationResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationResponseMutation)
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
func (_c *ValidationResponseCreateBulk) SaveX(ctx context.Context) []*ValidationResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
