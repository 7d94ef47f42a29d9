// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/predicate"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
)

// ValidationResponseUpdate is the builder for updating ValidationResponse entities.
type ValidationResponseUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationResponseMutation
}

// Where appends a list predicates to the ValidationResponseUpdate builder.
func (_u *ValidationResponseUpdate) Where(ps ...predicate.ValidationResponse) *ValidationResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRawReply sets the "raw_reply" field.
func (_u *ValidationResponseUpdate) SetRawReply(v string) *ValidationResponseUpdate {
	_u.mutation.SetRawReply(v)
	return _u
}

// SetNillableRawReply sets the "raw_reply" field if the given value is not nil.
func (_u *ValidationResponseUpdate) SetNillableRawReply(v *string) *ValidationResponseUpdate {
	if v != nil {
		_u.SetRawReply(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *ValidationResponseUpdate) SetVerdict(v validationresponse.Verdict) *ValidationResponseUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *ValidationResponseUpdate) SetNillableVerdict(v *validationresponse.Verdict) *ValidationResponseUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ValidationResponseUpdate) SetConfidence(v float64) *ValidationResponseUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ValidationResponseUpdate) SetNillableConfidence(v *float64) *ValidationResponseUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ValidationResponseUpdate) AddConfidence(v float64) *ValidationResponseUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAnalysisMethod sets the "analysis_method" field.
func (_u *ValidationResponseUpdate) SetAnalysisMethod(v validationresponse.AnalysisMethod) *ValidationResponseUpdate {
	_u.mutation.SetAnalysisMethod(v)
	return _u
}

// SetNillableAnalysisMethod sets the "analysis_method" field if the given value is not nil.
func (_u *ValidationResponseUpdate) SetNillableAnalysisMethod(v *validationresponse.AnalysisMethod) *ValidationResponseUpdate {
	if v != nil {
		_u.SetAnalysisMethod(*v)
	}
	return _u
}

// SetModificationInstructions sets the "modification_instructions" field.
func (_u *ValidationResponseUpdate) SetModificationInstructions(v string) *ValidationResponseUpdate {
	_u.mutation.SetModificationInstructions(v)
	return _u
}

// SetNillableModificationInstructions sets the "modification_instructions" field if the given value is not nil.
func (_u *ValidationResponseUpdate) SetNillableModificationInstructions(v *string) *ValidationResponseUpdate {
	if v != nil {
		_u.SetModificationInstructions(*v)
	}
	return _u
}

// ClearModificationInstructions clears the value of the "modification_instructions" field.
func (_u *ValidationResponseUpdate) ClearModificationInstructions() *ValidationResponseUpdate {
	_u.mutation.ClearModificationInstructions()
	return _u
}

// SetReviewerID sets the "reviewer_id" field.
func (_u *ValidationResponseUpdate) SetReviewerID(v string) *ValidationResponseUpdate {
	_u.mutation.SetReviewerID(v)
	return _u
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_u *ValidationResponseUpdate) SetNillableReviewerID(v *string) *ValidationResponseUpdate {
	if v != nil {
		_u.SetReviewerID(*v)
	}
	return _u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (_u *ValidationResponseUpdate) ClearReviewerID() *ValidationResponseUpdate {
	_u.mutation.ClearReviewerID()
	return _u
}

// SetReviewerEmail sets the "reviewer_email" field.
func (_u *ValidationResponseUpdate) SetReviewerEmail(v string) *ValidationResponseUpdate {
	_u.mutation.SetReviewerEmail(v)
	return _u
}

// SetNillableReviewerEmail sets the "reviewer_email" field if the given value is not nil.
func (_u *ValidationResponseUpdate) SetNillableReviewerEmail(v *string) *ValidationResponseUpdate {
	if v != nil {
		_u.SetReviewerEmail(*v)
	}
	return _u
}

// ClearReviewerEmail clears the value of the "reviewer_email" field.
func (_u *ValidationResponseUpdate) ClearReviewerEmail() *ValidationResponseUpdate {
	_u.mutation.ClearReviewerEmail()
	return _u
}

// SetSystemNote sets the "system_note" field.
func (_u *ValidationResponseUpdate) SetSystemNote(v string) *ValidationResponseUpdate {
	_u.mutation.SetSystemNote(v)
	return _u
}

// SetNillableSystemNote sets the "system_note" field if the given value is not nil.
func (_u *ValidationResponseUpdate) SetNillableSystemNote(v *string) *ValidationResponseUpdate {
	if v != nil {
		_u.SetSystemNote(*v)
	}
	return _u
}

// ClearSystemNote clears the value of the "system_note" field.
func (_u *ValidationResponseUpdate) ClearSystemNote() *ValidationResponseUpdate {
	_u.mutation.ClearSystemNote()
	return _u
}

// Mutation returns the ValidationResponseMutation object of the builder.
func (_u *ValidationResponseUpdate) Mutation() *ValidationResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationResponseUpdate) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := validationresponse.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "ValidationResponse.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := validationresponse.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ValidationResponse.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnalysisMethod(); ok {
		if err := validationresponse.AnalysisMethodValidator(v); err != nil {
			return &ValidationError{Name: "analysis_method", err: fmt.Errorf(`ent: validator failed for field "ValidationResponse.analysis_method": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationResponse.request"`)
	}
	return nil
}

func (_u *ValidationResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationresponse.Table, validationresponse.Columns, sqlgraph.NewFieldSpec(validationresponse.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawReply(); ok {
		_spec.SetField(validationresponse.FieldRawReply, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(validationresponse.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(validationresponse.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(validationresponse.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnalysisMethod(); ok {
		_spec.SetField(validationresponse.FieldAnalysisMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModificationInstructions(); ok {
		_spec.SetField(validationresponse.FieldModificationInstructions, field.TypeString, value)
	}
	if _u.mutation.ModificationInstructionsCleared() {
		_spec.ClearField(validationresponse.FieldModificationInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewerID(); ok {
		_spec.SetField(validationresponse.FieldReviewerID, field.TypeString, value)
	}
	if _u.mutation.ReviewerIDCleared() {
		_spec.ClearField(validationresponse.FieldReviewerID, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewerEmail(); ok {
		_spec.SetField(validationresponse.FieldReviewerEmail, field.TypeString, value)
	}
	if _u.mutation.ReviewerEmailCleared() {
		_spec.ClearField(validationresponse.FieldReviewerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SystemNote(); ok {
		_spec.SetField(validationresponse.FieldSystemNote, field.TypeString, value)
	}
	if _u.mutation.SystemNoteCleared() {
		_spec.ClearField(validationresponse.FieldSystemNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationResponseUpdateOne is the builder for updating a single ValidationResponse entity.
type ValidationResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationResponseMutation
}

// SetRawReply sets the "raw_reply" field.
func (_u *ValidationResponseUpdateOne) SetRawReply(v string) *ValidationResponseUpdateOne {
	_u.mutation.SetRawReply(v)
	return _u
}

// SetNillableRawReply sets the "raw_reply" field if the given value is not nil.
func (_u *ValidationResponseUpdateOne) SetNillableRawReply(v *string) *ValidationResponseUpdateOne {
	if v != nil {
		_u.SetRawReply(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *ValidationResponseUpdateOne) SetVerdict(v validationresponse.Verdict) *ValidationResponseUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *ValidationResponseUpdateOne) SetNillableVerdict(v *validationresponse.Verdict) *ValidationResponseUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ValidationResponseUpdateOne) SetConfidence(v float64) *ValidationResponseUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ValidationResponseUpdateOne) SetNillableConfidence(v *float64) *ValidationResponseUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ValidationResponseUpdateOne) AddConfidence(v float64) *ValidationResponseUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAnalysisMethod sets the "analysis_method" field.
func (_u *ValidationResponseUpdateOne) SetAnalysisMethod(v validationresponse.AnalysisMethod) *ValidationResponseUpdateOne {
	_u.mutation.SetAnalysisMethod(v)
	return _u
}

// SetNillableAnalysisMethod sets the "analysis_method" field if the given value is not nil.
func (_u *ValidationResponseUpdateOne) SetNillableAnalysisMethod(v *validationresponse.AnalysisMethod) *ValidationResponseUpdateOne {
	if v != nil {
		_u.SetAnalysisMethod(*v)
	}
	return _u
}

// SetModificationInstructions sets the "modification_instructions" field.
func (_u *ValidationResponseUpdateOne) SetModificationInstructions(v string) *ValidationResponseUpdateOne {
	_u.mutation.SetModificationInstructions(v)
	return _u
}

// SetNillableModificationInstructions sets the "modification_instructions" field if the given value is not nil.
func (_u *ValidationResponseUpdateOne) SetNillableModificationInstructions(v *string) *ValidationResponseUpdateOne {
	if v != nil {
		_u.SetModificationInstructions(*v)
	}
	return _u
}

// ClearModificationInstructions clears the value of the "modification_instructions" field.
func (_u *ValidationResponseUpdateOne) ClearModificationInstructions() *ValidationResponseUpdateOne {
	_u.mutation.ClearModificationInstructions()
	return _u
}

// SetReviewerID sets the "reviewer_id" field.
func (_u *ValidationResponseUpdateOne) SetReviewerID(v string) *ValidationResponseUpdateOne {
	_u.mutation.SetReviewerID(v)
	return _u
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_u *ValidationResponseUpdateOne) SetNillableReviewerID(v *string) *ValidationResponseUpdateOne {
	if v != nil {
		_u.SetReviewerID(*v)
	}
	return _u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (_u *ValidationResponseUpdateOne) ClearReviewerID() *ValidationResponseUpdateOne {
	_u.mutation.ClearReviewerID()
	return _u
}

// SetReviewerEmail sets the "reviewer_email" field.
func (_u *ValidationResponseUpdateOne) SetReviewerEmail(v string) *ValidationResponseUpdateOne {
	_u.mutation.SetReviewerEmail(v)
	return _u
}

// SetNillableReviewerEmail sets the "reviewer_email" field if the given value is not nil.
func (_u *ValidationResponseUpdateOne) SetNillableReviewerEmail(v *string) *ValidationResponseUpdateOne {
	if v != nil {
		_u.SetReviewerEmail(*v)
	}
	return _u
}

// ClearReviewerEmail clears the value of the "reviewer_email" field.
func (_u *ValidationResponseUpdateOne) ClearReviewerEmail() *ValidationResponseUpdateOne {
	_u.mutation.ClearReviewerEmail()
	return _u
}

// SetSystemNote sets the "system_note" field.
func (_u *ValidationResponseUpdateOne) SetSystemNote(v string) *ValidationResponseUpdateOne {
	_u.mutation.SetSystemNote(v)
	return _u
}

// SetNillableSystemNote sets the "system_note" field if the given value is not nil.
func (_u *ValidationResponseUpdateOne) SetNillableSystemNote(v *string) *ValidationResponseUpdateOne {
	if v != nil {
		_u.SetSystemNote(*v)
	}
	return _u
}

// ClearSystemNote clears the value of the "system_note" field.
func (_u *ValidationResponseUpdateOne) ClearSystemNote() *ValidationResponseUpdateOne {
	_u.mutation.ClearSystemNote()
	return _u
}

// Mutation returns the ValidationResponseMutation object of the builder.
func (_u *ValidationResponseUpdateOne) Mutation() *ValidationResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ValidationResponseUpdate builder.
func (_u *ValidationResponseUpdateOne) Where(ps ...predicate.ValidationResponse) *ValidationResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationResponseUpdateOne) Select(field string, fields ...string) *ValidationResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationResponse entity.
func (_u *ValidationResponseUpdateOne) Save(ctx context.Context) (*ValidationResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationResponseUpdateOne) SaveX(ctx context.Context) *ValidationResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationResponseUpdateOne) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := validationresponse.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "ValidationResponse.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := validationresponse.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ValidationResponse.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnalysisMethod(); ok {
		if err := validationresponse.AnalysisMethodValidator(v); err != nil {
			return &ValidationError{Name: "analysis_method", err: fmt.Errorf(`ent: validator failed for field "ValidationResponse.analysis_method": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationResponse.request"`)
	}
	return nil
}

func (_u *ValidationResponseUpdateOne) sqlSave(ctx context.Context) (_node *ValidationResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationresponse.Table, validationresponse.Columns, sqlgraph.NewFieldSpec(validationresponse.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationresponse.FieldID)
		for _, f := range fields {
			if !validationresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationresponse.FieldID {
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
	if value, ok := _u.mutation.RawReply(); ok {
		_spec.SetField(validationresponse.FieldRawReply, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(validationresponse.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(validationresponse.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(validationresponse.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnalysisMethod(); ok {
		_spec.SetField(validationresponse.FieldAnalysisMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModificationInstructions(); ok {
		_spec.SetField(validationresponse.FieldModificationInstructions, field.TypeString, value)
	}
	if _u.mutation.ModificationInstructionsCleared() {
		_spec.ClearField(validationresponse.FieldModificationInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewerID(); ok {
		_spec.SetField(validationresponse.FieldReviewerID, field.TypeString, value)
	}
	if _u.mutation.ReviewerIDCleared() {
		_spec.ClearField(validationresponse.FieldReviewerID, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewerEmail(); ok {
		_spec.SetField(validationresponse.FieldReviewerEmail, field.TypeString, value)
	}
	if _u.mutation.ReviewerEmailCleared() {
		_spec.ClearField(validationresponse.FieldReviewerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SystemNote(); ok {
		_spec.SetField(validationresponse.FieldSystemNote, field.TypeString, value)
	}
	if _u.mutation.SystemNoteCleared() {
		_spec.ClearField(validationresponse.FieldSystemNote, field.TypeString)
	}
	_node = &ValidationResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
