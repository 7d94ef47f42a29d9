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
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
)

// ValidationRequestUpdate is the builder for updating ValidationRequest entities.
type ValidationRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationRequestMutation
}

// Where appends a list predicates to the ValidationRequestUpdate builder.
func (_u *ValidationRequestUpdate) Where(ps ...predicate.ValidationRequest) *ValidationRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentValidationID sets the "parent_validation_id" field.
func (_u *ValidationRequestUpdate) SetParentValidationID(v int64) *ValidationRequestUpdate {
	_u.mutation.ResetParentValidationID()
	_u.mutation.SetParentValidationID(v)
	return _u
}

// SetNillableParentValidationID sets the "parent_validation_id" field if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableParentValidationID(v *int64) *ValidationRequestUpdate {
	if v != nil {
		_u.SetParentValidationID(*v)
	}
	return _u
}

// AddParentValidationID adds value to the "parent_validation_id" field.
func (_u *ValidationRequestUpdate) AddParentValidationID(v int64) *ValidationRequestUpdate {
	_u.mutation.AddParentValidationID(v)
	return _u
}

// ClearParentValidationID clears the value of the "parent_validation_id" field.
func (_u *ValidationRequestUpdate) ClearParentValidationID() *ValidationRequestUpdate {
	_u.mutation.ClearParentValidationID()
	return _u
}

// SetExternalCommentID sets the "external_comment_id" field.
func (_u *ValidationRequestUpdate) SetExternalCommentID(v string) *ValidationRequestUpdate {
	_u.mutation.SetExternalCommentID(v)
	return _u
}

// SetNillableExternalCommentID sets the "external_comment_id" field if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableExternalCommentID(v *string) *ValidationRequestUpdate {
	if v != nil {
		_u.SetExternalCommentID(*v)
	}
	return _u
}

// ClearExternalCommentID clears the value of the "external_comment_id" field.
func (_u *ValidationRequestUpdate) ClearExternalCommentID() *ValidationRequestUpdate {
	_u.mutation.ClearExternalCommentID()
	return _u
}

// SetBody sets the "body" field.
func (_u *ValidationRequestUpdate) SetBody(v string) *ValidationRequestUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableBody(v *string) *ValidationRequestUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetRequesterID sets the "requester_id" field.
func (_u *ValidationRequestUpdate) SetRequesterID(v string) *ValidationRequestUpdate {
	_u.mutation.SetRequesterID(v)
	return _u
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableRequesterID(v *string) *ValidationRequestUpdate {
	if v != nil {
		_u.SetRequesterID(*v)
	}
	return _u
}

// ClearRequesterID clears the value of the "requester_id" field.
func (_u *ValidationRequestUpdate) ClearRequesterID() *ValidationRequestUpdate {
	_u.mutation.ClearRequesterID()
	return _u
}

// SetRequesterEmail sets the "requester_email" field.
func (_u *ValidationRequestUpdate) SetRequesterEmail(v string) *ValidationRequestUpdate {
	_u.mutation.SetRequesterEmail(v)
	return _u
}

// SetNillableRequesterEmail sets the "requester_email" field if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableRequesterEmail(v *string) *ValidationRequestUpdate {
	if v != nil {
		_u.SetRequesterEmail(*v)
	}
	return _u
}

// ClearRequesterEmail clears the value of the "requester_email" field.
func (_u *ValidationRequestUpdate) ClearRequesterEmail() *ValidationRequestUpdate {
	_u.mutation.ClearRequesterEmail()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ValidationRequestUpdate) SetStatus(v validationrequest.Status) *ValidationRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableStatus(v *validationrequest.Status) *ValidationRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRejectionCount sets the "rejection_count" field.
func (_u *ValidationRequestUpdate) SetRejectionCount(v int) *ValidationRequestUpdate {
	_u.mutation.ResetRejectionCount()
	_u.mutation.SetRejectionCount(v)
	return _u
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableRejectionCount(v *int) *ValidationRequestUpdate {
	if v != nil {
		_u.SetRejectionCount(*v)
	}
	return _u
}

// AddRejectionCount adds value to the "rejection_count" field.
func (_u *ValidationRequestUpdate) AddRejectionCount(v int) *ValidationRequestUpdate {
	_u.mutation.AddRejectionCount(v)
	return _u
}

// SetModificationInstructions sets the "modification_instructions" field.
func (_u *ValidationRequestUpdate) SetModificationInstructions(v string) *ValidationRequestUpdate {
	_u.mutation.SetModificationInstructions(v)
	return _u
}

// SetNillableModificationInstructions sets the "modification_instructions" field if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableModificationInstructions(v *string) *ValidationRequestUpdate {
	if v != nil {
		_u.SetModificationInstructions(*v)
	}
	return _u
}

// ClearModificationInstructions clears the value of the "modification_instructions" field.
func (_u *ValidationRequestUpdate) ClearModificationInstructions() *ValidationRequestUpdate {
	_u.mutation.ClearModificationInstructions()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ValidationRequestUpdate) SetResolvedAt(v time.Time) *ValidationRequestUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableResolvedAt(v *time.Time) *ValidationRequestUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ValidationRequestUpdate) ClearResolvedAt() *ValidationRequestUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *ValidationRequestUpdate) SetTimeoutSeconds(v int) *ValidationRequestUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableTimeoutSeconds(v *int) *ValidationRequestUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *ValidationRequestUpdate) AddTimeoutSeconds(v int) *ValidationRequestUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetResponseID sets the "response" edge to the ValidationResponse entity by ID.
func (_u *ValidationRequestUpdate) SetResponseID(id int64) *ValidationRequestUpdate {
	_u.mutation.SetResponseID(id)
	return _u
}

// SetNillableResponseID sets the "response" edge to the ValidationResponse entity by ID if the given value is not nil.
func (_u *ValidationRequestUpdate) SetNillableResponseID(id *int64) *ValidationRequestUpdate {
	if id != nil {
		_u = _u.SetResponseID(*id)
	}
	return _u
}

// SetResponse sets the "response" edge to the ValidationResponse entity.
func (_u *ValidationRequestUpdate) SetResponse(v *ValidationResponse) *ValidationRequestUpdate {
	return _u.SetResponseID(v.ID)
}

// Mutation returns the ValidationRequestMutation object of the builder.
func (_u *ValidationRequestUpdate) Mutation() *ValidationRequestMutation {
	return _u.mutation
}

// ClearResponse clears the "response" edge to the ValidationResponse entity.
func (_u *ValidationRequestUpdate) ClearResponse() *ValidationRequestUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := validationrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RejectionCount(); ok {
		if err := validationrequest.RejectionCountValidator(v); err != nil {
			return &ValidationError{Name: "rejection_count", err: fmt.Errorf(`ent: validator failed for field "ValidationRequest.rejection_count": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationRequest.run"`)
	}
	return nil
}

func (_u *ValidationRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationrequest.Table, validationrequest.Columns, sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentValidationID(); ok {
		_spec.SetField(validationrequest.FieldParentValidationID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedParentValidationID(); ok {
		_spec.AddField(validationrequest.FieldParentValidationID, field.TypeInt64, value)
	}
	if _u.mutation.ParentValidationIDCleared() {
		_spec.ClearField(validationrequest.FieldParentValidationID, field.TypeInt64)
	}
	if value, ok := _u.mutation.ExternalCommentID(); ok {
		_spec.SetField(validationrequest.FieldExternalCommentID, field.TypeString, value)
	}
	if _u.mutation.ExternalCommentIDCleared() {
		_spec.ClearField(validationrequest.FieldExternalCommentID, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(validationrequest.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequesterID(); ok {
		_spec.SetField(validationrequest.FieldRequesterID, field.TypeString, value)
	}
	if _u.mutation.RequesterIDCleared() {
		_spec.ClearField(validationrequest.FieldRequesterID, field.TypeString)
	}
	if value, ok := _u.mutation.RequesterEmail(); ok {
		_spec.SetField(validationrequest.FieldRequesterEmail, field.TypeString, value)
	}
	if _u.mutation.RequesterEmailCleared() {
		_spec.ClearField(validationrequest.FieldRequesterEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(validationrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RejectionCount(); ok {
		_spec.SetField(validationrequest.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectionCount(); ok {
		_spec.AddField(validationrequest.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModificationInstructions(); ok {
		_spec.SetField(validationrequest.FieldModificationInstructions, field.TypeString, value)
	}
	if _u.mutation.ModificationInstructionsCleared() {
		_spec.ClearField(validationrequest.FieldModificationInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(validationrequest.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(validationrequest.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(validationrequest.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(validationrequest.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.ResponseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationRequestUpdateOne is the builder for updating a single ValidationRequest entity.
type ValidationRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationRequestMutation
}

// SetParentValidationID sets the "parent_validation_id" field.
func (_u *ValidationRequestUpdateOne) SetParentValidationID(v int64) *ValidationRequestUpdateOne {
	_u.mutation.ResetParentValidationID()
	_u.mutation.SetParentValidationID(v)
	return _u
}

// SetNillableParentValidationID sets the "parent_validation_id" field if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableParentValidationID(v *int64) *ValidationRequestUpdateOne {
	if v != nil {
		_u.SetParentValidationID(*v)
	}
	return _u
}

// AddParentValidationID adds value to the "parent_validation_id" field.
func (_u *ValidationRequestUpdateOne) AddParentValidationID(v int64) *ValidationRequestUpdateOne {
	_u.mutation.AddParentValidationID(v)
	return _u
}

// ClearParentValidationID clears the value of the "parent_validation_id" field.
func (_u *ValidationRequestUpdateOne) ClearParentValidationID() *ValidationRequestUpdateOne {
	_u.mutation.ClearParentValidationID()
	return _u
}

// SetExternalCommentID sets the "external_comment_id" field.
func (_u *ValidationRequestUpdateOne) SetExternalCommentID(v string) *ValidationRequestUpdateOne {
	_u.mutation.SetExternalCommentID(v)
	return _u
}

// SetNillableExternalCommentID sets the "external_comment_id" field if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableExternalCommentID(v *string) *ValidationRequestUpdateOne {
	if v != nil {
		_u.SetExternalCommentID(*v)
	}
	return _u
}

// ClearExternalCommentID clears the value of the "external_comment_id" field.
func (_u *ValidationRequestUpdateOne) ClearExternalCommentID() *ValidationRequestUpdateOne {
	_u.mutation.ClearExternalCommentID()
	return _u
}

// SetBody sets the "body" field.
func (_u *ValidationRequestUpdateOne) SetBody(v string) *ValidationRequestUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableBody(v *string) *ValidationRequestUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetRequesterID sets the "requester_id" field.
func (_u *ValidationRequestUpdateOne) SetRequesterID(v string) *ValidationRequestUpdateOne {
	_u.mutation.SetRequesterID(v)
	return _u
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableRequesterID(v *string) *ValidationRequestUpdateOne {
	if v != nil {
		_u.SetRequesterID(*v)
	}
	return _u
}

// ClearRequesterID clears the value of the "requester_id" field.
func (_u *ValidationRequestUpdateOne) ClearRequesterID() *ValidationRequestUpdateOne {
	_u.mutation.ClearRequesterID()
	return _u
}

// SetRequesterEmail sets the "requester_email" field.
func (_u *ValidationRequestUpdateOne) SetRequesterEmail(v string) *ValidationRequestUpdateOne {
	_u.mutation.SetRequesterEmail(v)
	return _u
}

// SetNillableRequesterEmail sets the "requester_email" field if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableRequesterEmail(v *string) *ValidationRequestUpdateOne {
	if v != nil {
		_u.SetRequesterEmail(*v)
	}
	return _u
}

// ClearRequesterEmail clears the value of the "requester_email" field.
func (_u *ValidationRequestUpdateOne) ClearRequesterEmail() *ValidationRequestUpdateOne {
	_u.mutation.ClearRequesterEmail()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ValidationRequestUpdateOne) SetStatus(v validationrequest.Status) *ValidationRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableStatus(v *validationrequest.Status) *ValidationRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRejectionCount sets the "rejection_count" field.
func (_u *ValidationRequestUpdateOne) SetRejectionCount(v int) *ValidationRequestUpdateOne {
	_u.mutation.ResetRejectionCount()
	_u.mutation.SetRejectionCount(v)
	return _u
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableRejectionCount(v *int) *ValidationRequestUpdateOne {
	if v != nil {
		_u.SetRejectionCount(*v)
	}
	return _u
}

// AddRejectionCount adds value to the "rejection_count" field.
func (_u *ValidationRequestUpdateOne) AddRejectionCount(v int) *ValidationRequestUpdateOne {
	_u.mutation.AddRejectionCount(v)
	return _u
}

// SetModificationInstructions sets the "modification_instructions" field.
func (_u *ValidationRequestUpdateOne) SetModificationInstructions(v string) *ValidationRequestUpdateOne {
	_u.mutation.SetModificationInstructions(v)
	return _u
}

// SetNillableModificationInstructions sets the "modification_instructions" field if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableModificationInstructions(v *string) *ValidationRequestUpdateOne {
	if v != nil {
		_u.SetModificationInstructions(*v)
	}
	return _u
}

// ClearModificationInstructions clears the value of the "modification_instructions" field.
func (_u *ValidationRequestUpdateOne) ClearModificationInstructions() *ValidationRequestUpdateOne {
	_u.mutation.ClearModificationInstructions()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ValidationRequestUpdateOne) SetResolvedAt(v time.Time) *ValidationRequestUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableResolvedAt(v *time.Time) *ValidationRequestUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ValidationRequestUpdateOne) ClearResolvedAt() *ValidationRequestUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *ValidationRequestUpdateOne) SetTimeoutSeconds(v int) *ValidationRequestUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableTimeoutSeconds(v *int) *ValidationRequestUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *ValidationRequestUpdateOne) AddTimeoutSeconds(v int) *ValidationRequestUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetResponseID sets the "response" edge to the ValidationResponse entity by ID.
func (_u *ValidationRequestUpdateOne) SetResponseID(id int64) *ValidationRequestUpdateOne {
	_u.mutation.SetResponseID(id)
	return _u
}

// SetNillableResponseID sets the "response" edge to the ValidationResponse entity by ID if the given value is not nil.
func (_u *ValidationRequestUpdateOne) SetNillableResponseID(id *int64) *ValidationRequestUpdateOne {
	if id != nil {
		_u = _u.SetResponseID(*id)
	}
	return _u
}

// SetResponse sets the "response" edge to the ValidationResponse entity.
func (_u *ValidationRequestUpdateOne) SetResponse(v *ValidationResponse) *ValidationRequestUpdateOne {
	return _u.SetResponseID(v.ID)
}

// Mutation returns the ValidationRequestMutation object of the builder.
func (_u *ValidationRequestUpdateOne) Mutation() *ValidationRequestMutation {
	return _u.mutation
}

// ClearResponse clears the "response" edge to the ValidationResponse entity.
func (_u *ValidationRequestUpdateOne) ClearResponse() *ValidationRequestUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// Where appends a list predicates to the ValidationRequestUpdate builder.
func (_u *ValidationRequestUpdateOne) Where(ps ...predicate.ValidationRequest) *ValidationRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationRequestUpdateOne) Select(field string, fields ...string) *ValidationRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationRequest entity.
func (_u *ValidationRequestUpdateOne) Save(ctx context.Context) (*ValidationRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationRequestUpdateOne) SaveX(ctx context.Context) *ValidationRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := validationrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RejectionCount(); ok {
		if err := validationrequest.RejectionCountValidator(v); err != nil {
			return &ValidationError{Name: "rejection_count", err: fmt.Errorf(`ent: validator failed for field "ValidationRequest.rejection_count": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationRequest.run"`)
	}
	return nil
}

func (_u *ValidationRequestUpdateOne) sqlSave(ctx context.Context) (_node *ValidationRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationrequest.Table, validationrequest.Columns, sqlgraph.NewFieldSpec(validationrequest.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationrequest.FieldID)
		for _, f := range fields {
			if !validationrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationrequest.FieldID {
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
	if value, ok := _u.mutation.ParentValidationID(); ok {
		_spec.SetField(validationrequest.FieldParentValidationID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedParentValidationID(); ok {
		_spec.AddField(validationrequest.FieldParentValidationID, field.TypeInt64, value)
	}
	if _u.mutation.ParentValidationIDCleared() {
		_spec.ClearField(validationrequest.FieldParentValidationID, field.TypeInt64)
	}
	if value, ok := _u.mutation.ExternalCommentID(); ok {
		_spec.SetField(validationrequest.FieldExternalCommentID, field.TypeString, value)
	}
	if _u.mutation.ExternalCommentIDCleared() {
		_spec.ClearField(validationrequest.FieldExternalCommentID, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(validationrequest.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequesterID(); ok {
		_spec.SetField(validationrequest.FieldRequesterID, field.TypeString, value)
	}
	if _u.mutation.RequesterIDCleared() {
		_spec.ClearField(validationrequest.FieldRequesterID, field.TypeString)
	}
	if value, ok := _u.mutation.RequesterEmail(); ok {
		_spec.SetField(validationrequest.FieldRequesterEmail, field.TypeString, value)
	}
	if _u.mutation.RequesterEmailCleared() {
		_spec.ClearField(validationrequest.FieldRequesterEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(validationrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RejectionCount(); ok {
		_spec.SetField(validationrequest.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectionCount(); ok {
		_spec.AddField(validationrequest.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModificationInstructions(); ok {
		_spec.SetField(validationrequest.FieldModificationInstructions, field.TypeString, value)
	}
	if _u.mutation.ModificationInstructionsCleared() {
		_spec.ClearField(validationrequest.FieldModificationInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(validationrequest.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(validationrequest.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(validationrequest.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(validationrequest.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.ResponseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ValidationRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
