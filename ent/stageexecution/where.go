// Code generated by ent, DO NOT EDIT.

package stageexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldRunID, v))
}

// StageName applies equality check predicate on the "stage_name" field. It's identical to StageNameEQ.
func StageName(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageName, v))
}

// Ordinal applies equality check predicate on the "ordinal" field. It's identical to OrdinalEQ.
func Ordinal(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldOrdinal, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldAttempt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...int64) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldRunID, vs...))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStageName, vs...))
}

// StageNameGT applies the GT predicate on the "stage_name" field.
func StageNameGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStageName, v))
}

// StageNameGTE applies the GTE predicate on the "stage_name" field.
func StageNameGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStageName, v))
}

// StageNameLT applies the LT predicate on the "stage_name" field.
func StageNameLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStageName, v))
}

// StageNameLTE applies the LTE predicate on the "stage_name" field.
func StageNameLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStageName, v))
}

// StageNameContains applies the Contains predicate on the "stage_name" field.
func StageNameContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldStageName, v))
}

// StageNameHasPrefix applies the HasPrefix predicate on the "stage_name" field.
func StageNameHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldStageName, v))
}

// StageNameHasSuffix applies the HasSuffix predicate on the "stage_name" field.
func StageNameHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldStageName, v))
}

// StageNameEqualFold applies the EqualFold predicate on the "stage_name" field.
func StageNameEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldStageName, v))
}

// StageNameContainsFold applies the ContainsFold predicate on the "stage_name" field.
func StageNameContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldStageName, v))
}

// OrdinalEQ applies the EQ predicate on the "ordinal" field.
func OrdinalEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldOrdinal, v))
}

// OrdinalNEQ applies the NEQ predicate on the "ordinal" field.
func OrdinalNEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldOrdinal, v))
}

// OrdinalIn applies the In predicate on the "ordinal" field.
func OrdinalIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldOrdinal, vs...))
}

// OrdinalNotIn applies the NotIn predicate on the "ordinal" field.
func OrdinalNotIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldOrdinal, vs...))
}

// OrdinalGT applies the GT predicate on the "ordinal" field.
func OrdinalGT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldOrdinal, v))
}

// OrdinalGTE applies the GTE predicate on the "ordinal" field.
func OrdinalGTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldOrdinal, v))
}

// OrdinalLT applies the LT predicate on the "ordinal" field.
func OrdinalLT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldOrdinal, v))
}

// OrdinalLTE applies the LTE predicate on the "ordinal" field.
func OrdinalLTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldOrdinal, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldAttempt, v))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldInput))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldOutput))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.StageExecution {
	return predicate.StageExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.StageExecution {
	return predicate.StageExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.StageExecution {
	return predicate.StageExecution(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageExecution) predicate.StageExecution {
	return predicate.StageExecution(sql.NotPredicates(p))
}
