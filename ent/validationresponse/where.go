// Code generated by ent, DO NOT EDIT.

package validationresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLTE(FieldID, id))
}

// ValidationRequestID applies equality check predicate on the "validation_request_id" field. It's identical to ValidationRequestIDEQ.
func ValidationRequestID(v int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldValidationRequestID, v))
}

// RawReply applies equality check predicate on the "raw_reply" field. It's identical to RawReplyEQ.
func RawReply(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldRawReply, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldConfidence, v))
}

// ModificationInstructions applies equality check predicate on the "modification_instructions" field. It's identical to ModificationInstructionsEQ.
func ModificationInstructions(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldModificationInstructions, v))
}

// ReviewerID applies equality check predicate on the "reviewer_id" field. It's identical to ReviewerIDEQ.
func ReviewerID(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldReviewerID, v))
}

// ReviewerEmail applies equality check predicate on the "reviewer_email" field. It's identical to ReviewerEmailEQ.
func ReviewerEmail(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldReviewerEmail, v))
}

// SystemNote applies equality check predicate on the "system_note" field. It's identical to SystemNoteEQ.
func SystemNote(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldSystemNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// ValidationRequestIDEQ applies the EQ predicate on the "validation_request_id" field.
func ValidationRequestIDEQ(v int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldValidationRequestID, v))
}

// ValidationRequestIDNEQ applies the NEQ predicate on the "validation_request_id" field.
func ValidationRequestIDNEQ(v int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldValidationRequestID, v))
}

// ValidationRequestIDIn applies the In predicate on the "validation_request_id" field.
func ValidationRequestIDIn(vs ...int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldValidationRequestID, vs...))
}

// ValidationRequestIDNotIn applies the NotIn predicate on the "validation_request_id" field.
func ValidationRequestIDNotIn(vs ...int64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldValidationRequestID, vs...))
}

// RawReplyEQ applies the EQ predicate on the "raw_reply" field.
func RawReplyEQ(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldRawReply, v))
}

// RawReplyNEQ applies the NEQ predicate on the "raw_reply" field.
func RawReplyNEQ(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldRawReply, v))
}

// RawReplyIn applies the In predicate on the "raw_reply" field.
func RawReplyIn(vs ...string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldRawReply, vs...))
}

// RawReplyNotIn applies the NotIn predicate on the "raw_reply" field.
func RawReplyNotIn(vs ...string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldRawReply, vs...))
}

// RawReplyGT applies the GT predicate on the "raw_reply" field.
func RawReplyGT(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGT(FieldRawReply, v))
}

// RawReplyGTE applies the GTE predicate on the "raw_reply" field.
func RawReplyGTE(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGTE(FieldRawReply, v))
}

// RawReplyLT applies the LT predicate on the "raw_reply" field.
func RawReplyLT(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLT(FieldRawReply, v))
}

// RawReplyLTE applies the LTE predicate on the "raw_reply" field.
func RawReplyLTE(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLTE(FieldRawReply, v))
}

// RawReplyContains applies the Contains predicate on the "raw_reply" field.
func RawReplyContains(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldContains(FieldRawReply, v))
}

// RawReplyHasPrefix applies the HasPrefix predicate on the "raw_reply" field.
func RawReplyHasPrefix(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldHasPrefix(FieldRawReply, v))
}

// RawReplyHasSuffix applies the HasSuffix predicate on the "raw_reply" field.
func RawReplyHasSuffix(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldHasSuffix(FieldRawReply, v))
}

// RawReplyEqualFold applies the EqualFold predicate on the "raw_reply" field.
func RawReplyEqualFold(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEqualFold(FieldRawReply, v))
}

// RawReplyContainsFold applies the ContainsFold predicate on the "raw_reply" field.
func RawReplyContainsFold(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldContainsFold(FieldRawReply, v))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v Verdict) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v Verdict) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...Verdict) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...Verdict) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldVerdict, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLTE(FieldConfidence, v))
}

// AnalysisMethodEQ applies the EQ predicate on the "analysis_method" field.
func AnalysisMethodEQ(v AnalysisMethod) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldAnalysisMethod, v))
}

// AnalysisMethodNEQ applies the NEQ predicate on the "analysis_method" field.
func AnalysisMethodNEQ(v AnalysisMethod) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldAnalysisMethod, v))
}

// AnalysisMethodIn applies the In predicate on the "analysis_method" field.
func AnalysisMethodIn(vs ...AnalysisMethod) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldAnalysisMethod, vs...))
}

// AnalysisMethodNotIn applies the NotIn predicate on the "analysis_method" field.
func AnalysisMethodNotIn(vs ...AnalysisMethod) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldAnalysisMethod, vs...))
}

// ModificationInstructionsEQ applies the EQ predicate on the "modification_instructions" field.
func ModificationInstructionsEQ(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldModificationInstructions, v))
}

// ModificationInstructionsNEQ applies the NEQ predicate on the "modification_instructions" field.
func ModificationInstructionsNEQ(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldModificationInstructions, v))
}

// ModificationInstructionsIn applies the In predicate on the "modification_instructions" field.
func ModificationInstructionsIn(vs ...string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldModificationInstructions, vs...))
}

// ModificationInstructionsNotIn applies the NotIn predicate on the "modification_instructions" field.
func ModificationInstructionsNotIn(vs ...string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldModificationInstructions, vs...))
}

// ModificationInstructionsGT applies the GT predicate on the "modification_instructions" field.
func ModificationInstructionsGT(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGT(FieldModificationInstructions, v))
}

// ModificationInstructionsGTE applies the GTE predicate on the "modification_instructions" field.
func ModificationInstructionsGTE(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGTE(FieldModificationInstructions, v))
}

// ModificationInstructionsLT applies the LT predicate on the "modification_instructions" field.
func ModificationInstructionsLT(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLT(FieldModificationInstructions, v))
}

// ModificationInstructionsLTE applies the LTE predicate on the "modification_instructions" field.
func ModificationInstructionsLTE(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLTE(FieldModificationInstructions, v))
}

// ModificationInstructionsContains applies the Contains predicate on the "modification_instructions" field.
func ModificationInstructionsContains(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldContains(FieldModificationInstructions, v))
}

// ModificationInstructionsHasPrefix applies the HasPrefix predicate on the "modification_instructions" field.
func ModificationInstructionsHasPrefix(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldHasPrefix(FieldModificationInstructions, v))
}

// ModificationInstructionsHasSuffix applies the HasSuffix predicate on the "modification_instructions" field.
func ModificationInstructionsHasSuffix(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldHasSuffix(FieldModificationInstructions, v))
}

// ModificationInstructionsIsNil applies the IsNil predicate on the "modification_instructions" field.
func ModificationInstructionsIsNil() predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIsNull(FieldModificationInstructions))
}

// ModificationInstructionsNotNil applies the NotNil predicate on the "modification_instructions" field.
func ModificationInstructionsNotNil() predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotNull(FieldModificationInstructions))
}

// ModificationInstructionsEqualFold applies the EqualFold predicate on the "modification_instructions" field.
func ModificationInstructionsEqualFold(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEqualFold(FieldModificationInstructions, v))
}

// ModificationInstructionsContainsFold applies the ContainsFold predicate on the "modification_instructions" field.
func ModificationInstructionsContainsFold(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldContainsFold(FieldModificationInstructions, v))
}

// ReviewerIDEQ applies the EQ predicate on the "reviewer_id" field.
func ReviewerIDEQ(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldReviewerID, v))
}

// ReviewerIDNEQ applies the NEQ predicate on the "reviewer_id" field.
func ReviewerIDNEQ(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldReviewerID, v))
}

// ReviewerIDIn applies the In predicate on the "reviewer_id" field.
func ReviewerIDIn(vs ...string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldReviewerID, vs...))
}

// ReviewerIDNotIn applies the NotIn predicate on the "reviewer_id" field.
func ReviewerIDNotIn(vs ...string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldReviewerID, vs...))
}

// ReviewerIDGT applies the GT predicate on the "reviewer_id" field.
func ReviewerIDGT(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGT(FieldReviewerID, v))
}

// ReviewerIDGTE applies the GTE predicate on the "reviewer_id" field.
func ReviewerIDGTE(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGTE(FieldReviewerID, v))
}

// ReviewerIDLT applies the LT predicate on the "reviewer_id" field.
func ReviewerIDLT(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLT(FieldReviewerID, v))
}

// ReviewerIDLTE applies the LTE predicate on the "reviewer_id" field.
func ReviewerIDLTE(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLTE(FieldReviewerID, v))
}

// ReviewerIDContains applies the Contains predicate on the "reviewer_id" field.
func ReviewerIDContains(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldContains(FieldReviewerID, v))
}

// ReviewerIDHasPrefix applies the HasPrefix predicate on the "reviewer_id" field.
func ReviewerIDHasPrefix(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldHasPrefix(FieldReviewerID, v))
}

// ReviewerIDHasSuffix applies the HasSuffix predicate on the "reviewer_id" field.
func ReviewerIDHasSuffix(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldHasSuffix(FieldReviewerID, v))
}

// ReviewerIDIsNil applies the IsNil predicate on the "reviewer_id" field.
func ReviewerIDIsNil() predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIsNull(FieldReviewerID))
}

// ReviewerIDNotNil applies the NotNil predicate on the "reviewer_id" field.
func ReviewerIDNotNil() predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotNull(FieldReviewerID))
}

// ReviewerIDEqualFold applies the EqualFold predicate on the "reviewer_id" field.
func ReviewerIDEqualFold(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEqualFold(FieldReviewerID, v))
}

// ReviewerIDContainsFold applies the ContainsFold predicate on the "reviewer_id" field.
func ReviewerIDContainsFold(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldContainsFold(FieldReviewerID, v))
}

// ReviewerEmailEQ applies the EQ predicate on the "reviewer_email" field.
func ReviewerEmailEQ(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldReviewerEmail, v))
}

// ReviewerEmailNEQ applies the NEQ predicate on the "reviewer_email" field.
func ReviewerEmailNEQ(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldReviewerEmail, v))
}

// ReviewerEmailIn applies the In predicate on the "reviewer_email" field.
func ReviewerEmailIn(vs ...string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldReviewerEmail, vs...))
}

// ReviewerEmailNotIn applies the NotIn predicate on the "reviewer_email" field.
func ReviewerEmailNotIn(vs ...string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldReviewerEmail, vs...))
}

// ReviewerEmailGT applies the GT predicate on the "reviewer_email" field.
func ReviewerEmailGT(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGT(FieldReviewerEmail, v))
}

// ReviewerEmailGTE applies the GTE predicate on the "reviewer_email" field.
func ReviewerEmailGTE(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGTE(FieldReviewerEmail, v))
}

// ReviewerEmailLT applies the LT predicate on the "reviewer_email" field.
func ReviewerEmailLT(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLT(FieldReviewerEmail, v))
}

// ReviewerEmailLTE applies the LTE predicate on the "reviewer_email" field.
func ReviewerEmailLTE(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLTE(FieldReviewerEmail, v))
}

// ReviewerEmailContains applies the Contains predicate on the "reviewer_email" field.
func ReviewerEmailContains(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldContains(FieldReviewerEmail, v))
}

// ReviewerEmailHasPrefix applies the HasPrefix predicate on the "reviewer_email" field.
func ReviewerEmailHasPrefix(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldHasPrefix(FieldReviewerEmail, v))
}

// ReviewerEmailHasSuffix applies the HasSuffix predicate on the "reviewer_email" field.
func ReviewerEmailHasSuffix(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldHasSuffix(FieldReviewerEmail, v))
}

// ReviewerEmailIsNil applies the IsNil predicate on the "reviewer_email" field.
func ReviewerEmailIsNil() predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIsNull(FieldReviewerEmail))
}

// ReviewerEmailNotNil applies the NotNil predicate on the "reviewer_email" field.
func ReviewerEmailNotNil() predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotNull(FieldReviewerEmail))
}

// ReviewerEmailEqualFold applies the EqualFold predicate on the "reviewer_email" field.
func ReviewerEmailEqualFold(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEqualFold(FieldReviewerEmail, v))
}

// ReviewerEmailContainsFold applies the ContainsFold predicate on the "reviewer_email" field.
func ReviewerEmailContainsFold(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldContainsFold(FieldReviewerEmail, v))
}

// SystemNoteEQ applies the EQ predicate on the "system_note" field.
func SystemNoteEQ(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldSystemNote, v))
}

// SystemNoteNEQ applies the NEQ predicate on the "system_note" field.
func SystemNoteNEQ(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldSystemNote, v))
}

// SystemNoteIn applies the In predicate on the "system_note" field.
func SystemNoteIn(vs ...string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldSystemNote, vs...))
}

// SystemNoteNotIn applies the NotIn predicate on the "system_note" field.
func SystemNoteNotIn(vs ...string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldSystemNote, vs...))
}

// SystemNoteGT applies the GT predicate on the "system_note" field.
func SystemNoteGT(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGT(FieldSystemNote, v))
}

// SystemNoteGTE applies the GTE predicate on the "system_note" field.
func SystemNoteGTE(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGTE(FieldSystemNote, v))
}

// SystemNoteLT applies the LT predicate on the "system_note" field.
func SystemNoteLT(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLT(FieldSystemNote, v))
}

// SystemNoteLTE applies the LTE predicate on the "system_note" field.
func SystemNoteLTE(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLTE(FieldSystemNote, v))
}

// SystemNoteContains applies the Contains predicate on the "system_note" field.
func SystemNoteContains(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldContains(FieldSystemNote, v))
}

// SystemNoteHasPrefix applies the HasPrefix predicate on the "system_note" field.
func SystemNoteHasPrefix(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldHasPrefix(FieldSystemNote, v))
}

// SystemNoteHasSuffix applies the HasSuffix predicate on the "system_note" field.
func SystemNoteHasSuffix(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldHasSuffix(FieldSystemNote, v))
}

// SystemNoteIsNil applies the IsNil predicate on the "system_note" field.
func SystemNoteIsNil() predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIsNull(FieldSystemNote))
}

// SystemNoteNotNil applies the NotNil predicate on the "system_note" field.
func SystemNoteNotNil() predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotNull(FieldSystemNote))
}

// SystemNoteEqualFold applies the EqualFold predicate on the "system_note" field.
func SystemNoteEqualFold(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEqualFold(FieldSystemNote, v))
}

// SystemNoteContainsFold applies the ContainsFold predicate on the "system_note" field.
func SystemNoteContainsFold(v string) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldContainsFold(FieldSystemNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.ValidationResponse {
	return predicate.ValidationResponse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.ValidationRequest) predicate.ValidationResponse {
	return predicate.ValidationResponse(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationResponse) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationResponse) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationResponse) predicate.ValidationResponse {
	return predicate.ValidationResponse(sql.NotPredicates(p))
}
