// Code generated by ent, DO NOT EDIT.

package validationrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldRunID, v))
}

// ParentValidationID applies equality check predicate on the "parent_validation_id" field. It's identical to ParentValidationIDEQ.
func ParentValidationID(v int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldParentValidationID, v))
}

// ExternalCommentID applies equality check predicate on the "external_comment_id" field. It's identical to ExternalCommentIDEQ.
func ExternalCommentID(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldExternalCommentID, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldBody, v))
}

// RequesterID applies equality check predicate on the "requester_id" field. It's identical to RequesterIDEQ.
func RequesterID(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldRequesterID, v))
}

// RequesterEmail applies equality check predicate on the "requester_email" field. It's identical to RequesterEmailEQ.
func RequesterEmail(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldRequesterEmail, v))
}

// RejectionCount applies equality check predicate on the "rejection_count" field. It's identical to RejectionCountEQ.
func RejectionCount(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldRejectionCount, v))
}

// ModificationInstructions applies equality check predicate on the "modification_instructions" field. It's identical to ModificationInstructionsEQ.
func ModificationInstructions(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldModificationInstructions, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldResolvedAt, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldRunID, vs...))
}

// ParentValidationIDEQ applies the EQ predicate on the "parent_validation_id" field.
func ParentValidationIDEQ(v int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldParentValidationID, v))
}

// ParentValidationIDNEQ applies the NEQ predicate on the "parent_validation_id" field.
func ParentValidationIDNEQ(v int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldParentValidationID, v))
}

// ParentValidationIDIn applies the In predicate on the "parent_validation_id" field.
func ParentValidationIDIn(vs ...int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldParentValidationID, vs...))
}

// ParentValidationIDNotIn applies the NotIn predicate on the "parent_validation_id" field.
func ParentValidationIDNotIn(vs ...int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldParentValidationID, vs...))
}

// ParentValidationIDGT applies the GT predicate on the "parent_validation_id" field.
func ParentValidationIDGT(v int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldParentValidationID, v))
}

// ParentValidationIDGTE applies the GTE predicate on the "parent_validation_id" field.
func ParentValidationIDGTE(v int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldParentValidationID, v))
}

// ParentValidationIDLT applies the LT predicate on the "parent_validation_id" field.
func ParentValidationIDLT(v int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldParentValidationID, v))
}

// ParentValidationIDLTE applies the LTE predicate on the "parent_validation_id" field.
func ParentValidationIDLTE(v int64) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldParentValidationID, v))
}

// ParentValidationIDIsNil applies the IsNil predicate on the "parent_validation_id" field.
func ParentValidationIDIsNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIsNull(FieldParentValidationID))
}

// ParentValidationIDNotNil applies the NotNil predicate on the "parent_validation_id" field.
func ParentValidationIDNotNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotNull(FieldParentValidationID))
}

// ExternalCommentIDEQ applies the EQ predicate on the "external_comment_id" field.
func ExternalCommentIDEQ(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldExternalCommentID, v))
}

// ExternalCommentIDNEQ applies the NEQ predicate on the "external_comment_id" field.
func ExternalCommentIDNEQ(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldExternalCommentID, v))
}

// ExternalCommentIDIn applies the In predicate on the "external_comment_id" field.
func ExternalCommentIDIn(vs ...string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldExternalCommentID, vs...))
}

// ExternalCommentIDNotIn applies the NotIn predicate on the "external_comment_id" field.
func ExternalCommentIDNotIn(vs ...string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldExternalCommentID, vs...))
}

// ExternalCommentIDGT applies the GT predicate on the "external_comment_id" field.
func ExternalCommentIDGT(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldExternalCommentID, v))
}

// ExternalCommentIDGTE applies the GTE predicate on the "external_comment_id" field.
func ExternalCommentIDGTE(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldExternalCommentID, v))
}

// ExternalCommentIDLT applies the LT predicate on the "external_comment_id" field.
func ExternalCommentIDLT(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldExternalCommentID, v))
}

// ExternalCommentIDLTE applies the LTE predicate on the "external_comment_id" field.
func ExternalCommentIDLTE(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldExternalCommentID, v))
}

// ExternalCommentIDContains applies the Contains predicate on the "external_comment_id" field.
func ExternalCommentIDContains(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldContains(FieldExternalCommentID, v))
}

// ExternalCommentIDHasPrefix applies the HasPrefix predicate on the "external_comment_id" field.
func ExternalCommentIDHasPrefix(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldHasPrefix(FieldExternalCommentID, v))
}

// ExternalCommentIDHasSuffix applies the HasSuffix predicate on the "external_comment_id" field.
func ExternalCommentIDHasSuffix(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldHasSuffix(FieldExternalCommentID, v))
}

// ExternalCommentIDIsNil applies the IsNil predicate on the "external_comment_id" field.
func ExternalCommentIDIsNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIsNull(FieldExternalCommentID))
}

// ExternalCommentIDNotNil applies the NotNil predicate on the "external_comment_id" field.
func ExternalCommentIDNotNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotNull(FieldExternalCommentID))
}

// ExternalCommentIDEqualFold applies the EqualFold predicate on the "external_comment_id" field.
func ExternalCommentIDEqualFold(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEqualFold(FieldExternalCommentID, v))
}

// ExternalCommentIDContainsFold applies the ContainsFold predicate on the "external_comment_id" field.
func ExternalCommentIDContainsFold(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldContainsFold(FieldExternalCommentID, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldContainsFold(FieldBody, v))
}

// RequesterIDEQ applies the EQ predicate on the "requester_id" field.
func RequesterIDEQ(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldRequesterID, v))
}

// RequesterIDNEQ applies the NEQ predicate on the "requester_id" field.
func RequesterIDNEQ(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldRequesterID, v))
}

// RequesterIDIn applies the In predicate on the "requester_id" field.
func RequesterIDIn(vs ...string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldRequesterID, vs...))
}

// RequesterIDNotIn applies the NotIn predicate on the "requester_id" field.
func RequesterIDNotIn(vs ...string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldRequesterID, vs...))
}

// RequesterIDGT applies the GT predicate on the "requester_id" field.
func RequesterIDGT(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldRequesterID, v))
}

// RequesterIDGTE applies the GTE predicate on the "requester_id" field.
func RequesterIDGTE(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldRequesterID, v))
}

// RequesterIDLT applies the LT predicate on the "requester_id" field.
func RequesterIDLT(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldRequesterID, v))
}

// RequesterIDLTE applies the LTE predicate on the "requester_id" field.
func RequesterIDLTE(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldRequesterID, v))
}

// RequesterIDContains applies the Contains predicate on the "requester_id" field.
func RequesterIDContains(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldContains(FieldRequesterID, v))
}

// RequesterIDHasPrefix applies the HasPrefix predicate on the "requester_id" field.
func RequesterIDHasPrefix(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldHasPrefix(FieldRequesterID, v))
}

// RequesterIDHasSuffix applies the HasSuffix predicate on the "requester_id" field.
func RequesterIDHasSuffix(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldHasSuffix(FieldRequesterID, v))
}

// RequesterIDIsNil applies the IsNil predicate on the "requester_id" field.
func RequesterIDIsNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIsNull(FieldRequesterID))
}

// RequesterIDNotNil applies the NotNil predicate on the "requester_id" field.
func RequesterIDNotNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotNull(FieldRequesterID))
}

// RequesterIDEqualFold applies the EqualFold predicate on the "requester_id" field.
func RequesterIDEqualFold(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEqualFold(FieldRequesterID, v))
}

// RequesterIDContainsFold applies the ContainsFold predicate on the "requester_id" field.
func RequesterIDContainsFold(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldContainsFold(FieldRequesterID, v))
}

// RequesterEmailEQ applies the EQ predicate on the "requester_email" field.
func RequesterEmailEQ(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldRequesterEmail, v))
}

// RequesterEmailNEQ applies the NEQ predicate on the "requester_email" field.
func RequesterEmailNEQ(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldRequesterEmail, v))
}

// RequesterEmailIn applies the In predicate on the "requester_email" field.
func RequesterEmailIn(vs ...string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldRequesterEmail, vs...))
}

// RequesterEmailNotIn applies the NotIn predicate on the "requester_email" field.
func RequesterEmailNotIn(vs ...string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldRequesterEmail, vs...))
}

// RequesterEmailGT applies the GT predicate on the "requester_email" field.
func RequesterEmailGT(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldRequesterEmail, v))
}

// RequesterEmailGTE applies the GTE predicate on the "requester_email" field.
func RequesterEmailGTE(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldRequesterEmail, v))
}

// RequesterEmailLT applies the LT predicate on the "requester_email" field.
func RequesterEmailLT(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldRequesterEmail, v))
}

// RequesterEmailLTE applies the LTE predicate on the "requester_email" field.
func RequesterEmailLTE(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldRequesterEmail, v))
}

// RequesterEmailContains applies the Contains predicate on the "requester_email" field.
func RequesterEmailContains(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldContains(FieldRequesterEmail, v))
}

// RequesterEmailHasPrefix applies the HasPrefix predicate on the "requester_email" field.
func RequesterEmailHasPrefix(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldHasPrefix(FieldRequesterEmail, v))
}

// RequesterEmailHasSuffix applies the HasSuffix predicate on the "requester_email" field.
func RequesterEmailHasSuffix(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldHasSuffix(FieldRequesterEmail, v))
}

// RequesterEmailIsNil applies the IsNil predicate on the "requester_email" field.
func RequesterEmailIsNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIsNull(FieldRequesterEmail))
}

// RequesterEmailNotNil applies the NotNil predicate on the "requester_email" field.
func RequesterEmailNotNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotNull(FieldRequesterEmail))
}

// RequesterEmailEqualFold applies the EqualFold predicate on the "requester_email" field.
func RequesterEmailEqualFold(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEqualFold(FieldRequesterEmail, v))
}

// RequesterEmailContainsFold applies the ContainsFold predicate on the "requester_email" field.
func RequesterEmailContainsFold(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldContainsFold(FieldRequesterEmail, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// RejectionCountEQ applies the EQ predicate on the "rejection_count" field.
func RejectionCountEQ(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldRejectionCount, v))
}

// RejectionCountNEQ applies the NEQ predicate on the "rejection_count" field.
func RejectionCountNEQ(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldRejectionCount, v))
}

// RejectionCountIn applies the In predicate on the "rejection_count" field.
func RejectionCountIn(vs ...int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldRejectionCount, vs...))
}

// RejectionCountNotIn applies the NotIn predicate on the "rejection_count" field.
func RejectionCountNotIn(vs ...int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldRejectionCount, vs...))
}

// RejectionCountGT applies the GT predicate on the "rejection_count" field.
func RejectionCountGT(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldRejectionCount, v))
}

// RejectionCountGTE applies the GTE predicate on the "rejection_count" field.
func RejectionCountGTE(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldRejectionCount, v))
}

// RejectionCountLT applies the LT predicate on the "rejection_count" field.
func RejectionCountLT(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldRejectionCount, v))
}

// RejectionCountLTE applies the LTE predicate on the "rejection_count" field.
func RejectionCountLTE(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldRejectionCount, v))
}

// ModificationInstructionsEQ applies the EQ predicate on the "modification_instructions" field.
func ModificationInstructionsEQ(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldModificationInstructions, v))
}

// ModificationInstructionsNEQ applies the NEQ predicate on the "modification_instructions" field.
func ModificationInstructionsNEQ(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldModificationInstructions, v))
}

// ModificationInstructionsIn applies the In predicate on the "modification_instructions" field.
func ModificationInstructionsIn(vs ...string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldModificationInstructions, vs...))
}

// ModificationInstructionsNotIn applies the NotIn predicate on the "modification_instructions" field.
func ModificationInstructionsNotIn(vs ...string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldModificationInstructions, vs...))
}

// ModificationInstructionsGT applies the GT predicate on the "modification_instructions" field.
func ModificationInstructionsGT(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldModificationInstructions, v))
}

// ModificationInstructionsGTE applies the GTE predicate on the "modification_instructions" field.
func ModificationInstructionsGTE(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldModificationInstructions, v))
}

// ModificationInstructionsLT applies the LT predicate on the "modification_instructions" field.
func ModificationInstructionsLT(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldModificationInstructions, v))
}

// ModificationInstructionsLTE applies the LTE predicate on the "modification_instructions" field.
func ModificationInstructionsLTE(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldModificationInstructions, v))
}

// ModificationInstructionsContains applies the Contains predicate on the "modification_instructions" field.
func ModificationInstructionsContains(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldContains(FieldModificationInstructions, v))
}

// ModificationInstructionsHasPrefix applies the HasPrefix predicate on the "modification_instructions" field.
func ModificationInstructionsHasPrefix(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldHasPrefix(FieldModificationInstructions, v))
}

// ModificationInstructionsHasSuffix applies the HasSuffix predicate on the "modification_instructions" field.
func ModificationInstructionsHasSuffix(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldHasSuffix(FieldModificationInstructions, v))
}

// ModificationInstructionsIsNil applies the IsNil predicate on the "modification_instructions" field.
func ModificationInstructionsIsNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIsNull(FieldModificationInstructions))
}

// ModificationInstructionsNotNil applies the NotNil predicate on the "modification_instructions" field.
func ModificationInstructionsNotNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotNull(FieldModificationInstructions))
}

// ModificationInstructionsEqualFold applies the EqualFold predicate on the "modification_instructions" field.
func ModificationInstructionsEqualFold(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEqualFold(FieldModificationInstructions, v))
}

// ModificationInstructionsContainsFold applies the ContainsFold predicate on the "modification_instructions" field.
func ModificationInstructionsContainsFold(v string) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldContainsFold(FieldModificationInstructions, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotNull(FieldResolvedAt))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v int) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.ValidationRequest {
	return predicate.ValidationRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.ValidationRequest {
	return predicate.ValidationRequest(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResponse applies the HasEdge predicate on the "response" edge.
func HasResponse() predicate.ValidationRequest {
	return predicate.ValidationRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ResponseTable, ResponseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResponseWith applies the HasEdge predicate on the "response" edge with a given conditions (other predicates).
func HasResponseWith(preds ...predicate.ValidationResponse) predicate.ValidationRequest {
	return predicate.ValidationRequest(func(s *sql.Selector) {
		step := newResponseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationRequest) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationRequest) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationRequest) predicate.ValidationRequest {
	return predicate.ValidationRequest(sql.NotPredicates(p))
}
