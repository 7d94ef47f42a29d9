// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTaskID, v))
}

// ParentRunID applies equality check predicate on the "parent_run_id" field. It's identical to ParentRunIDEQ.
func ParentRunID(v int64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldParentRunID, v))
}

// IsReactivation applies equality check predicate on the "is_reactivation" field. It's identical to IsReactivationEQ.
func IsReactivation(v bool) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldIsReactivation, v))
}

// ReactivationContext applies equality check predicate on the "reactivation_context" field. It's identical to ReactivationContextEQ.
func ReactivationContext(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldReactivationContext, v))
}

// NewRequirements applies equality check predicate on the "new_requirements" field. It's identical to NewRequirementsEQ.
func NewRequirements(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldNewRequirements, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// LastMergedPrURL applies equality check predicate on the "last_merged_pr_url" field. It's identical to LastMergedPrURLEQ.
func LastMergedPrURL(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastMergedPrURL, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int64) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int64) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int64) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTaskID, vs...))
}

// ParentRunIDEQ applies the EQ predicate on the "parent_run_id" field.
func ParentRunIDEQ(v int64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldParentRunID, v))
}

// ParentRunIDNEQ applies the NEQ predicate on the "parent_run_id" field.
func ParentRunIDNEQ(v int64) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldParentRunID, v))
}

// ParentRunIDIn applies the In predicate on the "parent_run_id" field.
func ParentRunIDIn(vs ...int64) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldParentRunID, vs...))
}

// ParentRunIDNotIn applies the NotIn predicate on the "parent_run_id" field.
func ParentRunIDNotIn(vs ...int64) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldParentRunID, vs...))
}

// ParentRunIDGT applies the GT predicate on the "parent_run_id" field.
func ParentRunIDGT(v int64) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldParentRunID, v))
}

// ParentRunIDGTE applies the GTE predicate on the "parent_run_id" field.
func ParentRunIDGTE(v int64) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldParentRunID, v))
}

// ParentRunIDLT applies the LT predicate on the "parent_run_id" field.
func ParentRunIDLT(v int64) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldParentRunID, v))
}

// ParentRunIDLTE applies the LTE predicate on the "parent_run_id" field.
func ParentRunIDLTE(v int64) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldParentRunID, v))
}

// ParentRunIDIsNil applies the IsNil predicate on the "parent_run_id" field.
func ParentRunIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldParentRunID))
}

// ParentRunIDNotNil applies the NotNil predicate on the "parent_run_id" field.
func ParentRunIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldParentRunID))
}

// IsReactivationEQ applies the EQ predicate on the "is_reactivation" field.
func IsReactivationEQ(v bool) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldIsReactivation, v))
}

// IsReactivationNEQ applies the NEQ predicate on the "is_reactivation" field.
func IsReactivationNEQ(v bool) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldIsReactivation, v))
}

// ReactivationContextEQ applies the EQ predicate on the "reactivation_context" field.
func ReactivationContextEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldReactivationContext, v))
}

// ReactivationContextNEQ applies the NEQ predicate on the "reactivation_context" field.
func ReactivationContextNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldReactivationContext, v))
}

// ReactivationContextIn applies the In predicate on the "reactivation_context" field.
func ReactivationContextIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldReactivationContext, vs...))
}

// ReactivationContextNotIn applies the NotIn predicate on the "reactivation_context" field.
func ReactivationContextNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldReactivationContext, vs...))
}

// ReactivationContextGT applies the GT predicate on the "reactivation_context" field.
func ReactivationContextGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldReactivationContext, v))
}

// ReactivationContextGTE applies the GTE predicate on the "reactivation_context" field.
func ReactivationContextGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldReactivationContext, v))
}

// ReactivationContextLT applies the LT predicate on the "reactivation_context" field.
func ReactivationContextLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldReactivationContext, v))
}

// ReactivationContextLTE applies the LTE predicate on the "reactivation_context" field.
func ReactivationContextLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldReactivationContext, v))
}

// ReactivationContextContains applies the Contains predicate on the "reactivation_context" field.
func ReactivationContextContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldReactivationContext, v))
}

// ReactivationContextHasPrefix applies the HasPrefix predicate on the "reactivation_context" field.
func ReactivationContextHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldReactivationContext, v))
}

// ReactivationContextHasSuffix applies the HasSuffix predicate on the "reactivation_context" field.
func ReactivationContextHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldReactivationContext, v))
}

// ReactivationContextIsNil applies the IsNil predicate on the "reactivation_context" field.
func ReactivationContextIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldReactivationContext))
}

// ReactivationContextNotNil applies the NotNil predicate on the "reactivation_context" field.
func ReactivationContextNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldReactivationContext))
}

// ReactivationContextEqualFold applies the EqualFold predicate on the "reactivation_context" field.
func ReactivationContextEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldReactivationContext, v))
}

// ReactivationContextContainsFold applies the ContainsFold predicate on the "reactivation_context" field.
func ReactivationContextContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldReactivationContext, v))
}

// NewRequirementsEQ applies the EQ predicate on the "new_requirements" field.
func NewRequirementsEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldNewRequirements, v))
}

// NewRequirementsNEQ applies the NEQ predicate on the "new_requirements" field.
func NewRequirementsNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldNewRequirements, v))
}

// NewRequirementsIn applies the In predicate on the "new_requirements" field.
func NewRequirementsIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldNewRequirements, vs...))
}

// NewRequirementsNotIn applies the NotIn predicate on the "new_requirements" field.
func NewRequirementsNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldNewRequirements, vs...))
}

// NewRequirementsGT applies the GT predicate on the "new_requirements" field.
func NewRequirementsGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldNewRequirements, v))
}

// NewRequirementsGTE applies the GTE predicate on the "new_requirements" field.
func NewRequirementsGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldNewRequirements, v))
}

// NewRequirementsLT applies the LT predicate on the "new_requirements" field.
func NewRequirementsLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldNewRequirements, v))
}

// NewRequirementsLTE applies the LTE predicate on the "new_requirements" field.
func NewRequirementsLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldNewRequirements, v))
}

// NewRequirementsContains applies the Contains predicate on the "new_requirements" field.
func NewRequirementsContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldNewRequirements, v))
}

// NewRequirementsHasPrefix applies the HasPrefix predicate on the "new_requirements" field.
func NewRequirementsHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldNewRequirements, v))
}

// NewRequirementsHasSuffix applies the HasSuffix predicate on the "new_requirements" field.
func NewRequirementsHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldNewRequirements, v))
}

// NewRequirementsIsNil applies the IsNil predicate on the "new_requirements" field.
func NewRequirementsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldNewRequirements))
}

// NewRequirementsNotNil applies the NotNil predicate on the "new_requirements" field.
func NewRequirementsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldNewRequirements))
}

// NewRequirementsEqualFold applies the EqualFold predicate on the "new_requirements" field.
func NewRequirementsEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldNewRequirements, v))
}

// NewRequirementsContainsFold applies the ContainsFold predicate on the "new_requirements" field.
func NewRequirementsContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldNewRequirements, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCompletedAt))
}

// LastMergedPrURLEQ applies the EQ predicate on the "last_merged_pr_url" field.
func LastMergedPrURLEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastMergedPrURL, v))
}

// LastMergedPrURLNEQ applies the NEQ predicate on the "last_merged_pr_url" field.
func LastMergedPrURLNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldLastMergedPrURL, v))
}

// LastMergedPrURLIn applies the In predicate on the "last_merged_pr_url" field.
func LastMergedPrURLIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldLastMergedPrURL, vs...))
}

// LastMergedPrURLNotIn applies the NotIn predicate on the "last_merged_pr_url" field.
func LastMergedPrURLNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldLastMergedPrURL, vs...))
}

// LastMergedPrURLGT applies the GT predicate on the "last_merged_pr_url" field.
func LastMergedPrURLGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldLastMergedPrURL, v))
}

// LastMergedPrURLGTE applies the GTE predicate on the "last_merged_pr_url" field.
func LastMergedPrURLGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldLastMergedPrURL, v))
}

// LastMergedPrURLLT applies the LT predicate on the "last_merged_pr_url" field.
func LastMergedPrURLLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldLastMergedPrURL, v))
}

// LastMergedPrURLLTE applies the LTE predicate on the "last_merged_pr_url" field.
func LastMergedPrURLLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldLastMergedPrURL, v))
}

// LastMergedPrURLContains applies the Contains predicate on the "last_merged_pr_url" field.
func LastMergedPrURLContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldLastMergedPrURL, v))
}

// LastMergedPrURLHasPrefix applies the HasPrefix predicate on the "last_merged_pr_url" field.
func LastMergedPrURLHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldLastMergedPrURL, v))
}

// LastMergedPrURLHasSuffix applies the HasSuffix predicate on the "last_merged_pr_url" field.
func LastMergedPrURLHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldLastMergedPrURL, v))
}

// LastMergedPrURLIsNil applies the IsNil predicate on the "last_merged_pr_url" field.
func LastMergedPrURLIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLastMergedPrURL))
}

// LastMergedPrURLNotNil applies the NotNil predicate on the "last_merged_pr_url" field.
func LastMergedPrURLNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLastMergedPrURL))
}

// LastMergedPrURLEqualFold applies the EqualFold predicate on the "last_merged_pr_url" field.
func LastMergedPrURLEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldLastMergedPrURL, v))
}

// LastMergedPrURLContainsFold applies the ContainsFold predicate on the "last_merged_pr_url" field.
func LastMergedPrURLContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldLastMergedPrURL, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStageExecutions applies the HasEdge predicate on the "stage_executions" edge.
func HasStageExecutions() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StageExecutionsTable, StageExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageExecutionsWith applies the HasEdge predicate on the "stage_executions" edge with a given conditions (other predicates).
func HasStageExecutionsWith(preds ...predicate.StageExecution) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newStageExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasValidationRequests applies the HasEdge predicate on the "validation_requests" edge.
func HasValidationRequests() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ValidationRequestsTable, ValidationRequestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasValidationRequestsWith applies the HasEdge predicate on the "validation_requests" edge with a given conditions (other predicates).
func HasValidationRequestsWith(preds ...predicate.ValidationRequest) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newValidationRequestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
