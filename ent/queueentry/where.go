// Code generated by ent, DO NOT EDIT.

package queueentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldContainsFold(FieldID, id))
}

// ExternalItemID applies equality check predicate on the "external_item_id" field. It's identical to ExternalItemIDEQ.
func ExternalItemID(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldExternalItemID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldTaskID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldRunID, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldPriority, v))
}

// QueuedAt applies equality check predicate on the "queued_at" field. It's identical to QueuedAtEQ.
func QueuedAt(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldQueuedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldCompletedAt, v))
}

// WaitingSince applies equality check predicate on the "waiting_since" field. It's identical to WaitingSinceEQ.
func WaitingSince(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldWaitingSince, v))
}

// SchedulerRef applies equality check predicate on the "scheduler_ref" field. It's identical to SchedulerRefEQ.
func SchedulerRef(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldSchedulerRef, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldPodID, v))
}

// ExternalItemIDEQ applies the EQ predicate on the "external_item_id" field.
func ExternalItemIDEQ(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldExternalItemID, v))
}

// ExternalItemIDNEQ applies the NEQ predicate on the "external_item_id" field.
func ExternalItemIDNEQ(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldExternalItemID, v))
}

// ExternalItemIDIn applies the In predicate on the "external_item_id" field.
func ExternalItemIDIn(vs ...string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldExternalItemID, vs...))
}

// ExternalItemIDNotIn applies the NotIn predicate on the "external_item_id" field.
func ExternalItemIDNotIn(vs ...string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldExternalItemID, vs...))
}

// ExternalItemIDGT applies the GT predicate on the "external_item_id" field.
func ExternalItemIDGT(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldExternalItemID, v))
}

// ExternalItemIDGTE applies the GTE predicate on the "external_item_id" field.
func ExternalItemIDGTE(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldExternalItemID, v))
}

// ExternalItemIDLT applies the LT predicate on the "external_item_id" field.
func ExternalItemIDLT(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldExternalItemID, v))
}

// ExternalItemIDLTE applies the LTE predicate on the "external_item_id" field.
func ExternalItemIDLTE(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldExternalItemID, v))
}

// ExternalItemIDContains applies the Contains predicate on the "external_item_id" field.
func ExternalItemIDContains(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldContains(FieldExternalItemID, v))
}

// ExternalItemIDHasPrefix applies the HasPrefix predicate on the "external_item_id" field.
func ExternalItemIDHasPrefix(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldHasPrefix(FieldExternalItemID, v))
}

// ExternalItemIDHasSuffix applies the HasSuffix predicate on the "external_item_id" field.
func ExternalItemIDHasSuffix(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldHasSuffix(FieldExternalItemID, v))
}

// ExternalItemIDEqualFold applies the EqualFold predicate on the "external_item_id" field.
func ExternalItemIDEqualFold(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEqualFold(FieldExternalItemID, v))
}

// ExternalItemIDContainsFold applies the ContainsFold predicate on the "external_item_id" field.
func ExternalItemIDContainsFold(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldContainsFold(FieldExternalItemID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotNull(FieldTaskID))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v int64) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotNull(FieldRunID))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldPriority, v))
}

// QueuedAtEQ applies the EQ predicate on the "queued_at" field.
func QueuedAtEQ(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldQueuedAt, v))
}

// QueuedAtNEQ applies the NEQ predicate on the "queued_at" field.
func QueuedAtNEQ(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldQueuedAt, v))
}

// QueuedAtIn applies the In predicate on the "queued_at" field.
func QueuedAtIn(vs ...time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldQueuedAt, vs...))
}

// QueuedAtNotIn applies the NotIn predicate on the "queued_at" field.
func QueuedAtNotIn(vs ...time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldQueuedAt, vs...))
}

// QueuedAtGT applies the GT predicate on the "queued_at" field.
func QueuedAtGT(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldQueuedAt, v))
}

// QueuedAtGTE applies the GTE predicate on the "queued_at" field.
func QueuedAtGTE(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldQueuedAt, v))
}

// QueuedAtLT applies the LT predicate on the "queued_at" field.
func QueuedAtLT(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldQueuedAt, v))
}

// QueuedAtLTE applies the LTE predicate on the "queued_at" field.
func QueuedAtLTE(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldQueuedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotNull(FieldCompletedAt))
}

// WaitingSinceEQ applies the EQ predicate on the "waiting_since" field.
func WaitingSinceEQ(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldWaitingSince, v))
}

// WaitingSinceNEQ applies the NEQ predicate on the "waiting_since" field.
func WaitingSinceNEQ(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldWaitingSince, v))
}

// WaitingSinceIn applies the In predicate on the "waiting_since" field.
func WaitingSinceIn(vs ...time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldWaitingSince, vs...))
}

// WaitingSinceNotIn applies the NotIn predicate on the "waiting_since" field.
func WaitingSinceNotIn(vs ...time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldWaitingSince, vs...))
}

// WaitingSinceGT applies the GT predicate on the "waiting_since" field.
func WaitingSinceGT(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldWaitingSince, v))
}

// WaitingSinceGTE applies the GTE predicate on the "waiting_since" field.
func WaitingSinceGTE(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldWaitingSince, v))
}

// WaitingSinceLT applies the LT predicate on the "waiting_since" field.
func WaitingSinceLT(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldWaitingSince, v))
}

// WaitingSinceLTE applies the LTE predicate on the "waiting_since" field.
func WaitingSinceLTE(v time.Time) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldWaitingSince, v))
}

// WaitingSinceIsNil applies the IsNil predicate on the "waiting_since" field.
func WaitingSinceIsNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIsNull(FieldWaitingSince))
}

// WaitingSinceNotNil applies the NotNil predicate on the "waiting_since" field.
func WaitingSinceNotNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotNull(FieldWaitingSince))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// SchedulerRefEQ applies the EQ predicate on the "scheduler_ref" field.
func SchedulerRefEQ(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldSchedulerRef, v))
}

// SchedulerRefNEQ applies the NEQ predicate on the "scheduler_ref" field.
func SchedulerRefNEQ(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldSchedulerRef, v))
}

// SchedulerRefIn applies the In predicate on the "scheduler_ref" field.
func SchedulerRefIn(vs ...string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldSchedulerRef, vs...))
}

// SchedulerRefNotIn applies the NotIn predicate on the "scheduler_ref" field.
func SchedulerRefNotIn(vs ...string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldSchedulerRef, vs...))
}

// SchedulerRefGT applies the GT predicate on the "scheduler_ref" field.
func SchedulerRefGT(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldSchedulerRef, v))
}

// SchedulerRefGTE applies the GTE predicate on the "scheduler_ref" field.
func SchedulerRefGTE(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldSchedulerRef, v))
}

// SchedulerRefLT applies the LT predicate on the "scheduler_ref" field.
func SchedulerRefLT(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldSchedulerRef, v))
}

// SchedulerRefLTE applies the LTE predicate on the "scheduler_ref" field.
func SchedulerRefLTE(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldSchedulerRef, v))
}

// SchedulerRefContains applies the Contains predicate on the "scheduler_ref" field.
func SchedulerRefContains(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldContains(FieldSchedulerRef, v))
}

// SchedulerRefHasPrefix applies the HasPrefix predicate on the "scheduler_ref" field.
func SchedulerRefHasPrefix(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldHasPrefix(FieldSchedulerRef, v))
}

// SchedulerRefHasSuffix applies the HasSuffix predicate on the "scheduler_ref" field.
func SchedulerRefHasSuffix(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldHasSuffix(FieldSchedulerRef, v))
}

// SchedulerRefIsNil applies the IsNil predicate on the "scheduler_ref" field.
func SchedulerRefIsNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIsNull(FieldSchedulerRef))
}

// SchedulerRefNotNil applies the NotNil predicate on the "scheduler_ref" field.
func SchedulerRefNotNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotNull(FieldSchedulerRef))
}

// SchedulerRefEqualFold applies the EqualFold predicate on the "scheduler_ref" field.
func SchedulerRefEqualFold(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEqualFold(FieldSchedulerRef, v))
}

// SchedulerRefContainsFold applies the ContainsFold predicate on the "scheduler_ref" field.
func SchedulerRefContainsFold(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldContainsFold(FieldSchedulerRef, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldContainsFold(FieldPodID, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.QueueEntry {
	return predicate.QueueEntry(sql.FieldNotNull(FieldPayload))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueueEntry) predicate.QueueEntry {
	return predicate.QueueEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueueEntry) predicate.QueueEntry {
	return predicate.QueueEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueueEntry) predicate.QueueEntry {
	return predicate.QueueEntry(sql.NotPredicates(p))
}
