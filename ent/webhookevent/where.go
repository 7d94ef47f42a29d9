// Code generated by ent, DO NOT EDIT.

package webhookevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldSource, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldEventType, v))
}

// ExternalEventID applies equality check predicate on the "external_event_id" field. It's identical to ExternalEventIDEQ.
func ExternalEventID(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldExternalEventID, v))
}

// Signature applies equality check predicate on the "signature" field. It's identical to SignatureEQ.
func Signature(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldSignature, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldReceivedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProcessedAt, v))
}

// OutcomeDetail applies equality check predicate on the "outcome_detail" field. It's identical to OutcomeDetailEQ.
func OutcomeDetail(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldOutcomeDetail, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldSource, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeIsNil applies the IsNil predicate on the "event_type" field.
func EventTypeIsNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIsNull(FieldEventType))
}

// EventTypeNotNil applies the NotNil predicate on the "event_type" field.
func EventTypeNotNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotNull(FieldEventType))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldEventType, v))
}

// ExternalEventIDEQ applies the EQ predicate on the "external_event_id" field.
func ExternalEventIDEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldExternalEventID, v))
}

// ExternalEventIDNEQ applies the NEQ predicate on the "external_event_id" field.
func ExternalEventIDNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldExternalEventID, v))
}

// ExternalEventIDIn applies the In predicate on the "external_event_id" field.
func ExternalEventIDIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldExternalEventID, vs...))
}

// ExternalEventIDNotIn applies the NotIn predicate on the "external_event_id" field.
func ExternalEventIDNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldExternalEventID, vs...))
}

// ExternalEventIDGT applies the GT predicate on the "external_event_id" field.
func ExternalEventIDGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldExternalEventID, v))
}

// ExternalEventIDGTE applies the GTE predicate on the "external_event_id" field.
func ExternalEventIDGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldExternalEventID, v))
}

// ExternalEventIDLT applies the LT predicate on the "external_event_id" field.
func ExternalEventIDLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldExternalEventID, v))
}

// ExternalEventIDLTE applies the LTE predicate on the "external_event_id" field.
func ExternalEventIDLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldExternalEventID, v))
}

// ExternalEventIDContains applies the Contains predicate on the "external_event_id" field.
func ExternalEventIDContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldExternalEventID, v))
}

// ExternalEventIDHasPrefix applies the HasPrefix predicate on the "external_event_id" field.
func ExternalEventIDHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldExternalEventID, v))
}

// ExternalEventIDHasSuffix applies the HasSuffix predicate on the "external_event_id" field.
func ExternalEventIDHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldExternalEventID, v))
}

// ExternalEventIDIsNil applies the IsNil predicate on the "external_event_id" field.
func ExternalEventIDIsNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIsNull(FieldExternalEventID))
}

// ExternalEventIDNotNil applies the NotNil predicate on the "external_event_id" field.
func ExternalEventIDNotNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotNull(FieldExternalEventID))
}

// ExternalEventIDEqualFold applies the EqualFold predicate on the "external_event_id" field.
func ExternalEventIDEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldExternalEventID, v))
}

// ExternalEventIDContainsFold applies the ContainsFold predicate on the "external_event_id" field.
func ExternalEventIDContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldExternalEventID, v))
}

// HeadersIsNil applies the IsNil predicate on the "headers" field.
func HeadersIsNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIsNull(FieldHeaders))
}

// HeadersNotNil applies the NotNil predicate on the "headers" field.
func HeadersNotNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotNull(FieldHeaders))
}

// SignatureEQ applies the EQ predicate on the "signature" field.
func SignatureEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldSignature, v))
}

// SignatureNEQ applies the NEQ predicate on the "signature" field.
func SignatureNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldSignature, v))
}

// SignatureIn applies the In predicate on the "signature" field.
func SignatureIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldSignature, vs...))
}

// SignatureNotIn applies the NotIn predicate on the "signature" field.
func SignatureNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldSignature, vs...))
}

// SignatureGT applies the GT predicate on the "signature" field.
func SignatureGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldSignature, v))
}

// SignatureGTE applies the GTE predicate on the "signature" field.
func SignatureGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldSignature, v))
}

// SignatureLT applies the LT predicate on the "signature" field.
func SignatureLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldSignature, v))
}

// SignatureLTE applies the LTE predicate on the "signature" field.
func SignatureLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldSignature, v))
}

// SignatureContains applies the Contains predicate on the "signature" field.
func SignatureContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldSignature, v))
}

// SignatureHasPrefix applies the HasPrefix predicate on the "signature" field.
func SignatureHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldSignature, v))
}

// SignatureHasSuffix applies the HasSuffix predicate on the "signature" field.
func SignatureHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldSignature, v))
}

// SignatureIsNil applies the IsNil predicate on the "signature" field.
func SignatureIsNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIsNull(FieldSignature))
}

// SignatureNotNil applies the NotNil predicate on the "signature" field.
func SignatureNotNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotNull(FieldSignature))
}

// SignatureEqualFold applies the EqualFold predicate on the "signature" field.
func SignatureEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldSignature, v))
}

// SignatureContainsFold applies the ContainsFold predicate on the "signature" field.
func SignatureContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldSignature, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldReceivedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotNull(FieldProcessedAt))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeDetailEQ applies the EQ predicate on the "outcome_detail" field.
func OutcomeDetailEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldOutcomeDetail, v))
}

// OutcomeDetailNEQ applies the NEQ predicate on the "outcome_detail" field.
func OutcomeDetailNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldOutcomeDetail, v))
}

// OutcomeDetailIn applies the In predicate on the "outcome_detail" field.
func OutcomeDetailIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldOutcomeDetail, vs...))
}

// OutcomeDetailNotIn applies the NotIn predicate on the "outcome_detail" field.
func OutcomeDetailNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldOutcomeDetail, vs...))
}

// OutcomeDetailGT applies the GT predicate on the "outcome_detail" field.
func OutcomeDetailGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldOutcomeDetail, v))
}

// OutcomeDetailGTE applies the GTE predicate on the "outcome_detail" field.
func OutcomeDetailGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldOutcomeDetail, v))
}

// OutcomeDetailLT applies the LT predicate on the "outcome_detail" field.
func OutcomeDetailLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldOutcomeDetail, v))
}

// OutcomeDetailLTE applies the LTE predicate on the "outcome_detail" field.
func OutcomeDetailLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldOutcomeDetail, v))
}

// OutcomeDetailContains applies the Contains predicate on the "outcome_detail" field.
func OutcomeDetailContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldOutcomeDetail, v))
}

// OutcomeDetailHasPrefix applies the HasPrefix predicate on the "outcome_detail" field.
func OutcomeDetailHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldOutcomeDetail, v))
}

// OutcomeDetailHasSuffix applies the HasSuffix predicate on the "outcome_detail" field.
func OutcomeDetailHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldOutcomeDetail, v))
}

// OutcomeDetailIsNil applies the IsNil predicate on the "outcome_detail" field.
func OutcomeDetailIsNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIsNull(FieldOutcomeDetail))
}

// OutcomeDetailNotNil applies the NotNil predicate on the "outcome_detail" field.
func OutcomeDetailNotNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotNull(FieldOutcomeDetail))
}

// OutcomeDetailEqualFold applies the EqualFold predicate on the "outcome_detail" field.
func OutcomeDetailEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldOutcomeDetail, v))
}

// OutcomeDetailContainsFold applies the ContainsFold predicate on the "outcome_detail" field.
func OutcomeDetailContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldOutcomeDetail, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookEvent) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookEvent) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookEvent) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.NotPredicates(p))
}
