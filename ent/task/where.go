// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// ExternalItemID applies equality check predicate on the "external_item_id" field. It's identical to ExternalItemIDEQ.
func ExternalItemID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldExternalItemID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// RepositoryURL applies equality check predicate on the "repository_url" field. It's identical to RepositoryURLEQ.
func RepositoryURL(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepositoryURL, v))
}

// UserLanguage applies equality check predicate on the "user_language" field. It's identical to UserLanguageEQ.
func UserLanguage(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUserLanguage, v))
}

// CreatorID applies equality check predicate on the "creator_id" field. It's identical to CreatorIDEQ.
func CreatorID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatorID, v))
}

// CreatorEmail applies equality check predicate on the "creator_email" field. It's identical to CreatorEmailEQ.
func CreatorEmail(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatorEmail, v))
}

// ReactivationCount applies equality check predicate on the "reactivation_count" field. It's identical to ReactivationCountEQ.
func ReactivationCount(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReactivationCount, v))
}

// CooldownUntil applies equality check predicate on the "cooldown_until" field. It's identical to CooldownUntilEQ.
func CooldownUntil(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCooldownUntil, v))
}

// IsLocked applies equality check predicate on the "is_locked" field. It's identical to IsLockedEQ.
func IsLocked(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsLocked, v))
}

// LastRunID applies equality check predicate on the "last_run_id" field. It's identical to LastRunIDEQ.
func LastRunID(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastRunID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExternalItemIDEQ applies the EQ predicate on the "external_item_id" field.
func ExternalItemIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldExternalItemID, v))
}

// ExternalItemIDNEQ applies the NEQ predicate on the "external_item_id" field.
func ExternalItemIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldExternalItemID, v))
}

// ExternalItemIDIn applies the In predicate on the "external_item_id" field.
func ExternalItemIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldExternalItemID, vs...))
}

// ExternalItemIDNotIn applies the NotIn predicate on the "external_item_id" field.
func ExternalItemIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldExternalItemID, vs...))
}

// ExternalItemIDGT applies the GT predicate on the "external_item_id" field.
func ExternalItemIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldExternalItemID, v))
}

// ExternalItemIDGTE applies the GTE predicate on the "external_item_id" field.
func ExternalItemIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldExternalItemID, v))
}

// ExternalItemIDLT applies the LT predicate on the "external_item_id" field.
func ExternalItemIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldExternalItemID, v))
}

// ExternalItemIDLTE applies the LTE predicate on the "external_item_id" field.
func ExternalItemIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldExternalItemID, v))
}

// ExternalItemIDContains applies the Contains predicate on the "external_item_id" field.
func ExternalItemIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldExternalItemID, v))
}

// ExternalItemIDHasPrefix applies the HasPrefix predicate on the "external_item_id" field.
func ExternalItemIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldExternalItemID, v))
}

// ExternalItemIDHasSuffix applies the HasSuffix predicate on the "external_item_id" field.
func ExternalItemIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldExternalItemID, v))
}

// ExternalItemIDEqualFold applies the EqualFold predicate on the "external_item_id" field.
func ExternalItemIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldExternalItemID, v))
}

// ExternalItemIDContainsFold applies the ContainsFold predicate on the "external_item_id" field.
func ExternalItemIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldExternalItemID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// RepositoryURLEQ applies the EQ predicate on the "repository_url" field.
func RepositoryURLEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepositoryURL, v))
}

// RepositoryURLNEQ applies the NEQ predicate on the "repository_url" field.
func RepositoryURLNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRepositoryURL, v))
}

// RepositoryURLIn applies the In predicate on the "repository_url" field.
func RepositoryURLIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRepositoryURL, vs...))
}

// RepositoryURLNotIn applies the NotIn predicate on the "repository_url" field.
func RepositoryURLNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRepositoryURL, vs...))
}

// RepositoryURLGT applies the GT predicate on the "repository_url" field.
func RepositoryURLGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRepositoryURL, v))
}

// RepositoryURLGTE applies the GTE predicate on the "repository_url" field.
func RepositoryURLGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRepositoryURL, v))
}

// RepositoryURLLT applies the LT predicate on the "repository_url" field.
func RepositoryURLLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRepositoryURL, v))
}

// RepositoryURLLTE applies the LTE predicate on the "repository_url" field.
func RepositoryURLLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRepositoryURL, v))
}

// RepositoryURLContains applies the Contains predicate on the "repository_url" field.
func RepositoryURLContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldRepositoryURL, v))
}

// RepositoryURLHasPrefix applies the HasPrefix predicate on the "repository_url" field.
func RepositoryURLHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldRepositoryURL, v))
}

// RepositoryURLHasSuffix applies the HasSuffix predicate on the "repository_url" field.
func RepositoryURLHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldRepositoryURL, v))
}

// RepositoryURLIsNil applies the IsNil predicate on the "repository_url" field.
func RepositoryURLIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldRepositoryURL))
}

// RepositoryURLNotNil applies the NotNil predicate on the "repository_url" field.
func RepositoryURLNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldRepositoryURL))
}

// RepositoryURLEqualFold applies the EqualFold predicate on the "repository_url" field.
func RepositoryURLEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldRepositoryURL, v))
}

// RepositoryURLContainsFold applies the ContainsFold predicate on the "repository_url" field.
func RepositoryURLContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldRepositoryURL, v))
}

// UserLanguageEQ applies the EQ predicate on the "user_language" field.
func UserLanguageEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUserLanguage, v))
}

// UserLanguageNEQ applies the NEQ predicate on the "user_language" field.
func UserLanguageNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUserLanguage, v))
}

// UserLanguageIn applies the In predicate on the "user_language" field.
func UserLanguageIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUserLanguage, vs...))
}

// UserLanguageNotIn applies the NotIn predicate on the "user_language" field.
func UserLanguageNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUserLanguage, vs...))
}

// UserLanguageGT applies the GT predicate on the "user_language" field.
func UserLanguageGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUserLanguage, v))
}

// UserLanguageGTE applies the GTE predicate on the "user_language" field.
func UserLanguageGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUserLanguage, v))
}

// UserLanguageLT applies the LT predicate on the "user_language" field.
func UserLanguageLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUserLanguage, v))
}

// UserLanguageLTE applies the LTE predicate on the "user_language" field.
func UserLanguageLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUserLanguage, v))
}

// UserLanguageContains applies the Contains predicate on the "user_language" field.
func UserLanguageContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldUserLanguage, v))
}

// UserLanguageHasPrefix applies the HasPrefix predicate on the "user_language" field.
func UserLanguageHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldUserLanguage, v))
}

// UserLanguageHasSuffix applies the HasSuffix predicate on the "user_language" field.
func UserLanguageHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldUserLanguage, v))
}

// UserLanguageEqualFold applies the EqualFold predicate on the "user_language" field.
func UserLanguageEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldUserLanguage, v))
}

// UserLanguageContainsFold applies the ContainsFold predicate on the "user_language" field.
func UserLanguageContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldUserLanguage, v))
}

// CreatorIDEQ applies the EQ predicate on the "creator_id" field.
func CreatorIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatorID, v))
}

// CreatorIDNEQ applies the NEQ predicate on the "creator_id" field.
func CreatorIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatorID, v))
}

// CreatorIDIn applies the In predicate on the "creator_id" field.
func CreatorIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatorID, vs...))
}

// CreatorIDNotIn applies the NotIn predicate on the "creator_id" field.
func CreatorIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatorID, vs...))
}

// CreatorIDGT applies the GT predicate on the "creator_id" field.
func CreatorIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatorID, v))
}

// CreatorIDGTE applies the GTE predicate on the "creator_id" field.
func CreatorIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatorID, v))
}

// CreatorIDLT applies the LT predicate on the "creator_id" field.
func CreatorIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatorID, v))
}

// CreatorIDLTE applies the LTE predicate on the "creator_id" field.
func CreatorIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatorID, v))
}

// CreatorIDContains applies the Contains predicate on the "creator_id" field.
func CreatorIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCreatorID, v))
}

// CreatorIDHasPrefix applies the HasPrefix predicate on the "creator_id" field.
func CreatorIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCreatorID, v))
}

// CreatorIDHasSuffix applies the HasSuffix predicate on the "creator_id" field.
func CreatorIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCreatorID, v))
}

// CreatorIDIsNil applies the IsNil predicate on the "creator_id" field.
func CreatorIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCreatorID))
}

// CreatorIDNotNil applies the NotNil predicate on the "creator_id" field.
func CreatorIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCreatorID))
}

// CreatorIDEqualFold applies the EqualFold predicate on the "creator_id" field.
func CreatorIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCreatorID, v))
}

// CreatorIDContainsFold applies the ContainsFold predicate on the "creator_id" field.
func CreatorIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCreatorID, v))
}

// CreatorEmailEQ applies the EQ predicate on the "creator_email" field.
func CreatorEmailEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatorEmail, v))
}

// CreatorEmailNEQ applies the NEQ predicate on the "creator_email" field.
func CreatorEmailNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatorEmail, v))
}

// CreatorEmailIn applies the In predicate on the "creator_email" field.
func CreatorEmailIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatorEmail, vs...))
}

// CreatorEmailNotIn applies the NotIn predicate on the "creator_email" field.
func CreatorEmailNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatorEmail, vs...))
}

// CreatorEmailGT applies the GT predicate on the "creator_email" field.
func CreatorEmailGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatorEmail, v))
}

// CreatorEmailGTE applies the GTE predicate on the "creator_email" field.
func CreatorEmailGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatorEmail, v))
}

// CreatorEmailLT applies the LT predicate on the "creator_email" field.
func CreatorEmailLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatorEmail, v))
}

// CreatorEmailLTE applies the LTE predicate on the "creator_email" field.
func CreatorEmailLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatorEmail, v))
}

// CreatorEmailContains applies the Contains predicate on the "creator_email" field.
func CreatorEmailContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCreatorEmail, v))
}

// CreatorEmailHasPrefix applies the HasPrefix predicate on the "creator_email" field.
func CreatorEmailHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCreatorEmail, v))
}

// CreatorEmailHasSuffix applies the HasSuffix predicate on the "creator_email" field.
func CreatorEmailHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCreatorEmail, v))
}

// CreatorEmailIsNil applies the IsNil predicate on the "creator_email" field.
func CreatorEmailIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCreatorEmail))
}

// CreatorEmailNotNil applies the NotNil predicate on the "creator_email" field.
func CreatorEmailNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCreatorEmail))
}

// CreatorEmailEqualFold applies the EqualFold predicate on the "creator_email" field.
func CreatorEmailEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCreatorEmail, v))
}

// CreatorEmailContainsFold applies the ContainsFold predicate on the "creator_email" field.
func CreatorEmailContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCreatorEmail, v))
}

// InternalStatusEQ applies the EQ predicate on the "internal_status" field.
func InternalStatusEQ(v InternalStatus) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldInternalStatus, v))
}

// InternalStatusNEQ applies the NEQ predicate on the "internal_status" field.
func InternalStatusNEQ(v InternalStatus) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldInternalStatus, v))
}

// InternalStatusIn applies the In predicate on the "internal_status" field.
func InternalStatusIn(vs ...InternalStatus) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldInternalStatus, vs...))
}

// InternalStatusNotIn applies the NotIn predicate on the "internal_status" field.
func InternalStatusNotIn(vs ...InternalStatus) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldInternalStatus, vs...))
}

// ReactivationCountEQ applies the EQ predicate on the "reactivation_count" field.
func ReactivationCountEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReactivationCount, v))
}

// ReactivationCountNEQ applies the NEQ predicate on the "reactivation_count" field.
func ReactivationCountNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldReactivationCount, v))
}

// ReactivationCountIn applies the In predicate on the "reactivation_count" field.
func ReactivationCountIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldReactivationCount, vs...))
}

// ReactivationCountNotIn applies the NotIn predicate on the "reactivation_count" field.
func ReactivationCountNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldReactivationCount, vs...))
}

// ReactivationCountGT applies the GT predicate on the "reactivation_count" field.
func ReactivationCountGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldReactivationCount, v))
}

// ReactivationCountGTE applies the GTE predicate on the "reactivation_count" field.
func ReactivationCountGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldReactivationCount, v))
}

// ReactivationCountLT applies the LT predicate on the "reactivation_count" field.
func ReactivationCountLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldReactivationCount, v))
}

// ReactivationCountLTE applies the LTE predicate on the "reactivation_count" field.
func ReactivationCountLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldReactivationCount, v))
}

// CooldownUntilEQ applies the EQ predicate on the "cooldown_until" field.
func CooldownUntilEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCooldownUntil, v))
}

// CooldownUntilNEQ applies the NEQ predicate on the "cooldown_until" field.
func CooldownUntilNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCooldownUntil, v))
}

// CooldownUntilIn applies the In predicate on the "cooldown_until" field.
func CooldownUntilIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCooldownUntil, vs...))
}

// CooldownUntilNotIn applies the NotIn predicate on the "cooldown_until" field.
func CooldownUntilNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCooldownUntil, vs...))
}

// CooldownUntilGT applies the GT predicate on the "cooldown_until" field.
func CooldownUntilGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCooldownUntil, v))
}

// CooldownUntilGTE applies the GTE predicate on the "cooldown_until" field.
func CooldownUntilGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCooldownUntil, v))
}

// CooldownUntilLT applies the LT predicate on the "cooldown_until" field.
func CooldownUntilLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCooldownUntil, v))
}

// CooldownUntilLTE applies the LTE predicate on the "cooldown_until" field.
func CooldownUntilLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCooldownUntil, v))
}

// CooldownUntilIsNil applies the IsNil predicate on the "cooldown_until" field.
func CooldownUntilIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCooldownUntil))
}

// CooldownUntilNotNil applies the NotNil predicate on the "cooldown_until" field.
func CooldownUntilNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCooldownUntil))
}

// IsLockedEQ applies the EQ predicate on the "is_locked" field.
func IsLockedEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsLocked, v))
}

// IsLockedNEQ applies the NEQ predicate on the "is_locked" field.
func IsLockedNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIsLocked, v))
}

// LastRunIDEQ applies the EQ predicate on the "last_run_id" field.
func LastRunIDEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastRunID, v))
}

// LastRunIDNEQ applies the NEQ predicate on the "last_run_id" field.
func LastRunIDNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastRunID, v))
}

// LastRunIDIn applies the In predicate on the "last_run_id" field.
func LastRunIDIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastRunID, vs...))
}

// LastRunIDNotIn applies the NotIn predicate on the "last_run_id" field.
func LastRunIDNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastRunID, vs...))
}

// LastRunIDGT applies the GT predicate on the "last_run_id" field.
func LastRunIDGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastRunID, v))
}

// LastRunIDGTE applies the GTE predicate on the "last_run_id" field.
func LastRunIDGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastRunID, v))
}

// LastRunIDLT applies the LT predicate on the "last_run_id" field.
func LastRunIDLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastRunID, v))
}

// LastRunIDLTE applies the LTE predicate on the "last_run_id" field.
func LastRunIDLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastRunID, v))
}

// LastRunIDIsNil applies the IsNil predicate on the "last_run_id" field.
func LastRunIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastRunID))
}

// LastRunIDNotNil applies the NotNil predicate on the "last_run_id" field.
func LastRunIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastRunID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.Run) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
