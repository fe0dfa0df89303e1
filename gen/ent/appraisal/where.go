// Code generated by ent, DO NOT EDIT.

package appraisal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLTE(FieldID, id))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldEmployeeID, v))
}

// DateCreated applies equality check predicate on the "date_created" field. It's identical to DateCreatedEQ.
func DateCreated(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldDateCreated, v))
}

// ReviewPeriodStart applies equality check predicate on the "review_period_start" field. It's identical to ReviewPeriodStartEQ.
func ReviewPeriodStart(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldReviewPeriodStart, v))
}

// ReviewPeriodEnd applies equality check predicate on the "review_period_end" field. It's identical to ReviewPeriodEndEQ.
func ReviewPeriodEnd(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldReviewPeriodEnd, v))
}

// CareerAspirations applies equality check predicate on the "career_aspirations" field. It's identical to CareerAspirationsEQ.
func CareerAspirations(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldCareerAspirations, v))
}

// OngoingResearch applies equality check predicate on the "ongoing_research" field. It's identical to OngoingResearchEQ.
func OngoingResearch(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldOngoingResearch, v))
}

// LastResearch applies equality check predicate on the "last_research" field. It's identical to LastResearchEQ.
func LastResearch(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldLastResearch, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...uuid.UUID) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// DateCreatedEQ applies the EQ predicate on the "date_created" field.
func DateCreatedEQ(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldDateCreated, v))
}

// DateCreatedNEQ applies the NEQ predicate on the "date_created" field.
func DateCreatedNEQ(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNEQ(FieldDateCreated, v))
}

// DateCreatedIn applies the In predicate on the "date_created" field.
func DateCreatedIn(vs ...time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIn(FieldDateCreated, vs...))
}

// DateCreatedNotIn applies the NotIn predicate on the "date_created" field.
func DateCreatedNotIn(vs ...time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotIn(FieldDateCreated, vs...))
}

// DateCreatedGT applies the GT predicate on the "date_created" field.
func DateCreatedGT(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGT(FieldDateCreated, v))
}

// DateCreatedGTE applies the GTE predicate on the "date_created" field.
func DateCreatedGTE(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGTE(FieldDateCreated, v))
}

// DateCreatedLT applies the LT predicate on the "date_created" field.
func DateCreatedLT(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLT(FieldDateCreated, v))
}

// DateCreatedLTE applies the LTE predicate on the "date_created" field.
func DateCreatedLTE(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLTE(FieldDateCreated, v))
}

// ReviewPeriodStartEQ applies the EQ predicate on the "review_period_start" field.
func ReviewPeriodStartEQ(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldReviewPeriodStart, v))
}

// ReviewPeriodStartNEQ applies the NEQ predicate on the "review_period_start" field.
func ReviewPeriodStartNEQ(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNEQ(FieldReviewPeriodStart, v))
}

// ReviewPeriodStartIn applies the In predicate on the "review_period_start" field.
func ReviewPeriodStartIn(vs ...time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIn(FieldReviewPeriodStart, vs...))
}

// ReviewPeriodStartNotIn applies the NotIn predicate on the "review_period_start" field.
func ReviewPeriodStartNotIn(vs ...time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotIn(FieldReviewPeriodStart, vs...))
}

// ReviewPeriodStartGT applies the GT predicate on the "review_period_start" field.
func ReviewPeriodStartGT(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGT(FieldReviewPeriodStart, v))
}

// ReviewPeriodStartGTE applies the GTE predicate on the "review_period_start" field.
func ReviewPeriodStartGTE(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGTE(FieldReviewPeriodStart, v))
}

// ReviewPeriodStartLT applies the LT predicate on the "review_period_start" field.
func ReviewPeriodStartLT(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLT(FieldReviewPeriodStart, v))
}

// ReviewPeriodStartLTE applies the LTE predicate on the "review_period_start" field.
func ReviewPeriodStartLTE(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLTE(FieldReviewPeriodStart, v))
}

// ReviewPeriodStartIsNil applies the IsNil predicate on the "review_period_start" field.
func ReviewPeriodStartIsNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIsNull(FieldReviewPeriodStart))
}

// ReviewPeriodStartNotNil applies the NotNil predicate on the "review_period_start" field.
func ReviewPeriodStartNotNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotNull(FieldReviewPeriodStart))
}

// ReviewPeriodEndEQ applies the EQ predicate on the "review_period_end" field.
func ReviewPeriodEndEQ(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldReviewPeriodEnd, v))
}

// ReviewPeriodEndNEQ applies the NEQ predicate on the "review_period_end" field.
func ReviewPeriodEndNEQ(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNEQ(FieldReviewPeriodEnd, v))
}

// ReviewPeriodEndIn applies the In predicate on the "review_period_end" field.
func ReviewPeriodEndIn(vs ...time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIn(FieldReviewPeriodEnd, vs...))
}

// ReviewPeriodEndNotIn applies the NotIn predicate on the "review_period_end" field.
func ReviewPeriodEndNotIn(vs ...time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotIn(FieldReviewPeriodEnd, vs...))
}

// ReviewPeriodEndGT applies the GT predicate on the "review_period_end" field.
func ReviewPeriodEndGT(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGT(FieldReviewPeriodEnd, v))
}

// ReviewPeriodEndGTE applies the GTE predicate on the "review_period_end" field.
func ReviewPeriodEndGTE(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGTE(FieldReviewPeriodEnd, v))
}

// ReviewPeriodEndLT applies the LT predicate on the "review_period_end" field.
func ReviewPeriodEndLT(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLT(FieldReviewPeriodEnd, v))
}

// ReviewPeriodEndLTE applies the LTE predicate on the "review_period_end" field.
func ReviewPeriodEndLTE(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLTE(FieldReviewPeriodEnd, v))
}

// ReviewPeriodEndIsNil applies the IsNil predicate on the "review_period_end" field.
func ReviewPeriodEndIsNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIsNull(FieldReviewPeriodEnd))
}

// ReviewPeriodEndNotNil applies the NotNil predicate on the "review_period_end" field.
func ReviewPeriodEndNotNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotNull(FieldReviewPeriodEnd))
}

// SectionsIsNil applies the IsNil predicate on the "sections" field.
func SectionsIsNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIsNull(FieldSections))
}

// SectionsNotNil applies the NotNil predicate on the "sections" field.
func SectionsNotNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotNull(FieldSections))
}

// RatingsIsNil applies the IsNil predicate on the "ratings" field.
func RatingsIsNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIsNull(FieldRatings))
}

// RatingsNotNil applies the NotNil predicate on the "ratings" field.
func RatingsNotNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotNull(FieldRatings))
}

// CommentsIsNil applies the IsNil predicate on the "comments" field.
func CommentsIsNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIsNull(FieldComments))
}

// CommentsNotNil applies the NotNil predicate on the "comments" field.
func CommentsNotNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotNull(FieldComments))
}

// CareerAspirationsEQ applies the EQ predicate on the "career_aspirations" field.
func CareerAspirationsEQ(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldCareerAspirations, v))
}

// CareerAspirationsNEQ applies the NEQ predicate on the "career_aspirations" field.
func CareerAspirationsNEQ(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNEQ(FieldCareerAspirations, v))
}

// CareerAspirationsIn applies the In predicate on the "career_aspirations" field.
func CareerAspirationsIn(vs ...string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIn(FieldCareerAspirations, vs...))
}

// CareerAspirationsNotIn applies the NotIn predicate on the "career_aspirations" field.
func CareerAspirationsNotIn(vs ...string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotIn(FieldCareerAspirations, vs...))
}

// CareerAspirationsGT applies the GT predicate on the "career_aspirations" field.
func CareerAspirationsGT(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGT(FieldCareerAspirations, v))
}

// CareerAspirationsGTE applies the GTE predicate on the "career_aspirations" field.
func CareerAspirationsGTE(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGTE(FieldCareerAspirations, v))
}

// CareerAspirationsLT applies the LT predicate on the "career_aspirations" field.
func CareerAspirationsLT(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLT(FieldCareerAspirations, v))
}

// CareerAspirationsLTE applies the LTE predicate on the "career_aspirations" field.
func CareerAspirationsLTE(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLTE(FieldCareerAspirations, v))
}

// CareerAspirationsContains applies the Contains predicate on the "career_aspirations" field.
func CareerAspirationsContains(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldContains(FieldCareerAspirations, v))
}

// CareerAspirationsHasPrefix applies the HasPrefix predicate on the "career_aspirations" field.
func CareerAspirationsHasPrefix(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldHasPrefix(FieldCareerAspirations, v))
}

// CareerAspirationsHasSuffix applies the HasSuffix predicate on the "career_aspirations" field.
func CareerAspirationsHasSuffix(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldHasSuffix(FieldCareerAspirations, v))
}

// CareerAspirationsIsNil applies the IsNil predicate on the "career_aspirations" field.
func CareerAspirationsIsNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIsNull(FieldCareerAspirations))
}

// CareerAspirationsNotNil applies the NotNil predicate on the "career_aspirations" field.
func CareerAspirationsNotNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotNull(FieldCareerAspirations))
}

// CareerAspirationsEqualFold applies the EqualFold predicate on the "career_aspirations" field.
func CareerAspirationsEqualFold(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEqualFold(FieldCareerAspirations, v))
}

// CareerAspirationsContainsFold applies the ContainsFold predicate on the "career_aspirations" field.
func CareerAspirationsContainsFold(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldContainsFold(FieldCareerAspirations, v))
}

// OngoingResearchEQ applies the EQ predicate on the "ongoing_research" field.
func OngoingResearchEQ(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldOngoingResearch, v))
}

// OngoingResearchNEQ applies the NEQ predicate on the "ongoing_research" field.
func OngoingResearchNEQ(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNEQ(FieldOngoingResearch, v))
}

// OngoingResearchIn applies the In predicate on the "ongoing_research" field.
func OngoingResearchIn(vs ...string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIn(FieldOngoingResearch, vs...))
}

// OngoingResearchNotIn applies the NotIn predicate on the "ongoing_research" field.
func OngoingResearchNotIn(vs ...string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotIn(FieldOngoingResearch, vs...))
}

// OngoingResearchGT applies the GT predicate on the "ongoing_research" field.
func OngoingResearchGT(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGT(FieldOngoingResearch, v))
}

// OngoingResearchGTE applies the GTE predicate on the "ongoing_research" field.
func OngoingResearchGTE(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGTE(FieldOngoingResearch, v))
}

// OngoingResearchLT applies the LT predicate on the "ongoing_research" field.
func OngoingResearchLT(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLT(FieldOngoingResearch, v))
}

// OngoingResearchLTE applies the LTE predicate on the "ongoing_research" field.
func OngoingResearchLTE(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLTE(FieldOngoingResearch, v))
}

// OngoingResearchContains applies the Contains predicate on the "ongoing_research" field.
func OngoingResearchContains(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldContains(FieldOngoingResearch, v))
}

// OngoingResearchHasPrefix applies the HasPrefix predicate on the "ongoing_research" field.
func OngoingResearchHasPrefix(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldHasPrefix(FieldOngoingResearch, v))
}

// OngoingResearchHasSuffix applies the HasSuffix predicate on the "ongoing_research" field.
func OngoingResearchHasSuffix(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldHasSuffix(FieldOngoingResearch, v))
}

// OngoingResearchIsNil applies the IsNil predicate on the "ongoing_research" field.
func OngoingResearchIsNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIsNull(FieldOngoingResearch))
}

// OngoingResearchNotNil applies the NotNil predicate on the "ongoing_research" field.
func OngoingResearchNotNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotNull(FieldOngoingResearch))
}

// OngoingResearchEqualFold applies the EqualFold predicate on the "ongoing_research" field.
func OngoingResearchEqualFold(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEqualFold(FieldOngoingResearch, v))
}

// OngoingResearchContainsFold applies the ContainsFold predicate on the "ongoing_research" field.
func OngoingResearchContainsFold(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldContainsFold(FieldOngoingResearch, v))
}

// LastResearchEQ applies the EQ predicate on the "last_research" field.
func LastResearchEQ(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldLastResearch, v))
}

// LastResearchNEQ applies the NEQ predicate on the "last_research" field.
func LastResearchNEQ(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNEQ(FieldLastResearch, v))
}

// LastResearchIn applies the In predicate on the "last_research" field.
func LastResearchIn(vs ...string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIn(FieldLastResearch, vs...))
}

// LastResearchNotIn applies the NotIn predicate on the "last_research" field.
func LastResearchNotIn(vs ...string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotIn(FieldLastResearch, vs...))
}

// LastResearchGT applies the GT predicate on the "last_research" field.
func LastResearchGT(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGT(FieldLastResearch, v))
}

// LastResearchGTE applies the GTE predicate on the "last_research" field.
func LastResearchGTE(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGTE(FieldLastResearch, v))
}

// LastResearchLT applies the LT predicate on the "last_research" field.
func LastResearchLT(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLT(FieldLastResearch, v))
}

// LastResearchLTE applies the LTE predicate on the "last_research" field.
func LastResearchLTE(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLTE(FieldLastResearch, v))
}

// LastResearchContains applies the Contains predicate on the "last_research" field.
func LastResearchContains(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldContains(FieldLastResearch, v))
}

// LastResearchHasPrefix applies the HasPrefix predicate on the "last_research" field.
func LastResearchHasPrefix(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldHasPrefix(FieldLastResearch, v))
}

// LastResearchHasSuffix applies the HasSuffix predicate on the "last_research" field.
func LastResearchHasSuffix(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldHasSuffix(FieldLastResearch, v))
}

// LastResearchIsNil applies the IsNil predicate on the "last_research" field.
func LastResearchIsNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIsNull(FieldLastResearch))
}

// LastResearchNotNil applies the NotNil predicate on the "last_research" field.
func LastResearchNotNil() predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotNull(FieldLastResearch))
}

// LastResearchEqualFold applies the EqualFold predicate on the "last_research" field.
func LastResearchEqualFold(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEqualFold(FieldLastResearch, v))
}

// LastResearchContainsFold applies the ContainsFold predicate on the "last_research" field.
func LastResearchContainsFold(v string) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldContainsFold(FieldLastResearch, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Appraisal {
	return predicate.Appraisal(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEmployee applies the HasEdge predicate on the "employee" edge.
func HasEmployee() predicate.Appraisal {
	return predicate.Appraisal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmployeeTable, EmployeeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmployeeWith applies the HasEdge predicate on the "employee" edge with a given conditions (other predicates).
func HasEmployeeWith(preds ...predicate.Employee) predicate.Appraisal {
	return predicate.Appraisal(func(s *sql.Selector) {
		step := newEmployeeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Appraisal {
	return predicate.Appraisal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ParseJob) predicate.Appraisal {
	return predicate.Appraisal(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Appraisal) predicate.Appraisal {
	return predicate.Appraisal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Appraisal) predicate.Appraisal {
	return predicate.Appraisal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Appraisal) predicate.Appraisal {
	return predicate.Appraisal(sql.NotPredicates(p))
}
