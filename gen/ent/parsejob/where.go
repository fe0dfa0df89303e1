// Code generated by ent, DO NOT EDIT.

package parsejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFileID, v))
}

// AppraisalID applies equality check predicate on the "appraisal_id" field. It's identical to AppraisalIDEQ.
func AppraisalID(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldAppraisalID, v))
}

// DocType applies equality check predicate on the "doc_type" field. It's identical to DocTypeEQ.
func DocType(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldDocType, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFormat, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldErrorMessage, v))
}

// Pages applies equality check predicate on the "pages" field. It's identical to PagesEQ.
func Pages(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldPages, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldExtractedText, v))
}

// EmptyRecord applies equality check predicate on the "empty_record" field. It's identical to EmptyRecordEQ.
func EmptyRecord(v bool) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldEmptyRecord, v))
}

// ExtractMethod applies equality check predicate on the "extract_method" field. It's identical to ExtractMethodEQ.
func ExtractMethod(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldExtractMethod, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldFileID, vs...))
}

// AppraisalIDEQ applies the EQ predicate on the "appraisal_id" field.
func AppraisalIDEQ(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldAppraisalID, v))
}

// AppraisalIDNEQ applies the NEQ predicate on the "appraisal_id" field.
func AppraisalIDNEQ(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldAppraisalID, v))
}

// AppraisalIDIn applies the In predicate on the "appraisal_id" field.
func AppraisalIDIn(vs ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldAppraisalID, vs...))
}

// AppraisalIDNotIn applies the NotIn predicate on the "appraisal_id" field.
func AppraisalIDNotIn(vs ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldAppraisalID, vs...))
}

// AppraisalIDIsNil applies the IsNil predicate on the "appraisal_id" field.
func AppraisalIDIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldAppraisalID))
}

// AppraisalIDNotNil applies the NotNil predicate on the "appraisal_id" field.
func AppraisalIDNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldAppraisalID))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldDocType, vs...))
}

// DocTypeGT applies the GT predicate on the "doc_type" field.
func DocTypeGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldDocType, v))
}

// DocTypeGTE applies the GTE predicate on the "doc_type" field.
func DocTypeGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldDocType, v))
}

// DocTypeLT applies the LT predicate on the "doc_type" field.
func DocTypeLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldDocType, v))
}

// DocTypeLTE applies the LTE predicate on the "doc_type" field.
func DocTypeLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldDocType, v))
}

// DocTypeContains applies the Contains predicate on the "doc_type" field.
func DocTypeContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldDocType, v))
}

// DocTypeHasPrefix applies the HasPrefix predicate on the "doc_type" field.
func DocTypeHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldDocType, v))
}

// DocTypeHasSuffix applies the HasSuffix predicate on the "doc_type" field.
func DocTypeHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldDocType, v))
}

// DocTypeEqualFold applies the EqualFold predicate on the "doc_type" field.
func DocTypeEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldDocType, v))
}

// DocTypeContainsFold applies the ContainsFold predicate on the "doc_type" field.
func DocTypeContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldDocType, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldFormat, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PagesEQ applies the EQ predicate on the "pages" field.
func PagesEQ(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldPages, v))
}

// PagesNEQ applies the NEQ predicate on the "pages" field.
func PagesNEQ(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldPages, v))
}

// PagesIn applies the In predicate on the "pages" field.
func PagesIn(vs ...int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldPages, vs...))
}

// PagesNotIn applies the NotIn predicate on the "pages" field.
func PagesNotIn(vs ...int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldPages, vs...))
}

// PagesGT applies the GT predicate on the "pages" field.
func PagesGT(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldPages, v))
}

// PagesGTE applies the GTE predicate on the "pages" field.
func PagesGTE(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldPages, v))
}

// PagesLT applies the LT predicate on the "pages" field.
func PagesLT(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldPages, v))
}

// PagesLTE applies the LTE predicate on the "pages" field.
func PagesLTE(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldPages, v))
}

// PagesIsNil applies the IsNil predicate on the "pages" field.
func PagesIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldPages))
}

// PagesNotNil applies the NotNil predicate on the "pages" field.
func PagesNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldPages))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextIsNil applies the IsNil predicate on the "extracted_text" field.
func ExtractedTextIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldExtractedText))
}

// ExtractedTextNotNil applies the NotNil predicate on the "extracted_text" field.
func ExtractedTextNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldExtractedText))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldExtractedText, v))
}

// RecordJSONIsNil applies the IsNil predicate on the "record_json" field.
func RecordJSONIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldRecordJSON))
}

// RecordJSONNotNil applies the NotNil predicate on the "record_json" field.
func RecordJSONNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldRecordJSON))
}

// EmptyRecordEQ applies the EQ predicate on the "empty_record" field.
func EmptyRecordEQ(v bool) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldEmptyRecord, v))
}

// EmptyRecordNEQ applies the NEQ predicate on the "empty_record" field.
func EmptyRecordNEQ(v bool) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldEmptyRecord, v))
}

// ExtractMethodEQ applies the EQ predicate on the "extract_method" field.
func ExtractMethodEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldExtractMethod, v))
}

// ExtractMethodNEQ applies the NEQ predicate on the "extract_method" field.
func ExtractMethodNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldExtractMethod, v))
}

// ExtractMethodIn applies the In predicate on the "extract_method" field.
func ExtractMethodIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldExtractMethod, vs...))
}

// ExtractMethodNotIn applies the NotIn predicate on the "extract_method" field.
func ExtractMethodNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldExtractMethod, vs...))
}

// ExtractMethodGT applies the GT predicate on the "extract_method" field.
func ExtractMethodGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldExtractMethod, v))
}

// ExtractMethodGTE applies the GTE predicate on the "extract_method" field.
func ExtractMethodGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldExtractMethod, v))
}

// ExtractMethodLT applies the LT predicate on the "extract_method" field.
func ExtractMethodLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldExtractMethod, v))
}

// ExtractMethodLTE applies the LTE predicate on the "extract_method" field.
func ExtractMethodLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldExtractMethod, v))
}

// ExtractMethodContains applies the Contains predicate on the "extract_method" field.
func ExtractMethodContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldExtractMethod, v))
}

// ExtractMethodHasPrefix applies the HasPrefix predicate on the "extract_method" field.
func ExtractMethodHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldExtractMethod, v))
}

// ExtractMethodHasSuffix applies the HasSuffix predicate on the "extract_method" field.
func ExtractMethodHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldExtractMethod, v))
}

// ExtractMethodIsNil applies the IsNil predicate on the "extract_method" field.
func ExtractMethodIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldExtractMethod))
}

// ExtractMethodNotNil applies the NotNil predicate on the "extract_method" field.
func ExtractMethodNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldExtractMethod))
}

// ExtractMethodEqualFold applies the EqualFold predicate on the "extract_method" field.
func ExtractMethodEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldExtractMethod, v))
}

// ExtractMethodContainsFold applies the ContainsFold predicate on the "extract_method" field.
func ExtractMethodContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldExtractMethod, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.DocumentFile) predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAppraisal applies the HasEdge predicate on the "appraisal" edge.
func HasAppraisal() predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AppraisalTable, AppraisalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppraisalWith applies the HasEdge predicate on the "appraisal" edge with a given conditions (other predicates).
func HasAppraisalWith(preds ...predicate.Appraisal) predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := newAppraisalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.NotPredicates(p))
}
