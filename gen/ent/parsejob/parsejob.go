// Code generated by ent, DO NOT EDIT.

package parsejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the parsejob type in the database.
	Label = "parse_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldAppraisalID holds the string denoting the appraisal_id field in the database.
	FieldAppraisalID = "appraisal_id"
	// FieldDocType holds the string denoting the doc_type field in the database.
	FieldDocType = "doc_type"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPages holds the string denoting the pages field in the database.
	FieldPages = "pages"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldRecordJSON holds the string denoting the record_json field in the database.
	FieldRecordJSON = "record_json"
	// FieldEmptyRecord holds the string denoting the empty_record field in the database.
	FieldEmptyRecord = "empty_record"
	// FieldExtractMethod holds the string denoting the extract_method field in the database.
	FieldExtractMethod = "extract_method"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// EdgeAppraisal holds the string denoting the appraisal edge name in mutations.
	EdgeAppraisal = "appraisal"
	// Table holds the table name of the parsejob in the database.
	Table = "parse_jobs"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "parse_jobs"
	// FileInverseTable is the table name for the DocumentFile entity.
	// It exists in this package in order to avoid circular dependency with the "documentfile" package.
	FileInverseTable = "document_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
	// AppraisalTable is the table that holds the appraisal relation/edge.
	AppraisalTable = "parse_jobs"
	// AppraisalInverseTable is the table name for the Appraisal entity.
	// It exists in this package in order to avoid circular dependency with the "appraisal" package.
	AppraisalInverseTable = "appraisals"
	// AppraisalColumn is the table column denoting the appraisal relation/edge.
	AppraisalColumn = "appraisal_id"
)

// Columns holds all SQL columns for parsejob fields.
var Columns = []string{
	FieldID,
	FieldFileID,
	FieldAppraisalID,
	FieldDocType,
	FieldFormat,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldErrorMessage,
	FieldPages,
	FieldExtractedText,
	FieldRecordJSON,
	FieldEmptyRecord,
	FieldExtractMethod,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	DocTypeValidator func(string) error
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultEmptyRecord holds the default value on creation for the "empty_record" field.
	DefaultEmptyRecord bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ParseJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByAppraisalID orders the results by the appraisal_id field.
func ByAppraisalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppraisalID, opts...).ToFunc()
}

// ByDocType orders the results by the doc_type field.
func ByDocType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocType, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPages orders the results by the pages field.
func ByPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPages, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// ByEmptyRecord orders the results by the empty_record field.
func ByEmptyRecord(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmptyRecord, opts...).ToFunc()
}

// ByExtractMethod orders the results by the extract_method field.
func ByExtractMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractMethod, opts...).ToFunc()
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}

// ByAppraisalField orders the results by appraisal field.
func ByAppraisalField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppraisalStep(), sql.OrderByField(field, opts...))
	}
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
func newAppraisalStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppraisalInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AppraisalTable, AppraisalColumn),
	)
}
