// Code generated by ent, DO NOT EDIT.

package appraisal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appraisal type in the database.
	Label = "appraisal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmployeeID holds the string denoting the employee_id field in the database.
	FieldEmployeeID = "employee_id"
	// FieldDateCreated holds the string denoting the date_created field in the database.
	FieldDateCreated = "date_created"
	// FieldReviewPeriodStart holds the string denoting the review_period_start field in the database.
	FieldReviewPeriodStart = "review_period_start"
	// FieldReviewPeriodEnd holds the string denoting the review_period_end field in the database.
	FieldReviewPeriodEnd = "review_period_end"
	// FieldSections holds the string denoting the sections field in the database.
	FieldSections = "sections"
	// FieldRatings holds the string denoting the ratings field in the database.
	FieldRatings = "ratings"
	// FieldComments holds the string denoting the comments field in the database.
	FieldComments = "comments"
	// FieldCareerAspirations holds the string denoting the career_aspirations field in the database.
	FieldCareerAspirations = "career_aspirations"
	// FieldOngoingResearch holds the string denoting the ongoing_research field in the database.
	FieldOngoingResearch = "ongoing_research"
	// FieldLastResearch holds the string denoting the last_research field in the database.
	FieldLastResearch = "last_research"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEmployee holds the string denoting the employee edge name in mutations.
	EdgeEmployee = "employee"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the appraisal in the database.
	Table = "appraisals"
	// EmployeeTable is the table that holds the employee relation/edge.
	EmployeeTable = "appraisals"
	// EmployeeInverseTable is the table name for the Employee entity.
	// It exists in this package in order to avoid circular dependency with the "employee" package.
	EmployeeInverseTable = "employees"
	// EmployeeColumn is the table column denoting the employee relation/edge.
	EmployeeColumn = "employee_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "parse_jobs"
	// JobsInverseTable is the table name for the ParseJob entity.
	// It exists in this package in order to avoid circular dependency with the "parsejob" package.
	JobsInverseTable = "parse_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "appraisal_id"
)

// Columns holds all SQL columns for appraisal fields.
var Columns = []string{
	FieldID,
	FieldEmployeeID,
	FieldDateCreated,
	FieldReviewPeriodStart,
	FieldReviewPeriodEnd,
	FieldSections,
	FieldRatings,
	FieldComments,
	FieldCareerAspirations,
	FieldOngoingResearch,
	FieldLastResearch,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultDateCreated holds the default value on creation for the "date_created" field.
	DefaultDateCreated func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Appraisal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmployeeID orders the results by the employee_id field.
func ByEmployeeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeID, opts...).ToFunc()
}

// ByDateCreated orders the results by the date_created field.
func ByDateCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateCreated, opts...).ToFunc()
}

// ByReviewPeriodStart orders the results by the review_period_start field.
func ByReviewPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewPeriodStart, opts...).ToFunc()
}

// ByReviewPeriodEnd orders the results by the review_period_end field.
func ByReviewPeriodEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewPeriodEnd, opts...).ToFunc()
}

// ByCareerAspirations orders the results by the career_aspirations field.
func ByCareerAspirations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCareerAspirations, opts...).ToFunc()
}

// ByOngoingResearch orders the results by the ongoing_research field.
func ByOngoingResearch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOngoingResearch, opts...).ToFunc()
}

// ByLastResearch orders the results by the last_research field.
func ByLastResearch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastResearch, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEmployeeField orders the results by employee field.
func ByEmployeeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmployeeStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEmployeeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmployeeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EmployeeTable, EmployeeColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
