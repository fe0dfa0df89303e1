// Code generated by ent, DO NOT EDIT.

package employee

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the employee type in the database.
	Label = "employee"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhoneNumber holds the string denoting the phone_number field in the database.
	FieldPhoneNumber = "phone_number"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldStaffNo holds the string denoting the staff_no field in the database.
	FieldStaffNo = "staff_no"
	// FieldPost holds the string denoting the post field in the database.
	FieldPost = "post"
	// FieldFacultyProgramme holds the string denoting the faculty_programme field in the database.
	FieldFacultyProgramme = "faculty_programme"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAppraisals holds the string denoting the appraisals edge name in mutations.
	EdgeAppraisals = "appraisals"
	// EdgePortfolios holds the string denoting the portfolios edge name in mutations.
	EdgePortfolios = "portfolios"
	// EdgeFiles holds the string denoting the files edge name in mutations.
	EdgeFiles = "files"
	// Table holds the table name of the employee in the database.
	Table = "employees"
	// AppraisalsTable is the table that holds the appraisals relation/edge.
	AppraisalsTable = "appraisals"
	// AppraisalsInverseTable is the table name for the Appraisal entity.
	// It exists in this package in order to avoid circular dependency with the "appraisal" package.
	AppraisalsInverseTable = "appraisals"
	// AppraisalsColumn is the table column denoting the appraisals relation/edge.
	AppraisalsColumn = "employee_id"
	// PortfoliosTable is the table that holds the portfolios relation/edge.
	PortfoliosTable = "teaching_portfolios"
	// PortfoliosInverseTable is the table name for the TeachingPortfolio entity.
	// It exists in this package in order to avoid circular dependency with the "teachingportfolio" package.
	PortfoliosInverseTable = "teaching_portfolios"
	// PortfoliosColumn is the table column denoting the portfolios relation/edge.
	PortfoliosColumn = "employee_id"
	// FilesTable is the table that holds the files relation/edge.
	FilesTable = "document_files"
	// FilesInverseTable is the table name for the DocumentFile entity.
	// It exists in this package in order to avoid circular dependency with the "documentfile" package.
	FilesInverseTable = "document_files"
	// FilesColumn is the table column denoting the files relation/edge.
	FilesColumn = "employee_id"
)

// Columns holds all SQL columns for employee fields.
var Columns = []string{
	FieldID,
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhoneNumber,
	FieldAddress,
	FieldStaffNo,
	FieldPost,
	FieldFacultyProgramme,
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
	// FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	FirstNameValidator func(string) error
	// StaffNoValidator is a validator for the "staff_no" field. It is called by the builders before save.
	StaffNoValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Employee queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhoneNumber orders the results by the phone_number field.
func ByPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumber, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByStaffNo orders the results by the staff_no field.
func ByStaffNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStaffNo, opts...).ToFunc()
}

// ByPost orders the results by the post field.
func ByPost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPost, opts...).ToFunc()
}

// ByFacultyProgramme orders the results by the faculty_programme field.
func ByFacultyProgramme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacultyProgramme, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAppraisalsCount orders the results by appraisals count.
func ByAppraisalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAppraisalsStep(), opts...)
	}
}

// ByAppraisals orders the results by appraisals terms.
func ByAppraisals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppraisalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPortfoliosCount orders the results by portfolios count.
func ByPortfoliosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPortfoliosStep(), opts...)
	}
}

// ByPortfolios orders the results by portfolios terms.
func ByPortfolios(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPortfoliosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFilesCount orders the results by files count.
func ByFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFilesStep(), opts...)
	}
}

// ByFiles orders the results by files terms.
func ByFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAppraisalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppraisalsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppraisalsTable, AppraisalsColumn),
	)
}
func newPortfoliosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PortfoliosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PortfoliosTable, PortfoliosColumn),
	)
}
func newFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
	)
}
