// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppraisalsColumns holds the columns for the "appraisals" table.
	AppraisalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "date_created", Type: field.TypeTime},
		{Name: "review_period_start", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "review_period_end", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "sections", Type: field.TypeJSON, Nullable: true},
		{Name: "ratings", Type: field.TypeJSON, Nullable: true},
		{Name: "comments", Type: field.TypeJSON, Nullable: true},
		{Name: "career_aspirations", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ongoing_research", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "last_research", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "employee_id", Type: field.TypeUUID},
	}
	// AppraisalsTable holds the schema information for the "appraisals" table.
	AppraisalsTable = &schema.Table{
		Name:       "appraisals",
		Columns:    AppraisalsColumns,
		PrimaryKey: []*schema.Column{AppraisalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appraisals_employees_appraisals",
				Columns:    []*schema.Column{AppraisalsColumns[12]},
				RefColumns: []*schema.Column{EmployeesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appraisal_employee_id_date_created",
				Unique:  false,
				Columns: []*schema.Column{AppraisalsColumns[12], AppraisalsColumns[1]},
			},
		},
	}
	// DocumentFilesColumns holds the columns for the "document_files" table.
	DocumentFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "employee_id", Type: field.TypeUUID},
	}
	// DocumentFilesTable holds the schema information for the "document_files" table.
	DocumentFilesTable = &schema.Table{
		Name:       "document_files",
		Columns:    DocumentFilesColumns,
		PrimaryKey: []*schema.Column{DocumentFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_files_employees_files",
				Columns:    []*schema.Column{DocumentFilesColumns[7]},
				RefColumns: []*schema.Column{EmployeesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentfile_employee_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentFilesColumns[7], DocumentFilesColumns[2]},
			},
			{
				Name:    "documentfile_employee_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentFilesColumns[7], DocumentFilesColumns[6]},
			},
		},
	}
	// EmployeesColumns holds the columns for the "employees" table.
	EmployeesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone_number", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "staff_no", Type: field.TypeString, Nullable: true},
		{Name: "post", Type: field.TypeString, Nullable: true},
		{Name: "faculty_programme", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EmployeesTable holds the schema information for the "employees" table.
	EmployeesTable = &schema.Table{
		Name:       "employees",
		Columns:    EmployeesColumns,
		PrimaryKey: []*schema.Column{EmployeesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "employee_staff_no",
				Unique:  true,
				Columns: []*schema.Column{EmployeesColumns[6]},
			},
		},
	}
	// ParseJobsColumns holds the columns for the "parse_jobs" table.
	ParseJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pages", Type: field.TypeInt, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "record_json", Type: field.TypeJSON, Nullable: true},
		{Name: "empty_record", Type: field.TypeBool, Default: false},
		{Name: "extract_method", Type: field.TypeString, Nullable: true},
		{Name: "appraisal_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ParseJobsTable holds the schema information for the "parse_jobs" table.
	ParseJobsTable = &schema.Table{
		Name:       "parse_jobs",
		Columns:    ParseJobsColumns,
		PrimaryKey: []*schema.Column{ParseJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_jobs_appraisals_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[12]},
				RefColumns: []*schema.Column{AppraisalsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "parse_jobs_document_files_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[13]},
				RefColumns: []*schema.Column{DocumentFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[13]},
			},
			{
				Name:    "parsejob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[5], ParseJobsColumns[3]},
			},
		},
	}
	// TeachingPortfoliosColumns holds the columns for the "teaching_portfolios" table.
	TeachingPortfoliosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sections", Type: field.TypeJSON, Nullable: true},
		{Name: "teaching_philosophy", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "future_teaching_goals", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "employee_id", Type: field.TypeUUID},
	}
	// TeachingPortfoliosTable holds the schema information for the "teaching_portfolios" table.
	TeachingPortfoliosTable = &schema.Table{
		Name:       "teaching_portfolios",
		Columns:    TeachingPortfoliosColumns,
		PrimaryKey: []*schema.Column{TeachingPortfoliosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "teaching_portfolios_employees_portfolios",
				Columns:    []*schema.Column{TeachingPortfoliosColumns[6]},
				RefColumns: []*schema.Column{EmployeesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppraisalsTable,
		DocumentFilesTable,
		EmployeesTable,
		ParseJobsTable,
		TeachingPortfoliosTable,
	}
)

func init() {
	AppraisalsTable.ForeignKeys[0].RefTable = EmployeesTable
	AppraisalsTable.Annotation = &entsql.Annotation{
		Table: "appraisals",
	}
	DocumentFilesTable.ForeignKeys[0].RefTable = EmployeesTable
	DocumentFilesTable.Annotation = &entsql.Annotation{
		Table: "document_files",
	}
	EmployeesTable.Annotation = &entsql.Annotation{
		Table: "employees",
	}
	ParseJobsTable.ForeignKeys[0].RefTable = AppraisalsTable
	ParseJobsTable.ForeignKeys[1].RefTable = DocumentFilesTable
	ParseJobsTable.Annotation = &entsql.Annotation{
		Table: "parse_jobs",
	}
	TeachingPortfoliosTable.ForeignKeys[0].RefTable = EmployeesTable
	TeachingPortfoliosTable.Annotation = &entsql.Annotation{
		Table: "teaching_portfolios",
	}
}
