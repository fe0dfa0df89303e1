package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/db/ent/schema/utils"

	"github.com/google/uuid"
)

type ParseJob struct{ ent.Schema }

func (ParseJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "parse_jobs"},
	}
}

func (ParseJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("appraisal_id", uuid.UUID{}).Optional().Nillable(),
		field.String("doc_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocTypesAsStrings()...)),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Int("pages").Optional().Nillable(),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("record_json", json.RawMessage{}).Optional(),
		// true when the parse succeeded but extracted no structure at all;
		// distinct from a FAILED job
		field.Bool("empty_record").Default(false),
		field.String("extract_method").Optional().Nillable(),
	}
}

func (ParseJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", DocumentFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
		edge.From("appraisal", Appraisal.Type).
			Ref("jobs").
			Field("appraisal_id").
			Unique(),
	}
}

func (ParseJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id"),
		index.Fields("status", "started_at"),
	}
}
