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

	"github.com/google/uuid"
)

type Appraisal struct{ ent.Schema }

func (Appraisal) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "appraisals"},
	}
}

func (Appraisal) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("employee_id", uuid.UUID{}),
		field.Time("date_created").Default(time.Now),
		field.Time("review_period_start").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("review_period_end").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		// parsed free-text buckets, keyed by section name
		field.JSON("sections", json.RawMessage{}).Optional(),
		// category -> numeric score 0..5
		field.JSON("ratings", json.RawMessage{}).Optional(),
		field.JSON("comments", json.RawMessage{}).Optional(),
		field.String("career_aspirations").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// newline-delimited research item blobs consumed by the tracker
		field.String("ongoing_research").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("last_research").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Appraisal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("employee", Employee.Type).
			Ref("appraisals").
			Field("employee_id").
			Required().
			Unique(),
		edge.To("jobs", ParseJob.Type),
	}
}

func (Appraisal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("employee_id", "date_created"),
	}
}
