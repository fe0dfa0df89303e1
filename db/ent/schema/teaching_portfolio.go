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

	"github.com/google/uuid"
)

type TeachingPortfolio struct{ ent.Schema }

func (TeachingPortfolio) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "teaching_portfolios"},
	}
}

func (TeachingPortfolio) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("employee_id", uuid.UUID{}),
		field.JSON("sections", json.RawMessage{}).Optional(),
		field.String("teaching_philosophy").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("future_teaching_goals").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TeachingPortfolio) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("employee", Employee.Type).
			Ref("portfolios").
			Field("employee_id").
			Required().
			Unique(),
	}
}
