package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var (
	reStaffNo         = regexp.MustCompile(`^\d{2}[-.]?\d{6}$`)
	errInvalidStaffNo = errors.New("invalid staff number")
)

type Employee struct{ ent.Schema }

func (Employee) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "employees"},
	}
}

func (Employee) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("first_name").NotEmpty(),
		field.String("last_name").Optional(),
		field.String("email").Optional().Nillable(),
		field.String("phone_number").Optional().Nillable(),
		field.String("address").Optional().Nillable(),
		field.String("staff_no").Optional().Nillable().
			Validate(func(s string) error {
				if s == "" || reStaffNo.MatchString(s) {
					return nil
				}
				return errInvalidStaffNo
			}),
		field.String("post").Optional().Nillable(),
		field.String("faculty_programme").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Employee) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("appraisals", Appraisal.Type),
		edge.To("portfolios", TeachingPortfolio.Type),
		edge.To("files", DocumentFile.Type),
	}
}

func (Employee) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("staff_no").Unique(),
	}
}
