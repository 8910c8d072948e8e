package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/db/ent/schema/utils"

	"github.com/google/uuid"
)

// ValidationResult is a single discrepancy found for a pair. The whole set
// is replaced on every reconciliation run.
type ValidationResult struct{ ent.Schema }

func (ValidationResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "validation_results"},
	}
}

func (ValidationResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("pair_id", uuid.UUID{}),
		field.String("category").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.CategoryItems),
				string(constants.CategoryVAT),
				string(constants.CategoryDates),
				string(constants.CategoryTotals),
			)),
		field.String("message").NotEmpty(),
		field.String("severity").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.SeverityError),
				string(constants.SeverityWarning),
			)),
		field.Time("created_at").Default(time.Now),
	}
}

func (ValidationResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pair", DocumentPair.Type).
			Ref("validations").
			Field("pair_id").
			Unique().
			Required(),
	}
}

func (ValidationResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pair_id"),
	}
}
