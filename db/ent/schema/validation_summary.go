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

var statusValidator = utils.EnumValidator(
	string(constants.StatusValid),
	string(constants.StatusWarning),
	string(constants.StatusError),
)

// ValidationSummary holds the per-category statuses of the latest
// reconciliation run for a pair. One row per pair, upserted by pair_id.
type ValidationSummary struct{ ent.Schema }

func (ValidationSummary) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "validation_summaries"},
	}
}

func (ValidationSummary) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("pair_id", uuid.UUID{}).Unique(),
		field.String("items_status").NotEmpty().Validate(statusValidator),
		field.String("vat_status").NotEmpty().Validate(statusValidator),
		field.String("dates_status").NotEmpty().Validate(statusValidator),
		field.String("totals_status").NotEmpty().Validate(statusValidator),
		field.String("final_status").NotEmpty().Validate(statusValidator),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ValidationSummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pair", DocumentPair.Type).
			Ref("summary").
			Field("pair_id").
			Unique().
			Required(),
	}
}

func (ValidationSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pair_id").Unique(),
	}
}
