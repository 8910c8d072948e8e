package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/db/ent/schema/utils"

	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("type").NotEmpty().Immutable().
			Validate(utils.EnumValidator(
				string(constants.DocumentTypeOrder),
				string(constants.DocumentTypeInvoice),
			)),
		// Fields copied from the extracted document on submission. All
		// optional: absence means the operator left them blank.
		field.String("doc_number").Optional().Nillable(),
		field.String("doc_date").Optional().Nillable(),
		field.String("due_date").Optional().Nillable(),
		field.String("supplier").Optional().Nillable(),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", LineItem.Type),
		edge.To("files", DocumentFile.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type", "created_at"),
	}
}
