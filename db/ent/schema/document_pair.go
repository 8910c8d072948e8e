package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DocumentPair links one order to one invoice. A pair is created lazily the
// first time the two documents are reconciled and is unique per
// (order_id, invoice_id).
type DocumentPair struct{ ent.Schema }

func (DocumentPair) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_pairs"},
	}
}

func (DocumentPair) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("order_id", uuid.UUID{}),
		field.UUID("invoice_id", uuid.UUID{}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (DocumentPair) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("validations", ValidationResult.Type),
		edge.To("summary", ValidationSummary.Type).
			Unique(),
	}
}

func (DocumentPair) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id", "invoice_id").Unique(),
	}
}
