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

type DocumentFile struct{ ent.Schema }

func (DocumentFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_files"},
	}
}

func (DocumentFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("file_name").NotEmpty(),
		field.String("file_type").NotEmpty(),
		// Addressable path returned by the storage backend; opaque here.
		field.String("storage_path").NotEmpty(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (DocumentFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("files").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (DocumentFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
	}
}
