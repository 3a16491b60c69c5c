package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document is an uploaded source text: the raw content plus the category
// assigned by the categorization flow. Game generation reads documents;
// it never writes them.
type Document struct {
	ent.Schema
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("doc_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Stable external identifier (UUID)"),
		field.String("title").
			NotEmpty(),
		field.Text("content").
			NotEmpty().
			Comment("Full extracted text of the document"),
		field.String("category").
			Default("General & Other").
			Comment("Subject category assigned at upload"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_id"),
		index.Fields("created_at"),
	}
}
