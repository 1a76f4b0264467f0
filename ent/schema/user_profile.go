package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserProfile holds the pregnancy profile used to personalize content.
type UserProfile struct {
	ent.Schema
}

func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("name").
			Default(""),
		field.Time("due_date"),
		field.Strings("interests").
			Optional().
			Comment("Topics to weight in generated content"),
	}
}
