package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserStreak tracks consecutive active days per user.
type UserStreak struct {
	ent.Schema
}

func (UserStreak) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("current").
			Default(0),
		field.Int("longest").
			Default(0),
		field.String("last_active_on").
			Default("").
			Comment("Date of last completed session, YYYY-MM-DD"),
	}
}
