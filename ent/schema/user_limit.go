package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserLimit holds per-user daily counters and point totals. All counter
// mutations are atomic SQL increments; the daily fields are reset lazily
// when the watermark falls behind the current day.
type UserLimit struct {
	ent.Schema
}

func (UserLimit) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("sessions_today").
			Default(0),
		field.Int("flips_today").
			Default(0),
		field.Int("points_today").
			Default(0),
		field.Int("points_total").
			Default(0).
			Comment("Lifetime points; never reset"),
		field.Time("reset_at").
			Default(time.Now).
			Comment("Watermark: start of the day the daily counters belong to"),
	}
}
