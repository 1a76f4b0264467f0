// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bumpwise/bumpquiz/ent/userlimit"
)

// UserLimit is the model entity for the UserLimit schema.
type UserLimit struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SessionsToday holds the value of the "sessions_today" field.
	SessionsToday int `json:"sessions_today,omitempty"`
	// FlipsToday holds the value of the "flips_today" field.
	FlipsToday int `json:"flips_today,omitempty"`
	// PointsToday holds the value of the "points_today" field.
	PointsToday int `json:"points_today,omitempty"`
	// Lifetime points; never reset
	PointsTotal int `json:"points_total,omitempty"`
	// Watermark: start of the day the daily counters belong to
	ResetAt      time.Time `json:"reset_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserLimit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userlimit.FieldID, userlimit.FieldSessionsToday, userlimit.FieldFlipsToday, userlimit.FieldPointsToday, userlimit.FieldPointsTotal:
			values[i] = new(sql.NullInt64)
		case userlimit.FieldUserID:
			values[i] = new(sql.NullString)
		case userlimit.FieldResetAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserLimit fields.
func (_m *UserLimit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userlimit.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userlimit.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userlimit.FieldSessionsToday:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_today", values[i])
			} else if value.Valid {
				_m.SessionsToday = int(value.Int64)
			}
		case userlimit.FieldFlipsToday:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field flips_today", values[i])
			} else if value.Valid {
				_m.FlipsToday = int(value.Int64)
			}
		case userlimit.FieldPointsToday:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_today", values[i])
			} else if value.Valid {
				_m.PointsToday = int(value.Int64)
			}
		case userlimit.FieldPointsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_total", values[i])
			} else if value.Valid {
				_m.PointsTotal = int(value.Int64)
			}
		case userlimit.FieldResetAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reset_at", values[i])
			} else if value.Valid {
				_m.ResetAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserLimit.
// This includes values selected through modifiers, order, etc.
func (_m *UserLimit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserLimit.
// Note that you need to call UserLimit.Unwrap() before calling this method if this UserLimit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserLimit) Update() *UserLimitUpdateOne {
	return NewUserLimitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserLimit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserLimit) Unwrap() *UserLimit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserLimit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserLimit) String() string {
	var builder strings.Builder
	builder.WriteString("UserLimit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("sessions_today=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsToday))
	builder.WriteString(", ")
	builder.WriteString("flips_today=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlipsToday))
	builder.WriteString(", ")
	builder.WriteString("points_today=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsToday))
	builder.WriteString(", ")
	builder.WriteString("points_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsTotal))
	builder.WriteString(", ")
	builder.WriteString("reset_at=")
	builder.WriteString(_m.ResetAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserLimits is a parsable slice of UserLimit.
type UserLimits []*UserLimit
