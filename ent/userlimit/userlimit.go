// Code generated by ent, DO NOT EDIT.

package userlimit

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userlimit type in the database.
	Label = "user_limit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionsToday holds the string denoting the sessions_today field in the database.
	FieldSessionsToday = "sessions_today"
	// FieldFlipsToday holds the string denoting the flips_today field in the database.
	FieldFlipsToday = "flips_today"
	// FieldPointsToday holds the string denoting the points_today field in the database.
	FieldPointsToday = "points_today"
	// FieldPointsTotal holds the string denoting the points_total field in the database.
	FieldPointsTotal = "points_total"
	// FieldResetAt holds the string denoting the reset_at field in the database.
	FieldResetAt = "reset_at"
	// Table holds the table name of the userlimit in the database.
	Table = "user_limits"
)

// Columns holds all SQL columns for userlimit fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSessionsToday,
	FieldFlipsToday,
	FieldPointsToday,
	FieldPointsTotal,
	FieldResetAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultSessionsToday holds the default value on creation for the "sessions_today" field.
	DefaultSessionsToday int
	// DefaultFlipsToday holds the default value on creation for the "flips_today" field.
	DefaultFlipsToday int
	// DefaultPointsToday holds the default value on creation for the "points_today" field.
	DefaultPointsToday int
	// DefaultPointsTotal holds the default value on creation for the "points_total" field.
	DefaultPointsTotal int
	// DefaultResetAt holds the default value on creation for the "reset_at" field.
	DefaultResetAt func() time.Time
)

// OrderOption defines the ordering options for the UserLimit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionsToday orders the results by the sessions_today field.
func BySessionsToday(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsToday, opts...).ToFunc()
}

// ByFlipsToday orders the results by the flips_today field.
func ByFlipsToday(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlipsToday, opts...).ToFunc()
}

// ByPointsToday orders the results by the points_today field.
func ByPointsToday(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsToday, opts...).ToFunc()
}

// ByPointsTotal orders the results by the points_total field.
func ByPointsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsTotal, opts...).ToFunc()
}

// ByResetAt orders the results by the reset_at field.
func ByResetAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResetAt, opts...).ToFunc()
}
