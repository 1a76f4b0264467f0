// Code generated by ent, DO NOT EDIT.

package userstreak

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userstreak type in the database.
	Label = "user_streak"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCurrent holds the string denoting the current field in the database.
	FieldCurrent = "current"
	// FieldLongest holds the string denoting the longest field in the database.
	FieldLongest = "longest"
	// FieldLastActiveOn holds the string denoting the last_active_on field in the database.
	FieldLastActiveOn = "last_active_on"
	// Table holds the table name of the userstreak in the database.
	Table = "user_streaks"
)

// Columns holds all SQL columns for userstreak fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCurrent,
	FieldLongest,
	FieldLastActiveOn,
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
	// DefaultCurrent holds the default value on creation for the "current" field.
	DefaultCurrent int
	// DefaultLongest holds the default value on creation for the "longest" field.
	DefaultLongest int
	// DefaultLastActiveOn holds the default value on creation for the "last_active_on" field.
	DefaultLastActiveOn string
)

// OrderOption defines the ordering options for the UserStreak queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCurrent orders the results by the current field.
func ByCurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrent, opts...).ToFunc()
}

// ByLongest orders the results by the longest field.
func ByLongest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongest, opts...).ToFunc()
}

// ByLastActiveOn orders the results by the last_active_on field.
func ByLastActiveOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActiveOn, opts...).ToFunc()
}
