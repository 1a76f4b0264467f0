// Code generated by ent, DO NOT EDIT.

package userstreak

import (
	"entgo.io/ent/dialect/sql"
	"github.com/bumpwise/bumpquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEQ(FieldUserID, v))
}

// Current applies equality check predicate on the "current" field. It's identical to CurrentEQ.
func Current(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEQ(FieldCurrent, v))
}

// Longest applies equality check predicate on the "longest" field. It's identical to LongestEQ.
func Longest(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEQ(FieldLongest, v))
}

// LastActiveOn applies equality check predicate on the "last_active_on" field. It's identical to LastActiveOnEQ.
func LastActiveOn(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEQ(FieldLastActiveOn, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldContainsFold(FieldUserID, v))
}

// CurrentEQ applies the EQ predicate on the "current" field.
func CurrentEQ(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEQ(FieldCurrent, v))
}

// CurrentNEQ applies the NEQ predicate on the "current" field.
func CurrentNEQ(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldNEQ(FieldCurrent, v))
}

// CurrentIn applies the In predicate on the "current" field.
func CurrentIn(vs ...int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldIn(FieldCurrent, vs...))
}

// CurrentNotIn applies the NotIn predicate on the "current" field.
func CurrentNotIn(vs ...int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldNotIn(FieldCurrent, vs...))
}

// CurrentGT applies the GT predicate on the "current" field.
func CurrentGT(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldGT(FieldCurrent, v))
}

// CurrentGTE applies the GTE predicate on the "current" field.
func CurrentGTE(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldGTE(FieldCurrent, v))
}

// CurrentLT applies the LT predicate on the "current" field.
func CurrentLT(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldLT(FieldCurrent, v))
}

// CurrentLTE applies the LTE predicate on the "current" field.
func CurrentLTE(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldLTE(FieldCurrent, v))
}

// LongestEQ applies the EQ predicate on the "longest" field.
func LongestEQ(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEQ(FieldLongest, v))
}

// LongestNEQ applies the NEQ predicate on the "longest" field.
func LongestNEQ(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldNEQ(FieldLongest, v))
}

// LongestIn applies the In predicate on the "longest" field.
func LongestIn(vs ...int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldIn(FieldLongest, vs...))
}

// LongestNotIn applies the NotIn predicate on the "longest" field.
func LongestNotIn(vs ...int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldNotIn(FieldLongest, vs...))
}

// LongestGT applies the GT predicate on the "longest" field.
func LongestGT(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldGT(FieldLongest, v))
}

// LongestGTE applies the GTE predicate on the "longest" field.
func LongestGTE(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldGTE(FieldLongest, v))
}

// LongestLT applies the LT predicate on the "longest" field.
func LongestLT(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldLT(FieldLongest, v))
}

// LongestLTE applies the LTE predicate on the "longest" field.
func LongestLTE(v int) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldLTE(FieldLongest, v))
}

// LastActiveOnEQ applies the EQ predicate on the "last_active_on" field.
func LastActiveOnEQ(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEQ(FieldLastActiveOn, v))
}

// LastActiveOnNEQ applies the NEQ predicate on the "last_active_on" field.
func LastActiveOnNEQ(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldNEQ(FieldLastActiveOn, v))
}

// LastActiveOnIn applies the In predicate on the "last_active_on" field.
func LastActiveOnIn(vs ...string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldIn(FieldLastActiveOn, vs...))
}

// LastActiveOnNotIn applies the NotIn predicate on the "last_active_on" field.
func LastActiveOnNotIn(vs ...string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldNotIn(FieldLastActiveOn, vs...))
}

// LastActiveOnGT applies the GT predicate on the "last_active_on" field.
func LastActiveOnGT(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldGT(FieldLastActiveOn, v))
}

// LastActiveOnGTE applies the GTE predicate on the "last_active_on" field.
func LastActiveOnGTE(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldGTE(FieldLastActiveOn, v))
}

// LastActiveOnLT applies the LT predicate on the "last_active_on" field.
func LastActiveOnLT(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldLT(FieldLastActiveOn, v))
}

// LastActiveOnLTE applies the LTE predicate on the "last_active_on" field.
func LastActiveOnLTE(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldLTE(FieldLastActiveOn, v))
}

// LastActiveOnContains applies the Contains predicate on the "last_active_on" field.
func LastActiveOnContains(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldContains(FieldLastActiveOn, v))
}

// LastActiveOnHasPrefix applies the HasPrefix predicate on the "last_active_on" field.
func LastActiveOnHasPrefix(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldHasPrefix(FieldLastActiveOn, v))
}

// LastActiveOnHasSuffix applies the HasSuffix predicate on the "last_active_on" field.
func LastActiveOnHasSuffix(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldHasSuffix(FieldLastActiveOn, v))
}

// LastActiveOnEqualFold applies the EqualFold predicate on the "last_active_on" field.
func LastActiveOnEqualFold(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldEqualFold(FieldLastActiveOn, v))
}

// LastActiveOnContainsFold applies the ContainsFold predicate on the "last_active_on" field.
func LastActiveOnContainsFold(v string) predicate.UserStreak {
	return predicate.UserStreak(sql.FieldContainsFold(FieldLastActiveOn, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserStreak) predicate.UserStreak {
	return predicate.UserStreak(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserStreak) predicate.UserStreak {
	return predicate.UserStreak(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserStreak) predicate.UserStreak {
	return predicate.UserStreak(sql.NotPredicates(p))
}
