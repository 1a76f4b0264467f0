// Code generated by ent, DO NOT EDIT.

package userlimit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bumpwise/bumpquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldUserID, v))
}

// SessionsToday applies equality check predicate on the "sessions_today" field. It's identical to SessionsTodayEQ.
func SessionsToday(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldSessionsToday, v))
}

// FlipsToday applies equality check predicate on the "flips_today" field. It's identical to FlipsTodayEQ.
func FlipsToday(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldFlipsToday, v))
}

// PointsToday applies equality check predicate on the "points_today" field. It's identical to PointsTodayEQ.
func PointsToday(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldPointsToday, v))
}

// PointsTotal applies equality check predicate on the "points_total" field. It's identical to PointsTotalEQ.
func PointsTotal(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldPointsTotal, v))
}

// ResetAt applies equality check predicate on the "reset_at" field. It's identical to ResetAtEQ.
func ResetAt(v time.Time) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldResetAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldContainsFold(FieldUserID, v))
}

// SessionsTodayEQ applies the EQ predicate on the "sessions_today" field.
func SessionsTodayEQ(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldSessionsToday, v))
}

// SessionsTodayNEQ applies the NEQ predicate on the "sessions_today" field.
func SessionsTodayNEQ(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNEQ(FieldSessionsToday, v))
}

// SessionsTodayIn applies the In predicate on the "sessions_today" field.
func SessionsTodayIn(vs ...int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldIn(FieldSessionsToday, vs...))
}

// SessionsTodayNotIn applies the NotIn predicate on the "sessions_today" field.
func SessionsTodayNotIn(vs ...int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNotIn(FieldSessionsToday, vs...))
}

// SessionsTodayGT applies the GT predicate on the "sessions_today" field.
func SessionsTodayGT(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGT(FieldSessionsToday, v))
}

// SessionsTodayGTE applies the GTE predicate on the "sessions_today" field.
func SessionsTodayGTE(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGTE(FieldSessionsToday, v))
}

// SessionsTodayLT applies the LT predicate on the "sessions_today" field.
func SessionsTodayLT(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLT(FieldSessionsToday, v))
}

// SessionsTodayLTE applies the LTE predicate on the "sessions_today" field.
func SessionsTodayLTE(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLTE(FieldSessionsToday, v))
}

// FlipsTodayEQ applies the EQ predicate on the "flips_today" field.
func FlipsTodayEQ(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldFlipsToday, v))
}

// FlipsTodayNEQ applies the NEQ predicate on the "flips_today" field.
func FlipsTodayNEQ(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNEQ(FieldFlipsToday, v))
}

// FlipsTodayIn applies the In predicate on the "flips_today" field.
func FlipsTodayIn(vs ...int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldIn(FieldFlipsToday, vs...))
}

// FlipsTodayNotIn applies the NotIn predicate on the "flips_today" field.
func FlipsTodayNotIn(vs ...int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNotIn(FieldFlipsToday, vs...))
}

// FlipsTodayGT applies the GT predicate on the "flips_today" field.
func FlipsTodayGT(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGT(FieldFlipsToday, v))
}

// FlipsTodayGTE applies the GTE predicate on the "flips_today" field.
func FlipsTodayGTE(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGTE(FieldFlipsToday, v))
}

// FlipsTodayLT applies the LT predicate on the "flips_today" field.
func FlipsTodayLT(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLT(FieldFlipsToday, v))
}

// FlipsTodayLTE applies the LTE predicate on the "flips_today" field.
func FlipsTodayLTE(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLTE(FieldFlipsToday, v))
}

// PointsTodayEQ applies the EQ predicate on the "points_today" field.
func PointsTodayEQ(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldPointsToday, v))
}

// PointsTodayNEQ applies the NEQ predicate on the "points_today" field.
func PointsTodayNEQ(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNEQ(FieldPointsToday, v))
}

// PointsTodayIn applies the In predicate on the "points_today" field.
func PointsTodayIn(vs ...int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldIn(FieldPointsToday, vs...))
}

// PointsTodayNotIn applies the NotIn predicate on the "points_today" field.
func PointsTodayNotIn(vs ...int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNotIn(FieldPointsToday, vs...))
}

// PointsTodayGT applies the GT predicate on the "points_today" field.
func PointsTodayGT(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGT(FieldPointsToday, v))
}

// PointsTodayGTE applies the GTE predicate on the "points_today" field.
func PointsTodayGTE(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGTE(FieldPointsToday, v))
}

// PointsTodayLT applies the LT predicate on the "points_today" field.
func PointsTodayLT(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLT(FieldPointsToday, v))
}

// PointsTodayLTE applies the LTE predicate on the "points_today" field.
func PointsTodayLTE(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLTE(FieldPointsToday, v))
}

// PointsTotalEQ applies the EQ predicate on the "points_total" field.
func PointsTotalEQ(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldPointsTotal, v))
}

// PointsTotalNEQ applies the NEQ predicate on the "points_total" field.
func PointsTotalNEQ(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNEQ(FieldPointsTotal, v))
}

// PointsTotalIn applies the In predicate on the "points_total" field.
func PointsTotalIn(vs ...int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldIn(FieldPointsTotal, vs...))
}

// PointsTotalNotIn applies the NotIn predicate on the "points_total" field.
func PointsTotalNotIn(vs ...int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNotIn(FieldPointsTotal, vs...))
}

// PointsTotalGT applies the GT predicate on the "points_total" field.
func PointsTotalGT(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGT(FieldPointsTotal, v))
}

// PointsTotalGTE applies the GTE predicate on the "points_total" field.
func PointsTotalGTE(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGTE(FieldPointsTotal, v))
}

// PointsTotalLT applies the LT predicate on the "points_total" field.
func PointsTotalLT(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLT(FieldPointsTotal, v))
}

// PointsTotalLTE applies the LTE predicate on the "points_total" field.
func PointsTotalLTE(v int) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLTE(FieldPointsTotal, v))
}

// ResetAtEQ applies the EQ predicate on the "reset_at" field.
func ResetAtEQ(v time.Time) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldEQ(FieldResetAt, v))
}

// ResetAtNEQ applies the NEQ predicate on the "reset_at" field.
func ResetAtNEQ(v time.Time) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNEQ(FieldResetAt, v))
}

// ResetAtIn applies the In predicate on the "reset_at" field.
func ResetAtIn(vs ...time.Time) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldIn(FieldResetAt, vs...))
}

// ResetAtNotIn applies the NotIn predicate on the "reset_at" field.
func ResetAtNotIn(vs ...time.Time) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldNotIn(FieldResetAt, vs...))
}

// ResetAtGT applies the GT predicate on the "reset_at" field.
func ResetAtGT(v time.Time) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGT(FieldResetAt, v))
}

// ResetAtGTE applies the GTE predicate on the "reset_at" field.
func ResetAtGTE(v time.Time) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldGTE(FieldResetAt, v))
}

// ResetAtLT applies the LT predicate on the "reset_at" field.
func ResetAtLT(v time.Time) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLT(FieldResetAt, v))
}

// ResetAtLTE applies the LTE predicate on the "reset_at" field.
func ResetAtLTE(v time.Time) predicate.UserLimit {
	return predicate.UserLimit(sql.FieldLTE(FieldResetAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserLimit) predicate.UserLimit {
	return predicate.UserLimit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserLimit) predicate.UserLimit {
	return predicate.UserLimit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserLimit) predicate.UserLimit {
	return predicate.UserLimit(sql.NotPredicates(p))
}
