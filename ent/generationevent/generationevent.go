// Code generated by ent, DO NOT EDIT.

package generationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the generationevent type in the database.
	Label = "generation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldWeek holds the string denoting the week field in the database.
	FieldWeek = "week"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldPromptFingerprint holds the string denoting the prompt_fingerprint field in the database.
	FieldPromptFingerprint = "prompt_fingerprint"
	// FieldRawResponse holds the string denoting the raw_response field in the database.
	FieldRawResponse = "raw_response"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldParseOk holds the string denoting the parse_ok field in the database.
	FieldParseOk = "parse_ok"
	// FieldValidCount holds the string denoting the valid_count field in the database.
	FieldValidCount = "valid_count"
	// FieldDuplicateCount holds the string denoting the duplicate_count field in the database.
	FieldDuplicateCount = "duplicate_count"
	// FieldMaxSimilarity holds the string denoting the max_similarity field in the database.
	FieldMaxSimilarity = "max_similarity"
	// FieldRejectionReasons holds the string denoting the rejection_reasons field in the database.
	FieldRejectionReasons = "rejection_reasons"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// Table holds the table name of the generationevent in the database.
	Table = "generation_events"
)

// Columns holds all SQL columns for generationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldWeek,
	FieldContentType,
	FieldAttempt,
	FieldPromptFingerprint,
	FieldRawResponse,
	FieldLatencyMs,
	FieldParseOk,
	FieldValidCount,
	FieldDuplicateCount,
	FieldMaxSimilarity,
	FieldRejectionReasons,
	FieldSuccess,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	ContentTypeValidator func(string) error
	// AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	AttemptValidator func(int) error
	// DefaultPromptFingerprint holds the default value on creation for the "prompt_fingerprint" field.
	DefaultPromptFingerprint string
	// DefaultRawResponse holds the default value on creation for the "raw_response" field.
	DefaultRawResponse string
	// DefaultLatencyMs holds the default value on creation for the "latency_ms" field.
	DefaultLatencyMs int64
	// DefaultParseOk holds the default value on creation for the "parse_ok" field.
	DefaultParseOk bool
	// DefaultValidCount holds the default value on creation for the "valid_count" field.
	DefaultValidCount int
	// DefaultDuplicateCount holds the default value on creation for the "duplicate_count" field.
	DefaultDuplicateCount int
	// DefaultMaxSimilarity holds the default value on creation for the "max_similarity" field.
	DefaultMaxSimilarity float64
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
)

// OrderOption defines the ordering options for the GenerationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByWeek orders the results by the week field.
func ByWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeek, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByPromptFingerprint orders the results by the prompt_fingerprint field.
func ByPromptFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptFingerprint, opts...).ToFunc()
}

// ByRawResponse orders the results by the raw_response field.
func ByRawResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawResponse, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByParseOk orders the results by the parse_ok field.
func ByParseOk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParseOk, opts...).ToFunc()
}

// ByValidCount orders the results by the valid_count field.
func ByValidCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidCount, opts...).ToFunc()
}

// ByDuplicateCount orders the results by the duplicate_count field.
func ByDuplicateCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicateCount, opts...).ToFunc()
}

// ByMaxSimilarity orders the results by the max_similarity field.
func ByMaxSimilarity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxSimilarity, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}
