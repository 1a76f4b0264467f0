// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerAttemptsColumns holds the columns for the "answer_attempts" table.
	AnswerAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "selected_option", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "attempt_ordinal", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "answered_at", Type: field.TypeTime},
	}
	// AnswerAttemptsTable holds the schema information for the "answer_attempts" table.
	AnswerAttemptsTable = &schema.Table{
		Name:       "answer_attempts",
		Columns:    AnswerAttemptsColumns,
		PrimaryKey: []*schema.Column{AnswerAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerattempt_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerAttemptsColumns[1]},
			},
			{
				Name:    "answerattempt_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerAttemptsColumns[2]},
			},
			{
				Name:    "answerattempt_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerAttemptsColumns[3]},
			},
			{
				Name:    "answerattempt_session_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerAttemptsColumns[3], AnswerAttemptsColumns[4]},
			},
		},
	}
	// BadgeEventsColumns holds the columns for the "badge_events" table.
	BadgeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "badge", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "reason", Type: field.TypeString},
	}
	// BadgeEventsTable holds the schema information for the "badge_events" table.
	BadgeEventsTable = &schema.Table{
		Name:       "badge_events",
		Columns:    BadgeEventsColumns,
		PrimaryKey: []*schema.Column{BadgeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badgeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[1]},
			},
			{
				Name:    "badgeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[2]},
			},
			{
				Name:    "badgeevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[3]},
			},
			{
				Name:    "badgeevent_badge",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[4]},
			},
		},
	}
	// ContentItemsColumns holds the columns for the "content_items" table.
	ContentItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "week", Type: field.TypeInt},
		{Name: "content_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: "medium"},
		{Name: "question", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "answer_key", Type: field.TypeString, Default: ""},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "front", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "back", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "raw_response", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "context_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "consumed_at", Type: field.TypeTime, Nullable: true},
	}
	// ContentItemsTable holds the schema information for the "content_items" table.
	ContentItemsTable = &schema.Table{
		Name:       "content_items",
		Columns:    ContentItemsColumns,
		PrimaryKey: []*schema.Column{ContentItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentitem_user_id_week_content_type",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[1], ContentItemsColumns[2], ContentItemsColumns[3]},
			},
			{
				Name:    "contentitem_content_hash",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[12]},
			},
		},
	}
	// GenerationEventsColumns holds the columns for the "generation_events" table.
	GenerationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "week", Type: field.TypeInt},
		{Name: "content_type", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "prompt_fingerprint", Type: field.TypeString, Default: ""},
		{Name: "raw_response", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "parse_ok", Type: field.TypeBool, Default: false},
		{Name: "valid_count", Type: field.TypeInt, Default: 0},
		{Name: "duplicate_count", Type: field.TypeInt, Default: 0},
		{Name: "max_similarity", Type: field.TypeFloat64, Default: 0},
		{Name: "rejection_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
	}
	// GenerationEventsTable holds the schema information for the "generation_events" table.
	GenerationEventsTable = &schema.Table{
		Name:       "generation_events",
		Columns:    GenerationEventsColumns,
		PrimaryKey: []*schema.Column{GenerationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[1]},
			},
			{
				Name:    "generationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[2]},
			},
			{
				Name:    "generationevent_user_id_content_type",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[3], GenerationEventsColumns[5]},
			},
			{
				Name:    "generationevent_success",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[15]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuizSessionsColumns holds the columns for the "quiz_sessions" table.
	QuizSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "week", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeString, Default: "medium"},
		{Name: "status", Type: field.TypeString, Default: "started"},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "timeout_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "points_awarded", Type: field.TypeInt, Default: 0},
	}
	// QuizSessionsTable holds the schema information for the "quiz_sessions" table.
	QuizSessionsTable = &schema.Table{
		Name:       "quiz_sessions",
		Columns:    QuizSessionsColumns,
		PrimaryKey: []*schema.Column{QuizSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[1]},
			},
			{
				Name:    "quizsession_status",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[4]},
			},
		},
	}
	// SimilarityRecordsColumns holds the columns for the "similarity_records" table.
	SimilarityRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "week", Type: field.TypeInt},
		{Name: "content_type", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "embedding", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SimilarityRecordsTable holds the schema information for the "similarity_records" table.
	SimilarityRecordsTable = &schema.Table{
		Name:       "similarity_records",
		Columns:    SimilarityRecordsColumns,
		PrimaryKey: []*schema.Column{SimilarityRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "similarityrecord_user_id_week_content_type",
				Unique:  false,
				Columns: []*schema.Column{SimilarityRecordsColumns[2], SimilarityRecordsColumns[3], SimilarityRecordsColumns[4]},
			},
			{
				Name:    "similarityrecord_user_id_content_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{SimilarityRecordsColumns[2], SimilarityRecordsColumns[4], SimilarityRecordsColumns[7]},
			},
		},
	}
	// UserLimitsColumns holds the columns for the "user_limits" table.
	UserLimitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "sessions_today", Type: field.TypeInt, Default: 0},
		{Name: "flips_today", Type: field.TypeInt, Default: 0},
		{Name: "points_today", Type: field.TypeInt, Default: 0},
		{Name: "points_total", Type: field.TypeInt, Default: 0},
		{Name: "reset_at", Type: field.TypeTime},
	}
	// UserLimitsTable holds the schema information for the "user_limits" table.
	UserLimitsTable = &schema.Table{
		Name:       "user_limits",
		Columns:    UserLimitsColumns,
		PrimaryKey: []*schema.Column{UserLimitsColumns[0]},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "interests", Type: field.TypeJSON, Nullable: true},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
	}
	// UserStreaksColumns holds the columns for the "user_streaks" table.
	UserStreaksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "current", Type: field.TypeInt, Default: 0},
		{Name: "longest", Type: field.TypeInt, Default: 0},
		{Name: "last_active_on", Type: field.TypeString, Default: ""},
	}
	// UserStreaksTable holds the schema information for the "user_streaks" table.
	UserStreaksTable = &schema.Table{
		Name:       "user_streaks",
		Columns:    UserStreaksColumns,
		PrimaryKey: []*schema.Column{UserStreaksColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerAttemptsTable,
		BadgeEventsTable,
		ContentItemsTable,
		GenerationEventsTable,
		LlmRequestEventsTable,
		QuizSessionsTable,
		SimilarityRecordsTable,
		UserLimitsTable,
		UserProfilesTable,
		UserStreaksTable,
	}
)

func init() {
}
