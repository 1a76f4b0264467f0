// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bumpwise/bumpquiz/ent/answerattempt"
	"github.com/bumpwise/bumpquiz/ent/badgeevent"
	"github.com/bumpwise/bumpquiz/ent/contentitem"
	"github.com/bumpwise/bumpquiz/ent/generationevent"
	"github.com/bumpwise/bumpquiz/ent/llmrequestevent"
	"github.com/bumpwise/bumpquiz/ent/quizsession"
	"github.com/bumpwise/bumpquiz/ent/schema"
	"github.com/bumpwise/bumpquiz/ent/similarityrecord"
	"github.com/bumpwise/bumpquiz/ent/userlimit"
	"github.com/bumpwise/bumpquiz/ent/userprofile"
	"github.com/bumpwise/bumpquiz/ent/userstreak"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerattemptMixin := schema.AnswerAttempt{}.Mixin()
	answerattemptMixinFields0 := answerattemptMixin[0].Fields()
	_ = answerattemptMixinFields0
	answerattemptFields := schema.AnswerAttempt{}.Fields()
	_ = answerattemptFields
	// answerattemptDescTimestamp is the schema descriptor for timestamp field.
	answerattemptDescTimestamp := answerattemptMixinFields0[1].Descriptor()
	// answerattempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerattempt.DefaultTimestamp = answerattemptDescTimestamp.Default.(func() time.Time)
	// answerattemptDescSessionID is the schema descriptor for session_id field.
	answerattemptDescSessionID := answerattemptFields[0].Descriptor()
	// answerattempt.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerattempt.SessionIDValidator = answerattemptDescSessionID.Validators[0].(func(string) error)
	// answerattemptDescQuestionID is the schema descriptor for question_id field.
	answerattemptDescQuestionID := answerattemptFields[1].Descriptor()
	// answerattempt.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerattempt.QuestionIDValidator = answerattemptDescQuestionID.Validators[0].(func(string) error)
	// answerattemptDescSelectedOption is the schema descriptor for selected_option field.
	answerattemptDescSelectedOption := answerattemptFields[2].Descriptor()
	// answerattempt.SelectedOptionValidator is a validator for the "selected_option" field. It is called by the builders before save.
	answerattempt.SelectedOptionValidator = answerattemptDescSelectedOption.Validators[0].(func(string) error)
	// answerattemptDescAttemptOrdinal is the schema descriptor for attempt_ordinal field.
	answerattemptDescAttemptOrdinal := answerattemptFields[4].Descriptor()
	// answerattempt.AttemptOrdinalValidator is a validator for the "attempt_ordinal" field. It is called by the builders before save.
	answerattempt.AttemptOrdinalValidator = answerattemptDescAttemptOrdinal.Validators[0].(func(int) error)
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescUserID is the schema descriptor for user_id field.
	badgeeventDescUserID := badgeeventFields[0].Descriptor()
	// badgeevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	badgeevent.UserIDValidator = badgeeventDescUserID.Validators[0].(func(string) error)
	// badgeeventDescBadge is the schema descriptor for badge field.
	badgeeventDescBadge := badgeeventFields[1].Descriptor()
	// badgeevent.BadgeValidator is a validator for the "badge" field. It is called by the builders before save.
	badgeevent.BadgeValidator = badgeeventDescBadge.Validators[0].(func(string) error)
	// badgeeventDescSessionID is the schema descriptor for session_id field.
	badgeeventDescSessionID := badgeeventFields[2].Descriptor()
	// badgeevent.DefaultSessionID holds the default value on creation for the session_id field.
	badgeevent.DefaultSessionID = badgeeventDescSessionID.Default.(string)
	// badgeeventDescReason is the schema descriptor for reason field.
	badgeeventDescReason := badgeeventFields[3].Descriptor()
	// badgeevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	badgeevent.ReasonValidator = badgeeventDescReason.Validators[0].(func(string) error)
	contentitemFields := schema.ContentItem{}.Fields()
	_ = contentitemFields
	// contentitemDescUserID is the schema descriptor for user_id field.
	contentitemDescUserID := contentitemFields[1].Descriptor()
	// contentitem.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	contentitem.UserIDValidator = contentitemDescUserID.Validators[0].(func(string) error)
	// contentitemDescWeek is the schema descriptor for week field.
	contentitemDescWeek := contentitemFields[2].Descriptor()
	// contentitem.WeekValidator is a validator for the "week" field. It is called by the builders before save.
	contentitem.WeekValidator = func() func(int) error {
		validators := contentitemDescWeek.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(week int) error {
			for _, fn := range fns {
				if err := fn(week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentitemDescContentType is the schema descriptor for content_type field.
	contentitemDescContentType := contentitemFields[3].Descriptor()
	// contentitem.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	contentitem.ContentTypeValidator = contentitemDescContentType.Validators[0].(func(string) error)
	// contentitemDescDifficulty is the schema descriptor for difficulty field.
	contentitemDescDifficulty := contentitemFields[4].Descriptor()
	// contentitem.DefaultDifficulty holds the default value on creation for the difficulty field.
	contentitem.DefaultDifficulty = contentitemDescDifficulty.Default.(string)
	// contentitemDescQuestion is the schema descriptor for question field.
	contentitemDescQuestion := contentitemFields[5].Descriptor()
	// contentitem.DefaultQuestion holds the default value on creation for the question field.
	contentitem.DefaultQuestion = contentitemDescQuestion.Default.(string)
	// contentitemDescAnswerKey is the schema descriptor for answer_key field.
	contentitemDescAnswerKey := contentitemFields[7].Descriptor()
	// contentitem.DefaultAnswerKey holds the default value on creation for the answer_key field.
	contentitem.DefaultAnswerKey = contentitemDescAnswerKey.Default.(string)
	// contentitemDescExplanation is the schema descriptor for explanation field.
	contentitemDescExplanation := contentitemFields[8].Descriptor()
	// contentitem.DefaultExplanation holds the default value on creation for the explanation field.
	contentitem.DefaultExplanation = contentitemDescExplanation.Default.(string)
	// contentitemDescFront is the schema descriptor for front field.
	contentitemDescFront := contentitemFields[9].Descriptor()
	// contentitem.DefaultFront holds the default value on creation for the front field.
	contentitem.DefaultFront = contentitemDescFront.Default.(string)
	// contentitemDescBack is the schema descriptor for back field.
	contentitemDescBack := contentitemFields[10].Descriptor()
	// contentitem.DefaultBack holds the default value on creation for the back field.
	contentitem.DefaultBack = contentitemDescBack.Default.(string)
	// contentitemDescContentHash is the schema descriptor for content_hash field.
	contentitemDescContentHash := contentitemFields[12].Descriptor()
	// contentitem.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	contentitem.ContentHashValidator = contentitemDescContentHash.Validators[0].(func(string) error)
	// contentitemDescRawResponse is the schema descriptor for raw_response field.
	contentitemDescRawResponse := contentitemFields[13].Descriptor()
	// contentitem.DefaultRawResponse holds the default value on creation for the raw_response field.
	contentitem.DefaultRawResponse = contentitemDescRawResponse.Default.(string)
	// contentitemDescCreatedAt is the schema descriptor for created_at field.
	contentitemDescCreatedAt := contentitemFields[15].Descriptor()
	// contentitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	contentitem.DefaultCreatedAt = contentitemDescCreatedAt.Default.(func() time.Time)
	// contentitemDescID is the schema descriptor for id field.
	contentitemDescID := contentitemFields[0].Descriptor()
	// contentitem.IDValidator is a validator for the "id" field. It is called by the builders before save.
	contentitem.IDValidator = contentitemDescID.Validators[0].(func(string) error)
	generationeventMixin := schema.GenerationEvent{}.Mixin()
	generationeventMixinFields0 := generationeventMixin[0].Fields()
	_ = generationeventMixinFields0
	generationeventFields := schema.GenerationEvent{}.Fields()
	_ = generationeventFields
	// generationeventDescTimestamp is the schema descriptor for timestamp field.
	generationeventDescTimestamp := generationeventMixinFields0[1].Descriptor()
	// generationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationevent.DefaultTimestamp = generationeventDescTimestamp.Default.(func() time.Time)
	// generationeventDescUserID is the schema descriptor for user_id field.
	generationeventDescUserID := generationeventFields[0].Descriptor()
	// generationevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	generationevent.UserIDValidator = generationeventDescUserID.Validators[0].(func(string) error)
	// generationeventDescContentType is the schema descriptor for content_type field.
	generationeventDescContentType := generationeventFields[2].Descriptor()
	// generationevent.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	generationevent.ContentTypeValidator = generationeventDescContentType.Validators[0].(func(string) error)
	// generationeventDescAttempt is the schema descriptor for attempt field.
	generationeventDescAttempt := generationeventFields[3].Descriptor()
	// generationevent.AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	generationevent.AttemptValidator = generationeventDescAttempt.Validators[0].(func(int) error)
	// generationeventDescPromptFingerprint is the schema descriptor for prompt_fingerprint field.
	generationeventDescPromptFingerprint := generationeventFields[4].Descriptor()
	// generationevent.DefaultPromptFingerprint holds the default value on creation for the prompt_fingerprint field.
	generationevent.DefaultPromptFingerprint = generationeventDescPromptFingerprint.Default.(string)
	// generationeventDescRawResponse is the schema descriptor for raw_response field.
	generationeventDescRawResponse := generationeventFields[5].Descriptor()
	// generationevent.DefaultRawResponse holds the default value on creation for the raw_response field.
	generationevent.DefaultRawResponse = generationeventDescRawResponse.Default.(string)
	// generationeventDescLatencyMs is the schema descriptor for latency_ms field.
	generationeventDescLatencyMs := generationeventFields[6].Descriptor()
	// generationevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	generationevent.DefaultLatencyMs = generationeventDescLatencyMs.Default.(int64)
	// generationeventDescParseOk is the schema descriptor for parse_ok field.
	generationeventDescParseOk := generationeventFields[7].Descriptor()
	// generationevent.DefaultParseOk holds the default value on creation for the parse_ok field.
	generationevent.DefaultParseOk = generationeventDescParseOk.Default.(bool)
	// generationeventDescValidCount is the schema descriptor for valid_count field.
	generationeventDescValidCount := generationeventFields[8].Descriptor()
	// generationevent.DefaultValidCount holds the default value on creation for the valid_count field.
	generationevent.DefaultValidCount = generationeventDescValidCount.Default.(int)
	// generationeventDescDuplicateCount is the schema descriptor for duplicate_count field.
	generationeventDescDuplicateCount := generationeventFields[9].Descriptor()
	// generationevent.DefaultDuplicateCount holds the default value on creation for the duplicate_count field.
	generationevent.DefaultDuplicateCount = generationeventDescDuplicateCount.Default.(int)
	// generationeventDescMaxSimilarity is the schema descriptor for max_similarity field.
	generationeventDescMaxSimilarity := generationeventFields[10].Descriptor()
	// generationevent.DefaultMaxSimilarity holds the default value on creation for the max_similarity field.
	generationevent.DefaultMaxSimilarity = generationeventDescMaxSimilarity.Default.(float64)
	// generationeventDescSuccess is the schema descriptor for success field.
	generationeventDescSuccess := generationeventFields[12].Descriptor()
	// generationevent.DefaultSuccess holds the default value on creation for the success field.
	generationevent.DefaultSuccess = generationeventDescSuccess.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizsessionFields := schema.QuizSession{}.Fields()
	_ = quizsessionFields
	// quizsessionDescUserID is the schema descriptor for user_id field.
	quizsessionDescUserID := quizsessionFields[1].Descriptor()
	// quizsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizsession.UserIDValidator = quizsessionDescUserID.Validators[0].(func(string) error)
	// quizsessionDescWeek is the schema descriptor for week field.
	quizsessionDescWeek := quizsessionFields[2].Descriptor()
	// quizsession.WeekValidator is a validator for the "week" field. It is called by the builders before save.
	quizsession.WeekValidator = func() func(int) error {
		validators := quizsessionDescWeek.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(week int) error {
			for _, fn := range fns {
				if err := fn(week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// quizsessionDescDifficulty is the schema descriptor for difficulty field.
	quizsessionDescDifficulty := quizsessionFields[3].Descriptor()
	// quizsession.DefaultDifficulty holds the default value on creation for the difficulty field.
	quizsession.DefaultDifficulty = quizsessionDescDifficulty.Default.(string)
	// quizsessionDescStatus is the schema descriptor for status field.
	quizsessionDescStatus := quizsessionFields[4].Descriptor()
	// quizsession.DefaultStatus holds the default value on creation for the status field.
	quizsession.DefaultStatus = quizsessionDescStatus.Default.(string)
	// quizsessionDescCreatedAt is the schema descriptor for created_at field.
	quizsessionDescCreatedAt := quizsessionFields[6].Descriptor()
	// quizsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizsession.DefaultCreatedAt = quizsessionDescCreatedAt.Default.(func() time.Time)
	// quizsessionDescScore is the schema descriptor for score field.
	quizsessionDescScore := quizsessionFields[9].Descriptor()
	// quizsession.DefaultScore holds the default value on creation for the score field.
	quizsession.DefaultScore = quizsessionDescScore.Default.(int)
	// quizsessionDescPointsAwarded is the schema descriptor for points_awarded field.
	quizsessionDescPointsAwarded := quizsessionFields[10].Descriptor()
	// quizsession.DefaultPointsAwarded holds the default value on creation for the points_awarded field.
	quizsession.DefaultPointsAwarded = quizsessionDescPointsAwarded.Default.(int)
	// quizsessionDescID is the schema descriptor for id field.
	quizsessionDescID := quizsessionFields[0].Descriptor()
	// quizsession.IDValidator is a validator for the "id" field. It is called by the builders before save.
	quizsession.IDValidator = quizsessionDescID.Validators[0].(func(string) error)
	similarityrecordFields := schema.SimilarityRecord{}.Fields()
	_ = similarityrecordFields
	// similarityrecordDescItemID is the schema descriptor for item_id field.
	similarityrecordDescItemID := similarityrecordFields[0].Descriptor()
	// similarityrecord.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	similarityrecord.ItemIDValidator = similarityrecordDescItemID.Validators[0].(func(string) error)
	// similarityrecordDescUserID is the schema descriptor for user_id field.
	similarityrecordDescUserID := similarityrecordFields[1].Descriptor()
	// similarityrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	similarityrecord.UserIDValidator = similarityrecordDescUserID.Validators[0].(func(string) error)
	// similarityrecordDescContentType is the schema descriptor for content_type field.
	similarityrecordDescContentType := similarityrecordFields[3].Descriptor()
	// similarityrecord.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	similarityrecord.ContentTypeValidator = similarityrecordDescContentType.Validators[0].(func(string) error)
	// similarityrecordDescContentHash is the schema descriptor for content_hash field.
	similarityrecordDescContentHash := similarityrecordFields[4].Descriptor()
	// similarityrecord.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	similarityrecord.ContentHashValidator = similarityrecordDescContentHash.Validators[0].(func(string) error)
	// similarityrecordDescCreatedAt is the schema descriptor for created_at field.
	similarityrecordDescCreatedAt := similarityrecordFields[6].Descriptor()
	// similarityrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	similarityrecord.DefaultCreatedAt = similarityrecordDescCreatedAt.Default.(func() time.Time)
	userlimitFields := schema.UserLimit{}.Fields()
	_ = userlimitFields
	// userlimitDescUserID is the schema descriptor for user_id field.
	userlimitDescUserID := userlimitFields[0].Descriptor()
	// userlimit.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userlimit.UserIDValidator = userlimitDescUserID.Validators[0].(func(string) error)
	// userlimitDescSessionsToday is the schema descriptor for sessions_today field.
	userlimitDescSessionsToday := userlimitFields[1].Descriptor()
	// userlimit.DefaultSessionsToday holds the default value on creation for the sessions_today field.
	userlimit.DefaultSessionsToday = userlimitDescSessionsToday.Default.(int)
	// userlimitDescFlipsToday is the schema descriptor for flips_today field.
	userlimitDescFlipsToday := userlimitFields[2].Descriptor()
	// userlimit.DefaultFlipsToday holds the default value on creation for the flips_today field.
	userlimit.DefaultFlipsToday = userlimitDescFlipsToday.Default.(int)
	// userlimitDescPointsToday is the schema descriptor for points_today field.
	userlimitDescPointsToday := userlimitFields[3].Descriptor()
	// userlimit.DefaultPointsToday holds the default value on creation for the points_today field.
	userlimit.DefaultPointsToday = userlimitDescPointsToday.Default.(int)
	// userlimitDescPointsTotal is the schema descriptor for points_total field.
	userlimitDescPointsTotal := userlimitFields[4].Descriptor()
	// userlimit.DefaultPointsTotal holds the default value on creation for the points_total field.
	userlimit.DefaultPointsTotal = userlimitDescPointsTotal.Default.(int)
	// userlimitDescResetAt is the schema descriptor for reset_at field.
	userlimitDescResetAt := userlimitFields[5].Descriptor()
	// userlimit.DefaultResetAt holds the default value on creation for the reset_at field.
	userlimit.DefaultResetAt = userlimitDescResetAt.Default.(func() time.Time)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescUserID is the schema descriptor for user_id field.
	userprofileDescUserID := userprofileFields[0].Descriptor()
	// userprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprofile.UserIDValidator = userprofileDescUserID.Validators[0].(func(string) error)
	// userprofileDescName is the schema descriptor for name field.
	userprofileDescName := userprofileFields[1].Descriptor()
	// userprofile.DefaultName holds the default value on creation for the name field.
	userprofile.DefaultName = userprofileDescName.Default.(string)
	userstreakFields := schema.UserStreak{}.Fields()
	_ = userstreakFields
	// userstreakDescUserID is the schema descriptor for user_id field.
	userstreakDescUserID := userstreakFields[0].Descriptor()
	// userstreak.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userstreak.UserIDValidator = userstreakDescUserID.Validators[0].(func(string) error)
	// userstreakDescCurrent is the schema descriptor for current field.
	userstreakDescCurrent := userstreakFields[1].Descriptor()
	// userstreak.DefaultCurrent holds the default value on creation for the current field.
	userstreak.DefaultCurrent = userstreakDescCurrent.Default.(int)
	// userstreakDescLongest is the schema descriptor for longest field.
	userstreakDescLongest := userstreakFields[2].Descriptor()
	// userstreak.DefaultLongest holds the default value on creation for the longest field.
	userstreak.DefaultLongest = userstreakDescLongest.Default.(int)
	// userstreakDescLastActiveOn is the schema descriptor for last_active_on field.
	userstreakDescLastActiveOn := userstreakFields[3].Descriptor()
	// userstreak.DefaultLastActiveOn holds the default value on creation for the last_active_on field.
	userstreak.DefaultLastActiveOn = userstreakDescLastActiveOn.Default.(string)
}
