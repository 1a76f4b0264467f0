// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerAttempt is the predicate function for answerattempt builders.
type AnswerAttempt func(*sql.Selector)

// BadgeEvent is the predicate function for badgeevent builders.
type BadgeEvent func(*sql.Selector)

// ContentItem is the predicate function for contentitem builders.
type ContentItem func(*sql.Selector)

// GenerationEvent is the predicate function for generationevent builders.
type GenerationEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuizSession is the predicate function for quizsession builders.
type QuizSession func(*sql.Selector)

// SimilarityRecord is the predicate function for similarityrecord builders.
type SimilarityRecord func(*sql.Selector)

// UserLimit is the predicate function for userlimit builders.
type UserLimit func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)

// UserStreak is the predicate function for userstreak builders.
type UserStreak func(*sql.Selector)
