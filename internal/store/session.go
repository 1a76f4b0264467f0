package store

import (
	"context"
	"fmt"
	"time"

	"github.com/bumpwise/bumpquiz/ent"
	"github.com/bumpwise/bumpquiz/ent/answerattempt"
	"github.com/bumpwise/bumpquiz/ent/quizsession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *sessionRepo) Create(ctx context.Context, s *Session) error {
	_, err := r.client.QuizSession.Create().
		SetID(s.ID).
		SetUserID(s.UserID).
		SetWeek(s.Week).
		SetDifficulty(s.Difficulty).
		SetStatus(s.Status).
		SetQuestions(s.Questions).
		SetCreatedAt(s.CreatedAt).
		SetTimeoutAt(s.TimeoutAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	qs, err := r.client.QuizSession.Query().
		Where(quizsession.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	return &Session{
		ID:            qs.ID,
		UserID:        qs.UserID,
		Week:          qs.Week,
		Difficulty:    qs.Difficulty,
		Status:        qs.Status,
		Questions:     qs.Questions,
		CreatedAt:     qs.CreatedAt,
		TimeoutAt:     qs.TimeoutAt,
		CompletedAt:   qs.CompletedAt,
		Score:         qs.Score,
		PointsAwarded: qs.PointsAwarded,
	}, nil
}

func (r *sessionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	err := r.client.QuizSession.UpdateOneID(id).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	return nil
}

func (r *sessionRepo) UpdateQuestions(ctx context.Context, id string, questions []Question, status string) error {
	err := r.client.QuizSession.UpdateOneID(id).
		SetQuestions(questions).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update session questions: %w", err)
	}
	return nil
}

func (r *sessionRepo) Complete(ctx context.Context, id string, score, points int, at time.Time) error {
	err := r.client.QuizSession.UpdateOneID(id).
		SetStatus("completed").
		SetScore(score).
		SetPointsAwarded(points).
		SetCompletedAt(at).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

func (r *sessionRepo) AppendAttempt(ctx context.Context, sessionID string, a Attempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerAttempt.Create().
		SetSequence(seqNum).
		SetSessionID(sessionID).
		SetQuestionID(a.QuestionID).
		SetSelectedOption(a.SelectedOption).
		SetCorrect(a.Correct).
		SetAttemptOrdinal(a.AttemptOrdinal).
		SetStartedAt(a.StartedAt).
		SetAnsweredAt(a.AnsweredAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer attempt: %w", err)
	}
	return nil
}

func (r *sessionRepo) Attempts(ctx context.Context, sessionID string) ([]Attempt, error) {
	rows, err := r.client.AnswerAttempt.Query().
		Where(answerattempt.SessionID(sessionID)).
		Order(ent.Asc(answerattempt.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]Attempt, len(rows))
	for i, a := range rows {
		out[i] = Attempt{
			Sequence:       a.Sequence,
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			Correct:        a.Correct,
			AttemptOrdinal: a.AttemptOrdinal,
			StartedAt:      a.StartedAt,
			AnsweredAt:     a.AnsweredAt,
		}
	}
	return out, nil
}

func (r *sessionRepo) CountCompleted(ctx context.Context, userID string) (int, error) {
	n, err := r.client.QuizSession.Query().
		Where(quizsession.UserID(userID), quizsession.Status("completed")).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed sessions: %w", err)
	}
	return n, nil
}
