// internal/service/sessions.go
package service

import (
	"context"
	"log/slog"
	"sync"

	examsession "github.com/ontapquiz/backend/internal/domain/exam_session"
	practicesession "github.com/ontapquiz/backend/internal/domain/practice_session"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
	"github.com/ontapquiz/backend/internal/domain/source"
	"github.com/ontapquiz/backend/internal/store"
)

// SessionService owns the active practice and exam sessions. Sessions live
// in process memory only: resetting discards state and a restart discards
// everything. Live session objects never leave the mutex: every method
// mutates and reads under ss.mu and hands callers a detached snapshot, so
// concurrent requests against the same session cannot race.
type SessionService struct {
	store    store.Store
	registry *source.Registry
	logger   *slog.Logger

	mu       sync.Mutex
	practice map[string]*practicesession.PracticeSession
	exams    map[string]*examsession.ExamSession
}

// NewSessionService creates a SessionService.
func NewSessionService(s store.Store, registry *source.Registry, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:    s,
		registry: registry,
		logger:   logger,
		practice: make(map[string]*practicesession.PracticeSession),
		exams:    make(map[string]*examsession.ExamSession),
	}
}

// ── Practice ────────────────────────────────────────────────────────────────

// StartPractice creates a practice session over one bank, optionally
// filtered to a chapter.
func (ss *SessionService) StartPractice(ctx context.Context, bankKey string, chapter *string) (practicesession.PracticeSession, error) {
	bank, err := ss.store.GetBank(ctx, bankKey)
	if err != nil {
		return practicesession.PracticeSession{}, err
	}

	session := practicesession.New(bank, practicesession.SessionConfig{Chapter: chapter})

	ss.mu.Lock()
	ss.practice[session.ID] = session
	snap := session.Snapshot()
	ss.mu.Unlock()

	ss.logger.Info("practice session started",
		"session_id", snap.ID,
		"bank", bankKey,
		"questions", len(snap.Questions),
	)
	return snap, nil
}

// Practice looks up an active practice session.
func (ss *SessionService) Practice(sessionID string) (practicesession.PracticeSession, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.practice[sessionID]
	if !ok {
		return practicesession.PracticeSession{}, store.ErrNotFound
	}
	return session.Snapshot(), nil
}

// ShufflePractice re-randomizes the session's display order.
func (ss *SessionService) ShufflePractice(sessionID string) (practicesession.PracticeSession, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.practice[sessionID]
	if !ok {
		return practicesession.PracticeSession{}, store.ErrNotFound
	}
	session.Reshuffle()
	return session.Snapshot(), nil
}

// ResetPractice clears the session's filter and restores bank order.
func (ss *SessionService) ResetPractice(sessionID string) (practicesession.PracticeSession, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.practice[sessionID]
	if !ok {
		return practicesession.PracticeSession{}, store.ErrNotFound
	}
	session.Reset()
	return session.Snapshot(), nil
}

// AnswerPractice checks one chosen value and returns the reveal for the
// view. No practice state changes.
func (ss *SessionService) AnswerPractice(sessionID string, questionID questionbank.QuestionID, chosen string) (practicesession.AnswerResult, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.practice[sessionID]
	if !ok {
		return practicesession.AnswerResult{}, store.ErrNotFound
	}
	return session.Answer(questionID, chosen)
}

// ── Exams ───────────────────────────────────────────────────────────────────

// StartExam resolves the pool for the source kind, configures a new exam
// session with the requested count, and registers it.
func (ss *SessionService) StartExam(ctx context.Context, kind source.Kind, requestedCount int) (examsession.ExamSession, error) {
	pool, err := ss.resolvePool(ctx, kind)
	if err != nil {
		return examsession.ExamSession{}, err
	}

	session := examsession.New()
	if err := session.Configure(kind, pool, requestedCount); err != nil {
		return examsession.ExamSession{}, err
	}

	ss.mu.Lock()
	ss.exams[session.ID] = session
	snap := session.Snapshot()
	ss.mu.Unlock()

	ss.logger.Info("exam started",
		"exam_id", snap.ID,
		"source", string(kind),
		"selected", len(snap.Selection),
	)
	return snap, nil
}

// Exam looks up an active exam session.
func (ss *SessionService) Exam(examID string) (examsession.ExamSession, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.exams[examID]
	if !ok {
		return examsession.ExamSession{}, store.ErrNotFound
	}
	return session.Snapshot(), nil
}

// RecordAnswer upserts the answer for one position and returns the new
// answered count together with the selection size, for progress display.
func (ss *SessionService) RecordAnswer(examID string, position int, value string) (answered, total int, err error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.exams[examID]
	if !ok {
		return 0, 0, store.ErrNotFound
	}
	answered, err = session.RecordAnswer(position, value)
	if err != nil {
		return 0, 0, err
	}
	return answered, len(session.Selection), nil
}

// SubmitExam scores the exam if every position is answered.
func (ss *SessionService) SubmitExam(examID string) (examsession.Result, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.exams[examID]
	if !ok {
		return examsession.Result{}, store.ErrNotFound
	}
	return session.Submit()
}

// ReviewExam returns the score and the read-only breakdown of a submitted
// exam, taken together under the lock so neither can go stale against a
// concurrent back or reset.
func (ss *SessionService) ReviewExam(examID string) (examsession.Result, []examsession.QuestionReview, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.exams[examID]
	if !ok {
		return examsession.Result{}, nil, store.ErrNotFound
	}
	reviews, err := session.Review()
	if err != nil {
		return examsession.Result{}, nil, err
	}
	return *session.Result, reviews, nil
}

// BackFromReview returns a submitted exam to its answer sheet.
func (ss *SessionService) BackFromReview(examID string) (examsession.ExamSession, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.exams[examID]
	if !ok {
		return examsession.ExamSession{}, store.ErrNotFound
	}
	if err := session.Back(); err != nil {
		return examsession.ExamSession{}, err
	}
	return session.Snapshot(), nil
}

// ResetExam discards the attempt, returning the session to configuring.
func (ss *SessionService) ResetExam(examID string) (examsession.ExamSession, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.exams[examID]
	if !ok {
		return examsession.ExamSession{}, store.ErrNotFound
	}
	session.Reset()
	return session.Snapshot(), nil
}

// resolvePool concatenates the questions of every bank the kind names, in
// registry order, so combined pools are stable run to run.
func (ss *SessionService) resolvePool(ctx context.Context, kind source.Kind) ([]questionbank.Question, error) {
	keys, err := ss.registry.Resolve(kind)
	if err != nil {
		return nil, err
	}

	var pool []questionbank.Question
	for _, key := range keys {
		bank, err := ss.store.GetBank(ctx, key)
		if err != nil {
			return nil, err
		}
		pool = append(pool, bank.Questions...)
	}
	return pool, nil
}
