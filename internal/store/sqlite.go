// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "modernc.org/sqlite"

	"github.com/ontapquiz/backend/internal/domain/questionbank"
)

const schema = `
CREATE TABLE IF NOT EXISTS banks (
    key TEXT PRIMARY KEY,
    label TEXT NOT NULL,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    bank_key TEXT NOT NULL,
    position INTEGER NOT NULL,
    id TEXT NOT NULL,
    chapter TEXT NOT NULL,
    text TEXT NOT NULL,
    options TEXT NOT NULL,
    correct_answer TEXT NOT NULL,
    PRIMARY KEY (bank_key, position),
    FOREIGN KEY (bank_key) REFERENCES banks(key) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_questions_chapter ON questions(bank_key, chapter);
`

// SQLiteStore keeps the loaded banks in an in-memory SQLite database.
// Banks are immutable after load, so this is a read-mostly index; using
// SQLite keeps chapter filtering in SQL and the data gone on restart.
type SQLiteStore struct {
	db *sql.DB
}

// NewMemory opens a fresh in-memory database and creates the schema.
func NewMemory() (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every pooled connection would otherwise see its own empty :memory: DB.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveBank inserts a bank and all its questions. Position fixes the bank's
// place in the combined-pool ordering.
func (s *SQLiteStore) SaveBank(ctx context.Context, bank *questionbank.Bank, position int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO banks (key, label, position) VALUES (?, ?, ?)",
		bank.Key, bank.Label, position,
	); err != nil {
		return err
	}

	for i, q := range bank.Questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (bank_key, position, id, chapter, text, options, correct_answer)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			bank.Key, i, string(q.ID), q.Chapter, q.Text, string(options), q.CorrectAnswer,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetBank reconstructs a bank with its questions in load order.
func (s *SQLiteStore) GetBank(ctx context.Context, key string) (*questionbank.Bank, error) {
	bank := &questionbank.Bank{Key: key}
	err := s.db.QueryRowContext(ctx,
		"SELECT label FROM banks WHERE key = ?", key,
	).Scan(&bank.Label)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	questions, err := s.queryQuestions(ctx,
		"SELECT id, chapter, text, options, correct_answer FROM questions WHERE bank_key = ? ORDER BY position",
		key,
	)
	if err != nil {
		return nil, err
	}
	bank.Questions = questions
	return bank, nil
}

// ListBanks returns the bank summaries in load order.
func (s *SQLiteStore) ListBanks(ctx context.Context) ([]BankSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.key, b.label, COUNT(q.bank_key)
		FROM banks b
		LEFT JOIN questions q ON q.bank_key = b.key
		GROUP BY b.key, b.label, b.position
		ORDER BY b.position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []BankSummary
	for rows.Next() {
		var s BankSummary
		if err := rows.Scan(&s.Key, &s.Label, &s.Questions); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// QuestionsByChapter returns a bank's questions in load order, restricted
// to one chapter when the filter is non-nil.
func (s *SQLiteStore) QuestionsByChapter(ctx context.Context, key string, chapter *string) ([]questionbank.Question, error) {
	if _, err := s.GetBankLabel(ctx, key); err != nil {
		return nil, err
	}
	if chapter == nil {
		return s.queryQuestions(ctx,
			"SELECT id, chapter, text, options, correct_answer FROM questions WHERE bank_key = ? ORDER BY position",
			key,
		)
	}
	return s.queryQuestions(ctx,
		"SELECT id, chapter, text, options, correct_answer FROM questions WHERE bank_key = ? AND chapter = ? ORDER BY position",
		key, *chapter,
	)
}

// GetBankLabel looks up just the label, doubling as an existence check.
func (s *SQLiteStore) GetBankLabel(ctx context.Context, key string) (string, error) {
	var label string
	err := s.db.QueryRowContext(ctx, "SELECT label FROM banks WHERE key = ?", key).Scan(&label)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return label, nil
}

func (s *SQLiteStore) queryQuestions(ctx context.Context, query string, args ...any) ([]questionbank.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []questionbank.Question{}
	for rows.Next() {
		var (
			q       questionbank.Question
			id      string
			options string
		)
		if err := rows.Scan(&id, &q.Chapter, &q.Text, &options, &q.CorrectAnswer); err != nil {
			return nil, err
		}
		q.ID = questionbank.QuestionID(id)
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
