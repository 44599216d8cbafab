package store

import (
	"context"
	"errors"

	"github.com/ontapquiz/backend/internal/domain/questionbank"
)

var (
	ErrNotFound = errors.New("not found")
)

// BankSummary is the lightweight bank listing for the source selector.
type BankSummary struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Questions int    `json:"questions"`
}

// Store is the query surface over the loaded banks. Implementations hold
// data for the process lifetime only; nothing survives a restart.
type Store interface {
	SaveBank(ctx context.Context, bank *questionbank.Bank, position int) error
	GetBank(ctx context.Context, key string) (*questionbank.Bank, error)
	ListBanks(ctx context.Context) ([]BankSummary, error)
	QuestionsByChapter(ctx context.Context, key string, chapter *string) ([]questionbank.Question, error)
	Close() error
}
