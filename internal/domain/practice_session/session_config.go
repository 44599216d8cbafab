package practicesession

// SessionConfig holds optional constraints for a practice session.
type SessionConfig struct {
	Chapter *string // nil = all chapters
}

// DefaultConfig returns a config with no chapter filter.
func DefaultConfig() SessionConfig {
	return SessionConfig{Chapter: nil}
}
