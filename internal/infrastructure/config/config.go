package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/ontapquiz/backend/internal/domain/questionbank"
	"github.com/ontapquiz/backend/internal/domain/source"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Question sources, in the fixed order combined exams draw them.
	// The general bank is required; secondary and tertiary are optional.
	Sources []source.Source

	// Collation locale for chapter listings. The bundled banks are
	// Vietnamese, so that's the default.
	Locale language.Tag
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	sources := []source.Source{
		{
			Key:      string(source.KindGeneral),
			Label:    getenvDefault("GENERAL_BANK_LABEL", "Ngân hàng chung"),
			Location: mustGetenv("GENERAL_BANK"),
		},
	}
	if loc := os.Getenv("SECONDARY_BANK"); loc != "" {
		sources = append(sources, source.Source{
			Key:      string(source.KindSecondary),
			Label:    getenvDefault("SECONDARY_BANK_LABEL", "Ngân hàng bổ sung"),
			Location: loc,
		})
	}
	if loc := os.Getenv("TERTIARY_BANK"); loc != "" {
		sources = append(sources, source.Source{
			Key:      string(source.KindTertiary),
			Label:    getenvDefault("TERTIARY_BANK_LABEL", "Ngân hàng nâng cao"),
			Location: loc,
		})
	}

	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		Sources:         sources,
		Locale:          bankLocale(),
	}
}

// bankLocale resolves the chapter-collation locale. The bundled banks are
// Vietnamese, so an unset BANK_LOCALE falls back to the banks' own default.
func bankLocale() language.Tag {
	v := os.Getenv("BANK_LOCALE")
	if v == "" {
		return questionbank.DefaultLocale
	}
	tag, err := language.Parse(v)
	if err != nil {
		log.Fatalf("config: BANK_LOCALE=%q is not a valid BCP-47 tag: %v", v, err)
	}
	return tag
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
