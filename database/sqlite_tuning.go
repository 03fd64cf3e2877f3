package database

import (
	"fmt"
	"net/url"
	"strings"

	"glitchmart/config"
)

type sqlitePoolConfig struct {
	maxOpenConns int
	maxIdleConns int
	maxIdleSec   int
	maxLifeSec   int
}

// sanitizeSQLitePoolConfig enforces sensible bounds: maxOpenConns is at
// least 1, maxIdleConns is clamped to [0, maxOpenConns], idle/lifetime
// seconds are at least 0.
func sanitizeSQLitePoolConfig(cfg sqlitePoolConfig) sqlitePoolConfig {
	if cfg.maxOpenConns < 1 {
		cfg.maxOpenConns = 1
	}
	if cfg.maxIdleConns < 0 {
		cfg.maxIdleConns = 0
	}
	if cfg.maxIdleConns > cfg.maxOpenConns {
		cfg.maxIdleConns = cfg.maxOpenConns
	}
	if cfg.maxIdleSec < 0 {
		cfg.maxIdleSec = 0
	}
	if cfg.maxLifeSec < 0 {
		cfg.maxLifeSec = 0
	}
	return cfg
}

// buildSQLiteDSN constructs a SQLite DSN from dbPath and settings. When
// PRAGMAs are enabled it appends busy_timeout, journal_mode, synchronous
// and foreign_keys parameters to the query portion, preserving any query
// parameters already present in dbPath.
func buildSQLiteDSN(dbPath string, settings *config.Config) string {
	base, rawQuery, hasQuery := strings.Cut(dbPath, "?")

	query, _ := url.ParseQuery(rawQuery)

	if settings.SQLitePragmasEnabled {
		if settings.SQLiteBusyTimeoutMS > 0 {
			query.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", settings.SQLiteBusyTimeoutMS))
		}
		if journalMode := normalizeSQLiteJournalMode(settings.SQLiteJournalMode); journalMode != "" {
			query.Add("_pragma", fmt.Sprintf("journal_mode(%s)", journalMode))
		}
		if synchronous := normalizeSQLiteSynchronous(settings.SQLiteSynchronous); synchronous != "" {
			query.Add("_pragma", fmt.Sprintf("synchronous(%s)", synchronous))
		}
		if settings.SQLiteForeignKeys {
			query.Add("_pragma", "foreign_keys(1)")
		} else {
			query.Add("_pragma", "foreign_keys(0)")
		}
	}

	if len(query) == 0 {
		return base
	}

	encoded := query.Encode()
	if !hasQuery && encoded != "" {
		return base + "?" + encoded
	}
	return base + "?" + encoded
}

// currentSQLitePoolConfig builds a sanitized pool config from settings.
func currentSQLitePoolConfig(settings *config.Config) sqlitePoolConfig {
	return sanitizeSQLitePoolConfig(sqlitePoolConfig{
		maxOpenConns: settings.SQLiteMaxOpenConns,
		maxIdleConns: settings.SQLiteMaxIdleConns,
		maxIdleSec:   settings.SQLiteConnMaxIdleSec,
		maxLifeSec:   settings.SQLiteConnMaxLifeSec,
	})
}

// normalizeSQLiteJournalMode uppercases the value and validates it against
// the journal modes SQLite accepts, returning "" for invalid input.
func normalizeSQLiteJournalMode(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	switch value {
	case "WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY", "OFF":
		return value
	default:
		return ""
	}
}

// normalizeSQLiteSynchronous uppercases and validates a `synchronous`
// pragma value, returning "" for invalid input.
func normalizeSQLiteSynchronous(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	switch value {
	case "OFF", "NORMAL", "FULL", "EXTRA":
		return value
	case "0", "1", "2", "3":
		return value
	default:
		return ""
	}
}
