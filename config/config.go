package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"glitchmart/version"
)

// Config holds Glitchmart runtime configuration.
type Config struct {
	LogLevel    string
	LogFilePath string
	Port        int
	DatabaseURL string

	SQLitePragmasEnabled bool
	SQLiteBusyTimeoutMS  int
	SQLiteJournalMode    string
	SQLiteSynchronous    string
	SQLiteForeignKeys    bool
	SQLiteMaxOpenConns   int
	SQLiteMaxIdleConns   int
	SQLiteConnMaxIdleSec int
	SQLiteConnMaxLifeSec int

	// Log-ingestion sink. Emission is skipped when URL or API key is empty.
	LogSinkURL       string
	LogSinkAPIKey    string
	LogSinkIndex     string
	LogSinkTimeoutMS int

	// Deployment region, only used in decorative log metadata.
	Region string
}

// Settings is the global configuration instance populated from environment variables and flags.
var Settings *Config

// init initializes the package-level Settings with default configuration values sourced from environment variables.
func init() {
	Settings = &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFilePath: getEnv("LOG_FILE", "./glitchmart.log"),
		Port:        getEnvInt("PORT", 8090),
		DatabaseURL: getEnv("DATABASE_URL", "glitchmart.db"),

		SQLitePragmasEnabled: getEnvBool("SQLITE_PRAGMAS_ENABLED", true),
		SQLiteBusyTimeoutMS:  getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
		SQLiteJournalMode:    getEnv("SQLITE_JOURNAL_MODE", "WAL"),
		SQLiteSynchronous:    getEnv("SQLITE_SYNCHRONOUS", "NORMAL"),
		SQLiteForeignKeys:    getEnvBool("SQLITE_FOREIGN_KEYS", true),
		SQLiteMaxOpenConns:   getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
		SQLiteMaxIdleConns:   getEnvInt("SQLITE_MAX_IDLE_CONNS", 1),
		SQLiteConnMaxIdleSec: getEnvInt("SQLITE_CONN_MAX_IDLE_SECONDS", 300),
		SQLiteConnMaxLifeSec: getEnvInt("SQLITE_CONN_MAX_LIFETIME_SECONDS", 0),

		LogSinkURL:       getEnv("ELASTICSEARCH_URL", ""),
		LogSinkAPIKey:    getEnv("ELASTICSEARCH_API_KEY", ""),
		LogSinkIndex:     getEnv("ELASTICSEARCH_INDEX", "search-j1bc"),
		LogSinkTimeoutMS: getEnvInt("ELASTICSEARCH_TIMEOUT_MS", 5000),

		Region: getEnv("DEPLOY_REGION", "iad1"),
	}
}

// ParseFlags parses command-line flags, applies any overrides to the package-level Settings, and updates configuration accordingly.
// It also provides a custom usage message and handles --help (prints usage and exits) and --version (prints build info and exits).
func ParseFlags() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Glitchmart - chaos-engineering demo storefront\n\n")
		fmt.Fprintf(out, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(out, "\nEnvironment variables:")
		fmt.Fprintln(out, "  LOG_LEVEL                         Log level (DEBUG, INFO, WARN, ERROR)")
		fmt.Fprintln(out, "  LOG_FILE                          Log file path (default ./glitchmart.log)")
		fmt.Fprintln(out, "  PORT                              HTTP server port (default 8090)")
		fmt.Fprintln(out, "  DATABASE_URL                      SQLite database path (default glitchmart.db)")
		fmt.Fprintln(out, "  SQLITE_PRAGMAS_ENABLED            Enable SQLite PRAGMAs (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_BUSY_TIMEOUT_MS            SQLite busy_timeout in milliseconds (default 5000)")
		fmt.Fprintln(out, "  SQLITE_JOURNAL_MODE               SQLite journal_mode (default WAL)")
		fmt.Fprintln(out, "  SQLITE_SYNCHRONOUS                SQLite synchronous (default NORMAL)")
		fmt.Fprintln(out, "  SQLITE_FOREIGN_KEYS               Enable SQLite foreign_keys (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_MAX_OPEN_CONNS             SQLite MaxOpenConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_MAX_IDLE_CONNS             SQLite MaxIdleConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_IDLE_SECONDS      SQLite ConnMaxIdleTime in seconds (default 300)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_LIFETIME_SECONDS  SQLite ConnMaxLifetime in seconds (default 0)")
		fmt.Fprintln(out, "  ELASTICSEARCH_URL                 Log-ingestion endpoint URL (emission skipped if empty)")
		fmt.Fprintln(out, "  ELASTICSEARCH_API_KEY             Log-ingestion API key (emission skipped if empty)")
		fmt.Fprintln(out, "  ELASTICSEARCH_INDEX               Log-ingestion index name (default search-j1bc)")
		fmt.Fprintln(out, "  ELASTICSEARCH_TIMEOUT_MS          Log-ingestion request timeout in ms (default 5000)")
		fmt.Fprintln(out, "  DEPLOY_REGION                     Deployment region identifier (default iad1)")
	}

	port := flag.Int("port", Settings.Port, "HTTP server port (overrides PORT)")
	db := flag.String("db", Settings.DatabaseURL, "SQLite database path (overrides DATABASE_URL)")
	logLevel := flag.String("log-level", Settings.LogLevel, "Log level: DEBUG, INFO, WARN, ERROR (overrides LOG_LEVEL)")
	logFile := flag.String("log-file", Settings.LogFilePath, "Log file path (overrides LOG_FILE)")
	sqlitePragmasEnabled := flag.Bool("sqlite-pragmas", Settings.SQLitePragmasEnabled, "Enable SQLite PRAGMAs (overrides SQLITE_PRAGMAS_ENABLED)")
	sqliteBusyTimeoutMS := flag.Int("sqlite-busy-timeout-ms", Settings.SQLiteBusyTimeoutMS, "SQLite busy_timeout in milliseconds (overrides SQLITE_BUSY_TIMEOUT_MS)")
	sqliteJournalMode := flag.String("sqlite-journal-mode", Settings.SQLiteJournalMode, "SQLite journal_mode (overrides SQLITE_JOURNAL_MODE)")
	sqliteSynchronous := flag.String("sqlite-synchronous", Settings.SQLiteSynchronous, "SQLite synchronous (overrides SQLITE_SYNCHRONOUS)")
	sqliteForeignKeys := flag.Bool("sqlite-foreign-keys", Settings.SQLiteForeignKeys, "Enable SQLite foreign_keys PRAGMA (overrides SQLITE_FOREIGN_KEYS)")
	sinkURL := flag.String("log-sink-url", Settings.LogSinkURL, "Log-ingestion endpoint URL (overrides ELASTICSEARCH_URL)")
	sinkIndex := flag.String("log-sink-index", Settings.LogSinkIndex, "Log-ingestion index name (overrides ELASTICSEARCH_INDEX)")
	region := flag.String("region", Settings.Region, "Deployment region identifier (overrides DEPLOY_REGION)")

	showHelp := flag.Bool("help", false, "Show help and exit")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetBuildInfo())
		os.Exit(0)
	}

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	Settings.Port = *port
	Settings.DatabaseURL = *db
	Settings.LogLevel = *logLevel
	Settings.LogFilePath = *logFile
	Settings.SQLitePragmasEnabled = *sqlitePragmasEnabled
	Settings.SQLiteBusyTimeoutMS = *sqliteBusyTimeoutMS
	Settings.SQLiteJournalMode = *sqliteJournalMode
	Settings.SQLiteSynchronous = *sqliteSynchronous
	Settings.SQLiteForeignKeys = *sqliteForeignKeys
	Settings.LogSinkURL = *sinkURL
	Settings.LogSinkIndex = *sinkIndex
	Settings.Region = *region
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
