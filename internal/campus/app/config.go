package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	DatabaseFile string // Path to SQLite database file (default: ./campus.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)

	BootstrapAdminEmail    string // Optional: seeds a college admin when none exists
	BootstrapAdminPassword string // Password for the bootstrapped admin

	JWTSecret string        // HS256 secret, at least 32 bytes. Empty generates one per process.
	Issuer    string        // Issuer claim for tokens (default: campus)
	TokenTTL  time.Duration // Access token lifetime (default: 1h)

	PublicBaseURL    string // Prefix for report links, e.g. https://campus.example.edu
	ReportsDir       string // Event reports (default: ./reports)
	AnnualReportsDir string // Annual reports (default: ./annual_reports)
	UploadsDir       string // Uploaded result sheets (default: ./uploads)
	MaxUploadBytes   int64  // Cap on multipart bodies (default: 10MiB)
	PassMark         int    // Lowest passing grade point (default: 4)
	DepartmentsFile  string // Optional YAML catalog replacing the built-in departments

	GeminiAPIKey  string // Optional: without it reports are drafted offline
	GeminiModel   string // Gemini model (default: gemini-1.5-flash)
	DraftFallback bool   // Draft offline when Gemini fails (default: false)

	SendGridAPIKey string // Optional: without it mail is logged to the console
	MailFrom       string // From address (default: Campus <no-reply@campus.local>)

	StatusCron       string // Event status refresh schedule (default: 5 0 * * *)
	ReminderCron     string // Reminder schedule (default: 0 8 * * *)
	ReminderLeadDays int    // Days ahead reminders look (default: 1)

	CORSAllowedOrigins []string // Comma separated (default: http://localhost:3000)
}

// LoadConfig reads the environment, after loading .env when one exists.
// Variables already set in the environment win over the file.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "campus.db"),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),

		BootstrapAdminEmail:    os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		Issuer:    getEnvOrDefault("JWT_ISSUER", "campus"),
		TokenTTL:  getEnvDurationOrDefault("TOKEN_TTL", time.Hour),

		PublicBaseURL:    os.Getenv("PUBLIC_BASE_URL"),
		ReportsDir:       getEnvOrDefault("REPORTS_DIR", "reports"),
		AnnualReportsDir: getEnvOrDefault("ANNUAL_REPORTS_DIR", "annual_reports"),
		UploadsDir:       getEnvOrDefault("UPLOADS_DIR", "uploads"),
		MaxUploadBytes:   int64(getEnvIntOrDefault("MAX_UPLOAD_BYTES", 10<<20)),
		PassMark:         getEnvIntOrDefault("RESULTS_PASS_MARK", 4),
		DepartmentsFile:  os.Getenv("DEPARTMENTS_FILE"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		DraftFallback: getEnvBool("DRAFT_OFFLINE_FALLBACK"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       getEnvOrDefault("MAIL_FROM", "Campus <no-reply@campus.local>"),

		StatusCron:       getEnvOrDefault("STATUS_CRON", "5 0 * * *"),
		ReminderCron:     getEnvOrDefault("REMINDER_CRON", "0 8 * * *"),
		ReminderLeadDays: getEnvIntOrDefault("REMINDER_LEAD_DAYS", 1),

		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func getEnvBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
