package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string `validate:"required"`
	GinMode string `validate:"omitempty,oneof=debug release test"`

	DatabaseURL string
	DBUser      string `validate:"required_without=DatabaseURL"`
	DBPass      string
	DBHost      string `validate:"required_without=DatabaseURL"`
	DBPort      string `validate:"omitempty,numeric"`
	DBName      string `validate:"required_without=DatabaseURL"`

	JWTSecret   string   `validate:"required,min=8"`
	CORSOrigins []string `validate:"dive,required,url"`

	AutoMigrate  bool
	SeedDemoData bool
}

// LoadEnv reads .env (optional) and the process environment.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("info: .env not loaded, using process environment")
	}

	databaseURL := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if databaseURL == "" {
		databaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	return Env{
		AppAddr:      envOrDefault("APP_ADDR", ":8080"),
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
		DatabaseURL:  databaseURL,
		DBUser:       envOrDefault("DB_USER", "root"),
		DBPass:       strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:       envOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:       envOrDefault("DB_PORT", "3306"),
		DBName:       envOrDefault("DB_NAME", "drivent"),
		JWTSecret:    strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AutoMigrate:  envBool("AUTO_MIGRATE", true),
		SeedDemoData: envBool("SEED_DEMO_DATA", false),
	}
}

// Validate checks the struct tags above and returns one error listing every bad field.
func (e Env) Validate() error {
	v := validator.New()
	if err := v.Struct(e); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DSN resolves the go-sql-driver/mysql DSN, preferring DATABASE_URL/MYSQL_URL.
func (e Env) DSN() (string, error) {
	if e.DatabaseURL != "" {
		if strings.HasPrefix(e.DatabaseURL, "mysql://") {
			return mysqlDSNFromURL(e.DatabaseURL)
		}
		return e.DatabaseURL, nil
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser, e.DBPass, e.DBHost, e.DBPort, e.DBName,
	), nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "true")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
