package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Identity     IdentityConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SNKRS_APP_ENV" default:"dev"`
	Port         string `envconfig:"SNKRS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SNKRS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SNKRS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SNKRS_DB_DSN"`
	Driver string `envconfig:"SNKRS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SNKRS_DB_HOST"`
	LegacyPort     int    `envconfig:"SNKRS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SNKRS_DB_USER"`
	LegacyPassword string `envconfig:"SNKRS_DB_PASSWORD"`
	LegacyName     string `envconfig:"SNKRS_DB_NAME"`
	LegacySSLMode  string `envconfig:"SNKRS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SNKRS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SNKRS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SNKRS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SNKRS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// UsesSQLite reports whether the configured driver is the embedded sqlite one.
func (db DBConfig) UsesSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"SNKRS_REDIS_URL"`
	Address      string        `envconfig:"SNKRS_REDIS_ADDR"`
	Password     string        `envconfig:"SNKRS_REDIS_PASSWORD"`
	DB           int           `envconfig:"SNKRS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SNKRS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SNKRS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SNKRS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SNKRS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SNKRS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether any redis endpoint was configured. Redis is optional:
// without it the API simply runs without idempotent-replay support.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

// IdentityConfig controls how request identity is resolved. Authentication is
// an external collaborator; until it is wired in, every request is attributed
// to the configured dev user.
type IdentityConfig struct {
	DevUserID string `envconfig:"SNKRS_IDENTITY_DEV_USER_ID" default:"dev-user"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SNKRS_AUTO_MIGRATE" default:"false"`
	SeedCatalog bool `envconfig:"SNKRS_SEED_CATALOG" default:"true"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" || db.UsesSQLite() {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
