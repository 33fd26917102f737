package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultTokenLifetimeDays = 30

type Config struct {
	Port             string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	// JWTSecret signs session tokens. The token service refuses to start
	// without it.
	JWTSecret string
	// TokenLifetime is how long issued tokens stay valid.
	TokenLifetime time.Duration
	// AccessPassword bootstraps the singleton config record on first start.
	// When empty, no config record is created and login returns 404 until
	// one exists.
	AccessPassword string
	// SeedDummyData toggles insertion of sample transactions at startup.
	SeedDummyData bool
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "8000",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		TokenLifetime:    defaultTokenLifetimeDays * 24 * time.Hour,
	}

	envPort := os.Getenv("PORT")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	env.JWTSecret = os.Getenv("JWT_SECRET")
	env.AccessPassword = os.Getenv("ACCESS_PASS")
	env.SeedDummyData = os.Getenv("SEED_DUMMY_DATA") == "true"

	if envExpires := os.Getenv("JWT_EXPIRES_DAYS"); len(envExpires) != 0 {
		days, err := strconv.Atoi(envExpires)
		if err != nil || days < 1 {
			return nil, fmt.Errorf("config: invalid JWT_EXPIRES_DAYS %q", envExpires)
		}
		env.TokenLifetime = time.Duration(days) * 24 * time.Hour
	}

	return &env, nil
}

// PostgresURL builds the connection string used by both the server and the
// migration runner.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
