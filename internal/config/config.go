package config

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port         string
	SQLiteDBPath string
	JWTSecret    string
	JWTIssuer    string
	JWTAudience  string
	BcryptCost   int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the local dev setup
	env := Config{
		Port:         "9446",
		SQLiteDBPath: "./data/finance-tracker.db",
		JWTSecret:    "local-dev-secret-change-me",
		JWTIssuer:    "finance-tracker",
		JWTAudience:  "finance-tracker-ui",
		BcryptCost:   bcrypt.DefaultCost,
	}

	envPort := os.Getenv("PORT")
	envSQLiteDBPath := os.Getenv("SQLITE_DB_PATH")
	envJWTSecret := os.Getenv("JWT_SECRET")
	envJWTIssuer := os.Getenv("JWT_ISSUER")
	envJWTAudience := os.Getenv("JWT_AUDIENCE")
	envBcryptCost := os.Getenv("BCRYPT_COST")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envSQLiteDBPath) != 0 {
		env.SQLiteDBPath = envSQLiteDBPath
	}

	if len(envJWTSecret) != 0 {
		env.JWTSecret = envJWTSecret
	}

	if len(envJWTIssuer) != 0 {
		env.JWTIssuer = envJWTIssuer
	}

	if len(envJWTAudience) != 0 {
		env.JWTAudience = envJWTAudience
	}

	if len(envBcryptCost) != 0 {
		cost, err := strconv.Atoi(envBcryptCost)
		if err != nil {
			return nil, err
		}
		env.BcryptCost = cost
	}

	return &env, nil
}
