package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URL", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("JWT_ALGORITHM", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, StoreMongo, cfg.Store.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "ai_mock_interview", cfg.Mongo.DBName)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 60, cfg.JWT.ExpireMinutes)
	assert.Equal(t, time.Hour, cfg.TokenTTL())
	assert.Equal(t, bcrypt.DefaultCost, cfg.JWT.BcryptCost)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MongoURLFallback(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URL", "mongodb://mongo:27017")

	cfg := Load()
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)

	t.Setenv("MONGODB_URI", "mongodb://primary:27017")
	cfg = Load()
	assert.Equal(t, "mongodb://primary:27017", cfg.Mongo.URI)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("JWT_ALGORITHM", "hs512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := Load()

	assert.Equal(t, StorePostgres, cfg.Store.Driver)
	assert.Equal(t, "HS512", cfg.JWT.Algorithm)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL())
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	require.NoError(t, cfg.Validate())
}

func TestValidate_MissingAPIKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_API_KEY", "")

	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		Store: StoreConfig{Driver: "sqlite"},
		JWT: JWTConfig{
			Algorithm:     "RS256",
			ExpireMinutes: 0,
			BcryptCost:    bcrypt.DefaultCost,
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"GEMINI_API_KEY",
		"JWT_SECRET_KEY",
		"JWT_ALGORITHM",
		"ACCESS_TOKEN_EXPIRE_MINUTES",
		"STORE_DRIVER",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", DBName: "n",
	}}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=disable", cfg.GetDatabaseDSN())
}
