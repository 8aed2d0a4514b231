package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	c := map[string]string{
		"STR":      "value",
		"EMPTY":    "",
		"INT":      "42",
		"BAD_INT":  "forty-two",
		"BOOL":     "TRUE",
		"DUR":      "90m",
		"DUR_SECS": "30",
		"LIST":     "http://a.test, ,http://b.test",
	}

	assert.Equal(t, "value", GetString(c, "STR", "x"))
	assert.Equal(t, "x", GetString(c, "EMPTY", "x"))
	assert.Equal(t, "x", GetString(nil, "STR", "x"))
	assert.Equal(t, 42, GetInt(c, "INT", 1))
	assert.Equal(t, 1, GetInt(c, "BAD_INT", 1))
	assert.True(t, GetBool(c, "BOOL", false))
	assert.True(t, GetBool(c, "MISSING", true))
	assert.Equal(t, 90*time.Minute, GetDuration(c, "DUR", time.Second))
	assert.Equal(t, 30*time.Second, GetDuration(c, "DUR_SECS", time.Second))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetList(c, "LIST"))
	assert.Nil(t, GetList(c, "MISSING"))
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, "postgres", s.Database.Type)
	assert.Equal(t, time.Hour, s.JWT.Expiry)
	assert.Equal(t, TemplateUserID, s.DefaultUserID)
	assert.Equal(t, TemplateUserID, s.TemplateUserID)
	assert.True(t, s.CloneTemplateOnRegister)
	assert.False(t, s.IsProduction())
}

func TestLoad_SupabaseDSN(t *testing.T) {
	s, err := Load(map[string]string{
		"DB_TYPE":              "supa",
		"SUPABASE_DB_HOST":     "db.example.co",
		"SUPABASE_DB_USER":     "postgres",
		"SUPABASE_DB_PASSWORD": "pw",
		"SUPABASE_DB_NAME":     "portfolio",
	})
	require.NoError(t, err)
	assert.Equal(t, "host=db.example.co user=postgres password=pw dbname=portfolio port=5432 sslmode=require", s.Database.DSN)
}

func TestLoad_RejectsUnknownDBType(t *testing.T) {
	_, err := Load(map[string]string{"DB_TYPE": "oracle"})
	require.Error(t, err)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	_, err := Load(map[string]string{
		"APP_ENV":      "production",
		"DATABASE_URL": "postgres://localhost/portfolio",
	})
	require.Error(t, err)

	s, err := Load(map[string]string{
		"APP_ENV":      "production",
		"DATABASE_URL": "postgres://localhost/portfolio",
		"JWT_SECRET":   "a-very-long-production-secret",
	})
	require.NoError(t, err)
	assert.True(t, s.IsProduction())
}

func TestLoad_ShortSecret(t *testing.T) {
	_, err := Load(map[string]string{"JWT_SECRET": "short"})
	require.Error(t, err)
}

func TestLoad_TemplateUserIDMustBeUUID(t *testing.T) {
	_, err := Load(map[string]string{"TEMPLATE_USER_ID": "template"})
	require.Error(t, err)
}
