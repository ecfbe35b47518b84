package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingSchemaVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	assert.Error(t, err)
}

func TestValidateEnv_SchemaVersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	assert.ErrorContains(t, err, "mismatch")
}

func TestValidateEnv_LocalOnlyNeedsNoDatabase(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_HOST", "")

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_PartialDatabaseConfig(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "")

	err := ValidateEnv()
	assert.ErrorContains(t, err, "incomplete")
}

func TestValidateEnvWithWarnings_ExamplePassword(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "hiperclicker")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
}
