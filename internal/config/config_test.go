package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:           "8080",
		SendGridAPIKey: "SG.test-key",
		EmailFrom:      "noreply@budgetsurvivalskills.com",
		OperatorEmail:  "owner@budgetsurvivalskills.com",
		SiteURL:        "https://budgetsurvivalskills.com",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing sendgrid key is fatal", func(t *testing.T) {
		cfg := validConfig()
		cfg.SendGridAPIKey = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SENDGRID_API_KEY")
	})

	t.Run("missing operator email is fatal", func(t *testing.T) {
		cfg := validConfig()
		cfg.OperatorEmail = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("site url trailing slash is trimmed", func(t *testing.T) {
		cfg := validConfig()
		cfg.SiteURL = "https://budgetsurvivalskills.com/"
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "https://budgetsurvivalskills.com", cfg.SiteURL)
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "SG.env-key")
	t.Setenv("OPERATOR_EMAIL", "owner@budgetsurvivalskills.com")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "SG.env-key", cfg.SendGridAPIKey)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "noreply@budgetsurvivalskills.com", cfg.EmailFrom)
}
