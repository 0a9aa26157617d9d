package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.App.Port)
	assert.Equal(t, 700, cfg.Pipeline.ChunkMaxLength)
	assert.Equal(t, 4, cfg.Pipeline.TopK)
	assert.InDelta(t, 0.15, cfg.Pipeline.MinScore, 1e-9)
	assert.Equal(t, 6, cfg.Pipeline.HistoryWindow)
	assert.Equal(t, "Lo siento, no tengo información sobre eso en los documentos de la clínica.", cfg.Pipeline.RefusalText)
	assert.Contains(t, cfg.Pipeline.Keywords, "esmalte")
	assert.Contains(t, cfg.Pipeline.Keywords, "dentina")
	assert.Contains(t, cfg.Pipeline.AnaphoraPrefixes, "y ")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("PIPELINE_MIN_SCORE", "0.3")
	t.Setenv("PIPELINE_TOP_K", "2")
	t.Setenv("PIPELINE_KEYWORDS", "esmalte, caries ,flúor")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.InDelta(t, 0.3, cfg.Pipeline.MinScore, 1e-9)
	assert.Equal(t, 2, cfg.Pipeline.TopK)
	assert.Equal(t, []string{"esmalte", "caries", "flúor"}, cfg.Pipeline.Keywords)
}

func TestLoadBadEnvValueFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "not-a-number")
	t.Setenv("PIPELINE_MIN_SCORE", "high")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.App.Port)
	assert.InDelta(t, 0.15, cfg.Pipeline.MinScore, 1e-9)
}

func TestMySQLDSN(t *testing.T) {
	cfg := defaultConfig()
	cfg.MySQL.User = "odonto"
	cfg.MySQL.Password = "secret"
	cfg.MySQL.DB = "clinic"

	assert.Equal(t, "odonto:secret@tcp(127.0.0.1:3306)/clinic?parseTime=true&loc=Local&charset=utf8mb4", cfg.MySQLDSN())
}
