package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, RemotePostgres, cfg.Remote.Mode)
	assert.Equal(t, 10*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "./data/cache.db", cfg.Cache.Path)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("REMOTE_MODE", "OFFLINE")
	v.Set("REMOTE_TIMEOUT_SECONDS", "3")
	v.Set("DB_AUTO_MIGRATE", true)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, RemoteOffline, cfg.Remote.Mode)
	assert.Equal(t, 3*time.Second, cfg.Remote.Timeout)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestFromViper_ModoRemotoInvalido(t *testing.T) {
	v := viper.New()
	v.Set("REMOTE_MODE", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "funeraria", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/funeraria?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgresql://x@y/z"
	assert.Equal(t, "postgresql://x@y/z", c.ConnectionString())
}
