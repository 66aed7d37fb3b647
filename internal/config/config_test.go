package config_test

import (
	"bananalearn_backend/internal/config"
	"bananalearn_backend/internal/model"
	"bananalearn_backend/internal/util"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	// LoadConfig works on the package-level viper; clear paths left over
	// from a previous test.
	viper.Reset()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644)
	assert.NoError(t, err)
	return dir
}

func TestLoadConfigParsesJWTExpiry(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: debug
jwt:
  secret: test-secret-0123456789abcdef
  expire_hours: 72h
storage:
  type: minio
`)

	cfg, err := config.LoadConfig(dir)
	assert.NoError(t, err)

	assert.Equal(t, 72*time.Hour, cfg.JWT.ExpireTime)
}

func TestLoadConfigExpiryProducesUsableToken(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: debug
jwt:
  secret: test-secret-0123456789abcdef
  expire_hours: 72h
storage:
  type: minio
`)

	cfg, err := config.LoadConfig(dir)
	assert.NoError(t, err)
	assert.Greater(t, cfg.JWT.ExpireTime, time.Duration(0),
		"a negative expiry would expire every token before it is issued")

	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Email: "a@b.c", Role: model.Student}
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	assert.NoError(t, err)

	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	assert.NoError(t, err, "a freshly issued token must pass the auth middleware's parse")
	assert.Equal(t, uint(1), claims.UserID)
}

func TestLoadConfigMissingExpiryDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: debug
jwt:
  secret: test-secret-0123456789abcdef
storage:
  type: minio
`)

	cfg, err := config.LoadConfig(dir)
	assert.NoError(t, err)
	assert.Equal(t, 72*time.Hour, cfg.JWT.ExpireTime)
}
