package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
stages: [dev, test]
port: 8181
migrate: true
convertEmptyValues: true
seed: true
seedDir: testdata/seeds
categories:
  users:
    sources:
      - table: users
        sources: [users.json]
tables:
  - TableName: users
    BillingMode: PAY_PER_REQUEST
    AttributeDefinitions:
      - AttributeName: id
        AttributeType: S
    KeySchema:
      - AttributeName: id
        KeyType: HASH
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileAndResolve(t *testing.T) {
	file, err := LoadFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	cfg, err := Resolve(file, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"dev", "test"}, cfg.Stages)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8181, cfg.Port)
	assert.True(t, cfg.Migrate)
	assert.True(t, cfg.ConvertEmptyValues)
	assert.True(t, cfg.Seed.All())
	assert.Equal(t, "testdata/seeds", cfg.SeedDir)
	require.Len(t, cfg.Tables, 1)
	assert.Equal(t, "users", cfg.Tables[0].TableName)
	assert.Contains(t, cfg.Categories, "users")
}

func TestResolve_Defaults(t *testing.T) {
	cfg, err := Resolve(File{}, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Stage)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8000, cfg.Port)
	assert.False(t, cfg.Online)
	assert.False(t, cfg.Seed.Enabled())
	assert.Equal(t, "seeds", cfg.SeedDir)
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	t.Setenv("DDBLOCAL_PORT", "9000")
	t.Setenv("DDBLOCAL_STAGE", "test")
	t.Setenv("DDBLOCAL_SEED", "users")

	file, err := LoadFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	cfg, err := Resolve(file, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port, "env beats file")
	assert.Equal(t, "test", cfg.Stage)
	assert.Equal(t, []string{"users"}, cfg.Seed.Names(), "env selector replaces the file's")
}

func TestResolve_RunOptionsWinOverEverything(t *testing.T) {
	t.Setenv("DDBLOCAL_PORT", "9000")

	file, err := LoadFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	cfg, err := Resolve(file, RunOptions{
		Stage:  "ci",
		Port:   7777,
		Region: "eu-west-1",
		Online: true,
		Seed:   "false",
	})
	require.NoError(t, err)

	assert.Equal(t, "ci", cfg.Stage)
	assert.Equal(t, 7777, cfg.Port)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.True(t, cfg.Online)
	assert.False(t, cfg.Seed.Enabled())
}

func TestResolve_SelectorFromFileAsCategoryList(t *testing.T) {
	file, err := LoadFile(writeConfig(t, "seed: \"users,orders\"\n"))
	require.NoError(t, err)

	cfg, err := Resolve(file, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"users", "orders"}, cfg.Seed.Names())
}

func TestClientOptions(t *testing.T) {
	cfg, err := Resolve(File{}, RunOptions{Host: "db", Port: 8123})
	require.NoError(t, err)

	opts := cfg.ClientOptions()
	assert.Equal(t, "db", opts.Host)
	assert.Equal(t, 8123, opts.Port)
	assert.False(t, opts.Online)
	assert.Equal(t, "http://db:8123", opts.Endpoint())
}
