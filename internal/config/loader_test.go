package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content CustviewConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, configFileName)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// defaultLoadDotenv keeps the real .env loader for the test that needs it.
var defaultLoadDotenv = loadDotenv

// isolate points every layer at tempDir and clears the environment layer.
func isolate(t *testing.T, tempDir string) {
	t.Helper()
	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	originalGetenv := osGetenv
	originalGetwd := osGetwd
	originalDotenv := loadDotenv
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
		osGetenv = originalGetenv
		osGetwd = originalGetwd
		loadDotenv = originalDotenv
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "user", configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", configFileName), nil
	}
	osGetenv = func(string) string { return "" }
	osGetwd = func() (string, error) { return tempDir, nil }
	loadDotenv = func() error { return nil }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolate(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Equal(t, "http://localhost:5000", loaded.API.URL)
	assert.Equal(t, 30*time.Second, loaded.API.Timeout)
	assert.Equal(t, "メールアドレス", loaded.UI.EmailField)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "user"), CustviewConfig{
		API: APIConfig{URL: "http://user.example:5000", Timeout: 5 * time.Second},
		UI:  UIConfig{ColorMode: "dark"},
	})
	createTempConfigFile(t, filepath.Join(tempDir, "project"), CustviewConfig{
		API: APIConfig{URL: "http://project.example:5000"},
		UI:  UIConfig{EmailField: "email"},
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://project.example:5000", loaded.API.URL)
	assert.Equal(t, 5*time.Second, loaded.API.Timeout)
	assert.Equal(t, "dark", loaded.UI.ColorMode)
	assert.Equal(t, "email", loaded.UI.EmailField)
	assert.Equal(t, DefaultLogLevel, loaded.UI.LogLevel)
}

func TestLoadConfig_DurationFromYAMLString(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	dir := filepath.Join(tempDir, "user")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("api:\n  timeout: 1m30s\n"), 0644))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, loaded.API.Timeout)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	dir := filepath.Join(tempDir, "project")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("api: [unclosed"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "project config")
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "project"), CustviewConfig{
		API: APIConfig{URL: "http://project.example:5000"},
	})
	env := map[string]string{
		EnvAPIURL:   "http://env.example:8080",
		EnvTimeout:  "2s",
		EnvLogLevel: "debug",
	}
	osGetenv = func(key string) string { return env[key] }

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example:8080", loaded.API.URL)
	assert.Equal(t, 2*time.Second, loaded.API.Timeout)
	assert.Equal(t, "debug", loaded.UI.LogLevel)

	env[EnvTimeout] = "soon"
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadDotenv_PopulatesEnvironment(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)
	loadDotenv = defaultLoadDotenv
	osGetenv = os.Getenv

	t.Setenv(EnvAPIURL, "")
	require.NoError(t, os.Unsetenv(EnvAPIURL))

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, dotenvFileName),
		[]byte(EnvAPIURL+"=http://dotenv.example:5000\n"), 0644))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv.example:5000", loaded.API.URL)
}

func TestMergeConfigs_ZeroOverlayKeepsBase(t *testing.T) {
	base := GetDefaultConfig()
	assert.Equal(t, base, mergeConfigs(base, CustviewConfig{}))
}
