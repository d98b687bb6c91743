/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lib

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

type testConfig struct {
	BaseConfig `mapstructure:",squash"`
	TextSource string `mapstructure:"text_source"`
	Redis      struct {
		Host string
		Port int
	}
	KeyNotInConfigMap string
}

func TestInitializeConfigFromPath(t *testing.T) {
	reset(t)
	path := createConfigFile(t, map[string]interface{}{
		"log_level":   "info",
		"text_source": "raw",
		"redis": map[string]interface{}{
			"host": "redis.local",
			"port": 6380,
		},
	})

	var parsed testConfig
	err := InitializeConfig(path, map[string]interface{}{}, &parsed)

	require.NoError(t, err)
	assert.Equal(t, "info", parsed.LogLevel)
	assert.Equal(t, "raw", parsed.TextSource)
	assert.Equal(t, "redis.local", parsed.Redis.Host)
	assert.Equal(t, 6380, parsed.Redis.Port)
}

func TestInitializeConfigDefaults(t *testing.T) {
	reset(t)

	var parsed testConfig
	err := InitializeConfig(filepath.Join(t.TempDir(), "missing.yml"), map[string]interface{}{
		"log_level":   "warn",
		"text_source": "clean_visible",
	}, &parsed)

	require.NoError(t, err)
	assert.Equal(t, "clean_visible", parsed.TextSource)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	reset(t)
	path := createConfigFile(t, map[string]interface{}{
		"text_source": "raw",
		"redis":       map[string]interface{}{"host": "redis.local"},
	})
	setenv(t, "TEXT_SOURCE", "clean_html")
	setenv(t, "REDIS_HOST", "redis.remote")
	setenv(t, "KEYNOTINCONFIGMAP", "ignored")

	var parsed testConfig
	err := InitializeConfig(path, map[string]interface{}{}, &parsed)

	require.NoError(t, err)
	assert.Equal(t, "clean_html", parsed.TextSource)
	assert.Equal(t, "redis.remote", parsed.Redis.Host)

	// viper only reads env vars for keys it already knows about
	assert.Equal(t, "", parsed.KeyNotInConfigMap)
}

func TestInitializeConfigFlagOverridesFile(t *testing.T) {
	reset(t)
	path := createConfigFile(t, map[string]interface{}{"text_source": "raw"})
	pflag.StringP("text_source", "t", "clean_visible", "")
	setArgs(t, "-t", "clean_html")

	var parsed testConfig
	err := InitializeConfig(path, map[string]interface{}{}, &parsed)

	require.NoError(t, err)
	assert.Equal(t, "clean_html", parsed.TextSource)
}

func TestInitializeConfigUnsetFlagKeepsFileValue(t *testing.T) {
	reset(t)
	path := createConfigFile(t, map[string]interface{}{"text_source": "raw"})
	pflag.StringP("text_source", "t", "clean_visible", "")

	var parsed testConfig
	err := InitializeConfig(path, map[string]interface{}{}, &parsed)

	require.NoError(t, err)
	assert.Equal(t, "raw", parsed.TextSource)
}

func TestInitializeConfigWithConfigFlag(t *testing.T) {
	reset(t)
	path := createConfigFile(t, map[string]interface{}{"text_source": "clean_html"})
	setArgs(t, "--config", path)

	var parsed testConfig
	err := InitializeConfig("./config/does-not-exist.yml", map[string]interface{}{}, &parsed)

	require.NoError(t, err)
	assert.Equal(t, "clean_html", parsed.TextSource)
}

func TestInitializeConfigInvalidLogLevel(t *testing.T) {
	reset(t)
	path := createConfigFile(t, map[string]interface{}{"log_level": "chatty"})

	var parsed testConfig
	err := InitializeConfig(path, map[string]interface{}{}, &parsed)

	var configErr *ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "log_level", configErr.Key)
	assert.Equal(t, "chatty", configErr.Value)
}

func createConfigFile(t *testing.T, configMap map[string]interface{}) string {
	t.Helper()
	data, err := yaml.Marshal(&configMap)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stream-annotator.yml")
	require.NoError(t, ioutil.WriteFile(path, data, 0600))
	return path
}

func reset(t *testing.T) {
	viper.Reset()
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	setArgs(t)
}

func setArgs(t *testing.T, args ...string) {
	original := os.Args
	os.Args = append([]string{original[0]}, args...)
	t.Cleanup(func() { os.Args = original })
}

func setenv(t *testing.T, key, value string) {
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() { os.Unsetenv(key) })
}
