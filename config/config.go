// Package config selects the environment configuration for a test run.
//
// The environment is chosen by the TEST_ENV variable (dev, qa, or prod; dev is
// the default). Each environment has hardcoded defaults which can be
// overridden by an optional yaml file and by CONDUIT_-prefixed environment
// variables, merged in that order.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
)

// EnvVar is the variable that selects the environment.
const EnvVar = "TEST_ENV"

const envOverridePrefix = "CONDUIT_"

// Config holds everything the harness needs to talk to one deployment of the
// API under test.
type Config struct {
	Name         string `koanf:"name"`
	APIBaseURL   string `koanf:"api_base_url"`
	UserEmail    string `koanf:"user_email"`
	UserPassword string `koanf:"user_password"`
}

var environments = map[string]Config{
	"dev": {
		Name:         "dev",
		APIBaseURL:   "https://conduit-api.learnwebdriverio.com/api",
		UserEmail:    "qa-harness-dev@example.com",
		UserPassword: "Dev-Passw0rd!",
	},
	"qa": {
		Name:         "qa",
		APIBaseURL:   "https://conduit-api-qa.learnwebdriverio.com/api",
		UserEmail:    "qa-harness@example.com",
		UserPassword: "Qa-Passw0rd!",
	},
	"prod": {
		Name:         "prod",
		APIBaseURL:   "https://api.realworld.io/api",
		UserEmail:    "qa-harness-prod@example.com",
		UserPassword: "Prod-Passw0rd!",
	},
}

// Load resolves the configuration for the environment named by TEST_ENV,
// optionally merging overrides from a yaml file (if filePath is non-empty)
// and from CONDUIT_-prefixed environment variables.
func Load(filePath string) (Config, error) {
	envName := os.Getenv(EnvVar)
	if envName == "" {
		envName = "dev"
	}
	return LoadEnvironment(envName, filePath)
}

// LoadEnvironment is like Load but with an explicit environment name.
func LoadEnvironment(envName string, filePath string) (Config, error) {
	defaults, ok := environments[envName]
	if !ok {
		return Config{}, fmt.Errorf("unknown environment %q (expected one of: %s)",
			envName, strings.Join(environmentNames(), ", "))
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return Config{}, err
	}
	if filePath != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}
	err := k.Load(env.Provider(envOverridePrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envOverridePrefix))
	}), nil)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("environment %q has no API base URL configured", envName)
	}
	return cfg, nil
}

func environmentNames() []string {
	return []string{"dev", "qa", "prod"}
}
