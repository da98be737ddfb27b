// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/pkg/env"
)

const (
	defaultGitLabURL = "https://gitlab.com"
	defaultEnvFile   = ".env"
)

// NewConfig loads configuration from a .env file and the process
// environment with typed defaults and validation.
func NewConfig() (*Config, error) {
	r := env.NewResolver(nil)

	if err := loadDotenv(r.Get("ENV_FILE").StringOr(defaultEnvFile)); err != nil {
		return nil, err
	}

	return build(r)
}

// loadDotenv loads variables from path into the process environment.
// Absolute paths are used as-is, relative ones resolve against the
// working directory. A missing file is not an error and already set
// variables are never overridden.
func loadDotenv(path string) error {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %q: %w", path, err)
	}
	return nil
}

func build(r env.Resolver) (*Config, error) {
	token, err := r.GetAlt("GITLAB_PRIVATE_TOKEN", "GITLAB_TOKEN").Required()
	if err != nil {
		return nil, err
	}

	level, err := r.Get("GITLAB_USERS_ACCESS_LEVEL").IntOr(int(entities.DeveloperAccess))
	if err != nil {
		return nil, err
	}

	timeout, err := r.Get("GITLAB_HTTP_TIMEOUT").DurationOr(0)
	if err != nil {
		return nil, err
	}

	cfg := Config{
		GitLab: GitLabConfig{
			URL:   r.GetAlt("GITLAB_URL", "CI_SERVER_URL").StringOr(defaultGitLabURL),
			Token: token,
		},
		Filler: FillerConfig{
			Users:         r.Get("GITLAB_FILLING_USERS").List(","),
			ExcludeGroups: r.Get("GITLAB_EXCLUDE_GROUPS").List(","),
			SkipBlank:     r.Get("SKIP_BLANK_GROUPS").BoolOr(true),
			SkipNested:    r.Get("SKIP_NESTED_GROUPS").BoolOr(true),
			AccessLevel:   entities.AccessLevel(level),
			Schedule:      r.Get("RUN_SCHEDULE").StringOr(""),
		},
		HTTP: HTTPConfig{
			RequestTimeout: timeout,
		},
		Logging: LoggingConfig{
			Level: r.Get("LOG_LEVEL").StringOr("info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
