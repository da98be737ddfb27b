package config

import (
	"fmt"
	"time"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
)

// Config holds application configuration.
type Config struct {
	GitLab  GitLabConfig
	Filler  FillerConfig
	HTTP    HTTPConfig
	Logging LoggingConfig
}

// Validate ensures configured values are usable before any remote call.
func (c Config) Validate() error {
	if c.GitLab.Token == "" {
		return fmt.Errorf("%w: gitlab token is required", entities.ErrInvalidArgument)
	}
	if !c.Filler.AccessLevel.Valid() {
		return fmt.Errorf("%w: unsupported access level %d", entities.ErrInvalidArgument, int(c.Filler.AccessLevel))
	}
	return nil
}

// GitLabConfig describes the target instance connection.
type GitLabConfig struct {
	URL   string
	Token string
}

// FillerConfig controls the membership fill run.
type FillerConfig struct {
	Users         []string
	ExcludeGroups []string
	SkipBlank     bool
	SkipNested    bool
	AccessLevel   entities.AccessLevel
	// Schedule is a cron expression; empty means a single run.
	Schedule string
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	// RequestTimeout bounds each remote call; zero leaves the client
	// defaults in place.
	RequestTimeout time.Duration
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string
}
