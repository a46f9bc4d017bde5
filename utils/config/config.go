// Package config handles environment-based configuration for Porthole.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
)

// Config represents the complete Porthole configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Docker   DockerConfig
	Events   EventConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host        string
	Port        string
	Mode        string // "debug" or "release"
	CORSOrigins []string
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	Path string
}

// DockerConfig contains container runtime API settings.
// Host usually points at a read-only socket proxy rather than the daemon itself.
type DockerConfig struct {
	Host       string
	APIVersion string
}

// EventConfig contains event log retention settings.
type EventConfig struct {
	RetentionDays int
}

// Load reads configuration from environment variables with sensible defaults.
// All environment variables use the PORTHOLE_ prefix.
//
// Configuration variables:
//   - PORTHOLE_SERVER_HOST (default: "0.0.0.0")
//   - PORTHOLE_SERVER_PORT (default: "8080")
//   - PORTHOLE_SERVER_MODE (default: "debug")
//   - PORTHOLE_CORS_ORIGINS (default: "http://localhost:3000")
//   - PORTHOLE_DB_PATH (default: "/app/data/porthole.db" or "./porthole.db")
//   - PORTHOLE_DOCKER_HOST (default: "unix:///var/run/docker.sock")
//   - PORTHOLE_DOCKER_API_VERSION (default: "1.41")
//   - PORTHOLE_EVENT_RETENTION_DAYS (default: "30")
//
// Returns an error if validation fails.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:        getEnv("PORTHOLE_SERVER_HOST", "0.0.0.0"),
			Port:        getEnv("PORTHOLE_SERVER_PORT", "8080"),
			Mode:        getEnv("PORTHOLE_SERVER_MODE", "debug"),
			CORSOrigins: getEnvList("PORTHOLE_CORS_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Path: getDBPath(),
		},
		Docker: DockerConfig{
			Host:       getEnv("PORTHOLE_DOCKER_HOST", "unix:///var/run/docker.sock"),
			APIVersion: getEnv("PORTHOLE_DOCKER_API_VERSION", "1.41"),
		},
		Events: EventConfig{
			RetentionDays: getEnvInt("PORTHOLE_EVENT_RETENTION_DAYS", 30),
		},
	}

	if err := validate(cfg); err != nil {
		log.Printf("Configuration validation failed: %v", err)
		return nil, errors.New("invalid configuration")
	}

	log.Printf("Configuration loaded:")
	log.Printf("  Server: %s:%s (mode: %s)", cfg.Server.Host, cfg.Server.Port, cfg.Server.Mode)
	log.Printf("  Database: %s", cfg.Database.Path)
	log.Printf("  Docker Host: %s (API v%s)", cfg.Docker.Host, cfg.Docker.APIVersion)
	log.Printf("  Event Retention: %d days", cfg.Events.RetentionDays)

	return cfg, nil
}

// validate checks if the configuration is valid.
func validate(cfg *Config) error {
	if cfg.Server.Mode != "debug" && cfg.Server.Mode != "release" {
		return errors.New("server mode must be debug or release")
	}
	if cfg.Docker.Host == "" {
		return errors.New("docker host is required")
	}
	if cfg.Docker.APIVersion == "" {
		return errors.New("docker API version is required")
	}
	if cfg.Events.RetentionDays < 1 {
		return errors.New("event retention days must be at least 1")
	}

	return nil
}

// getDBPath determines the database path based on environment and filesystem.
// Priority:
//  1. PORTHOLE_DB_PATH environment variable
//  2. /app/data/porthole.db (if /app/data exists - Docker container)
//  3. ./porthole.db (development fallback)
func getDBPath() string {
	if path := os.Getenv("PORTHOLE_DB_PATH"); path != "" {
		return path
	}

	if _, err := os.Stat("/app/data"); err == nil {
		return "/app/data/porthole.db"
	}

	return "./porthole.db"
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid integer value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvList retrieves a comma separated environment variable or returns a default value.
// Blank entries are dropped.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		log.Printf("Warning: empty list value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return list
}
