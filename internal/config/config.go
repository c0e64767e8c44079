// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package config

import (
	"log/slog"
	"os"
	"strconv"
)

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type VAPID struct {
	PublicKey  string
	PrivateKey string
	Subject    string
}

type Config struct {
	SMTP SMTP

	// RestaurantEmail receives a copy of every reservation and catering mail.
	RestaurantEmail string

	// BaseURL is used to build deep links into the guest-facing pages.
	BaseURL string

	AdminPassword string
	SessionSecret string

	VAPID VAPID
}

func Load() *Config {
	return &Config{
		SMTP: SMTP{
			Host:     getEnvOrDefault("SMTP_HOST", "localhost"),
			Port:     getEnvAsIntOrDefault("SMTP_PORT", 587),
			Username: getEnvOrDefault("SMTP_USERNAME", ""),
			Password: getEnvOrDefault("SMTP_PASSWORD", ""),
			From:     getEnvOrDefault("SMTP_FROM", "no-reply@tablego.local"),
		},
		RestaurantEmail: getEnvOrDefault("RESTAURANT_EMAIL", "info@tablego.local"),
		BaseURL:         getEnvOrDefault("BASE_URL", "http://localhost:8080"),
		AdminPassword:   getEnvOrDefault("ADMIN_PASSWORD", "admin"),
		SessionSecret:   getEnvOrDefault("SESSION_SECRET", "tablego-dev-secret"),
		VAPID: VAPID{
			PublicKey:  getEnvOrDefault("VAPID_PUBLIC_KEY", ""),
			PrivateKey: getEnvOrDefault("VAPID_PRIVATE_KEY", ""),
			Subject:    getEnvOrDefault("VAPID_SUBJECT", "mailto:info@tablego.local"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	slog.Debug("environment variable not set, using default", "key", key)
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
