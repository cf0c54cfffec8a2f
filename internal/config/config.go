package config

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Init loads config.yaml (when present) and environment variables, and sets
// up the process-wide logger. Environment variables win over the file, with
// dots mapped to underscores (e.g. gemini.api_key -> GEMINI_API_KEY).
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("no config.yaml found, using environment variables only")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(viper.GetString("log.level")); err == nil {
		logrus.SetLevel(level)
	}
}

// WithContext returns a logger annotated with the chi request id, so every
// line written while serving a request can be correlated.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}

// JSON writes v as a JSON response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to encode JSON response")
	}
}

// IsAdminEmail reports whether the email belongs to the configured admin
// whitelist (admin.emails in config.yaml, comma-separated ADMIN_EMAILS in env).
func IsAdminEmail(email string) bool {
	if email == "" {
		return false
	}
	emails := viper.GetStringSlice("admin.emails")
	if len(emails) == 0 {
		if raw := viper.GetString("admin.emails"); raw != "" {
			emails = strings.Split(raw, ",")
		}
	}
	for _, e := range emails {
		if strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}
