package question

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Container struct {
	Handler *Handler
	Source  Source
	Static  *StaticSource
}

// NewContainer wires the question sources. Sessions draw from the generative
// source when a Gemini key is configured, otherwise from the static bank.
func NewContainer(ctx context.Context) *Container {
	static := NewStaticSource()
	handler := NewHandler(static)

	var source Source = static
	if apiKey := viper.GetString("gemini.api_key"); apiKey != "" {
		gen, err := NewGeminiGenerator(ctx, apiKey)
		if err != nil {
			logrus.WithError(err).Warn("Gemini client unavailable, sessions will use the static bank")
		} else {
			source = NewAISource(gen)
		}
	} else {
		logrus.Info("no Gemini API key configured, sessions will use the static bank")
	}

	return &Container{
		Handler: handler,
		Source:  source,
		Static:  static,
	}
}
