package translation

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Placeholder is written in place of a translation that could not be obtained
const Placeholder = "[translation unavailable]"

// ErrCallTimeout is the context cause when a single provider call exceeds the client timeout
var ErrCallTimeout = errors.New("translation call timed out")

// Outcome is either a translated text or a degraded placeholder
type Outcome struct {
	Text     string
	Degraded bool
	Err      error
}

// Ok builds a successful outcome
func Ok(text string) Outcome {
	return Outcome{Text: text}
}

// Degraded builds a placeholder outcome recording the cause
func Degraded(err error) Outcome {
	return Outcome{Text: Placeholder, Degraded: true, Err: err}
}

// Client issues one provider call per non-empty text and never returns an error
type Client struct {
	provider Provider
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewClient wraps provider; timeout bounds each call when positive
func NewClient(provider Provider, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		provider: provider,
		timeout:  timeout,
		logger:   logger.With().Str("component", "translation").Str("provider", provider.Name()).Logger(),
	}
}

// Translate translates text into targetLanguage. Empty text yields an empty result without a call.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) Outcome {
	if text == "" {
		return Ok("")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, c.timeout, ErrCallTimeout)
		defer cancel()
	}

	translated, err := c.provider.Translate(ctx, text, targetLanguage)
	if err != nil {
		c.logger.Warn().Err(err).Str("target_language", targetLanguage).Msg("translation degraded")
		return Degraded(err)
	}

	c.logger.Debug().Str("target_language", targetLanguage).Int("chars", len(text)).Msg("translated")
	return Ok(translated)
}
