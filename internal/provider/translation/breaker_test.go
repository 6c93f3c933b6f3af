package translation

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-translate/backend/config"
)

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &countingProvider{fail: map[string]bool{"bad": true}}
	b := NewBreakerProvider(inner, 2, time.Minute, zerolog.Nop())

	_, err := b.Translate(context.Background(), "bad", "fr")
	require.Error(t, err)
	_, err = b.Translate(context.Background(), "bad", "fr")
	require.Error(t, err)
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, err = b.Translate(context.Background(), "good", "fr")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, inner.calls)
}

func TestBreakerPassesThroughSuccess(t *testing.T) {
	inner := &countingProvider{}
	b := NewBreakerProvider(inner, 0, time.Minute, zerolog.Nop())

	got, err := b.Translate(context.Background(), "salt", "fr")

	require.NoError(t, err)
	assert.Equal(t, "fr:salt", got)
	assert.Equal(t, "counting", b.Name())
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerIgnoresCallerCancellation(t *testing.T) {
	inner := &countingProvider{}
	b := NewBreakerProvider(inner, 2, 30*time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 5; i++ {
		_, err := b.Translate(ctx, "2 zucchini", "fr")
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Zero(t, inner.calls)
	assert.Equal(t, gobreaker.StateClosed, b.State())

	got, err := b.Translate(context.Background(), "2 zucchini", "fr")
	require.NoError(t, err)
	assert.Equal(t, "fr:2 zucchini", got)
}

func TestBreakerIgnoresCancellationDuringCall(t *testing.T) {
	b := NewBreakerProvider(slowProvider{}, 2, 30*time.Second, zerolog.Nop())

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(5*time.Millisecond, cancel)
		_, err := b.Translate(ctx, "1 eggplant", "fr")
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerIgnoresCallerDeadline(t *testing.T) {
	b := NewBreakerProvider(slowProvider{}, 2, 30*time.Second, zerolog.Nop())
	c := NewClient(b, time.Minute, zerolog.Nop())

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		out := c.Translate(ctx, "1 eggplant", "fr")
		cancel()
		assert.True(t, out.Degraded)
	}
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerCountsPerCallTimeouts(t *testing.T) {
	b := NewBreakerProvider(slowProvider{}, 2, 30*time.Second, zerolog.Nop())
	c := NewClient(b, 5*time.Millisecond, zerolog.Nop())

	for i := 0; i < 2; i++ {
		out := c.Translate(context.Background(), "1 eggplant", "fr")
		assert.True(t, out.Degraded)
		assert.ErrorIs(t, out.Err, context.DeadlineExceeded)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())
}

func TestNewProvider(t *testing.T) {
	cfg := &config.Config{
		TranslationProvider:        config.TranslationProviderDeepL,
		DeepLAPIKey:                "k",
		DeepLBaseURL:               "https://api-free.deepl.com",
		TranslationTimeout:         time.Second,
		TranslationBreakerFailures: 3,
		TranslationBreakerCooldown: time.Second,
	}
	p, err := NewProvider(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "deepl", p.Name())

	cfg.TranslationProvider = config.TranslationProviderOpenAI
	cfg.OpenAIAPIKey = "sk"
	p, err = NewProvider(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	cfg.TranslationProvider = "babelfish"
	_, err = NewProvider(cfg, zerolog.Nop())
	assert.Error(t, err)
}
