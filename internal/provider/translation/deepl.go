package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DeepLClient talks to the DeepL REST API
type DeepLClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type deeplTranslateResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// NewDeepLClient creates a DeepL client; baseURL is https://api-free.deepl.com or https://api.deepl.com
func NewDeepLClient(baseURL, apiKey string, timeout time.Duration) *DeepLClient {
	return &DeepLClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (d *DeepLClient) Name() string {
	return "deepl"
}

// Translate sends one text to /v2/translate
func (d *DeepLClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("target_lang", strings.ToUpper(targetLanguage))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/v2/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body deeplTranslateResponse
	if err := d.do(req, &body); err != nil {
		return "", err
	}

	if len(body.Translations) == 0 {
		return "", fmt.Errorf("deepl returned no translations")
	}
	return body.Translations[0].Text, nil
}

// Usage reports the character usage of the current billing period
func (d *DeepLClient) Usage(ctx context.Context) (*Usage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/v2/usage", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	var usage Usage
	if err := d.do(req, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

func (d *DeepLClient) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("deepl request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return &StatusError{Provider: d.Name(), StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode deepl response: %w", err)
	}
	return nil
}

// StatusError is a non-2xx provider response
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned HTTP %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s returned HTTP %d: %s", e.Provider, e.StatusCode, e.Body)
}
