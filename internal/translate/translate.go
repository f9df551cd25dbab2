package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultEndpoint = "https://api.cognitive.microsofttranslator.com/translate?api-version=3.0"

// Client calls the Microsoft Translator HTTP API. Translation is synchronous
// and independent of persisted data; an unconfigured client reports a plain
// error to the caller.
type Client struct {
	endpoint string
	key      string
	http     *http.Client
}

// New creates a translator client. key may be empty, in which case Translate
// fails with a configuration error.
func New(key string) *Client {
	return &Client{
		endpoint: defaultEndpoint,
		key:      key,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type translation struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate converts text from sourceLang to destLang (ISO 639-1 codes).
func (c *Client) Translate(ctx context.Context, text, sourceLang, destLang string) (string, error) {
	if c.key == "" {
		return "", fmt.Errorf("translate: translator key not configured")
	}

	body, err := json.Marshal([]map[string]string{{"Text": text}})
	if err != nil {
		return "", err
	}
	reqURL := fmt.Sprintf("%s&from=%s&to=%s", c.endpoint, url.QueryEscape(sourceLang), url.QueryEscape(destLang))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: translation service returned status %d", resp.StatusCode)
	}

	var results []translation
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("translate: decode response: %w", err)
	}
	if len(results) == 0 || len(results[0].Translations) == 0 {
		return "", fmt.Errorf("translate: empty translation response")
	}
	return results[0].Translations[0].Text, nil
}
