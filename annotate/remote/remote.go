// Package remote annotates text through a spaCy/stanza sidecar exposing
// a JSON REST API.
package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/signbridge/islgloss/annotate"
	"github.com/signbridge/islgloss/sentence"
)

const defaultTimeout = 10 * time.Second

// Client calls the annotation server. The zero value is not usable; use
// New.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ annotate.Annotator = (*Client)(nil)

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

type annotateRequest struct {
	Text string `json:"text"`
}

type annotateResponse struct {
	Tokens []sentence.Token `json:"tokens"`
	Error  string           `json:"error,omitempty"`
}

// Annotate posts the text to /api/annotate and decodes the token arena.
func (c *Client) Annotate(text string) (sentence.Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return sentence.Sentence{}, annotate.ErrEmptyText
	}

	body, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return sentence.Sentence{}, fmt.Errorf("encode annotate request: %w", err)
	}

	resp, err := c.http.Post(c.baseURL+"/api/annotate", "application/json", bytes.NewReader(body))
	if err != nil {
		return sentence.Sentence{}, fmt.Errorf("annotate %q: %w", text, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return sentence.Sentence{}, fmt.Errorf("annotate %q: read response: %w", text, err)
	}

	var decoded annotateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return sentence.Sentence{}, fmt.Errorf("annotate %q: decode response: %w", text, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := decoded.Error
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return sentence.Sentence{}, fmt.Errorf("annotate %q: server returned %d: %s", text, resp.StatusCode, msg)
	}

	if len(decoded.Tokens) == 0 {
		return sentence.Sentence{}, fmt.Errorf("annotate %q: server returned no tokens", text)
	}

	return sentence.Sentence{Tokens: decoded.Tokens}, nil
}
