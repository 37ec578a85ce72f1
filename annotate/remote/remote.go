// Package remote is a Parser backed by an annotation service over HTTP.
//
// The service receives a JSON request {"text": ..., "language": ...} by POST
// and answers with the JSON encoding of a sentence.Paragraph.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/revelaction/cohmetrix/errs"
	sent "github.com/revelaction/cohmetrix/sentence"
)

// DefaultTimeout bounds a single paragraph request.
const DefaultTimeout = 60 * time.Second

type request struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Parser implements analysis.Parser.
type Parser struct {
	url      string
	language string
	client   *http.Client
}

// New returns a Parser posting to url.
func New(url, language string, timeout time.Duration) (*Parser, error) {
	if url == "" {
		return nil, fmt.Errorf("annotation service url not set: %w", errs.ErrMissingDependency)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Parser{
		url:      url,
		language: language,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// Parse sends text to the service.
func (p *Parser) Parse(ctx context.Context, text string) (sent.Paragraph, error) {
	body, err := json.Marshal(request{Text: text, Language: p.language})
	if err != nil {
		return sent.Paragraph{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return sent.Paragraph{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return sent.Paragraph{}, fmt.Errorf("annotation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return sent.Paragraph{}, fmt.Errorf("annotation service: status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var para sent.Paragraph
	if err := json.NewDecoder(resp.Body).Decode(&para); err != nil {
		return sent.Paragraph{}, fmt.Errorf("JSON decoding error: %w", err)
	}
	return para, nil
}
