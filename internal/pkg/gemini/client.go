// Package gemini looks up plain-language CID descriptions through the Google
// Generative Language REST API.
//
// The lookup deliberately never returns an error: on any service failure the
// failure detail comes back as the description text, so saving a record is
// never blocked by the external service.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultTTL     = time.Hour

	// NoCodeProvided is returned for an empty code without calling out.
	NoCodeProvided = "N/A - Nenhum CID fornecido."
	// CodeNotFound replaces the raw service text when the model reports an
	// unknown code.
	CodeNotFound = "Código não encontrado ou inválido."
)

const promptTemplate = `Forneça uma descrição do código CID: %s usando APENAS termos simples, não técnicos e concisos.
A resposta deve ser ideal para um registro administrativo.
Se o código for inválido, responda apenas: 'CÓDIGO INVÁLIDO'.`

// Client calls the generateContent endpoint of a Gemini model.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	cache      *descriptionCache
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      newDescriptionCache(defaultTTL),
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Lookup resolves a CID code to a short administrative-register description.
// The code is trimmed and uppercased before use; results are cached for an
// hour per normalized code.
func (c *Client) Lookup(ctx context.Context, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return NoCodeProvided
	}

	if cached, ok := c.cache.get(code); ok {
		return cached
	}

	description, err := c.generate(ctx, fmt.Sprintf(promptTemplate, code))
	if err != nil {
		return fmt.Sprintf("Erro na API do Gemini: Verifique sua chave e cota. Detalhe: %v", err)
	}

	if strings.Contains(description, "CÓDIGO INVÁLIDO") || strings.Contains(description, "NÃO ENCONTRADO") {
		description = CodeNotFound
	}

	c.cache.put(code, description)
	return description
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("%s (%s)", parsed.Error.Message, parsed.Error.Status)
		}
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var text strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return strings.TrimSpace(text.String()), nil
}
