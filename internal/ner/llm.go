package ner

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resume-extract/pkg/httpclient"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
	ProviderGroq   Provider = "groq"
)

const (
	openAIEndpoint    = "https://api.openai.com/v1/chat/completions"
	groqEndpoint      = "https://api.groq.com/openai/v1/chat/completions"
	defaultOllamaURL  = "http://localhost:11434"
	recognizerTimeout = 120 * time.Second
)

// LLMRecognizer is the production Recognizer. It asks a language model to
// label person and organization spans and parses the JSON reply.
type LLMRecognizer struct {
	provider  Provider
	apiKey    string
	model     string
	ollamaURL string
	client    *httpclient.Client
}

// NewLLMRecognizer validates the provider configuration up front so that a
// misconfigured recognizer fails at process start, not per call.
func NewLLMRecognizer(provider, apiKey, model, ollamaURL string) (*LLMRecognizer, error) {
	p := Provider(provider)

	switch p {
	case ProviderOpenAI, ProviderGroq:
		if apiKey == "" {
			return nil, fmt.Errorf("ner: provider %q requires an API key", provider)
		}
	case ProviderOllama:
		if ollamaURL == "" {
			ollamaURL = defaultOllamaURL
		}
	default:
		return nil, fmt.Errorf("ner: unknown provider %q", provider)
	}

	if model == "" {
		return nil, fmt.Errorf("ner: model not configured for provider %q", provider)
	}

	return &LLMRecognizer{
		provider:  p,
		apiKey:    apiKey,
		model:     model,
		ollamaURL: ollamaURL,
		client:    httpclient.NewClient(recognizerTimeout),
	}, nil
}

func (r *LLMRecognizer) Recognize(text string) ([]Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	prompt := buildPrompt(text)

	var response string
	var err error

	switch r.provider {
	case ProviderOllama:
		response, err = r.callOllama(prompt)
	default:
		response, err = r.callChatCompletions(prompt)
	}
	if err != nil {
		return nil, err
	}

	return parseEntities(response)
}

func buildPrompt(text string) string {
	return fmt.Sprintf(`You are a named-entity recognizer. Find every person name and organization name in the text below.

Text:
"""
%s
"""

Return ONLY valid JSON (no markdown, no explanation) with this exact structure:
{
  "entities": [
    {"label": "person", "text": "Exact span from the text"},
    {"label": "organization", "text": "Exact span from the text"}
  ]
}

Important:
- Use only the labels "person" and "organization"
- Keep entities in the order they appear in the text
- Copy spans verbatim, do not normalize or translate them
- Return an empty array if nothing is found`, text)
}

// parseEntities decodes the model reply and normalizes labels, since some
// models answer with PERSON/ORG style tags.
func parseEntities(response string) ([]Entity, error) {
	var reply struct {
		Entities []Entity `json:"entities"`
	}
	if err := json.Unmarshal([]byte(response), &reply); err != nil {
		return nil, fmt.Errorf("ner: failed to parse recognizer response: %w", err)
	}

	entities := make([]Entity, 0, len(reply.Entities))
	for _, e := range reply.Entities {
		label := strings.ToLower(strings.TrimSpace(e.Label))
		switch {
		case strings.HasPrefix(label, "person") || label == "per":
			label = LabelPerson
		case strings.HasPrefix(label, "org"):
			label = LabelOrganization
		default:
			continue
		}
		if e.Text == "" {
			continue
		}
		entities = append(entities, Entity{Label: label, Text: e.Text})
	}
	return entities, nil
}

// callChatCompletions covers OpenAI and Groq, which share the same API shape.
func (r *LLMRecognizer) callChatCompletions(prompt string) (string, error) {
	endpoint := openAIEndpoint
	if r.provider == ProviderGroq {
		endpoint = groqEndpoint
	}

	reqBody := map[string]interface{}{
		"model": r.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a named-entity recognizer. Return only valid JSON.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.0,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	resp, err := r.client.PostJSON(endpoint, map[string]string{
		"Authorization": "Bearer " + r.apiKey,
	}, reqBody)
	if err != nil {
		return "", fmt.Errorf("ner: %s request failed: %w", r.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ner: %s API error: %d", r.provider, resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("ner: %s error: %s", r.provider, result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("ner: no response from %s", r.provider)
	}

	return result.Choices[0].Message.Content, nil
}

func (r *LLMRecognizer) callOllama(prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":  r.model,
		"prompt": prompt,
		"stream": false,
		"format": "json",
	}

	resp, err := r.client.PostJSON(r.ollamaURL+"/api/generate", nil, reqBody)
	if err != nil {
		return "", fmt.Errorf("ner: Ollama connection failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error != "" {
		return "", fmt.Errorf("ner: Ollama error: %s", result.Error)
	}

	return result.Response, nil
}
