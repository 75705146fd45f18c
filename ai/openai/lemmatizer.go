// Copyright 2026 Cinerent Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/cinerent/gearmatch/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Lemmatizer implements ai.Lemmatizer using OpenAI-compatible chat APIs.
// Queries are French or English, so the prompt is bilingual.
type Lemmatizer struct {
	client llms.Model
	logger *slog.Logger
}

// lemmaResponse is the wrapper structure for the LLM's JSON response.
type lemmaResponse struct {
	Lemmas []string `json:"lemmas"`
}

const lemmatizationPrompt = `Reduce every word of the given text to its dictionary form (lemma) and return the result as JSON.

Output ONLY valid JSON. Do not include any preamble, explanation, greeting, or
acknowledgment. Start your response directly with the opening brace { and end
with the closing brace }. Your output must exactly follow this schema:

{"lemmas": ["word", "word"]}

Rules:
- The text may be French or English; lemmatize in the language of each word.
- Lemmas must be lowercase, one word each, in the same order as the input.
- Drop numbers, punctuation and words that are already in dictionary form.
- If nothing changes, return "lemmas": [].
- The JSON must parse without errors; no trailing commas, no extra keys.

Example:
Input: "tournages publicitaires extérieurs"
Output:
{"lemmas": ["tournage", "publicitaire", "extérieur"]}

Example:
Input: "wedding shoots outdoors"
Output:
{"lemmas": ["shoot", "outdoor"]}`

// newLemmatizer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newLemmatizer(config *ai.Config) (*Lemmatizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.LemmatizerHost),
		openai.WithToken("none"),
		openai.WithModel(config.LemmatizerModel),
	)
	if err != nil {
		return nil, err
	}

	return &Lemmatizer{
		client: client,
		logger: slog.Default().With("component", "openai-lemmatizer"),
	}, nil
}

// NewLemmatizer creates a new lemmatizer using the provided configuration.
//
// Returns ai.Lemmatizer interface to enforce abstraction.
func NewLemmatizer(config *ai.Config) (ai.Lemmatizer, error) {
	return newLemmatizer(config)
}

// Lemmatize returns the dictionary forms of the words in text.
func (l *Lemmatizer) Lemmatize(ctx context.Context, text string) ([]string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(lemmatizationPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result lemmaResponse
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := l.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			l.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			l.logger.Debug("no choices returned from model")
			return []string{}, nil
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			l.logger.Warn("error parsing lemmatizer response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		l.logger.Error("failed to parse lemmatizer response after retries", "err", lastErr)
		return nil, lastErr
	}

	lemmas := make([]string, 0, len(result.Lemmas))
	seen := make(map[string]bool, len(result.Lemmas))
	for _, lemma := range result.Lemmas {
		lemma = strings.ToLower(strings.TrimSpace(lemma))
		if lemma == "" || seen[lemma] {
			continue
		}
		seen[lemma] = true
		lemmas = append(lemmas, lemma)
	}

	l.logger.Debug("lemmatized text", "words", len(result.Lemmas), "kept", len(lemmas))
	return lemmas, nil
}
