// Package openai implements the ai interfaces against OpenAI-compatible
// HTTP APIs (OpenAI, Ollama, LocalAI, vLLM) via langchaingo.
//
// The embedder uses the embeddings endpoint; the lemmatizer uses a chat
// model in JSON mode with a bilingual prompt and bounded retries on
// malformed responses.
package openai
