package mock

import "context"

// MockLemmatizer is a test double for ai.Lemmatizer.
// It allows custom behavior injection via function fields.
type MockLemmatizer struct {
	// LemmatizeFunc is called by Lemmatize if set.
	// If nil, Lemmatize returns no lemmas.
	LemmatizeFunc func(ctx context.Context, text string) ([]string, error)

	callCount int
}

// NewMockLemmatizer creates a mock lemmatizer that returns no lemmas by default.
// Note: Returns concrete type to allow test assertions.
func NewMockLemmatizer() *MockLemmatizer {
	return &MockLemmatizer{}
}

// Lemmatize returns the injected lemmas, or an empty slice by default.
func (m *MockLemmatizer) Lemmatize(ctx context.Context, text string) ([]string, error) {
	m.callCount++

	if m.LemmatizeFunc != nil {
		return m.LemmatizeFunc(ctx, text)
	}

	return []string{}, nil
}

// CallCount returns the number of times Lemmatize was called.
func (m *MockLemmatizer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockLemmatizer) Reset() {
	m.callCount = 0
	m.LemmatizeFunc = nil
}
