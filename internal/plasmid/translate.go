package plasmid

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// TokenTranslator turns a natural language description of a plasmid
// into condition tokens drawn from the vocabulary. Implementations
// wrap external language model APIs and live outside this package;
// translation is the only suspension point on this path, so it takes
// a context.
type TokenTranslator interface {
	// Name identifies the provider in error messages
	Name() string

	// Available reports whether the provider can be called at all
	// (ex: its API key is set)
	Available() bool

	// Translate converts the prompt into a string of condition
	// tokens, each drawn from conditionTokens
	Translate(ctx context.Context, prompt string, conditionTokens []string) (string, error)
}

// ErrNoTranslator is returned when no provider is available.
var ErrNoTranslator = errors.New("no token translator available")

// TranslatorManager tries an ordered list of providers: the first
// available one that succeeds wins, and if every attempt fails the
// failures are aggregated into a single error.
type TranslatorManager struct {
	providers []TokenTranslator
}

// NewTranslatorManager returns a manager over providers, tried in the
// order passed.
func NewTranslatorManager(providers ...TokenTranslator) *TranslatorManager {
	return &TranslatorManager{providers: providers}
}

// Translate converts the prompt to condition tokens using the first
// available provider that succeeds.
func (m *TranslatorManager) Translate(ctx context.Context, prompt string, conditionTokens []string) (string, error) {
	attempted := false
	var failures []error

	for _, provider := range m.providers {
		if !provider.Available() {
			continue
		}
		attempted = true

		tokens, err := provider.Translate(ctx, prompt, conditionTokens)
		if err == nil {
			return tokens, nil
		}
		failures = append(failures, fmt.Errorf("%s: %w", provider.Name(), err))
	}

	if !attempted {
		return "", ErrNoTranslator
	}
	return "", errors.Join(failures...)
}

// GroupConditionTokens groups condition tokens by their category, ex:
// <HOST:ECOLI> and <HOST:YEAST> both land under "HOST". Tokens that
// aren't condition shaped are skipped. Providers use the groups to
// build structured output schemas, one enum per category.
func GroupConditionTokens(tokens []string) map[string][]string {
	groups := make(map[string][]string)
	for _, token := range tokens {
		if Categorize(token) != CategoryCondition {
			continue
		}
		category := strings.TrimPrefix(strings.SplitN(token, ":", 2)[0], "<")
		groups[category] = append(groups[category], token)
	}
	return groups
}
