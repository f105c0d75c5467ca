package catalog

import (
	"strings"

	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// Delimiter separates the fields of a course line.
const Delimiter = ","

// Token positions within a parsed course line.
const (
	idToken          = 0
	titleToken       = 1
	firstPrereqToken = 2
	minTokens        = 2
)

// ParseLine splits a raw course line on commas, trims every token and drops
// tokens that are empty after trimming. Embedded commas always split.
func ParseLine(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrMalformedRecord, "line is empty")
	}

	parts := strings.Split(line, Delimiter)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tokens = append(tokens, part)
	}

	if len(tokens) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrMalformedRecord, "line has no fields")
	}
	return tokens, nil
}

// courseFromTokens maps parsed tokens onto a course. The caller guarantees at
// least two tokens. prereqs is never nil so it encodes as [] rather than null.
func courseFromTokens(tokens []string) (id, title string, prereqs []string) {
	id = tokens[idToken]
	title = tokens[titleToken]
	prereqs = make([]string, len(tokens)-firstPrereqToken)
	copy(prereqs, tokens[firstPrereqToken:])
	return id, title, prereqs
}
