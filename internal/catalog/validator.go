package catalog

import (
	"fmt"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// Error codes attached to batch rejections.
const (
	CodeMalformedRecord      = "CAT_001"
	CodeDanglingPrerequisite = "CAT_002"
)

// ValidateBatch decides whether every line of one source is acceptable.
// A single bad line rejects the whole batch; the returned error describes
// the first violation found.
func ValidateBatch(lines []string) error {
	_, err := validateBatch(lines)
	return err
}

// validateBatch runs the structural checks over every line first and the
// cross-reference check second, returning the accepted records in line order.
func validateBatch(lines []string) ([]models.Course, error) {
	records := make([]models.Course, 0, len(lines))
	known := make(map[string]struct{}, len(lines))

	for i, line := range lines {
		tokens, err := ParseLine(line)
		if err != nil {
			return nil, malformed(i+1, line, err.Error())
		}
		if len(tokens) < minTokens {
			return nil, malformed(i+1, line,
				fmt.Sprintf("expected at least %d fields, found %d", minTokens, len(tokens)))
		}

		id, title, prereqs := courseFromTokens(tokens)
		if id == "" || title == "" {
			return nil, malformed(i+1, line, "course number and title are required")
		}

		known[id] = struct{}{}
		records = append(records, models.Course{ID: id, Title: title, Prerequisites: prereqs})
	}

	for i, rec := range records {
		for _, prereq := range rec.Prerequisites {
			if _, ok := known[prereq]; ok {
				continue
			}
			return nil, apperrors.NewCustomError(
				apperrors.ErrDanglingPrerequisite,
				fmt.Sprintf("line %d: course %s lists prerequisite %s which is not defined in the file", i+1, rec.ID, prereq),
			).WithCode(CodeDanglingPrerequisite).WithDetails(map[string]interface{}{
				"line":         i + 1,
				"course":       rec.ID,
				"prerequisite": prereq,
			})
		}
	}

	return records, nil
}

// malformed never carries the line text: the batch may come from a file the
// caller is not allowed to read.
func malformed(lineNo int, line, reason string) error {
	return apperrors.NewCustomError(
		apperrors.ErrMalformedRecord,
		fmt.Sprintf("line %d: %s", lineNo, reason),
	).WithCode(CodeMalformedRecord).WithDetails(map[string]interface{}{
		"line":   lineNo,
		"fields": fieldCount(line),
	})
}

func fieldCount(line string) int {
	tokens, err := ParseLine(line)
	if err != nil {
		return 0
	}
	return len(tokens)
}
