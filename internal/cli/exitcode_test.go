package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: ExitCodeOk},
		{name: "unknown", err: errors.New("boom"), expected: ExitCodeError},
		{name: "input", err: fmt.Errorf("bad: %w", ErrorInvalidInput), expected: ExitCodeInputError},
		{name: "cancelled", err: ErrorUserCancelled, expected: ExitCodeInputError},
		{name: "policy", err: fmt.Errorf("rejected: %w", ErrorPolicyFailed), expected: ExitCodePolicyError},
		{name: "service", err: ErrorServiceUnavailable, expected: ExitCodeServiceUnavailable},
		{
			name:     "combined",
			err:      errors.Join(ErrorPolicyFailed, ErrorServiceUnavailable),
			expected: ExitCodePolicyError | ExitCodeServiceUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetExitCode(tc.err))
		})
	}
}
