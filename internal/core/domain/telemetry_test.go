package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stylecache/internal/core/domain"
)

func TestOutcome_Failed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome  domain.Outcome
		expected bool
	}{
		{domain.OutcomeCached, false},
		{domain.OutcomeCompiled, false},
		{domain.OutcomeFailed, true},
		{domain.OutcomeSkipped, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.outcome.Failed())
		})
	}
}
