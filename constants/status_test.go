package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscalate(t *testing.T) {
	tests := []struct {
		name     string
		current  ValidationStatus
		severity Severity
		expected ValidationStatus
	}{
		{"error is terminal", StatusValid, SeverityError, StatusError},
		{"warning upgrades valid", StatusValid, SeverityWarning, StatusWarning},
		{"warning keeps warning", StatusWarning, SeverityWarning, StatusWarning},
		{"warning never downgrades error", StatusError, SeverityWarning, StatusError},
		{"error over warning", StatusWarning, SeverityError, StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escalate(tt.current, tt.severity))
		})
	}
}
