package sqlite

import (
	"testing"
)

func TestConvertWebsearchToFTS5(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple term",
			input:    "uchigatana",
			expected: "uchigatana",
		},
		{
			name:     "multiple terms",
			input:    "golden halberd",
			expected: "golden AND halberd",
		},
		{
			name:     "explicit AND",
			input:    "halberd AND golden",
			expected: "halberd AND golden",
		},
		{
			name:     "explicit OR",
			input:    "dagger OR knife",
			expected: "dagger OR knife",
		},
		{
			name:     "negation",
			input:    "talisman -crimson",
			expected: "talisman AND NOT crimson",
		},
		{
			name:     "phrase",
			input:    `"golden halberd"`,
			expected: `"golden halberd"`,
		},
		{
			name:     "phrase with other term",
			input:    `"golden halberd" greataxe`,
			expected: `"golden halberd" AND greataxe`,
		},
		{
			name:     "prefix search",
			input:    "uchi*",
			expected: "uchi*",
		},
		{
			name:     "complex query",
			input:    `"golden halberd" -crimson dagger OR knife`,
			expected: `"golden halberd" AND NOT crimson AND dagger OR knife`,
		},
		{
			name:     "NOT operator",
			input:    "dagger NOT throwing",
			expected: "dagger NOT throwing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convertWebsearchToFTS5(tt.input)
			if result != tt.expected {
				t.Errorf("convertWebsearchToFTS5(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
