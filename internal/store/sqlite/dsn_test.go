package sqlite

import (
	"testing"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name     string
		dsn      string
		expected string
		wantErr  bool
	}{
		{
			name:     "memory",
			dsn:      "sqlite://:memory:",
			expected: ":memory:",
		},
		{
			name:     "absolute path",
			dsn:      "sqlite:///var/lib/erdb/erdb.db",
			expected: "/var/lib/erdb/erdb.db",
		},
		{
			name:     "explicit relative path",
			dsn:      "sqlite://./erdb.db",
			expected: "./erdb.db",
		},
		{
			name:     "bare relative path",
			dsn:      "sqlite://erdb.db",
			expected: "./erdb.db",
		},
		{
			name:     "relative path with query",
			dsn:      "sqlite://erdb.db?mode=ro",
			expected: "./erdb.db?mode=ro",
		},
		{
			name:     "escaped path",
			dsn:      "sqlite://data%20dir/erdb.db",
			expected: "./data dir/erdb.db",
		},
		{
			name:    "wrong scheme",
			dsn:     "postgres://localhost/erdb",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDSN(tt.dsn)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDSN(%q) succeeded, want error", tt.dsn)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDSN(%q): %v", tt.dsn, err)
			}
			if got != tt.expected {
				t.Errorf("parseDSN(%q) = %q, want %q", tt.dsn, got, tt.expected)
			}
		})
	}
}
