package util

import (
	"testing"
)

func TestGetPackageName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"fmt", "fmt"},
		{"go/types", "types"},
		{"github.com/m4gshm/enumfields/annotation", "annotation"},
		{"github.com/dave/jennifer/jen", "jen"},
		{"github.com/jackc/pgx/v5", "pgx"},
		{"example.com/mod/v10", "mod"},
		{"example.com/v1", "v1"},
		{"example.com/v05", "v05"},
		{"", ""},
	}

	for _, tc := range testCases {
		result := GetPackageName(tc.input)
		if result != tc.expected {
			t.Errorf("GetPackageName(%q) = %q; want %q", tc.input, result, tc.expected)
		}
	}
}
