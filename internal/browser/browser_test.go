package browser

import "testing"

func TestOpenRejectsNonHTTP(t *testing.T) {
	tests := []string{
		"file:///etc/passwd",
		"javascript:alert(1)",
		"ftp://example.com",
		"",
	}
	for _, rawURL := range tests {
		if err := Open(rawURL); err == nil {
			t.Errorf("Open(%q): expected error, got nil", rawURL)
		}
	}
}

func TestOpenAcceptsHTTPSchemes(t *testing.T) {
	// Scheme validation must pass; the actual launch may fail on headless
	// test machines, which is fine.
	for _, rawURL := range []string{"https://example.com", "http://example.com"} {
		_ = Open(rawURL)
	}
}
