package config

import "testing"

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.Threads <= 0 {
		t.Errorf("Threads = %d, want > 0", cfg.Threads)
	}

	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatText)
	}

	if cfg.FollowSymlinks {
		t.Error("FollowSymlinks = true, want false")
	}
}

func TestValidateRequiresRoot(t *testing.T) {
	cfg := New()

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for missing roots")
	}
}

func TestValidateAcceptsZeroThreads(t *testing.T) {
	cfg := New()
	cfg.Roots = []string{"."}
	cfg.Threads = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for zero threads (means \"use default\")", err)
	}
}

func TestValidateRejectsNegativeThreads(t *testing.T) {
	cfg := New()
	cfg.Roots = []string{"."}
	cfg.Threads = -1

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for negative threads")
	}
}

func TestResolvedDefaultsZeroThreads(t *testing.T) {
	cfg := New()
	cfg.Threads = 0

	resolved := cfg.Resolved()
	if resolved.Threads <= 0 {
		t.Errorf("Resolved().Threads = %d, want > 0", resolved.Threads)
	}
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := New()
	cfg.Roots = []string{"."}
	cfg.Format = "xml"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for unknown format")
	}
}

func TestValidateAccepts(t *testing.T) {
	cfg := New()
	cfg.Roots = []string{"."}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
