package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("INVADERS_TEST_STR", "tcell")
	if got := GetEnv("INVADERS_TEST_STR", "ansi"); got != "tcell" {
		t.Fatalf("GetEnv = %q, want %q", got, "tcell")
	}
	if got := GetEnv("INVADERS_TEST_MISSING", "ansi"); got != "ansi" {
		t.Fatalf("GetEnv fallback = %q, want %q", got, "ansi")
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("INVADERS_TEST_INT", "42")
	if got := GetEnvInt64("INVADERS_TEST_INT", 7); got != 42 {
		t.Fatalf("GetEnvInt64 = %d, want 42", got)
	}
	if got := GetEnvInt64("INVADERS_TEST_MISSING", 7); got != 7 {
		t.Fatalf("GetEnvInt64 fallback = %d, want 7", got)
	}

	t.Setenv("INVADERS_TEST_INT", "not-a-number")
	if got := GetEnvInt64("INVADERS_TEST_INT", 7); got != 7 {
		t.Fatalf("GetEnvInt64 on garbage = %d, want fallback 7", got)
	}
}
