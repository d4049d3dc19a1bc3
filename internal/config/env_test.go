package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("SKYFALL_TEST_STR", "hello")

	if got := GetEnv("SKYFALL_TEST_STR", "fallback"); got != "hello" {
		t.Errorf("GetEnv = %q, want hello", got)
	}
	if got := GetEnv("SKYFALL_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SKYFALL_TEST_INT", "42")
	t.Setenv("SKYFALL_TEST_BAD_INT", "not a number")

	if got := GetEnvInt("SKYFALL_TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	if got := GetEnvInt("SKYFALL_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvInt with bad value = %d, want fallback 7", got)
	}
	if got := GetEnvInt("SKYFALL_TEST_UNSET", 7); got != 7 {
		t.Errorf("GetEnvInt unset = %d, want fallback 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SKYFALL_TEST_BOOL", "true")
	t.Setenv("SKYFALL_TEST_BAD_BOOL", "yep")

	if got := GetEnvBool("SKYFALL_TEST_BOOL", false); got != true {
		t.Error("GetEnvBool = false, want true")
	}
	if got := GetEnvBool("SKYFALL_TEST_BAD_BOOL", true); got != true {
		t.Error("GetEnvBool with bad value should return the fallback")
	}
}
