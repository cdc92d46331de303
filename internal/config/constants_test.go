package config

import "testing"

func TestConstants(t *testing.T) {
	if SaveDebounce <= 0 {
		t.Fatalf("SaveDebounce must be positive")
	}
	if GenerateDebounce <= 0 || GenerateDebounce >= SaveDebounce {
		t.Fatalf("GenerateDebounce should be positive and shorter than SaveDebounce")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if MaxPassphraseAttempts <= 0 {
		t.Fatalf("MaxPassphraseAttempts must be positive")
	}
	if MinTitleWidth > TargetTitleWidth {
		t.Fatalf("MinTitleWidth exceeds TargetTitleWidth")
	}
}
