package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestIsAffirmative(t *testing.T) {
	affirmatives := []string{"y", "yes", "s", "si", "sí"}
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{"s", true},
		{"si", true},
		{"sí", true},
		{"SI", true},
		{" yes ", true},
		{"", false},
		{"n", false},
		{"no", false},
		{"yep", false},
	}
	for _, tt := range tests {
		if got := isAffirmative(tt.answer, affirmatives); got != tt.want {
			t.Errorf("isAffirmative(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestIsAffirmative_CustomSet(t *testing.T) {
	if isAffirmative("ja", []string{"y", "yes"}) {
		t.Error("ja should not be affirmative with the default set")
	}
	if !isAffirmative("ja", []string{"j", "ja"}) {
		t.Error("ja should be affirmative with a German set")
	}
}

func TestPromptLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  Login Radius tickets \n"))

	got, err := promptLine(r, &out, "What did you work on? ")
	if err != nil {
		t.Fatalf("promptLine: %v", err)
	}
	if got != "Login Radius tickets" {
		t.Errorf("promptLine = %q", got)
	}
	if out.String() != "What did you work on? " {
		t.Errorf("label = %q", out.String())
	}
}

func TestPromptLine_EOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	got, err := promptLine(r, &out, "> ")
	if err != nil {
		t.Fatalf("promptLine at EOF: %v", err)
	}
	if got != "" {
		t.Errorf("promptLine = %q, want empty", got)
	}
}
