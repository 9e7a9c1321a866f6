package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	initCmd()
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestQuestions(t *testing.T) {
	out, err := run(t, "questions")
	if err != nil {
		t.Fatalf("questions failed: %v", err)
	}
	for _, id := range checkInQuestions {
		if !strings.Contains(out, string(id)+":") {
			t.Errorf("expected question %s in output", id)
		}
	}
}

func TestEntriesListInMemory(t *testing.T) {
	out, err := run(t, "--memory", "entries", "list")
	if err != nil {
		t.Fatalf("entries list failed: %v", err)
	}
	if !strings.Contains(out, "No entries found.") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := run(t, "--memory", "entries", "show", "missing"); err == nil || !strings.Contains(err.Error(), "entry not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestCheckinValidation(t *testing.T) {
	if _, err := run(t, "--memory", "checkin"); err == nil {
		t.Errorf("expected error without answers")
	}
	if _, err := run(t, "--memory", "checkin", "--sleep", "9"); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("expected out of range error, got %v", err)
	}
}
