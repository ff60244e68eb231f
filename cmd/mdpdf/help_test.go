package main

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunHelp - Per-command help
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{"no args", nil, "Usage: mdpdf <command>", ""},
		{"convert", []string{"convert"}, "--html-only", ""},
		{"text", []string{"text"}, "mdpdf text <file.pdf>", ""},
		{"config", []string{"config"}, "effective configuration", ""},
		{"version", []string{"version"}, "Usage: mdpdf version", ""},
		{"help", []string{"help"}, "Usage: mdpdf help", ""},
		{"unknown", []string{"nope"}, "", "Unknown command: nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			runHelp(tt.args, env)

			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout missing %q:\n%s", tt.wantStdout, stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}

func TestPrintConvertUsage_ListsEveryFlag(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printConvertUsage(&buf)

	for _, flag := range []string{
		"--output", "--config", "--workers", "--timeout", "--font",
		"--page-size", "--orientation", "--margin", "--title", "--author",
		"--html", "--html-only", "--quiet", "--verbose",
	} {
		if !strings.Contains(buf.String(), flag) {
			t.Errorf("convert usage missing %s", flag)
		}
	}
	for name := range knownEnvVars {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("convert usage missing %s", name)
		}
	}
}
