package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdpdf/internal/config"
	"github.com/alnah/go-mdpdf/internal/yamlutil"
)

// ---------------------------------------------------------------------------
// TestRunConfigCommand - Effective config dump
// ---------------------------------------------------------------------------

func TestRunConfigCommand(t *testing.T) {
	t.Parallel()

	t.Run("file plus env round trips", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "mdpdf.yaml", "page:\n  size: legal\ntypography:\n  h1:\n    size: 20\n")
		env, stdout, _ := testEnv(map[string]string{"MDPDF_FONT": "gomono"})

		if err := runConfigCommand([]string{"--config", path}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got config.Config
		if err := yamlutil.UnmarshalStrict([]byte(stdout.String()), &got); err != nil {
			t.Fatalf("output is not a valid config: %v\n%s", err, stdout.String())
		}
		if got.Page.Size != "legal" || got.Typography.H1.Size != 20 || got.Font.Source != "gomono" {
			t.Errorf("effective config = %+v", got)
		}
	})

	t.Run("positional argument rejected", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(nil)
		if err := runConfigCommand([]string{"extra"}, env); !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})

	t.Run("invalid env value", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(map[string]string{"MDPDF_PAGE_SIZE": "tabloid"})
		err := runConfigCommand(nil, env)
		if !errors.Is(err, config.ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
		if strings.TrimSpace(stdout.String()) != "" {
			t.Errorf("printed config despite error:\n%s", stdout.String())
		}
	})
}
