package main

// Notes:
// - This file contains test helpers used across the cmd tests.
// - These are not functions under test themselves, but supporting infrastructure.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-mdpdf"
)

// ---------------------------------------------------------------------------
// Environment
// ---------------------------------------------------------------------------

// testEnv returns an Environment with captured output and the given
// variables as the whole process environment.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			sort.Strings(out)
			return out
		},
		MaxProcs: func(func(string, ...any)) (func(), error) { return func() {}, nil },
	}
	return env, stdout, stderr
}

// writeFile creates a file under dir, including parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// staticMockConverter returns a fixed result and records inputs.
type staticMockConverter struct {
	mu     sync.Mutex
	pdf    []byte
	err    error
	inputs []mdpdf.Input
}

func (m *staticMockConverter) Convert(_ context.Context, input mdpdf.Input) (*mdpdf.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	res := &mdpdf.ConvertResult{
		HTML:     []byte("<p>" + input.Markdown + "</p>"),
		Elements: []mdpdf.Element{{Kind: mdpdf.Paragraph, Text: input.Markdown}},
	}
	if !input.HTMLOnly {
		res.PDF = m.pdf
		res.Pages = 1
	}
	return res, nil
}

// mockPool hands out one shared converter.
type mockPool struct {
	conv       CLIConverter
	size       int
	acquireErr error

	mu       sync.Mutex
	acquired int
	released int
}

func (p *mockPool) Acquire(_ context.Context) (CLIConverter, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired++
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released++
}

func (p *mockPool) Size() int {
	return p.size
}

func floatPtr(v float64) *float64 { return &v }
