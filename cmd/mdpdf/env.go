package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment and GOMAXPROCS tuning.
type Environment struct {
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
	Getenv   func(string) string
	Environ  func() []string
	MaxProcs func(logf func(string, ...any)) (undo func(), err error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Getenv:   os.Getenv,
		Environ:  os.Environ,
		MaxProcs: setMaxProcs,
	}
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
func setMaxProcs(logf func(string, ...any)) (func(), error) {
	return maxprocs.Set(maxprocs.Logger(logf))
}
