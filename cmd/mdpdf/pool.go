package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdpdf"
)

// poolAdapter wraps ConverterPool to implement the Pool interface.
type poolAdapter struct {
	pool *mdpdf.ConverterPool
}

// Compile-time interface implementation check.
var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire(ctx context.Context) (CLIConverter, error) {
	conv, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*mdpdf.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}
