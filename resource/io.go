package resource

import (
	"context"
	"io"
)

// NewReader returns a reader that charges every byte read from r against the
// IO budget of c. Without an IO limit r is returned as is.
func NewReader(ctx context.Context, r io.Reader, c *Controller) io.Reader {
	if c == nil || c.io == nil {
		return r
	}
	return &budgetReader{ctx: ctx, r: r, c: c}
}

type budgetReader struct {
	ctx context.Context
	r   io.Reader
	c   *Controller
}

// Read charges the limiter after the fact, for the bytes actually read.
func (b *budgetReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if n > 0 {
		if werr := b.c.WaitIO(b.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
