// Package docfmt rewrites C++ code blocks embedded in documentation with an
// external formatter, keeping fences and indentation intact.
package docfmt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ezerfernandes/clang-format-docs/internal/mdcode"
	"github.com/ezerfernandes/clang-format-docs/internal/region"
	"github.com/ezerfernandes/clang-format-docs/internal/style"
)

// Formatter formats a snippet of source code with the named style.
type Formatter interface {
	Format(ctx context.Context, code []byte, name string) ([]byte, error)
}

// FormatterFunc adapts a function to [Formatter].
type FormatterFunc func(ctx context.Context, code []byte, style string) ([]byte, error)

// Format calls fn.
func (fn FormatterFunc) Format(ctx context.Context, code []byte, name string) ([]byte, error) {
	return fn(ctx, code, name)
}

// BlockError is a formatting failure of a single code block.
type BlockError struct {
	// Offset is the byte offset of the opening fence line.
	Offset int
	// Line is the 1-based line of the opening fence.
	Line int
	Err  error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// outcome is the result of formatting one block: either code or err is set.
type outcome struct {
	code []byte
	err  *BlockError
}

// Rewriter locates tagged code blocks and formats them.
type Rewriter struct {
	formatter Formatter
	matcher   *region.Matcher
	style     string
	logger    *slog.Logger
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithMatcher sets the matcher selecting code blocks. The default matches the
// c++ and cpp tags.
func WithMatcher(m *region.Matcher) Option {
	return func(r *Rewriter) {
		r.matcher = m
	}
}

// WithStyle sets the style handed to the formatter.
func WithStyle(name string) Option {
	return func(r *Rewriter) {
		r.style = name
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Rewriter) {
		r.logger = logger
	}
}

// NewRewriter returns a Rewriter that formats blocks with formatter.
func NewRewriter(formatter Formatter, opts ...Option) *Rewriter {
	r := &Rewriter{
		formatter: formatter,
		style:     style.Default,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.matcher == nil {
		r.matcher = region.MustNew()
	}

	return r
}

// FormatSource formats every code block of src. Blocks that fail to format
// are left untouched and reported, in order of appearance, as BlockErrors.
// The returned document is always complete.
func (r *Rewriter) FormatSource(ctx context.Context, src []byte) ([]byte, []*BlockError) {
	var errs []*BlockError

	modified, result, err := mdcode.Walk(src, r.matcher, func(block *mdcode.Block) error {
		out := r.formatBlock(ctx, block)
		if out.err != nil {
			errs = append(errs, out.err)

			return nil
		}

		block.Replace(out.code)

		return nil
	})
	if err != nil || !modified {
		return src, errs
	}

	return result, errs
}

func (r *Rewriter) formatBlock(ctx context.Context, block *mdcode.Block) outcome {
	code, err := r.formatter.Format(ctx, block.Code, r.style)
	if err != nil {
		r.logger.Debug("format failed", "line", block.StartLine, "error", err)

		return outcome{err: &BlockError{Offset: block.Offset, Line: block.StartLine, Err: err}}
	}

	return outcome{code: code}
}

// ErrFailed signals that a file had unresolved block errors or was rewritten.
var ErrFailed = errors.New("code blocks need formatting")
