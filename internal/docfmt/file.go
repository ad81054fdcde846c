package docfmt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
)

const fileMode = 0o644

// FS reads and writes the documents being formatted.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

type osFS struct{}

func (osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// OS is the host file system.
var OS FS = osFS{} //nolint:gochecknoglobals

// FileOptions controls [Rewriter.FormatFile].
type FileOptions struct {
	// SkipErrors lets a file pass even when some blocks failed to format.
	SkipErrors bool
	// Quiet suppresses the rewriting notice.
	Quiet bool
}

// FormatFile formats the code blocks of filename and rewrites it when its
// content changes. Block errors and rewrites are reported to out.
//
// It returns ErrFailed when a block failed and errors are not skipped, or
// when the file was rewritten, so that checks fail whenever content needed
// fixing. Read and write errors are returned as is.
func (r *Rewriter) FormatFile(ctx context.Context, fsys FS, filename string, opts FileOptions, out io.Writer) error {
	contents, err := fsys.ReadFile(filename)
	if err != nil {
		return err
	}

	newContents, errs := r.FormatSource(ctx, contents)

	for _, e := range errs {
		fmt.Fprintf(out, "%s:%d: code block parse error %v\n", filename, e.Line, e.Err)
	}

	if len(errs) > 0 && !opts.SkipErrors {
		return fmt.Errorf("%s: %w", filename, ErrFailed)
	}

	if bytes.Equal(contents, newContents) {
		r.logger.Debug("unchanged", "file", filename)

		return nil
	}

	if !opts.Quiet {
		fmt.Fprintf(out, "%s: Rewriting...\n", filename)
	}

	if err := fsys.WriteFile(filename, newContents, fileMode); err != nil {
		return err
	}

	return fmt.Errorf("%s: %w", filename, ErrFailed)
}
