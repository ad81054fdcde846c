// Package clangformat runs clang-format on code snippets.
package clangformat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultCommand is the formatter command used when none is configured.
const DefaultCommand = "clang-format"

const tempPattern = "clang-format-docs-*.cpp"

// Formatter invokes a resolved clang-format executable.
type Formatter struct {
	argv []string
	env  []string
	dir  string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithEnv sets the environment, as KEY=value pairs, used to look up and run
// the executable. The process environment is used by default.
func WithEnv(pairs ...string) Option {
	return func(f *Formatter) {
		f.env = pairs
	}
}

// WithDir sets the working directory of the executable, which is also where
// relative command paths are resolved.
func WithDir(dir string) Option {
	return func(f *Formatter) {
		f.dir = dir
	}
}

// New resolves command, a shell-style command line such as "clang-format" or
// "clang-format-17 --fallback-style=none". It returns an error wrapping
// ErrNotFound when the executable cannot be located.
func New(command string, opts ...Option) (*Formatter, error) {
	f := &Formatter{env: os.Environ()}

	for _, opt := range opts {
		opt(f)
	}

	if len(strings.TrimSpace(command)) == 0 {
		command = DefaultCommand
	}

	argv, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("formatter command %q: %w", command, err)
	}

	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: empty formatter command", ErrNotFound)
	}

	dir := f.dir
	if len(dir) == 0 {
		if dir, err = os.Getwd(); err != nil {
			return nil, err
		}
	}

	path, err := interp.LookPathDir(dir, expand.ListEnviron(f.env...), argv[0])
	if err != nil {
		return nil, fmt.Errorf(
			"%w: unable to find %s. Make sure clang-format is installed and available in your PATH",
			ErrNotFound, argv[0],
		)
	}

	argv[0] = path
	f.argv = argv

	return f, nil
}

// Path returns the resolved executable.
func (f *Formatter) Path() string {
	return f.argv[0]
}

// Format hands code to clang-format through a temporary file and returns the
// formatted text. The temporary file is removed before Format returns.
func (f *Formatter) Format(ctx context.Context, code []byte, style string) ([]byte, error) {
	tmp, err := os.CreateTemp("", tempPattern)
	if err != nil {
		return nil, err
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(code); err != nil {
		tmp.Close()

		return nil, err
	}

	if err := tmp.Close(); err != nil {
		return nil, err
	}

	args := make([]string, 0, len(f.argv)+2) //nolint:gomnd
	args = append(args, f.argv...)
	args = append(args, "--style="+style, tmp.Name())

	var stdout, stderr bytes.Buffer

	status, err := f.run(ctx, args, &stdout, &stderr)
	if err != nil {
		return nil, err
	}

	if status != 0 {
		return nil, &ExitError{Status: status, Stderr: strings.TrimSpace(stderr.String())}
	}

	return stdout.Bytes(), nil
}

func (f *Formatter) run(ctx context.Context, args []string, stdout, stderr *bytes.Buffer) (int, error) {
	quoted := make([]string, len(args))

	for i, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			return -1, err
		}

		quoted[i] = q
	}

	file, err := syntax.NewParser().Parse(strings.NewReader(strings.Join(quoted, " ")), "")
	if err != nil {
		return -1, err
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(f.env...)),
		interp.StdIO(nil, stdout, stderr),
	}

	if len(f.dir) != 0 {
		opts = append(opts, interp.Dir(f.dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return -1, err
	}

	err = runner.Run(ctx, file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}

// ExitError reports a non-zero exit of the formatter.
type ExitError struct {
	Status int
	Stderr string
}

func (e *ExitError) Error() string {
	if len(e.Stderr) == 0 {
		return fmt.Sprintf("clang-format exited with status %d", e.Status)
	}

	return fmt.Sprintf("clang-format exited with status %d: %s", e.Status, e.Stderr)
}

// ErrNotFound is returned by [New] when the formatter executable is missing.
var ErrNotFound = errors.New("clang-format not found")
