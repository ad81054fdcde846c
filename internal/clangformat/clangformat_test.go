package clangformat_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ezerfernandes/clang-format-docs/internal/clangformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeScript = `#!/bin/sh
for arg; do
  case "$arg" in
    --style=*) style="${arg#--style=}" ;;
    -*) ;;
    *) file="$arg" ;;
  esac
done
if [ "$style" = Broken ]; then
  echo "invalid style: $style" >&2
  exit 1
fi
echo "// style=$style"
echo "// file=$file"
while IFS= read -r line; do
  printf '%s\n' "$line"
done < "$file"
`

func fakeFormatter(t *testing.T) []string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clang-format"), []byte(fakeScript), 0o755)) //nolint:gosec

	return []string{"PATH=" + dir + string(os.PathListSeparator) + os.Getenv("PATH")}
}

func TestNewNotFound(t *testing.T) {
	t.Parallel()

	_, err := clangformat.New("", clangformat.WithEnv("PATH="+t.TempDir()))
	require.ErrorIs(t, err, clangformat.ErrNotFound)
	assert.Contains(t, err.Error(), "Make sure clang-format is installed")

	_, err = clangformat.New("clang-format-none-such", clangformat.WithEnv("PATH="+t.TempDir()))
	require.ErrorIs(t, err, clangformat.ErrNotFound)
}

func TestNewBadCommand(t *testing.T) {
	t.Parallel()

	_, err := clangformat.New(`clang-format "unterminated`)
	require.Error(t, err)
	assert.False(t, errors.Is(err, clangformat.ErrNotFound))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	env := fakeFormatter(t)

	f, err := clangformat.New("clang-format --fallback-style=none", clangformat.WithEnv(env...))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(f.Path()))

	out, err := f.Format(context.Background(), []byte("void f();\n"), "{BasedOnStyle: llvm, IndentWidth: 8}")
	require.NoError(t, err)

	lines := strings.SplitN(string(out), "\n", 3)
	require.Len(t, lines, 3)
	assert.Equal(t, "// style={BasedOnStyle: llvm, IndentWidth: 8}", lines[0])
	assert.Equal(t, "void f();\n", lines[2])

	tempFile := strings.TrimPrefix(lines[1], "// file=")
	assert.True(t, strings.HasSuffix(tempFile, ".cpp"), tempFile)

	_, err = os.Stat(tempFile)
	assert.True(t, os.IsNotExist(err), "temporary file is removed")
}

func TestFormatFailure(t *testing.T) {
	t.Parallel()

	env := fakeFormatter(t)

	f, err := clangformat.New("", clangformat.WithEnv(env...), clangformat.WithDir(t.TempDir()))
	require.NoError(t, err)

	_, err = f.Format(context.Background(), []byte("void f();\n"), "Broken")

	var exitErr *clangformat.ExitError

	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Status)
	assert.Equal(t, "invalid style: Broken", exitErr.Stderr)
	assert.Equal(t, "clang-format exited with status 1: invalid style: Broken", err.Error())
}

func TestClangFormat(t *testing.T) {
	t.Parallel()

	f, err := clangformat.New("")
	if errors.Is(err, clangformat.ErrNotFound) {
		t.Skip("clang-format is not installed")
	}

	require.NoError(t, err)

	out, err := f.Format(context.Background(), []byte("void f (1,2,3){}\n"), "Microsoft")
	require.NoError(t, err)
	assert.Equal(t, "void f(1, 2, 3)\n{\n}\n", string(out))

	out, err = f.Format(context.Background(), []byte("void f (1,2,3){}\n"), "LLVM")
	require.NoError(t, err)
	assert.Equal(t, "void f(1, 2, 3) {}\n", string(out))
}
