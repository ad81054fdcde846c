package docfmt_test

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/liamg/memoryfs"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var errUnbalanced = errors.New("expected ')'")

// fakeFormatter knows how a few snippets look under each style and leaves
// anything else alone, which makes it idempotent like clang-format.
type fakeFormatter struct {
	calls int
}

var formatted = map[string]map[string]string{
	"Microsoft": {
		"void f (1,2,3){}\n": "void f(1, 2, 3)\n{\n}\n",
		"int x= 3;\n":        "int x = 3;\n",
	},
	"LLVM": {
		"void f (1,2,3){}\n": "void f(1, 2, 3) {}\n",
		"int x= 3;\n":        "int x = 3;\n",
	},
}

func (f *fakeFormatter) Format(_ context.Context, code []byte, name string) ([]byte, error) {
	f.calls++

	if strings.Count(string(code), "(") != strings.Count(string(code), ")") {
		return nil, errUnbalanced
	}

	if out, ok := formatted[name][string(code)]; ok {
		return []byte(out), nil
	}

	return code, nil
}

type memFS struct {
	*memoryfs.FS
}

func newMemFS() memFS {
	return memFS{FS: memoryfs.New()}
}

func (m memFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(m.FS, name)
}

func countFencedBlocks(source []byte) int {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	count := 0

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && node.Kind() == ast.KindFencedCodeBlock {
			count++
		}

		return ast.WalkContinue, nil
	})

	return count
}
