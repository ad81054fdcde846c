package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Parallel()

	h := newHarness(t, map[string]string{
		"a.md": "# A\n\n" + unformatted + "\n- item\n\n  ```CPP\n  int x;\n  int y;\n  ```\n",
		"b.md": "```go\nfunc f() {}\n```\n",
	})

	assert.Equal(t, 0, h.run("list", "a.md", "b.md"))
	assert.Empty(t, h.commands, "list never resolves the formatter")
	assert.Empty(t, h.styles)

	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, []string{"File", "Line", "Tag", "Indent", "Lines"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"a.md", "3", "c++", "0", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"a.md", "9", "CPP", "2", "2"}, strings.Fields(lines[2]))

	assert.Equal(t, "# A\n\n"+unformatted+"\n- item\n\n  ```CPP\n  int x;\n  int y;\n  ```\n", h.read(t, "a.md"))
}

func TestListExclude(t *testing.T) {
	t.Parallel()

	h := newHarness(t, map[string]string{"a.md": unformatted})

	assert.Equal(t, 0, h.run("ls", "--exclude", "*.md", "a.md"))

	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestListMissingFile(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)

	assert.Equal(t, 1, h.run("list", "missing.md"))
	assert.NotEmpty(t, h.stderr.String())
}
