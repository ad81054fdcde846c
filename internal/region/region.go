// Package region finds fenced code regions tagged with a given language in
// Markdown-like text.
package region

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
)

const (
	reLineBegin  = `(?m)^`
	reIndent     = `( *)`
	reFence      = "(`{3,})"
	reLineEnd    = `[ \t]*\r?\n`
	openingStart = reLineBegin + reIndent + reFence + `[ \t]*(?i:`
	openingEnd   = `)` + reLineEnd
)

// DefaultTags are the language tags matched when no tags are given.
var DefaultTags = []string{"c++", "cpp"}

// Region is a span of source delimited by an opening fence line carrying a
// matching tag and a closing fence line with the same indentation and fence.
//
// All offsets are byte offsets into the scanned source. Before covers the
// opening line, Code the body and After the closing line.
type Region struct {
	Start     int
	CodeStart int
	CodeEnd   int
	End       int
	Indent    string
	Fence     string
	Tag       string
}

// Before returns the opening fence line.
func (r Region) Before(source []byte) []byte { return source[r.Start:r.CodeStart] }

// Code returns the body between the fences.
func (r Region) Code(source []byte) []byte { return source[r.CodeStart:r.CodeEnd] }

// After returns the closing fence line.
func (r Region) After(source []byte) []byte { return source[r.CodeEnd:r.End] }

// Matcher scans sources for regions opened with one of its tags.
type Matcher struct {
	opening *regexp.Regexp
}

// New compiles a matcher for the given tags. Tags are matched literally and
// case-insensitively. With no tags, DefaultTags are used.
func New(tags ...string) (*Matcher, error) {
	if len(tags) == 0 {
		tags = DefaultTags
	}

	quoted := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if len(tag) == 0 {
			return nil, ErrEmptyTag
		}

		quoted = append(quoted, regexp.QuoteMeta(tag))
	}

	re, err := regexp.Compile(openingStart + `(` + strings.Join(quoted, "|") + `)` + openingEnd)
	if err != nil {
		return nil, err
	}

	return &Matcher{opening: re}, nil
}

// MustNew is like New but panics on error.
func MustNew(tags ...string) *Matcher {
	m, err := New(tags...)
	if err != nil {
		panic(err)
	}

	return m
}

// Find returns every region of source in order of appearance. Regions never
// overlap: scanning resumes after the closing fence of each match.
func (m *Matcher) Find(source []byte) []Region {
	var regions []Region

	idx := 0

	for idx < len(source) {
		loc := m.opening.FindSubmatchIndex(source[idx:])
		if loc == nil {
			break
		}

		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += idx
			}
		}

		reg := Region{
			Start:     loc[0],
			CodeStart: loc[1],
			Indent:    string(source[loc[2]:loc[3]]),
			Fence:     string(source[loc[4]:loc[5]]),
			Tag:       string(source[loc[6]:loc[7]]),
		}

		closeStart, closeEnd, found := findClosing(source, reg.CodeStart, reg.Indent, reg.Fence)
		if !found {
			idx = loc[1]

			continue
		}

		reg.CodeEnd, reg.End = closeStart, closeEnd
		regions = append(regions, reg)

		idx = closeEnd
	}

	return regions
}

// findClosing looks for the first line at or after from that consists of
// indent, fence and optional blanks. It returns the bounds of that line,
// including its newline when present.
func findClosing(source []byte, from int, indent, fence string) (int, int, bool) {
	marker := indent + fence

	for pos := from; pos < len(source); {
		end := len(source)
		next := end

		if nl := bytes.IndexByte(source[pos:], '\n'); nl >= 0 {
			end = pos + nl
			next = end + 1
		}

		line := string(source[pos:end])
		if strings.HasPrefix(line, marker) && isBlank(line[len(marker):]) {
			return pos, next, true
		}

		pos = next
	}

	return 0, 0, false
}

func isBlank(s string) bool {
	return len(strings.Trim(s, " \t\r")) == 0
}

// ErrEmptyTag is returned by [New] when a tag is empty.
var ErrEmptyTag = errors.New("empty language tag")
