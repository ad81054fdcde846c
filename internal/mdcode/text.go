package mdcode

import (
	"bytes"
	"strings"
)

// Dedent removes the longest run of leading spaces shared by every line that
// has non-blank content. Lines holding only blanks are emptied.
func Dedent(code []byte) []byte {
	lines := splitLines(code)
	margin := -1

	for i, line := range lines {
		body, eol := cutEOL(line)
		if isBlank(body) {
			lines[i] = eol

			continue
		}

		n := len(body) - len(strings.TrimLeft(body, " "))
		if margin < 0 || n < margin {
			margin = n
		}
	}

	if margin <= 0 {
		return []byte(strings.Join(lines, ""))
	}

	var buf bytes.Buffer

	for _, line := range lines {
		if len(line) >= margin && strings.TrimLeft(line[:margin], " ") == "" {
			line = line[margin:]
		}

		buf.WriteString(line)
	}

	return buf.Bytes()
}

// Indent prefixes every line that has non-blank content with indent.
func Indent(code []byte, indent string) []byte {
	if len(indent) == 0 {
		return code
	}

	var buf bytes.Buffer

	for _, line := range splitLines(code) {
		if body, _ := cutEOL(line); !isBlank(body) {
			buf.WriteString(indent)
		}

		buf.WriteString(line)
	}

	return buf.Bytes()
}

// LineAt returns the 1-based line number of offset in source.
func LineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}

	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

// splitLines splits code after each newline, keeping the terminators.
func splitLines(code []byte) []string {
	if len(code) == 0 {
		return nil
	}

	lines := strings.SplitAfter(string(code), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func cutEOL(line string) (string, string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}

func isBlank(s string) bool {
	return len(strings.Trim(s, " \t\r")) == 0
}
