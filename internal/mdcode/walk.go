package mdcode

import (
	"bytes"

	"github.com/ezerfernandes/clang-format-docs/internal/region"
)

// Walker is a callback invoked for each code region found in a document. The
// walker may call [Block.Replace]; replacements are re-indented and written
// back into the document by [Walk].
type Walker func(block *Block) error

type change struct {
	reg  region.Region
	code []byte
}

func (c *change) sizeIncrement() int {
	return len(c.code) - (c.reg.CodeEnd - c.reg.CodeStart)
}

// Walk scans a document with m and calls walker for every code region, in
// order of appearance. If any replaced body differs from the original text,
// Walk returns true and the updated document. When nothing changes, it returns
// false and a nil slice. An error from walker stops the walk.
func Walk(source []byte, m *region.Matcher, walker Walker) (bool, []byte, error) {
	var changes []*change

	for _, reg := range m.Find(source) {
		block := extractBlock(reg, source)

		if err := walker(block); err != nil {
			return false, nil, err
		}

		if !block.Replaced() {
			continue
		}

		code := Indent(terminate(block.Code), reg.Indent)
		if !bytes.Equal(code, reg.Code(source)) {
			changes = append(changes, &change{reg: reg, code: code})
		}
	}

	if len(changes) == 0 {
		return false, nil, nil
	}

	return true, applyChanges(changes, source), nil
}

func extractBlock(reg region.Region, source []byte) *Block {
	return &Block{
		Tag:       reg.Tag,
		Indent:    reg.Indent,
		Code:      Dedent(reg.Code(source)),
		Offset:    reg.Start,
		StartLine: LineAt(source, reg.Start),
		EndLine:   LineAt(source, reg.CodeEnd),
	}
}

// terminate makes sure a non-empty body ends with a newline so the closing
// fence stays on its own line.
func terminate(code []byte) []byte {
	if len(code) == 0 || code[len(code)-1] == '\n' {
		return code
	}

	return append(code[:len(code):len(code)], '\n')
}

func applyChanges(changes []*change, source []byte) []byte {
	resSize := len(source)

	for _, change := range changes {
		resSize += change.sizeIncrement()
	}

	result := make([]byte, resSize)

	var srcIdx, resIdx int

	for _, change := range changes {
		start, stop := change.reg.CodeStart, change.reg.CodeEnd

		copy(result[resIdx:], source[srcIdx:start])
		resIdx += (start - srcIdx)

		copy(result[resIdx:], change.code)
		resIdx += len(change.code)

		srcIdx = stop
	}

	copy(result[resIdx:], source[srcIdx:])

	return result
}
