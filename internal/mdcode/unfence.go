package mdcode

import "github.com/ezerfernandes/clang-format-docs/internal/region"

// Unfence returns all code regions of source matched by m without modifying
// the source.
func Unfence(source []byte, m *region.Matcher) (Blocks, error) {
	var blocks Blocks

	_, _, err := Walk(source, m, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}
