package mdcode

// Block is a fenced code region handed to a [Walker].
//
// Code holds the dedented body. Walkers that want the region rewritten call
// Replace; leaving Code untouched keeps the original text verbatim.
type Block struct {
	Tag       string
	Indent    string
	Code      []byte
	Offset    int
	StartLine int
	EndLine   int

	replaced bool
}

// Replace sets the new, unindented body of the block.
func (b *Block) Replace(code []byte) {
	b.Code = code
	b.replaced = true
}

// Replaced reports whether Replace has been called.
func (b *Block) Replaced() bool {
	return b.replaced
}

type Blocks []*Block
