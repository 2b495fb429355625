package parser

// Input is the unconsumed part of a source text. It remembers where in the
// source it starts so failures can be reported by byte offset.
type Input struct {
	src string
	off int
}

func NewInput(src string) Input {
	return Input{src: src}
}

func (in Input) Source() string { return in.src }

func (in Input) Offset() int { return in.off }

func (in Input) Rest() string { return in.src[in.off:] }

func (in Input) AtEOF() bool { return in.off >= len(in.src) }

// take splits off the next n bytes.
func (in Input) take(n int) (Input, string) {
	s := in.src[in.off : in.off+n]
	return Input{src: in.src, off: in.off + n}, s
}
