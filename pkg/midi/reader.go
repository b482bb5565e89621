package midi

import (
	"bufio"
	"io"
)

// Reader pulls decoded messages out of a raw MIDI byte stream. It feeds the
// source one byte at a time into a Parser, so running status, real-time
// interruptions and SysEx framing behave exactly as with direct Parse calls.
type Reader struct {
	r *bufio.Reader
	p *Parser
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		r: bufio.NewReader(r),
		p: NewParser(),
	}
}

// Next returns the next complete message from the stream. It returns io.EOF
// once the source is exhausted; a message left unfinished at the end of the
// stream is abandoned, as it would be by an interrupting status byte.
func (d *Reader) Next() (Message, error) {
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return Message{}, err
		}

		if kind, msg := d.p.Parse(b); kind != KindNone {
			return msg, nil
		}
	}
}

// Reset discards the decode state but keeps reading from the same source.
func (d *Reader) Reset() {
	d.p.Reset()
}
