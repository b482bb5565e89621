package midi

// Parser is the decode state for one MIDI byte stream. It holds the running
// status and up to two accumulated data bytes; nothing else is buffered, so
// SysEx payload bytes are consumed and discarded.
//
// A Parser is not safe for concurrent use. Each independent byte stream
// needs its own instance.
type Parser struct {
	kind    Kind    // running status
	channel Channel // channel of the running status
	active  Channel // active channel filter, not consulted while decoding
	buffer  [bufferSize]uint8
	count   uint8
}

// NewParser returns a Parser ready to consume the first byte of a stream.
func NewParser() *Parser {
	p := &Parser{}
	p.Reset()
	return p
}

// Reset discards any partially accumulated message along with the running
// status and the active channel filter, returning the parser to its initial
// state. Call it after a transport drop or any other loss of stream sync.
func (p *Parser) Reset() {
	if p == nil {
		return
	}
	p.kind = KindNone
	p.channel = ChannelNone
	p.active = ChannelNone
	p.buffer[0] = 0
	p.buffer[1] = 0
	p.count = 0
}

// SetActiveChannel stores a channel filter value. ChannelNone disables the
// filter (omni). The decode path does not act on this value; it is carried
// for callers that filter decoded messages themselves.
func (p *Parser) SetActiveChannel(c Channel) {
	if p == nil {
		return
	}
	p.active = c
}

// ActiveChannel returns the value stored by SetActiveChannel.
func (p *Parser) ActiveChannel() Channel {
	if p == nil {
		return ChannelNone
	}
	return p.active
}

// Parse consumes one byte of the stream. If the byte completes a message,
// Parse returns its kind and the decoded message; otherwise it returns
// KindNone and the byte is absorbed into the parser state or ignored.
// Undefined and out-of-place bytes never fail: they decode to KindNone and
// leave the stream usable.
func (p *Parser) Parse(b byte) (Kind, Message) {
	if p == nil {
		return KindNone, Message{}
	}
	if b&statusMask != 0 {
		return p.parseStatus(b)
	}
	return p.parseData(b)
}

// parseStatus handles bytes with the high bit set. Channel voice and system
// common status bytes replace the running status; system real-time bytes
// complete immediately without touching it.
func (p *Parser) parseStatus(b byte) (Kind, Message) {
	switch Kind(b & msnMask) {
	case KindNoteOff, KindNoteOn, KindPolyKeyPressure, KindControlChange,
		KindProgramChange, KindChannelPressure, KindPitchBend:
		p.kind = Kind(b & msnMask)
		p.channel = Channel(b & channelMask)
		p.count = 0

	case KindSystemExclusive:
		// The first switch matched on the masked byte, so every 0xFn
		// status lands here and is told apart by its full value.
		switch Kind(b) {
		case KindSystemExclusive:
			p.kind = KindSystemExclusive
			p.channel = ChannelNone
			p.count = 0
			msg := Message{Kind: KindSystemExclusive, Channel: ChannelNone}
			return msg.Kind, msg

		case KindMTCQuarterFrame, KindSongPositionPointer, KindSongSelect:
			p.kind = Kind(b)
			p.channel = ChannelNone
			p.count = 0

		case KindTuneRequest, KindEndOfExclusive:
			p.kind = KindNone
			p.channel = ChannelNone
			p.count = 0
			msg := Message{Kind: Kind(b), Channel: ChannelNone}
			return msg.Kind, msg

		case KindTimingClock, KindStart, KindContinue, KindStop,
			KindActiveSense, KindSystemReset:
			// Real-time bytes pass straight through. Running status and
			// any half-built message are left alone so an interrupted
			// message resumes on the next byte.
			msg := Message{Kind: Kind(b), Channel: ChannelNone}
			return msg.Kind, msg

		default:
			// Undefined system status byte (0xF4, 0xF5, 0xF9, 0xFD).
			// Ignored without disturbing running status.
		}
	}
	return KindNone, Message{}
}

// parseData handles bytes with the high bit clear, routed by the running
// status. Two-byte kinds accumulate; one-byte kinds complete immediately.
func (p *Parser) parseData(b byte) (Kind, Message) {
	if b > maxDataByte {
		// Unreachable through Parse, guarded anyway.
		return KindNone, Message{}
	}
	if p.count >= bufferSize {
		// A count past the buffer means corrupted state. Clamp and drop
		// the byte rather than index out of range.
		p.count = 0
		return KindNone, Message{}
	}

	switch p.kind {
	case KindNoteOff:
		p.buffer[p.count] = b
		p.count++
		if p.count != 2 {
			break
		}
		p.count = 0
		msg := Message{
			Kind:     KindNoteOff,
			Channel:  p.channel,
			Note:     p.buffer[0],
			Velocity: p.buffer[1],
		}
		return msg.Kind, msg

	case KindNoteOn:
		p.buffer[p.count] = b
		p.count++
		if p.count != 2 {
			break
		}
		p.count = 0
		msg := Message{
			Kind:     KindNoteOn,
			Channel:  p.channel,
			Note:     p.buffer[0],
			Velocity: p.buffer[1],
		}
		if msg.Velocity == 0 {
			// Note on with velocity zero is a note off. Running status
			// stays note on for the bytes that follow.
			msg.Kind = KindNoteOff
		}
		return msg.Kind, msg

	case KindPolyKeyPressure:
		p.buffer[p.count] = b
		p.count++
		if p.count != 2 {
			break
		}
		p.count = 0
		msg := Message{
			Kind:        KindPolyKeyPressure,
			Channel:     p.channel,
			Key:         p.buffer[0],
			KeyPressure: p.buffer[1],
		}
		return msg.Kind, msg

	case KindControlChange:
		p.buffer[p.count] = b
		p.count++
		if p.count != 2 {
			break
		}
		p.count = 0
		msg := Message{
			Kind:       KindControlChange,
			Channel:    p.channel,
			Controller: Controller(p.buffer[0]),
			Value:      p.buffer[1],
		}
		if Kind(msg.Controller).IsChannelMode() {
			// Controllers 120-127 are the channel mode messages.
			msg.Kind = Kind(msg.Controller)
		}
		return msg.Kind, msg

	case KindProgramChange:
		p.count = 0
		msg := Message{
			Kind:    KindProgramChange,
			Channel: p.channel,
			Program: b,
		}
		return msg.Kind, msg

	case KindChannelPressure:
		p.count = 0
		msg := Message{
			Kind:     KindChannelPressure,
			Channel:  p.channel,
			Pressure: b,
		}
		return msg.Kind, msg

	case KindPitchBend:
		p.buffer[p.count] = b
		p.count++
		if p.count != 2 {
			break
		}
		p.count = 0
		msg := Message{
			Kind:      KindPitchBend,
			Channel:   p.channel,
			PitchBend: uint16(p.buffer[1])<<7 | uint16(p.buffer[0]),
		}
		return msg.Kind, msg

	case KindSystemExclusive:
		// SysEx payload is opaque to the parser and not retained. Only an
		// end of exclusive status byte closes the stream.
		return KindNone, Message{}

	case KindMTCQuarterFrame:
		p.kind = KindNone
		p.count = 0
		msg := Message{
			Kind:     KindMTCQuarterFrame,
			Channel:  ChannelNone,
			MTCType:  b >> 4,
			MTCValue: b & lsnMask,
		}
		return msg.Kind, msg

	case KindSongPositionPointer:
		p.buffer[p.count] = b
		p.count++
		if p.count != 2 {
			break
		}
		p.kind = KindNone
		p.count = 0
		msg := Message{
			Kind:         KindSongPositionPointer,
			Channel:      ChannelNone,
			SongPosition: uint16(p.buffer[1])<<7 | uint16(p.buffer[0]),
		}
		return msg.Kind, msg

	case KindSongSelect:
		p.kind = KindNone
		p.count = 0
		msg := Message{
			Kind:    KindSongSelect,
			Channel: ChannelNone,
			Song:    b,
		}
		return msg.Kind, msg

	default:
		// Data byte with no status to attach it to.
	}

	return KindNone, Message{}
}
