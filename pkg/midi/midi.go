// Package midi decodes a raw stream of MIDI 1.0 bytes into typed messages.
//
// The stream is consumed one byte at a time through a Parser, which keeps
// running status across calls so that senders may omit repeated status bytes.
// See the MIDI 1.0 Detailed Specification, https://midi.org/midi-1-0-detailed-specification
package midi

const (
	msnMask     = 0xF0 // most significant nibble of a status byte
	lsnMask     = 0x0F
	channelMask = 0x0F
	statusMask  = 0x80
	maxDataByte = 0x7F

	bufferSize = 2
)

// Channel identifies a MIDI channel, 0 through 15.
// ChannelNone marks messages that carry no channel, and an unset
// active-channel filter.
type Channel uint8

const ChannelNone Channel = 0xFF

func (c Channel) IsNone() bool { return c == ChannelNone }

// Kind identifies a decoded message. The numeric values follow the wire
// encoding: channel voice kinds are the status high nibble, system kinds are
// the full status byte, and channel mode kinds are the controller number that
// selects them.
type Kind byte

const (
	// KindNone reports that no complete message has been decoded.
	KindNone Kind = 0x00

	// Channel voice messages.
	KindNoteOff         Kind = 0x80
	KindNoteOn          Kind = 0x90
	KindPolyKeyPressure Kind = 0xA0
	KindControlChange   Kind = 0xB0
	KindProgramChange   Kind = 0xC0
	KindChannelPressure Kind = 0xD0
	KindPitchBend       Kind = 0xE0

	// Channel mode messages. On the wire these are control changes with
	// controller numbers 120-127, but they decode as their own kinds.
	KindAllSoundOff         Kind = 0x78
	KindResetAllControllers Kind = 0x79
	KindLocalControl        Kind = 0x7A
	KindAllNotesOff         Kind = 0x7B
	KindOmniOff             Kind = 0x7C
	KindOmniOn              Kind = 0x7D
	KindMonoOn              Kind = 0x7E
	KindPolyOn              Kind = 0x7F

	// System exclusive.
	KindSystemExclusive Kind = 0xF0

	// System common messages.
	KindMTCQuarterFrame     Kind = 0xF1
	KindSongPositionPointer Kind = 0xF2
	KindSongSelect          Kind = 0xF3
	KindTuneRequest         Kind = 0xF6
	KindEndOfExclusive      Kind = 0xF7

	// System real-time messages.
	KindTimingClock Kind = 0xF8
	KindStart       Kind = 0xFA
	KindContinue    Kind = 0xFB
	KindStop        Kind = 0xFC
	KindActiveSense Kind = 0xFE
	KindSystemReset Kind = 0xFF
)

// IsChannelVoice reports whether k is a channel voice kind.
func (k Kind) IsChannelVoice() bool {
	return k >= KindNoteOff && k <= KindPitchBend
}

// IsChannelMode reports whether k is one of the eight channel mode kinds.
func (k Kind) IsChannelMode() bool {
	return k >= KindAllSoundOff && k <= KindPolyOn
}

// IsSystemRealTime reports whether k is a system real-time kind. Real-time
// bytes may appear anywhere in a stream, including inside another message.
func (k Kind) IsSystemRealTime() bool {
	switch k {
	case KindTimingClock, KindStart, KindContinue, KindStop, KindActiveSense, KindSystemReset:
		return true
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNoteOff:
		return "NoteOff"
	case KindNoteOn:
		return "NoteOn"
	case KindPolyKeyPressure:
		return "PolyKeyPressure"
	case KindControlChange:
		return "ControlChange"
	case KindProgramChange:
		return "ProgramChange"
	case KindChannelPressure:
		return "ChannelPressure"
	case KindPitchBend:
		return "PitchBend"
	case KindAllSoundOff:
		return "AllSoundOff"
	case KindResetAllControllers:
		return "ResetAllControllers"
	case KindLocalControl:
		return "LocalControl"
	case KindAllNotesOff:
		return "AllNotesOff"
	case KindOmniOff:
		return "OmniOff"
	case KindOmniOn:
		return "OmniOn"
	case KindMonoOn:
		return "MonoOn"
	case KindPolyOn:
		return "PolyOn"
	case KindSystemExclusive:
		return "SystemExclusive"
	case KindMTCQuarterFrame:
		return "MTCQuarterFrame"
	case KindSongPositionPointer:
		return "SongPositionPointer"
	case KindSongSelect:
		return "SongSelect"
	case KindTuneRequest:
		return "TuneRequest"
	case KindEndOfExclusive:
		return "EndOfExclusive"
	case KindTimingClock:
		return "TimingClock"
	case KindStart:
		return "Start"
	case KindContinue:
		return "Continue"
	case KindStop:
		return "Stop"
	case KindActiveSense:
		return "ActiveSense"
	case KindSystemReset:
		return "SystemReset"
	}
	return "Unknown"
}
