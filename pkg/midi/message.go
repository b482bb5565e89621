package midi

import "fmt"

// Controller is a control change controller number, 0-127.
type Controller byte

// Commonly used controller numbers. Controllers 120-127 are reserved for
// channel mode messages; control changes carrying them decode as the
// corresponding channel mode Kind.
const (
	ControllerBankSelect     Controller = 0x00
	ControllerModWheel       Controller = 0x01
	ControllerBreath         Controller = 0x02
	ControllerFootController Controller = 0x04
	ControllerPortamentoTime Controller = 0x05
	ControllerDataEntryMSB   Controller = 0x06
	ControllerChannelVolume  Controller = 0x07
	ControllerBalance        Controller = 0x08
	ControllerPan            Controller = 0x0A
	ControllerExpression     Controller = 0x0B
	ControllerBankSelectLSB  Controller = 0x20
	ControllerDataEntryLSB   Controller = 0x26
	ControllerSustainPedal   Controller = 0x40
	ControllerPortamento     Controller = 0x41
	ControllerSostenuto      Controller = 0x42
	ControllerSoftPedal      Controller = 0x43
	ControllerLegato         Controller = 0x44
	ControllerHold2          Controller = 0x45
	ControllerDataIncrement  Controller = 0x60
	ControllerDataDecrement  Controller = 0x61
	ControllerNRPNLSB        Controller = 0x62
	ControllerNRPNMSB        Controller = 0x63
	ControllerRPNLSB         Controller = 0x64
	ControllerRPNMSB         Controller = 0x65

	ControllerAllSoundOff         Controller = 0x78
	ControllerResetAllControllers Controller = 0x79
	ControllerLocalControl        Controller = 0x7A
	ControllerAllNotesOff         Controller = 0x7B
	ControllerOmniOff             Controller = 0x7C
	ControllerOmniOn              Controller = 0x7D
	ControllerMonoOn              Controller = 0x7E
	ControllerPolyOn              Controller = 0x7F
)

// Message is one decoded MIDI message. Kind selects which payload fields are
// meaningful; the rest are left zero. Channel is ChannelNone for system
// messages.
type Message struct {
	Kind    Kind
	Channel Channel

	// Note on, note off.
	Note     uint8
	Velocity uint8

	// Polyphonic key pressure.
	Key         uint8
	KeyPressure uint8

	// Control change and channel mode messages.
	Controller Controller
	Value      uint8

	// Program change.
	Program uint8

	// Channel pressure.
	Pressure uint8

	// Pitch bend, 14 bit, center at 0x2000.
	PitchBend uint16

	// Song position pointer, 14 bit, in MIDI beats.
	SongPosition uint16

	// Song select.
	Song uint8

	// MTC quarter frame, split into the 4-bit piece type and value.
	MTCType  uint8
	MTCValue uint8
}

func (m Message) String() string {
	switch m.Kind {
	case KindNoteOff, KindNoteOn:
		return fmt.Sprintf("%s ch=%d note=%d velocity=%d", m.Kind, m.Channel, m.Note, m.Velocity)
	case KindPolyKeyPressure:
		return fmt.Sprintf("%s ch=%d key=%d pressure=%d", m.Kind, m.Channel, m.Key, m.KeyPressure)
	case KindControlChange:
		return fmt.Sprintf("%s ch=%d controller=%d value=%d", m.Kind, m.Channel, m.Controller, m.Value)
	case KindAllSoundOff, KindResetAllControllers, KindLocalControl, KindAllNotesOff,
		KindOmniOff, KindOmniOn, KindMonoOn, KindPolyOn:
		return fmt.Sprintf("%s ch=%d value=%d", m.Kind, m.Channel, m.Value)
	case KindProgramChange:
		return fmt.Sprintf("%s ch=%d program=%d", m.Kind, m.Channel, m.Program)
	case KindChannelPressure:
		return fmt.Sprintf("%s ch=%d pressure=%d", m.Kind, m.Channel, m.Pressure)
	case KindPitchBend:
		return fmt.Sprintf("%s ch=%d bend=%d", m.Kind, m.Channel, m.PitchBend)
	case KindMTCQuarterFrame:
		return fmt.Sprintf("%s type=%d value=%d", m.Kind, m.MTCType, m.MTCValue)
	case KindSongPositionPointer:
		return fmt.Sprintf("%s position=%d", m.Kind, m.SongPosition)
	case KindSongSelect:
		return fmt.Sprintf("%s song=%d", m.Kind, m.Song)
	}
	return m.Kind.String()
}
