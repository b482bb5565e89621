package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "None", KindNone.String())
	assert.Equal(t, "NoteOn", KindNoteOn.String())
	assert.Equal(t, "AllNotesOff", KindAllNotesOff.String())
	assert.Equal(t, "EndOfExclusive", KindEndOfExclusive.String())
	assert.Equal(t, "SystemReset", KindSystemReset.String())
	assert.Equal(t, "Unknown", Kind(0x42).String())
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, KindNoteOff.IsChannelVoice())
	assert.True(t, KindPitchBend.IsChannelVoice())
	assert.False(t, KindSystemExclusive.IsChannelVoice())
	assert.False(t, KindAllSoundOff.IsChannelVoice())

	assert.True(t, KindAllSoundOff.IsChannelMode())
	assert.True(t, KindPolyOn.IsChannelMode())
	assert.False(t, KindControlChange.IsChannelMode())

	assert.True(t, KindTimingClock.IsSystemRealTime())
	assert.True(t, KindSystemReset.IsSystemRealTime())
	assert.False(t, KindEndOfExclusive.IsSystemRealTime())
	assert.False(t, KindNoteOn.IsSystemRealTime())
}

func TestMessageString(t *testing.T) {
	msg := Message{Kind: KindNoteOn, Channel: 2, Note: 60, Velocity: 100}
	assert.Equal(t, "NoteOn ch=2 note=60 velocity=100", msg.String())

	msg = Message{Kind: KindControlChange, Channel: 0, Controller: ControllerModWheel, Value: 64}
	assert.Equal(t, "ControlChange ch=0 controller=1 value=64", msg.String())

	msg = Message{Kind: KindAllNotesOff, Channel: 9, Controller: ControllerAllNotesOff}
	assert.Equal(t, "AllNotesOff ch=9 value=0", msg.String())

	msg = Message{Kind: KindMTCQuarterFrame, Channel: ChannelNone, MTCType: 3, MTCValue: 9}
	assert.Equal(t, "MTCQuarterFrame type=3 value=9", msg.String())

	msg = Message{Kind: KindTimingClock, Channel: ChannelNone}
	assert.Equal(t, "TimingClock", msg.String())
}
