package tm4c129

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The two packed words the original firmware programs for the UART2
// channels. Byte elements both sides, bursts of 4, 32 elements, auto mode;
// the fixed side of each channel is the peripheral data register.
const receiveControlWord = 0x0C0081F2
const transmitControlWord = 0xC00081F2

func TestPackMatchesFirmwareReceiveWord(t *testing.T) {
	w := DMAChannelControlWord{
		DestinationIncrement: DMAIncrementByte,
		DestinationSize:      DMASizeByte,
		SourceIncrement:      DMAIncrementNone,
		SourceSize:           DMASizeByte,
		Arbitration:          DMAArbitrate4,
		Count:                32,
		Mode:                 DMAModeAuto,
	}
	assert.Equal(t, uint32(receiveControlWord), w.Pack())
}

func TestPackMatchesFirmwareTransmitWord(t *testing.T) {
	w := DMAChannelControlWord{
		DestinationIncrement: DMAIncrementNone,
		DestinationSize:      DMASizeByte,
		SourceIncrement:      DMAIncrementByte,
		SourceSize:           DMASizeByte,
		Arbitration:          DMAArbitrate4,
		Count:                32,
		Mode:                 DMAModeAuto,
	}
	assert.Equal(t, uint32(transmitControlWord), w.Pack())
}

func TestUnpackRecoversEveryField(t *testing.T) {
	w := UnpackChannelControlWord(receiveControlWord)
	assert.Equal(t, uint32(DMAIncrementByte), w.DestinationIncrement)
	assert.Equal(t, uint32(DMAIncrementNone), w.SourceIncrement)
	assert.Equal(t, uint32(DMASizeByte), w.DestinationSize)
	assert.Equal(t, uint32(DMASizeByte), w.SourceSize)
	assert.Equal(t, uint32(DMAArbitrate4), w.Arbitration)
	assert.Equal(t, 32, w.Count)
	assert.Equal(t, uint32(DMAModeAuto), w.Mode)
}

func TestCountFieldHoldsCountMinusOne(t *testing.T) {
	for _, count := range []int{1, 32, 1024} {
		w := DMAChannelControlWord{Count: count, Mode: DMAModeAuto}
		field := w.Pack() >> 4 & 0x3FF
		require.Equal(t, uint32(count-1), field, "count %d", count)
		assert.Equal(t, count, UnpackChannelControlWord(w.Pack()).Count)
	}
}

func TestArbitrationFieldIsLogTwo(t *testing.T) {
	w := DMAChannelControlWord{Arbitration: DMAArbitrate4, Count: 1}
	assert.Equal(t, uint32(2), w.Pack()>>14&0xF, "4-element bursts encode as 2")
}
