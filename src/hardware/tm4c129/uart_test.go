package tm4c129

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The line control value used at bring-up, decoded back to its semantic
// parts: 8 data bits, FIFOs on, one stop bit, no parity, no break.
func TestLineControlDecodesToEightN1(t *testing.T) {
	const lcrh = uint32(UARTWordLength8 | UARTEnableFIFOs)

	assert.Equal(t, uint32(0x70), lcrh, "must match the value the data sheet example uses")
	assert.Equal(t, uint32(3), lcrh>>UARTWordLengthShift&UARTWordLengthMask, "word length field encodes 8 bits")
	assert.NotZero(t, lcrh&UARTEnableFIFOs)
	assert.Zero(t, lcrh&UARTTwoStopBits, "one stop bit")
	assert.Zero(t, lcrh&UARTParityEnable, "no parity")
	assert.Zero(t, lcrh&UARTSendBreak, "no break")
}

func TestInterruptBitsShareOnePositionSet(t *testing.T) {
	// mask, raw, masked and clear registers all use the same positions
	assert.Equal(t, uint32(1<<16), uint32(UARTDMAReceiveDone))
	assert.Equal(t, uint32(1<<17), uint32(UARTDMATransmitDone))
	assert.Equal(t, uint32(0x30030),
		uint32(UARTDMAReceiveDone|UARTDMATransmitDone|UARTReceiveInterrupt|UARTTransmitInterrupt))
}
