package tm4c129

import "github.com/tinygo-org/tinygo/src/runtime/volatile"

type UARTRegisterMap struct {
	Data            volatile.Register32 //0x00
	ReceiveStatus   volatile.Register32 //0x04, write clears errors
	reserved00      [4]volatile.Register32
	Flag            volatile.Register32 //0x18
	reserved01      volatile.Register32 //0x1C
	IrDALowPower    volatile.Register32 //0x20
	IntegerBaud     volatile.Register32 //0x24
	FractionalBaud  volatile.Register32 //0x28
	LineControl     volatile.Register32 //0x2C
	Control         volatile.Register32 //0x30
	FIFOLevelSelect volatile.Register32 //0x34
	InterruptMask   volatile.Register32 //0x38
	RawStatus       volatile.Register32 //0x3C, readonly
	MaskedStatus    volatile.Register32 //0x40, readonly
	InterruptClear  volatile.Register32 //0x44, write 1 to clear
	DMAControl      volatile.Register32 //0x48
}

// control register bitfields
const UARTEnable = 1 << 0
const UARTEndOfTransmission = 1 << 4
const UARTLoopback = 1 << 7
const UARTTransmitEnable = 1 << 8
const UARTReceiveEnable = 1 << 9

// line control register bitfields
const UARTSendBreak = 1 << 0
const UARTParityEnable = 1 << 1
const UARTEvenParity = 1 << 2
const UARTTwoStopBits = 1 << 3
const UARTEnableFIFOs = 1 << 4
const UARTWordLength8 = 3 << 5
const UARTWordLength7 = 2 << 5
const UARTWordLength6 = 1 << 5
const UARTWordLengthMask = 0x3 //use with register32.ReplaceBits, shift 5
const UARTWordLengthShift = 5

// dma control register bitfields
const UARTReceiveDMAEnable = 1 << 0
const UARTTransmitDMAEnable = 1 << 1
const UARTDMAOnError = 1 << 2

// interrupt mask/status/clear bitfields, one set of positions for
// all four registers
const UARTReceiveInterrupt = 1 << 4
const UARTTransmitInterrupt = 1 << 5
const UARTReceiveTimeoutInterrupt = 1 << 6
const UARTDMAReceiveDone = 1 << 16
const UARTDMATransmitDone = 1 << 17

// flag register bitfields
const UARTBusy = 1 << 3
const UARTReceiveFIFOEmpty = 1 << 4
const UARTTransmitFIFOFull = 1 << 5
