package tm4c129

import "github.com/tinygo-org/tinygo/src/runtime/volatile"

type DMARegisterMap struct {
	Status           volatile.Register32 //0x000, readonly
	Config           volatile.Register32 //0x004, writeonly
	ControlBase      volatile.Register32 //0x008
	AltControlBase   volatile.Register32 //0x00C, readonly
	WaitStatus       volatile.Register32 //0x010, readonly
	SoftwareRequest  volatile.Register32 //0x014
	UseBurstSet      volatile.Register32 //0x018
	UseBurstClear    volatile.Register32 //0x01C
	RequestMaskSet   volatile.Register32 //0x020
	RequestMaskClear volatile.Register32 //0x024
	EnableSet        volatile.Register32 //0x028
	EnableClear      volatile.Register32 //0x02C
	AltSelectSet     volatile.Register32 //0x030
	AltSelectClear   volatile.Register32 //0x034
	PrioritySet      volatile.Register32 //0x038
	PriorityClear    volatile.Register32 //0x03C
	reserved00       [3]volatile.Register32
	ErrorClear       volatile.Register32 //0x04C
	reserved01       [300]volatile.Register32
	ChannelAssign    volatile.Register32 //0x500
	reserved02       [3]volatile.Register32
	ChannelMap0      volatile.Register32 //0x510, channels 0..7
	ChannelMap1      volatile.Register32 //0x514, channels 8..15
	ChannelMap2      volatile.Register32 //0x518, channels 16..23
	ChannelMap3      volatile.Register32 //0x51C, channels 24..31
}

// config register
const DMAMasterEnable = 1 << 0

// channel numbers used by this board configuration; map encoding 1 selects
// UART2 on both
const DMAChannelUART2Receive = 0
const DMAChannelUART2Transmit = 1
const DMAChannelMapUART2 = 0x11 //encoding 1 in map fields of channels 0 and 1

// One hardware-read transfer descriptor. The engine indexes the control
// table by channel number at a fixed 4-word stride; the fourth word is
// unused but must be present.
type ChannelControl struct {
	SourceEnd      volatile.Register32
	DestinationEnd volatile.Register32
	Control        volatile.Register32
	reserved       uint32
}

// The primary control table covers all 32 channels even though only two are
// populated here. The engine requires the base address to be 1024-byte
// aligned; the linker places this array so that holds (matches the original
// firmware's whole-table allocation).
type ControlTable [32]ChannelControl

// transfer mode field values
const DMAModeStop = 0
const DMAModeBasic = 1
const DMAModeAuto = 2
const DMAModePingPong = 3

// increment field values, shared by source and destination
const DMAIncrementByte = 0
const DMAIncrementHalfWord = 1
const DMAIncrementWord = 2
const DMAIncrementNone = 3

// element size field values
const DMASizeByte = 0
const DMASizeHalfWord = 1
const DMASizeWord = 2

// arbitration field values, log2 of the elements moved per bus grant
const DMAArbitrate1 = 0
const DMAArbitrate2 = 1
const DMAArbitrate4 = 2
const DMAArbitrate8 = 3

const dmaModeShift = 0
const dmaUseBurstShift = 3
const dmaCountShift = 4
const dmaArbitrationShift = 14
const dmaSourceSizeShift = 24
const dmaSourceIncrementShift = 26
const dmaDestinationSizeShift = 28
const dmaDestinationIncrementShift = 30

// DMAChannelControlWord is the packed third word of a descriptor. Count is
// the number of elements to move; the hardware field holds count-1.
type DMAChannelControlWord struct {
	DestinationIncrement uint32
	DestinationSize      uint32
	SourceIncrement      uint32
	SourceSize           uint32
	Arbitration          uint32
	Count                int
	Mode                 uint32
}

func (w DMAChannelControlWord) Pack() uint32 {
	return w.DestinationIncrement<<dmaDestinationIncrementShift |
		w.DestinationSize<<dmaDestinationSizeShift |
		w.SourceIncrement<<dmaSourceIncrementShift |
		w.SourceSize<<dmaSourceSizeShift |
		w.Arbitration<<dmaArbitrationShift |
		uint32(w.Count-1)<<dmaCountShift |
		w.Mode<<dmaModeShift
}

// UnpackChannelControlWord reverses Pack for status inspection and tests.
func UnpackChannelControlWord(raw uint32) DMAChannelControlWord {
	return DMAChannelControlWord{
		DestinationIncrement: raw >> dmaDestinationIncrementShift & 0x3,
		DestinationSize:      raw >> dmaDestinationSizeShift & 0x3,
		SourceIncrement:      raw >> dmaSourceIncrementShift & 0x3,
		SourceSize:           raw >> dmaSourceSizeShift & 0x3,
		Arbitration:          raw >> dmaArbitrationShift & 0xF,
		Count:                int(raw>>dmaCountShift&0x3FF) + 1,
		Mode:                 raw >> dmaModeShift & 0x7,
	}
}
