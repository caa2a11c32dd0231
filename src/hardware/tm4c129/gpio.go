package tm4c129

import "github.com/tinygo-org/tinygo/src/runtime/volatile"

// One AHB-aperture GPIO port. The first 0x400 bytes are the bit-masked data
// window; software that wants all eight pins uses the last word of it.
type GPIORegisterMap struct {
	DataMasked     [255]volatile.Register32 //0x000..0x3F8, address bits select pins
	Data           volatile.Register32      //0x3FC, all pins
	Direction      volatile.Register32      //0x400
	InterruptSense volatile.Register32      //0x404
	BothEdges      volatile.Register32      //0x408
	InterruptEvent volatile.Register32      //0x40C
	InterruptMask  volatile.Register32      //0x410
	RawStatus      volatile.Register32      //0x414
	MaskedStatus   volatile.Register32      //0x418
	InterruptClear volatile.Register32      //0x41C
	AltFuncSelect  volatile.Register32      //0x420
	reserved00     [55]volatile.Register32
	DriveSelect2mA volatile.Register32 //0x500
	DriveSelect4mA volatile.Register32 //0x504
	DriveSelect8mA volatile.Register32 //0x508
	OpenDrain      volatile.Register32 //0x50C
	PullUp         volatile.Register32 //0x510
	PullDown       volatile.Register32 //0x514
	SlewRate       volatile.Register32 //0x518
	DigitalEnable  volatile.Register32 //0x51C
	Lock           volatile.Register32 //0x520
	Commit         volatile.Register32 //0x524
	AnalogMode     volatile.Register32 //0x528
	PortControl    volatile.Register32 //0x52C
}

// pins PD4/PD5 carry U2RX/U2TX, port control function encoding 1 for each
const PinU2RX = 1 << 4
const PinU2TX = 1 << 5
const UART2Pins = PinU2RX | PinU2TX
const PortDUART2Function = 0x110000 //PCTL nibbles for PD4, PD5
