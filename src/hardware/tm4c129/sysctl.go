package tm4c129

import "github.com/tinygo-org/tinygo/src/runtime/volatile"

// System control block. Only the run-mode clock gates and the matching
// peripheral-ready registers are named; everything in between is padding so
// the named fields land on their data sheet offsets.
type SysCtlRegisterMap struct {
	reserved00 [386]volatile.Register32
	RCGCGPIO   volatile.Register32 //0x608
	RCGCDMA    volatile.Register32 //0x60C
	reserved01 volatile.Register32 //0x610
	RCGCHIB    volatile.Register32 //0x614
	RCGCUART   volatile.Register32 //0x618
	reserved02 [251]volatile.Register32
	PRGPIO     volatile.Register32 //0xA08
	PRDMA      volatile.Register32 //0xA0C
	reserved03 volatile.Register32 //0xA10
	PRHIB      volatile.Register32 //0xA14
	PRUART     volatile.Register32 //0xA18
}

// clock gate / ready bits, one per instance
const SysCtlGPIOPortA = 1 << 0
const SysCtlGPIOPortB = 1 << 1
const SysCtlGPIOPortC = 1 << 2
const SysCtlGPIOPortD = 1 << 3
const SysCtlGPIOPortE = 1 << 4

const SysCtlUART0 = 1 << 0
const SysCtlUART1 = 1 << 1
const SysCtlUART2 = 1 << 2

const SysCtlDMA = 1 << 0
