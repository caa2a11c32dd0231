package uartdma

import (
	"unsafe"

	"tiva/src/hardware/tm4c129"
	"tiva/src/lib/trust"

	"github.com/tinygo-org/tinygo/src/runtime/volatile"
)

// TransferLength is the number of bytes moved in each direction by one
// armed transfer. The receive buffer keeps one extra slot so the payload can
// be terminated in place when the completion interrupt arrives.
const TransferLength = 32
const receiveCapacity = TransferLength + 1

// 115200 baud from the 16MHz clock: 16e6/(16*115200) = 8.6805, fractional
// part in 1/64ths
const integerBaudDivisor = 8
const fractionalBaudDivisor = 44

// Message is what the transmit channel pushes out once armed.
const Message = "Send more message if you can...."

type Direction int

const (
	Receive Direction = iota
	Transmit
)

func (d Direction) String() string {
	if d == Receive {
		return "receive"
	}
	return "transmit"
}

// ChannelState tracks the one-shot life of a DMA channel. There is no
// implicit looping: a Completed channel stays idle until Rearm.
type ChannelState int

const (
	Unarmed ChannelState = iota
	Armed
	Completed
)

func (s ChannelState) String() string {
	switch s {
	case Unarmed:
		return "unarmed"
	case Armed:
		return "armed"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// RegisterSet collects the register blocks the driver touches. On hardware
// these are the tm4c129 package's fixed bindings; tests hand in maps
// allocated in ordinary memory.
type RegisterSet struct {
	SysCtl *tm4c129.SysCtlRegisterMap
	UART   *tm4c129.UARTRegisterMap
	Port   *tm4c129.GPIORegisterMap
	DMA    *tm4c129.DMARegisterMap
	NVIC   *tm4c129.NVICRegisterMap
}

// Transceiver is UART2 plus the two uDMA channels that service it. It owns
// the control table and the transfer buffers for the life of the process.
type Transceiver struct {
	regs    RegisterSet
	table   *tm4c129.ControlTable
	log     *trust.Logger
	rxBuf   [receiveCapacity]byte
	payload [receiveCapacity]byte //Message plus its terminator
	state   [2]ChannelState
}

func NewTransceiver(regs RegisterSet, table *tm4c129.ControlTable, log *trust.Logger) *Transceiver {
	t := &Transceiver{
		regs:  regs,
		table: table,
		log:   log,
	}
	copy(t.payload[:], Message)
	return t
}

// Configure runs the whole bring-up in the order the hardware requires:
// peripheral and pins first, then the descriptor table, and only then the
// engine, so no request can arrive before its descriptor is fully written.
func (t *Transceiver) Configure() {
	t.ConfigureTransceiver()
	t.ConfigurePins()
	t.PopulateDescriptors()
	t.ConfigureEngine()
}

// ConfigureTransceiver clocks UART2, programs 115200 8N1 with FIFOs, makes
// the UART a request source for both uDMA directions, and unmasks the
// completion interrupts. The baud and line registers are only written while
// the enable bit is clear; the hardware ignores them otherwise.
func (t *Transceiver) ConfigureTransceiver() {
	t.regs.SysCtl.RCGCUART.SetBits(tm4c129.SysCtlUART2)
	for !t.regs.SysCtl.PRUART.HasBits(tm4c129.SysCtlUART2) {
	}

	t.regs.UART.Control.ClearBits(tm4c129.UARTEnable)
	t.regs.UART.IntegerBaud.Set(integerBaudDivisor)
	t.regs.UART.FractionalBaud.Set(fractionalBaudDivisor)
	//8 data bits, FIFOs on, one stop bit, no parity, no break
	t.regs.UART.LineControl.Set(tm4c129.UARTWordLength8 | tm4c129.UARTEnableFIFOs)
	t.regs.UART.DMAControl.SetBits(tm4c129.UARTReceiveDMAEnable | tm4c129.UARTTransmitDMAEnable)

	t.regs.UART.InterruptMask.SetBits(tm4c129.UARTDMAReceiveDone | tm4c129.UARTDMATransmitDone |
		tm4c129.UARTReceiveInterrupt | tm4c129.UARTTransmitInterrupt)
	t.regs.NVIC.EnableInterrupt(tm4c129.UART2InterruptNumber)

	t.regs.UART.Control.SetBits(tm4c129.UARTEnable | tm4c129.UARTReceiveEnable | tm4c129.UARTTransmitEnable)
}

// ConfigurePins clocks port D and routes PD4/PD5 to UART2.
func (t *Transceiver) ConfigurePins() {
	t.regs.SysCtl.RCGCGPIO.SetBits(tm4c129.SysCtlGPIOPortD)
	for !t.regs.SysCtl.PRGPIO.HasBits(tm4c129.SysCtlGPIOPortD) {
	}
	t.regs.Port.DigitalEnable.SetBits(tm4c129.UART2Pins)
	t.regs.Port.AltFuncSelect.SetBits(tm4c129.UART2Pins)
	t.regs.Port.PortControl.SetBits(tm4c129.PortDUART2Function)
}

// PopulateDescriptors writes both channel descriptors. The engine expects
// the address of the LAST element on any incrementing side: it counts down
// from the element count while walking a work pointer that must equal this
// address at completion. The fixed side is always the UART data register.
func (t *Transceiver) PopulateDescriptors() {
	t.populateDescriptor(Receive)
	t.populateDescriptor(Transmit)
}

func (t *Transceiver) populateDescriptor(d Direction) {
	if d == Receive {
		rx := &t.table[tm4c129.DMAChannelUART2Receive]
		rx.SourceEnd.Set(registerAddress(&t.regs.UART.Data))
		rx.DestinationEnd.Set(bufferEnd(t.rxBuf[:TransferLength]))
		rx.Control.Set(tm4c129.DMAChannelControlWord{
			DestinationIncrement: tm4c129.DMAIncrementByte,
			DestinationSize:      tm4c129.DMASizeByte,
			SourceIncrement:      tm4c129.DMAIncrementNone,
			SourceSize:           tm4c129.DMASizeByte,
			Arbitration:          tm4c129.DMAArbitrate4,
			Count:                TransferLength,
			Mode:                 tm4c129.DMAModeAuto,
		}.Pack())
		return
	}

	tx := &t.table[tm4c129.DMAChannelUART2Transmit]
	tx.SourceEnd.Set(bufferEnd(t.payload[:TransferLength]))
	tx.DestinationEnd.Set(registerAddress(&t.regs.UART.Data))
	tx.Control.Set(tm4c129.DMAChannelControlWord{
		DestinationIncrement: tm4c129.DMAIncrementNone,
		DestinationSize:      tm4c129.DMASizeByte,
		SourceIncrement:      tm4c129.DMAIncrementByte,
		SourceSize:           tm4c129.DMASizeByte,
		Arbitration:          tm4c129.DMAArbitrate4,
		Count:                TransferLength,
		Mode:                 tm4c129.DMAModeAuto,
	}.Pack())
}

// ConfigureEngine clocks the uDMA controller, selects primary descriptors
// and burst requests for both channels, maps them to the UART2 request
// lines, registers the table, and arms them. After this returns the engine
// runs the transfers on its own.
func (t *Transceiver) ConfigureEngine() {
	t.regs.SysCtl.RCGCDMA.SetBits(tm4c129.SysCtlDMA)
	for !t.regs.SysCtl.PRDMA.HasBits(tm4c129.SysCtlDMA) {
	}
	t.regs.DMA.Config.SetBits(tm4c129.DMAMasterEnable)
	t.regs.DMA.AltSelectClear.SetBits(bothChannels)
	t.regs.DMA.UseBurstClear.SetBits(bothChannels)
	t.regs.DMA.RequestMaskClear.SetBits(bothChannels)
	t.regs.DMA.ChannelMap0.SetBits(tm4c129.DMAChannelMapUART2)
	t.regs.DMA.ControlBase.Set(registerAddress(&t.table[0].SourceEnd))
	t.regs.DMA.EnableSet.Set(bothChannels)
	t.state[Receive] = Armed
	t.state[Transmit] = Armed
}

const bothChannels = 1<<tm4c129.DMAChannelUART2Receive | 1<<tm4c129.DMAChannelUART2Transmit

// Prime pushes one character into the transmit FIFO by hand. Draining it
// raises the first transmit request and starts the armed outbound transfer.
func (t *Transceiver) Prime() {
	t.regs.UART.Data.Set('>')
}

// Rearm makes one direction ready for another one-shot transfer. Auto-mode
// descriptors are consumed by the hardware, so the descriptor is rewritten
// before the channel enable bit is set again. Rearming an Armed channel is
// a no-op.
func (t *Transceiver) Rearm(d Direction) {
	if t.state[d] == Armed {
		return
	}
	t.populateDescriptor(d)
	t.regs.DMA.EnableSet.Set(1 << channelNumber(d))
	t.state[d] = Armed
}

func channelNumber(d Direction) uint {
	if d == Receive {
		return tm4c129.DMAChannelUART2Receive
	}
	return tm4c129.DMAChannelUART2Transmit
}

// State reports where one direction is in its one-shot life.
func (t *Transceiver) State(d Direction) ChannelState {
	return t.state[d]
}

// Received is the landing zone for inbound bytes. Callers must not look at
// it before State(Receive) == Completed; the completion bit is the only
// synchronization against the engine's writes.
func (t *Transceiver) Received() []byte {
	return t.rxBuf[:TransferLength]
}

// Descriptor words are 32 bits wide, matching the bus width of the target.
// Host tests run wider but only ever compare values produced by this same
// truncation.
func registerAddress(r *volatile.Register32) uint32 {
	return uint32(uintptr(unsafe.Pointer(r)))
}

func bufferEnd(b []byte) uint32 {
	return uint32(uintptr(unsafe.Pointer(&b[len(b)-1])))
}
