package uartdma

import (
	"bytes"

	"tiva/src/hardware/tm4c129"
)

// HandleInterrupt services the shared UART2 interrupt line. The masked
// status register says which of the two DMA completions fired; both can be
// up at once, so each is tested unconditionally and acknowledged on its
// own. Acknowledgment is write-one-to-clear: reading the cause register
// changes nothing, and writing the bit for one cause leaves the other
// pending. Any other source on this line is not ours and stays untouched.
func (t *Transceiver) HandleInterrupt() {
	cause := t.regs.UART.MaskedStatus.Get()

	if cause&tm4c129.UARTDMAReceiveDone != 0 {
		t.regs.UART.InterruptClear.Set(tm4c129.UARTDMAReceiveDone)
		t.state[Receive] = Completed
		t.rxBuf[TransferLength] = 0
		t.log.Infof("DMA receive is done...")
		t.log.Infof("Payload: %s", terminated(t.rxBuf[:]))
	}

	if cause&tm4c129.UARTDMATransmitDone != 0 {
		t.regs.UART.InterruptClear.Set(tm4c129.UARTDMATransmitDone)
		t.state[Transmit] = Completed
		t.log.Infof("DMA transfer is done...")
	}
}

// terminated clips a buffer at its first zero byte, the boundary
// HandleInterrupt forces after a completed receive.
func terminated(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}
