package tm4c129

import "github.com/tinygo-org/tinygo/src/runtime/volatile"

// Cortex-M interrupt controller, enable-set registers only. 32 interrupt
// lines per word.
type NVICRegisterMap struct {
	Enable [4]volatile.Register32 //0x100..0x10C from core peripheral base
}

// UART2 is interrupt number 33 on the TM4C1294: word 1, bit 1.
const UART2InterruptNumber = 33

// EnableInterrupt unmasks one line at the processor's controller.
func (n *NVICRegisterMap) EnableInterrupt(num int) {
	n.Enable[num/32].SetBits(1 << (uint(num) % 32))
}
