//go:build tm4c129
// +build tm4c129

package main

import (
	"tiva/src/drivers/uartdma"
	"tiva/src/hardware/tm4c129"
	"tiva/src/lib/trust"
)

var xcvr *uartdma.Transceiver
var table tm4c129.ControlTable

func main() {
	regs := uartdma.RegisterSet{
		SysCtl: tm4c129.SysCtl,
		UART:   tm4c129.UART2,
		Port:   tm4c129.PortD,
		DMA:    tm4c129.DMA,
		NVIC:   tm4c129.NVIC,
	}
	log := trust.NewLogger(&uartWriter{uart: tm4c129.UART2})
	xcvr = uartdma.NewTransceiver(regs, &table, log)

	xcvr.Configure()
	xcvr.Prime()

	//the engine does the rest; both completions arrive on the UART2 line
	for {
	}
}

//go:export UART2_Handler
func uart2Handler() {
	xcvr.HandleInterrupt()
}

// uartWriter is the diagnostic sink on the metal: polled writes out the
// same UART the transfers use. Diagnostics only happen after a completion,
// so they never race the engine for the FIFO.
type uartWriter struct {
	uart *tm4c129.UARTRegisterMap
}

func (w *uartWriter) Write(p []byte) (int, error) {
	for _, c := range p {
		for w.uart.Flag.HasBits(tm4c129.UARTTransmitFIFOFull) {
		}
		w.uart.Data.Set(uint32(c))
	}
	return len(p), nil
}
