//go:build tm4c129
// +build tm4c129

package tm4c129

import (
	"unsafe"
)

var SysCtl *SysCtlRegisterMap = (*SysCtlRegisterMap)(unsafe.Pointer(uintptr(0x400FE000)))
var UART2 *UARTRegisterMap = (*UARTRegisterMap)(unsafe.Pointer(uintptr(0x4000E000)))
var PortD *GPIORegisterMap = (*GPIORegisterMap)(unsafe.Pointer(uintptr(0x4005B000))) //AHB aperture
var DMA *DMARegisterMap = (*DMARegisterMap)(unsafe.Pointer(uintptr(0x400FF000)))
var NVIC *NVICRegisterMap = (*NVICRegisterMap)(unsafe.Pointer(uintptr(0xE000E100)))
