package trust

import (
	"fmt"
	"io"
)

type MaskLevel int

const (
	Nothing   MaskLevel = 0x0
	ErrorMask MaskLevel = 0x1
	WarnMask  MaskLevel = 0x2
	InfoMask  MaskLevel = 0x4
	DebugMask MaskLevel = 0x8
)

// Logger writes leveled messages to a sink. On the metal the sink is a
// polled UART writer; on a host it is any io.Writer. The zero value prints
// nothing, so construct with NewLogger.
type Logger struct {
	sink  io.Writer
	level MaskLevel
}

func NewLogger(sink io.Writer) *Logger {
	return &Logger{
		sink:  sink,
		level: ErrorMask | WarnMask | InfoMask | DebugMask,
	}
}

// SetLevel lets you set an error mask directly. You can pass in something like
// ErrorMask | DebugMask to control exactly what gets printed.  It returns the
// previous mask.
func (l *Logger) SetLevel(mask MaskLevel) MaskLevel {
	if mask&0xf == 0 {
		fmt.Fprintf(l.sink, " WARN: trust.SetLevel is turning off log messages\n")
	}
	result := Nothing
	switch {
	case mask&ErrorMask > 0:
		result |= ErrorMask
		fallthrough
	case mask&WarnMask > 0:
		result |= WarnMask
		fallthrough
	case mask&InfoMask > 0:
		result |= InfoMask
		fallthrough
	case mask&DebugMask > 0:
		result |= DebugMask
	}
	r := l.level
	l.level = result
	return r
}

func (l *Logger) Level() MaskLevel {
	return l.level
}

func (l *Logger) Sink() io.Writer {
	return l.sink
}

func (l *Logger) logf(lvl MaskLevel, format string, params ...interface{}) {
	if l.level&lvl == 0 {
		return
	}
	switch {
	case lvl&ErrorMask > 0:
		fmt.Fprintf(l.sink, "ERROR:")
	case lvl&WarnMask > 0:
		fmt.Fprintf(l.sink, " WARN:")
	case lvl&InfoMask > 0:
		fmt.Fprintf(l.sink, " INFO:")
	case lvl&DebugMask > 0:
		fmt.Fprintf(l.sink, "DEBUG:")
	}
	if len(format) == 0 {
		format = "\n"
	} else if format[len(format)-1] != '\n' {
		format += "\n"
	}
	fmt.Fprintf(l.sink, format, params...)
}

// Errorf prints the given log message (format + params) using the ErrorMask level.
func (l *Logger) Errorf(format string, params ...interface{}) {
	l.logf(ErrorMask, format, params...)
}

// Warnf prints the given log message (format + params) using the WarnMask level.
func (l *Logger) Warnf(format string, params ...interface{}) {
	l.logf(WarnMask, format, params...)
}

// Infof prints the given log message (format + params) using the InfoMask level.
func (l *Logger) Infof(format string, params ...interface{}) {
	l.logf(InfoMask, format, params...)
}

// Debugf prints the given log message (format + params) using the DebugMask level.
func (l *Logger) Debugf(format string, params ...interface{}) {
	l.logf(DebugMask, format, params...)
}
