// Package monitor talks to a board running the one-shot uDMA exchange from
// the host side of the serial line. The board primes the line with a single
// '>', streams its fixed greeting, and then expects exactly one transfer's
// worth of bytes back before it reports completion over the same line.
package monitor

import (
	"fmt"
	"io"
	"strings"

	"tiva/src/drivers/uartdma"
	"tiva/src/lib/trust"
)

// ExchangeLength mirrors the element count the board's descriptors are
// built with. The receive channel over there completes after exactly this
// many bytes, so a short reply would leave it hanging forever.
const ExchangeLength = uartdma.TransferLength

const primeCharacter = '>'

type Session struct {
	port io.ReadWriter
	log  *trust.Logger
}

func NewSession(port io.ReadWriter, log *trust.Logger) *Session {
	return &Session{port: port, log: log}
}

// AwaitGreeting consumes the prime character and then the greeting the
// transmit channel pushes out. Anything before the prime is line noise from
// reset and is dropped.
func (s *Session) AwaitGreeting() (string, error) {
	one := make([]byte, 1)
	for {
		if _, err := io.ReadFull(s.port, one); err != nil {
			return "", fmt.Errorf("waiting for prime character: %v", err)
		}
		if one[0] == primeCharacter {
			break
		}
		s.log.Debugf("dropping pre-prime byte %#x", one[0])
	}
	greeting := make([]byte, ExchangeLength)
	if _, err := io.ReadFull(s.port, greeting); err != nil {
		return "", fmt.Errorf("reading greeting: %v", err)
	}
	return string(greeting), nil
}

// SendReply pushes the reply that completes the board's receive channel.
// The length is a hard requirement, not a preference; PadReply exists for
// callers with something shorter to say.
func (s *Session) SendReply(reply string) error {
	if len(reply) != ExchangeLength {
		return fmt.Errorf("reply must be exactly %d bytes, got %d", ExchangeLength, len(reply))
	}
	if _, err := io.WriteString(s.port, reply); err != nil {
		return fmt.Errorf("sending reply: %v", err)
	}
	return nil
}

// PadReply fits text into one transfer: shorter replies are filled out with
// dots the way the board's own greeting is, longer ones are refused.
func PadReply(text string) (string, error) {
	if len(text) > ExchangeLength {
		return "", fmt.Errorf("reply %q is longer than the %d-byte transfer", text, ExchangeLength)
	}
	return text + strings.Repeat(".", ExchangeLength-len(text)), nil
}

// RelayDiagnostics copies the board's completion messages to w until the
// line closes.
func (s *Session) RelayDiagnostics(w io.Writer) error {
	if _, err := io.Copy(w, s.port); err != nil {
		return fmt.Errorf("relaying diagnostics: %v", err)
	}
	return nil
}

// Run performs the whole exchange and hands the greeting to the caller
// before relaying whatever the board has to say about it.
func (s *Session) Run(reply string, diagnostics io.Writer) (string, error) {
	greeting, err := s.AwaitGreeting()
	if err != nil {
		return "", err
	}
	s.log.Infof("board says: %s", greeting)
	if err := s.SendReply(reply); err != nil {
		return greeting, err
	}
	if err := s.RelayDiagnostics(diagnostics); err != nil {
		return greeting, err
	}
	return greeting, nil
}
