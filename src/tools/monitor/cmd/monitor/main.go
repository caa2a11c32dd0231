package main

import (
	"fmt"
	"os"

	"tiva/src/lib/trust"
	"tiva/src/tools/monitor"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mattn/go-tty"
)

// Host-side counterpart of the board firmware: waits out the board's
// greeting, answers with one transfer's worth of bytes, and shows the
// completion messages the board's notifier emits. The device is expected to
// be configured for 115200 8N1 already (stty does fine).
var CLI struct {
	Device      string `arg:"" help:"Serial device connected to the board, e.g. /dev/ttyUSB0."`
	Reply       string `optional:"" default:"hello from the host" help:"Text to send back, padded to one transfer."`
	Interactive bool   `optional:"" help:"Type the reply on the terminal instead of using --reply."`
	Quiet       bool   `optional:"" help:"Only print the board's own output."`
}

func main() {
	kong.Parse(&CLI)
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}

func run() error {
	port, err := os.OpenFile(CLI.Device, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("opening %s: %v", CLI.Device, err)
	}
	defer port.Close()

	log := trust.NewLogger(os.Stderr)
	if CLI.Quiet {
		log.SetLevel(trust.ErrorMask)
	}
	session := monitor.NewSession(port, log)

	greeting, err := session.AwaitGreeting()
	if err != nil {
		return err
	}
	fmt.Println(color.GreenString("board: %s", greeting))

	text := CLI.Reply
	if CLI.Interactive {
		if text, err = promptForReply(); err != nil {
			return err
		}
	}
	reply, err := monitor.PadReply(text)
	if err != nil {
		return err
	}
	if err := session.SendReply(reply); err != nil {
		return err
	}
	fmt.Println(color.YellowString("sent : %s", reply))

	return session.RelayDiagnostics(os.Stdout)
}

func promptForReply() (string, error) {
	t, err := tty.Open()
	if err != nil {
		return "", fmt.Errorf("opening terminal: %v", err)
	}
	defer t.Close()
	fmt.Printf("reply (max %d bytes)> ", monitor.ExchangeLength)
	line, err := t.ReadString()
	if err != nil {
		return "", fmt.Errorf("reading reply: %v", err)
	}
	return line, nil
}
