// Package sh provides the interactive brick shell.
package sh

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robokits/nxt.go/pkg/comm/serial"
	"github.com/robokits/nxt.go/pkg/nxt"
)

// Shell provides ishell backed interactive shell around one brick link.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell *ishell.Shell
	Brick *nxt.Brick

	closer io.Closer
}

const (
	shellKey       = "$shell"
	unopenedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool
	device     string
	baudRate   int

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&CloseCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
	flag.StringVar(&device, "device", device, "Serial device to open on start.")
	flag.IntVar(&baudRate, "baud", baudRate, "Baud rate of the serial device.")
}

// AddCmds is used by other command providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New() *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell: ishell.New(),
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unopenedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeOpen wraps command funcs requiring an open brick link.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Brick == nil {
			c.Err(fmt.Errorf("no brick link open"))
			return
		}
		fn(c)
	}
}

// Open opens a brick link over a serial device.
func (s *Shell) Open(device string, baudRate int) error {
	conn, err := serial.Dial(device, baudRate)
	if err != nil {
		return err
	}
	s.Close()
	s.Brick, s.closer = nxt.NewBrick(conn), conn
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", device))
	return nil
}

// Close closes the current brick link.
func (s *Shell) Close() {
	if s.closer != nil {
		s.closer.Close()
		s.Brick, s.closer = nil, nil
		s.Shell.SetPrompt(unopenedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if device != "" {
		if s.Interactive {
			s.Shell.Printf("Opening %s ...\n", device)
		}
		if err := s.Open(device, baudRate); err != nil {
			log.Fatalf("open %q failed: %v", device, err)
		}
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// OpenCmd opens a brick link.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "DEVICE [BAUD]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("device expected"))
				return
			}
			baud := 0
			if len(c.Args) > 1 {
				var err error
				if baud, err = strconv.Atoi(c.Args[1]); err != nil {
					c.Err(err)
					return
				}
			}
			if err := ShellFrom(c).Open(c.Args[0], baud); err != nil {
				c.Err(err)
			}
		},
	}

	// CloseCmd closes the current brick link.
	CloseCmd = ishell.Cmd{
		Name: "close",
		Help: "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Close()
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New().Run(flag.Args()...)
}
