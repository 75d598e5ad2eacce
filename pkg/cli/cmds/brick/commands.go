// Package brick provides shell commands for brick operations.
package brick

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robokits/nxt.go/pkg/cli/sh"
	"github.com/robokits/nxt.go/pkg/nxt"
)

var (
	// ToneCmd plays a tone.
	ToneCmd = ishell.Cmd{
		Name:    "tone",
		Aliases: []string{"beep"},
		Help:    "FREQ(Hz) [DURATION(ms)]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("FREQ required"))
				return
			}
			freq, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("Invalid FREQ: %v", err))
				return
			}
			duration := 500
			if len(c.Args) > 1 {
				if duration, err = strconv.Atoi(c.Args[1]); err != nil {
					c.Err(fmt.Errorf("Invalid DURATION: %v", err))
					return
				}
			}
			if err = sh.ShellFrom(c).Brick.PlayTone(freq, duration); err != nil {
				c.Err(err)
			}
		}),
	}

	// BatteryCmd reads the battery level.
	BatteryCmd = ishell.Cmd{
		Name:    "battery",
		Aliases: []string{"bat"},
		Help:    "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			mv, err := s.Brick.BatteryLevel()
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				out, _ := json.Marshal(map[string]int{"battery_mv": mv})
				c.Println(string(out))
				return
			}
			c.Printf("%d mV\n", mv)
		}),
	}

	// SensorCmd samples the color sensor.
	SensorCmd = ishell.Cmd{
		Name:    "sensor",
		Aliases: []string{"s"},
		Help:    "PORT(1-4) [full|red|green|blue|none]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("PORT required"))
				return
			}
			n, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("Invalid PORT: %v", err))
				return
			}
			port, err := nxt.InputPortNumbered(n)
			if err != nil {
				c.Err(err)
				return
			}
			mode := nxt.ColorFull
			if len(c.Args) > 1 {
				if mode, err = nxt.ColorModeNamed(c.Args[1]); err != nil {
					c.Err(err)
					return
				}
			}
			s := sh.ShellFrom(c)
			reading, err := s.Brick.ReadColor(port, mode)
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				out, _ := json.Marshal(map[string]int{"reading": reading})
				c.Println(string(out))
				return
			}
			c.Printf("%d\n", reading)
		}),
	}

	// MotorCmd runs a motor.
	MotorCmd = ishell.Cmd{
		Name:    "motor",
		Aliases: []string{"m"},
		Help:    "PORT(a|b|c|all) POWER(-100..100)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("PORT and POWER required"))
				return
			}
			port, err := nxt.OutputPortNamed(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			power, err := strconv.Atoi(c.Args[1])
			if err != nil {
				c.Err(fmt.Errorf("Invalid POWER: %v", err))
				return
			}
			if err = sh.ShellFrom(c).Brick.RunMotor(port, power); err != nil {
				c.Err(err)
			}
		}),
	}

	// StopCmd stops a motor.
	StopCmd = ishell.Cmd{
		Name: "stop",
		Help: "PORT(a|b|c|all)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("PORT required"))
				return
			}
			port, err := nxt.OutputPortNamed(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			if err = sh.ShellFrom(c).Brick.StopMotor(port); err != nil {
				c.Err(err)
			}
		}),
	}

	// ResetCmd resets a motor tachometer.
	ResetCmd = ishell.Cmd{
		Name: "reset",
		Help: "PORT(a|b|c) [rel]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("PORT required"))
				return
			}
			port, err := nxt.OutputPortNamed(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			relative := len(c.Args) > 1 && c.Args[1] == "rel"
			if err = sh.ShellFrom(c).Brick.ResetMotorPosition(port, relative); err != nil {
				c.Err(err)
			}
		}),
	}
)

func init() {
	sh.AddCmds(
		&ToneCmd,
		&BatteryCmd,
		&SensorCmd,
		&MotorCmd,
		&StopCmd,
		&ResetCmd,
	)
}
