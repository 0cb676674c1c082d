// Command tello-shell is a minimal interactive line-at-a-time driver for a
// single Tello: connect, type commands, see the drone's raw replies.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/SMerrony/tello"
)

func main() {
	ip := flag.String("ip", "", "drone IPv4 address (default 192.168.10.1)")
	flag.Parse()

	var d *tello.Drone
	var err error
	if *ip == "" {
		d, err = tello.NewDefaultDrone()
	} else {
		d, err = tello.NewDrone(*ip)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not set up drone:", err)
		os.Exit(1)
	}
	defer d.End()

	if err := d.Connect(true); err != nil {
		fmt.Fprintln(os.Stderr, "connect failed:", err)
		os.Exit(1)
	}
	fmt.Println("connected. type commands (takeoff, land, up 50, battery?, quit)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if err := dispatch(d, line); err != nil {
			fmt.Println("error:", err)
		}
	}
}

// dispatch maps a handful of common shell commands onto typed Drone calls;
// any other input is reported as unrecognized and nothing is sent to the
// drone.
func dispatch(d *tello.Drone, line string) error {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "takeoff":
		return d.TakeOff()
	case "land":
		return d.Land()
	case "emergency":
		return d.Emergency()
	case "stop":
		return d.Stop()
	case "up", "down", "left", "right", "forward", "back":
		cm, err := intArg(args, 0)
		if err != nil {
			return err
		}
		switch cmd {
		case "up":
			return d.MoveUp(cm)
		case "down":
			return d.MoveDown(cm)
		case "left":
			return d.MoveLeft(cm)
		case "right":
			return d.MoveRight(cm)
		case "forward":
			return d.MoveForward(cm)
		case "back":
			return d.MoveBack(cm)
		}
	case "cw", "ccw":
		deg, err := intArg(args, 0)
		if err != nil {
			return err
		}
		if cmd == "cw" {
			return d.RotateClockwise(deg)
		}
		return d.RotateCounterClockwise(deg)
	case "battery?":
		bat, err := d.QueryBattery()
		if err != nil {
			return err
		}
		fmt.Println(bat)
		return nil
	case "state":
		for k, v := range d.State() {
			fmt.Printf("%s=%v\n", k, v)
		}
		return nil
	default:
		fmt.Println("(unrecognized shortcut, not sent)")
		return nil
	}
	return nil
}

func intArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing numeric argument")
	}
	return strconv.Atoi(args[i])
}
