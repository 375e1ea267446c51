package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/inputd/joyd.go/pkg/joystick"
)

func main() {
	flag.Parse()

	changes := make(chan string, 16)
	js := joystick.New(func(id int, state joystick.State) {
		verb := "disconnected"
		if state == joystick.Connected {
			verb = "connected"
		}
		select {
		case changes <- fmt.Sprintf("slot %d %s", id, verb):
		default:
		}
	})
	if err := js.Init(); err != nil {
		log.Fatalln(err)
	}
	defer js.Shutdown()

	shell := ishell.New()
	shell.Println("joymon - joystick inspector")
	if !js.HotplugEnabled() {
		shell.Println("(hotplug notifications unavailable)")
	}

	shell.AddCmd(&ishell.Cmd{
		Name:    "ls",
		Aliases: []string{"list"},
		Help:    "list present devices",
		Func: func(c *ishell.Context) {
			for id := 0; id < joystick.MaxDevices; id++ {
				if !js.Present(id) {
					continue
				}
				name, _ := js.Name(id)
				c.Printf("%2d  %-32s axes=%d buttons=%d\n",
					id, name, len(js.Axes(id)), len(js.Buttons(id)))
			}
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "state",
		Help: "SLOT - dump axes and buttons",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: state SLOT"))
				return
			}
			id, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			if !js.Present(id) {
				c.Println("not present")
				return
			}
			c.Printf("axes:    %v\n", js.Axes(id))
			c.Printf("buttons: %v\n", js.Buttons(id))
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "watch",
		Help: "[SECONDS] - poll and print connection changes (default 10s)",
		Func: func(c *ishell.Context) {
			secs := 10
			if len(c.Args) > 0 {
				var err error
				if secs, err = strconv.Atoi(c.Args[0]); err != nil {
					c.Err(err)
					return
				}
			}
			deadline := time.Now().Add(time.Duration(secs) * time.Second)
			for time.Now().Before(deadline) {
				for id := 0; id < joystick.MaxDevices; id++ {
					js.Present(id)
				}
				for drained := false; !drained; {
					select {
					case line := <-changes:
						c.Println(line)
					default:
						drained = true
					}
				}
				time.Sleep(50 * time.Millisecond)
			}
		},
	})

	shell.Run()
}
