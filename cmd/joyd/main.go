package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/denisbrodbeck/machineid"

	"github.com/inputd/joyd.go/pkg/framework"
	"github.com/inputd/joyd.go/pkg/joystick"
	"github.com/inputd/joyd.go/pkg/joystick/msgs"
	"github.com/inputd/joyd.go/pkg/pub/mqtt"
)

var (
	interval = flag.Duration("interval", 50*time.Millisecond, "Polling interval.")
	verbose  = flag.Bool("verbose", false, "Publish a state snapshot for every present device each interval.")
)

func init() {
	mqtt.SetupFlags()
}

func main() {
	flag.Parse()

	machine, err := machineid.ID()
	if err != nil {
		log.Fatalln(err)
	}
	pub, err := mqtt.NewConfig().NewPublisher("joyd-" + machine)
	if err != nil {
		log.Fatalln(err)
	}
	defer pub.Close()

	p := &poller{pub: pub, machine: machine, interval: *interval, verbose: *verbose}
	p.js = joystick.New(p.changed)
	if err := p.js.Init(); err != nil {
		log.Fatalln(err)
	}
	defer p.js.Shutdown()
	if !p.js.HotplugEnabled() {
		log.Println("hotplug notifications unavailable, initial scan only")
	}

	runner := framework.NewRunner().HandleSignals()
	runner.Go(framework.NamedRun("poller", p))
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}

type poller struct {
	js       *joystick.Joysticks
	pub      *mqtt.Publisher
	machine  string
	interval time.Duration
	verbose  bool
	cache    stateCache
}

// stateCache remembers the last published state per slot so the
// poller only publishes snapshots that differ, unless verbose forces
// one every interval.
type stateCache struct {
	present [joystick.MaxDevices]bool
	axes    [joystick.MaxDevices][]float32
	buttons [joystick.MaxDevices][]joystick.ButtonState
}

func (c *stateCache) clear(id int) {
	c.present[id] = false
	c.axes[id] = nil
	c.buttons[id] = nil
}

// update records the current state of a slot and reports whether it
// differs from the last recorded one. A slot seen for the first time
// since (re)connecting always counts as changed.
func (c *stateCache) update(id int, axes []float32, buttons []joystick.ButtonState) bool {
	changed := !c.present[id] ||
		!slices.Equal(c.axes[id], axes) ||
		!slices.Equal(c.buttons[id], buttons)
	if changed {
		c.present[id] = true
		c.axes[id] = append(c.axes[id][:0], axes...)
		c.buttons[id] = append(c.buttons[id][:0], buttons...)
	}
	return changed
}

// Run implements Runnable.
func (p *poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *poller) tick() {
	for id := 0; id < joystick.MaxDevices; id++ {
		if !p.js.Present(id) {
			p.cache.clear(id)
			continue
		}
		axes, buttons := p.js.Axes(id), p.js.Buttons(id)
		if !p.cache.update(id, axes, buttons) && !p.verbose {
			continue
		}
		name, _ := p.js.Name(id)
		state := &msgs.DeviceState{Slot: uint32(id), Name: name}
		state.Axes = append(state.Axes, axes...)
		for _, b := range buttons {
			state.Buttons = append(state.Buttons, uint32(b))
		}
		p.pub.Publish(fmt.Sprintf("%s/state/%d", p.machine, id), state)
	}
}

// changed publishes presence transitions. It runs inside the poll, so
// the slot is already populated for Connected and cleared for
// Disconnected.
func (p *poller) changed(id int, state joystick.State) {
	msg := &msgs.DeviceChange{Slot: uint32(id), Connected: state == joystick.Connected}
	if msg.Connected {
		msg.Name, _ = p.js.Name(id)
	}
	p.pub.Publish(fmt.Sprintf("%s/change", p.machine), msg)
}
