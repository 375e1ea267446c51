// Package joystick discovers and polls kernel joystick devices.
//
// The subsystem keeps a fixed table of MaxDevices slots. A slot is
// assigned by the first successful open of a device node and keeps
// its id until the device disappears. Access is single-threaded
// cooperative polling: every query re-polls the device first, and no
// operation blocks. Callers needing concurrent access must serialize
// it themselves.
package joystick

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/golang/glog"

	"github.com/inputd/joyd.go/pkg/joystick/device"
	"github.com/inputd/joyd.go/pkg/joystick/watch"
)

// MaxDevices is the number of concurrently tracked devices. Slot ids
// range over 0..MaxDevices-1.
const MaxDevices = 16

// DefaultDir is the device directory scanned for joystick nodes.
const DefaultDir = "/dev/input"

// minVersion is the lowest supported driver interface version, 1.0.0.
// Anything below is the old 0.x interface.
const minVersion = 0x010000

const unknownName = "Unknown"

// State is the presence transition reported to the notification
// callback.
type State uint8

// Presence states.
const (
	Disconnected State = iota
	Connected
)

// ButtonState is the reported state of one button.
type ButtonState uint8

// Button states.
const (
	Released ButtonState = 0
	Pressed  ButtonState = 1
)

// NotifyFunc is invoked whenever a slot's presence changes.
type NotifyFunc func(id int, state State)

type slot struct {
	present bool
	path    string
	name    string
	handle  device.Handle
	axes    []float32
	buttons []ButtonState
}

// Joysticks is the device discovery and polling subsystem. The zero
// value is not usable; construct with New or NewWith and call Init
// before any query.
type Joysticks struct {
	dir        string
	opener     device.Opener
	newWatcher func(dir string) (watch.Watcher, error)
	notify     NotifyFunc

	watcher watch.Watcher
	pattern *regexp.Regexp
	slots   [MaxDevices]slot
}

// NewWith creates a subsystem with explicit backends.
func NewWith(dir string, opener device.Opener, newWatcher func(string) (watch.Watcher, error), notify NotifyFunc) *Joysticks {
	return &Joysticks{
		dir:        dir,
		opener:     opener,
		newWatcher: newWatcher,
		notify:     notify,
	}
}

// Init creates the change-notification watcher, compiles the device
// name pattern and runs the initial directory scan. Slots populated
// by the scan are ordered by path ascending; devices arriving later
// via hotplug take the first free slot and are not re-sorted, so slot
// ids stay stable once assigned.
func (j *Joysticks) Init() error {
	w, err := j.newWatcher(j.dir)
	if err != nil {
		return fmt.Errorf("joystick: %w", err)
	}
	j.watcher = w
	if j.pattern, err = regexp.Compile(`^js[0-9]+$`); err != nil {
		j.Shutdown()
		return fmt.Errorf("joystick: compile device pattern: %w", err)
	}
	ents, err := os.ReadDir(j.dir)
	if err != nil {
		glog.Warningf("joystick: cannot scan %s: %v", j.dir, err)
		return nil
	}
	count := 0
	for _, ent := range ents {
		if !j.pattern.MatchString(ent.Name()) {
			continue
		}
		if j.openDevice(filepath.Join(j.dir, ent.Name())) {
			count++
		}
	}
	sort.Slice(j.slots[:count], func(a, b int) bool {
		return j.slots[a].path < j.slots[b].path
	})
	return nil
}

// Shutdown releases every present slot and the watcher resources. It
// is safe after a partially failed Init and may be called repeatedly.
func (j *Joysticks) Shutdown() {
	for i := range j.slots {
		if j.slots[i].present {
			j.slots[i].handle.Close()
			j.slots[i] = slot{}
		}
	}
	j.pattern = nil
	if j.watcher != nil {
		j.watcher.Close()
		j.watcher = nil
	}
}

// Present reports whether slot id currently holds a live device.
func (j *Joysticks) Present(id int) bool {
	if id < 0 || id >= MaxDevices {
		return false
	}
	return j.pollDevice(id)
}

// Axes returns the normalized axis values of slot id, each in
// [-1.0, 1.0], or nil when the slot is absent. The view stays valid
// only until the slot is polled again.
func (j *Joysticks) Axes(id int) []float32 {
	if !j.Present(id) {
		return nil
	}
	return j.slots[id].axes
}

// Buttons returns the button states of slot id, or nil when the slot
// is absent. The view stays valid only until the slot is polled
// again.
func (j *Joysticks) Buttons(id int) []ButtonState {
	if !j.Present(id) {
		return nil
	}
	return j.slots[id].buttons
}

// Name returns the device name of slot id.
func (j *Joysticks) Name(id int) (string, bool) {
	if !j.Present(id) {
		return "", false
	}
	return j.slots[id].name, true
}

// HotplugEnabled reports whether directory change notifications are
// being delivered. When false only the initial scan found devices.
func (j *Joysticks) HotplugEnabled() bool {
	return j.watcher != nil && j.watcher.Subscribed()
}

// openDevice tries to register path as a new device. Candidates that
// are already open, fail to open or speak an unsupported driver
// version are rejected without error; so is every candidate while the
// table is full.
func (j *Joysticks) openDevice(path string) bool {
	for i := range j.slots {
		if j.slots[i].present && j.slots[i].path == path {
			return false
		}
	}
	id := -1
	for i := range j.slots {
		if !j.slots[i].present {
			id = i
			break
		}
	}
	if id < 0 {
		return false
	}
	h, err := j.opener.Open(path)
	if err != nil {
		// The node may not be usable yet, e.g. udev is still
		// adjusting permissions after hotplug.
		return false
	}
	if h.Version() < minVersion {
		h.Close()
		return false
	}
	name := h.Name()
	if name == "" {
		name = unknownName
	}
	s := &j.slots[id]
	s.present = true
	s.path = path
	s.name = name
	s.handle = h
	s.axes = make([]float32, h.AxisCount())
	s.buttons = make([]ButtonState, h.ButtonCount())
	j.changed(id, Connected)
	return true
}

// pollDevice drains queued device events into the slot state and
// reports whether the slot is still present. It runs before any read
// of the slot's state.
func (j *Joysticks) pollDevice(id int) bool {
	j.drainWatcher()
	s := &j.slots[id]
	if !s.present {
		return false
	}
	for {
		ev, res := s.handle.NextEvent()
		if res == device.ReadRemoved {
			j.retire(id)
			break
		}
		if res != device.ReadData {
			break
		}
		switch ev.Kind {
		case device.KindAxis:
			if ev.Index < len(s.axes) {
				s.axes[ev.Index] = float32(ev.Value) / 32767.0
			}
		case device.KindButton:
			if ev.Index < len(s.buttons) {
				if ev.Value != 0 {
					s.buttons[ev.Index] = Pressed
				} else {
					s.buttons[ev.Index] = Released
				}
			}
		}
	}
	return s.present
}

// drainWatcher picks up pending directory change records and offers
// matching entries to the opener. The duplicate guard in openDevice
// makes repeated offers for the same device harmless.
func (j *Joysticks) drainWatcher() {
	if j.watcher == nil || j.pattern == nil {
		return
	}
	for _, name := range j.watcher.Drain() {
		if j.pattern.MatchString(name) {
			j.openDevice(filepath.Join(j.dir, name))
		}
	}
}

// retire releases a slot whose device disappeared.
func (j *Joysticks) retire(id int) {
	j.slots[id].handle.Close()
	j.slots[id] = slot{}
	j.changed(id, Disconnected)
}

func (j *Joysticks) changed(id int, state State) {
	if j.notify != nil {
		j.notify(id, state)
	}
}
