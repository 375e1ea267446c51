//go:build linux

package joystick

import (
	"github.com/inputd/joyd.go/pkg/joystick/device"
	"github.com/inputd/joyd.go/pkg/joystick/watch"
)

// New creates a subsystem over the kernel joystick interface,
// watching DefaultDir for device nodes.
func New(notify NotifyFunc) *Joysticks {
	return NewWith(DefaultDir, device.NewOpener(), watch.New, notify)
}
