package device

import "io"

// Kind identifies what a decoded event updates.
type Kind uint8

// Event kinds.
const (
	KindNone Kind = iota
	KindAxis
	KindButton
)

// ReadResult classifies the outcome of a non-blocking event read.
type ReadResult int

const (
	// ReadData indicates an event was read.
	ReadData ReadResult = iota
	// ReadEmpty indicates no event is queued right now.
	ReadEmpty
	// ReadRemoved indicates the backing device no longer exists.
	ReadRemoved
)

// Event is one decoded state-change record from a joystick device.
type Event struct {
	Time  uint32
	Value int16
	Kind  Kind
	Index int
	// Initial marks events replayed by the driver to describe the
	// state of the device at open time.
	Initial bool
}

// Handle is an opened joystick device.
type Handle interface {
	io.Closer
	// Version returns the driver interface version, 0 if the query failed.
	Version() uint32
	// Name returns the reported device name, "" if the query failed.
	Name() string
	// AxisCount returns the number of axes on the device.
	AxisCount() int
	// ButtonCount returns the number of buttons on the device.
	ButtonCount() int
	// NextEvent reads one queued event without blocking.
	NextEvent() (Event, ReadResult)
}

// Opener opens joystick device nodes.
type Opener interface {
	Open(path string) (Handle, error)
}
