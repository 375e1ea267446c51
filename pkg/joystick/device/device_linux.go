//go:build linux

package device

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Kernel joystick interface ioctls.
const (
	jsiocGVERSION uint = 0x80046a01
	jsiocGAXES    uint = 0x80016a11
	jsiocGBUTTONS uint = 0x80016a12
	jsiocGNAME    uint = 0x80ff6a13
)

type linuxOpener struct{}

// NewOpener creates an Opener for kernel joystick device nodes.
func NewOpener() Opener {
	return linuxOpener{}
}

// Open implements Opener. The node is opened read-only and
// non-blocking; capability queries that fail leave their fields zero
// so the caller decides how to degrade.
func (linuxOpener) Open(path string) (Handle, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	h := &linuxHandle{fd: fd}
	ioctl(fd, jsiocGVERSION, unsafe.Pointer(&h.version))
	ioctl(fd, jsiocGAXES, unsafe.Pointer(&h.axisCount))
	ioctl(fd, jsiocGBUTTONS, unsafe.Pointer(&h.buttonCount))
	var name [256]byte
	if ioctl(fd, jsiocGNAME, unsafe.Pointer(&name[0])) == nil {
		h.name = unix.ByteSliceToString(name[:])
	}
	return h, nil
}

type linuxHandle struct {
	fd          int
	version     uint32
	name        string
	axisCount   uint8
	buttonCount uint8
}

// Close implements Handle.
func (h *linuxHandle) Close() error {
	return unix.Close(h.fd)
}

// Version implements Handle.
func (h *linuxHandle) Version() uint32 {
	return h.version
}

// Name implements Handle.
func (h *linuxHandle) Name() string {
	return h.name
}

// AxisCount implements Handle.
func (h *linuxHandle) AxisCount() int {
	return int(h.axisCount)
}

// ButtonCount implements Handle.
func (h *linuxHandle) ButtonCount() int {
	return int(h.buttonCount)
}

// NextEvent implements Handle. ENODEV means the device went away;
// every other failed or short read means nothing is queued.
func (h *linuxHandle) NextEvent() (Event, ReadResult) {
	var buf [EventSize]byte
	n, err := unix.Read(h.fd, buf[:])
	if err == unix.ENODEV {
		return Event{}, ReadRemoved
	}
	if err != nil || n < EventSize {
		return Event{}, ReadEmpty
	}
	ev, ok := decodeEvent(buf[:])
	if !ok {
		return Event{}, ReadEmpty
	}
	return ev, ReadData
}

func ioctl(fd int, req uint, ptr unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(ptr))
	if errno != 0 {
		return errno
	}
	return nil
}
