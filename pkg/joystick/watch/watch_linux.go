//go:build linux

package watch

import (
	"fmt"

	"github.com/golang/glog"
	"golang.org/x/sys/unix"
)

type inotifyWatcher struct {
	fd int
	wd int
}

// New watches dir for created and attribute-changed entries. Failure
// to create the notification channel is an error; failure to
// subscribe the directory degrades to a watcher that never reports
// anything.
func New(dir string) (Watcher, error) {
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify init: %w", err)
	}
	w := &inotifyWatcher{fd: fd, wd: -1}
	// IN_ATTRIB catches udev finishing permission setup after the
	// node is created.
	wd, err := unix.InotifyAddWatch(fd, dir, unix.IN_CREATE|unix.IN_ATTRIB)
	if err != nil {
		glog.Warningf("watch: cannot subscribe %s, continuing without hotplug: %v", dir, err)
	} else {
		w.wd = wd
	}
	return w, nil
}

// Drain implements Watcher.
func (w *inotifyWatcher) Drain() []string {
	if w.fd < 0 {
		return nil
	}
	var buf [16384]byte
	n, err := unix.Read(w.fd, buf[:])
	if err != nil || n <= 0 {
		return nil
	}
	return recordNames(buf[:n])
}

// Subscribed implements Watcher.
func (w *inotifyWatcher) Subscribed() bool {
	return w.wd >= 0
}

// Close implements Watcher.
func (w *inotifyWatcher) Close() error {
	if w.fd < 0 {
		return nil
	}
	if w.wd >= 0 {
		unix.InotifyRmWatch(w.fd, uint32(w.wd))
		w.wd = -1
	}
	err := unix.Close(w.fd)
	w.fd = -1
	return err
}
