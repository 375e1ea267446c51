// Package watch delivers directory change notifications for device
// discovery. The watcher never blocks: each drain performs a single
// non-blocking read of the notification channel and parses whatever
// records arrived since the previous drain.
package watch

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Watcher reports names of entries created or changed in a watched
// directory.
type Watcher interface {
	io.Closer
	// Drain returns entry names from all change records currently
	// pending. Nothing pending yields nil.
	Drain() []string
	// Subscribed reports whether change notifications are being
	// delivered at all.
	Subscribed() bool
}

// recordHeaderSize is the fixed part of a change record: watch
// descriptor, mask, cookie and name length, 4 bytes each.
const recordHeaderSize = 16

// recordNames walks packed change records and collects their entry
// names. Records lie back to back, each declaring the length of its
// trailing name field; the cursor advances by the record's exact
// declared size. A trailing partial record ends the walk.
func recordNames(buf []byte) []string {
	var names []string
	for off := 0; off+recordHeaderSize <= len(buf); {
		nameLen := int(binary.LittleEndian.Uint32(buf[off+12 : off+16]))
		next := off + recordHeaderSize + nameLen
		if next > len(buf) {
			break
		}
		name := buf[off+recordHeaderSize : next]
		if i := bytes.IndexByte(name, 0); i >= 0 {
			name = name[:i]
		}
		if len(name) > 0 {
			names = append(names, string(name))
		}
		off = next
	}
	return names
}
