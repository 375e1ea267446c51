package device

import (
	"bytes"
	"encoding/binary"
)

// EventSize is the size of one raw event record.
const EventSize = 8

// Raw event type bits.
const (
	rawButton uint8 = 0x01
	rawAxis   uint8 = 0x02
	rawInit   uint8 = 0x80
)

type rawEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// decodeEvent decodes one raw little-endian event record. The init
// bit is cleared before the kind is determined and reported
// separately.
func decodeEvent(buf []byte) (Event, bool) {
	var raw rawEvent
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &raw); err != nil {
		return Event{}, false
	}
	ev := Event{
		Time:    raw.Time,
		Value:   raw.Value,
		Index:   int(raw.Number),
		Initial: raw.Type&rawInit != 0,
	}
	switch raw.Type &^ rawInit {
	case rawAxis:
		ev.Kind = KindAxis
	case rawButton:
		ev.Kind = KindButton
	}
	return ev, true
}
