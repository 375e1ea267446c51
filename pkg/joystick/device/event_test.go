package device

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func record(time uint32, value int16, typ uint8, number uint8) []byte {
	buf := make([]byte, EventSize)
	binary.LittleEndian.PutUint32(buf, time)
	binary.LittleEndian.PutUint16(buf[4:], uint16(value))
	buf[6] = typ
	buf[7] = number
	return buf
}

func TestDecodeEvent(t *testing.T) {
	testCases := []struct {
		name string
		buf  []byte
		ok   bool
		ev   Event
	}{
		{
			name: "axis",
			buf:  record(10, 32767, 0x02, 1),
			ok:   true,
			ev:   Event{Time: 10, Value: 32767, Kind: KindAxis, Index: 1},
		},
		{
			name: "button",
			buf:  record(11, 1, 0x01, 3),
			ok:   true,
			ev:   Event{Time: 11, Value: 1, Kind: KindButton, Index: 3},
		},
		{
			name: "initial bit masked before kind",
			buf:  record(12, 1, 0x81, 0),
			ok:   true,
			ev:   Event{Time: 12, Value: 1, Kind: KindButton, Index: 0, Initial: true},
		},
		{
			name: "initial axis",
			buf:  record(13, -100, 0x82, 2),
			ok:   true,
			ev:   Event{Time: 13, Value: -100, Kind: KindAxis, Index: 2, Initial: true},
		},
		{
			name: "unknown type",
			buf:  record(14, 0, 0x04, 0),
			ok:   true,
			ev:   Event{Time: 14, Kind: KindNone},
		},
		{
			name: "short record",
			buf:  []byte{1, 2, 3},
			ok:   false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := decodeEvent(tc.buf)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.ev, ev)
			}
		})
	}
}
