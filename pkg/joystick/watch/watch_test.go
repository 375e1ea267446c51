package watch

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// rec builds one packed change record. pad appends NUL padding after
// the name, included in the declared length the way the kernel aligns
// names.
func rec(name string, pad int) []byte {
	buf := make([]byte, recordHeaderSize, recordHeaderSize+len(name)+pad)
	binary.LittleEndian.PutUint32(buf[0:], 1)     // watch descriptor
	binary.LittleEndian.PutUint32(buf[4:], 0x100) // mask
	binary.LittleEndian.PutUint32(buf[12:], uint32(len(name)+pad))
	buf = append(buf, name...)
	buf = append(buf, make([]byte, pad)...)
	return buf
}

func concat(recs ...[]byte) []byte {
	var buf []byte
	for _, r := range recs {
		buf = append(buf, r...)
	}
	return buf
}

func TestRecordNames(t *testing.T) {
	testCases := []struct {
		name   string
		buf    []byte
		expect []string
	}{
		{
			name:   "single padded record",
			buf:    rec("js0", 13),
			expect: []string{"js0"},
		},
		{
			name:   "records back to back",
			buf:    concat(rec("js0", 1), rec("js12", 8), rec("event3", 2)),
			expect: []string{"js0", "js12", "event3"},
		},
		{
			name: "nameless record skipped",
			buf:  concat(rec("", 0), rec("js1", 0)),
			// A record with no name field refers to the watched
			// directory itself.
			expect: []string{"js1"},
		},
		{
			name: "empty buffer",
			buf:  nil,
		},
		{
			name: "partial header ends walk",
			buf:  rec("js0", 0)[:recordHeaderSize-4],
		},
		{
			name:   "declared size past buffer ends walk",
			buf:    concat(rec("js0", 0), rec("js1", 32)[:recordHeaderSize+2]),
			expect: []string{"js0"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, recordNames(tc.buf))
		})
	}
}
