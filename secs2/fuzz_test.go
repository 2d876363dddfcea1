package secs2

import (
	"errors"
	"testing"
)

// FuzzDecode fuzzes the item decoder with arbitrary buffers and offsets.
//
// Decode must never panic, must report a consumed count within the buffer, and
// any item it returns must re-encode to a form that decodes to an equal item.
func FuzzDecode(f *testing.F) {
	// Seed: <A[5] "hello">
	f.Add([]byte{0x41, 0x05, 'h', 'e', 'l', 'l', 'o'}, 0)

	// Seed: nested list L[1, L[1, <A[1] "x">]]
	f.Add([]byte{0x01, 0x01, 0x01, 0x01, 0x41, 0x01, 'x'}, 0)

	// Seed: deeply nested lists, 70 levels exceeds MaxListDepth
	deepList := []byte{}
	for range 70 {
		deepList = append(deepList, 0x01, 0x01)
	}
	f.Add(append(deepList, 0x01, 0x00), 0)

	// Seed: list claiming far more elements than the buffer holds
	f.Add([]byte{0x03, 0xFF, 0xFF, 0xFF, 0x01, 0x00}, 0)

	// Seed: zero length bytes
	f.Add([]byte{0x40, 0x00}, 0)

	// Seed: misaligned U4 and a truncated F8
	f.Add([]byte{0xB1, 0x03, 0x00, 0x00, 0x01}, 0)
	f.Add([]byte{0x81, 0x08, 0x00}, 0)

	// Seed: JIS-8 element inside a list
	f.Add([]byte{0x01, 0x02, 0x45, 0x01, 'j', 0x25, 0x01, 0x01}, 0)

	// Seed: offset into the middle of a buffer
	f.Add([]byte{0xFF, 0xA5, 0x01, 0x07}, 1)

	// Seed: empty buffer and negative offset
	f.Add([]byte{}, 0)
	f.Add([]byte{0x01, 0x00}, -1)

	f.Fuzz(func(t *testing.T, data []byte, offset int) {
		item, consumed, err := Decode(data, offset)
		if err != nil {
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("error is not a *DecodeError: %v", err)
			}

			return
		}

		if consumed <= 0 || offset+consumed > len(data) {
			t.Fatalf("consumed %d bytes at offset %d of a %d-byte buffer", consumed, offset, len(data))
		}

		if item == nil {
			return
		}

		encoded, err := Encode(item)
		if err != nil {
			t.Fatalf("encode decoded item: %v", err)
		}

		again, _, err := Decode(encoded, 0)
		if err != nil {
			t.Fatalf("decode re-encoded item: %v", err)
		}

		if !item.Equal(again) {
			t.Fatalf("round trip mismatch: %s != %s", item.ToSML(), again.ToSML())
		}
	})
}
