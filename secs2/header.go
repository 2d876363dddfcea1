package secs2

import "fmt"

// Header is the decoded header of a SECS-II item.
//
// The header consists of one format byte, (FormatCode << 2) | LengthBytes,
// followed by LengthBytes big-endian bytes holding Length. Length is the payload
// size in bytes, except for lists where it's the number of elements.
type Header struct {
	FormatCode  FormatCode
	LengthBytes LengthBytes
	Length      int
}

// Len returns the encoded size of the header in bytes.
func (h Header) Len() int {
	return 1 + int(h.LengthBytes)
}

// AppendTo appends the encoded header to dst and returns the extended slice.
//
// A LengthBytes value too small for Length is upgraded to the minimal count.
func (h Header) AppendTo(dst []byte) []byte {
	lb := h.LengthBytes
	if minLB, err := MinLengthBytes(h.Length); err == nil && lb < minLB {
		lb = minLB
	}
	if lb > LengthBytesThree {
		lb = LengthBytesThree
	}

	dst = append(dst, h.FormatCode.Number()<<2|byte(lb))
	switch lb {
	case LengthBytesOne:
		dst = append(dst, byte(h.Length))
	case LengthBytesTwo:
		dst = append(dst, byte(h.Length>>8), byte(h.Length))
	default:
		dst = append(dst, byte(h.Length>>16), byte(h.Length>>8), byte(h.Length))
	}

	return dst
}

// Put writes the encoded header at the beginning of buf and returns the offset
// where the payload bytes begin.
//
// It returns ErrInvalidArgument if buf is too short to hold the header, and
// ErrLengthRange if Length can't be represented.
func (h Header) Put(buf []byte) (int, error) {
	lb, err := ResolveLengthBytes(h.LengthBytes, h.Length)
	if err != nil {
		return 0, err
	}

	h.LengthBytes = lb
	if len(buf) < h.Len() {
		return 0, fmt.Errorf("%w: buffer of %d bytes can't hold a %d-byte header", ErrInvalidArgument, len(buf), h.Len())
	}

	return copy(buf, h.AppendTo(make([]byte, 0, h.Len()))), nil
}

// DecodeHeader reads the item header located at offset in data.
//
// The returned error is a *DecodeError that wraps ErrInvalidArgument for a nil
// buffer or an offset outside the buffer, ErrTruncated when fewer than two bytes
// or fewer than the declared length bytes are available, and ErrZeroLengthBytes
// when the header declares zero length bytes.
func DecodeHeader(data []byte, offset int) (Header, error) {
	if data == nil {
		return Header{}, newDecodeError(offset, -1, UndefinedFormatCode, fmt.Errorf("%w: nil buffer", ErrInvalidArgument))
	}
	if offset < 0 || offset >= len(data) {
		return Header{}, newDecodeError(offset, -1, UndefinedFormatCode,
			fmt.Errorf("%w: offset %d outside buffer of %d bytes", ErrInvalidArgument, offset, len(data)))
	}

	remaining := len(data) - offset
	if remaining < 2 {
		return Header{}, newDecodeError(offset, -1, UndefinedFormatCode,
			fmt.Errorf("%w: need at least 2 header bytes, have %d", ErrTruncated, remaining))
	}

	formatByte := data[offset]
	fc := FormatCodeOf(formatByte >> 2)
	lb := LengthBytes(formatByte & 0x03)
	if lb == lengthBytesUnset {
		return Header{}, newDecodeError(offset, -1, fc, ErrZeroLengthBytes)
	}

	if remaining < 1+int(lb) {
		return Header{}, newDecodeError(offset, -1, fc,
			fmt.Errorf("%w: header declares %d length bytes, have %d", ErrTruncated, lb, remaining-1))
	}

	var lenBuf [4]byte
	copy(lenBuf[4-int(lb):], data[offset+1:offset+1+int(lb)])
	length := int(lenBuf[1])<<16 | int(lenBuf[2])<<8 | int(lenBuf[3])

	return Header{FormatCode: fc, LengthBytes: lb, Length: length}, nil
}
