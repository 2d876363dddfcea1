// Package secs2 implements the SECS-II item wire format, the data encoding used by
// the semiconductor equipment communication protocols (SECS-I over a serial link
// and HSMS over TCP).
//
// A SECS-II message body is a single item. Each item starts with a header byte,
// (format code << 2) | number of length bytes, followed by 1 to 3 big-endian length
// bytes and the payload. The length is the payload size in bytes, except for list
// items where it's the number of elements.
//
// Key Features:
//   - Data Item Representation: one type per item family (list, binary, boolean,
//     ASCII, signed and unsigned integers, floats), each in scalar or array form.
//   - Item Codec: Encode turns an item tree into bytes and Decode turns bytes at a
//     given offset back into an item tree plus the number of bytes consumed.
//   - Length-byte Policy: items use the minimal number of length bytes unless a
//     larger count is requested with WithLengthBytes.
//   - List Addressing: ListItem.ElementAt resolves 1-based dotted addresses such
//     as "3.2", and ListItem.Flatten maps every descendant to its address.
//   - SML Support: ToSML renders items in SECS Message Language.
//
// The package does not frame messages, the caller owns the transport and passes
// complete item buffers to Decode.
//
// Usage Example:
//
//	// Create a list item
//	listItem := secs2.L(
//	    secs2.U1(7),
//	    secs2.A("hello"),
//	)
//
//	// Encode the item to bytes
//	data, err := secs2.Encode(listItem)
//
//	// Decode it back
//	item, consumed, err := secs2.Decode(data, 0)
//
//	// Get SML representation of list item
//	sml := item.ToSML()
package secs2
