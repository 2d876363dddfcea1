package secs2

// Shortcuts named after the SML item tags, e.g. L(U1(7), A("text")).
//
// The numeric shortcuts take the same arguments as NewIntItem, NewUintItem and
// NewFloatItem without the byte size.
var (
	L       = NewListItem
	A       = NewASCIIItem
	B       = NewBinaryItem
	BOOLEAN = NewBooleanItem

	I1 = sizedItem(NewIntItem, 1)
	I2 = sizedItem(NewIntItem, 2)
	I4 = sizedItem(NewIntItem, 4)
	I8 = sizedItem(NewIntItem, 8)

	U1 = sizedItem(NewUintItem, 1)
	U2 = sizedItem(NewUintItem, 2)
	U4 = sizedItem(NewUintItem, 4)
	U8 = sizedItem(NewUintItem, 8)

	F4 = sizedItem(NewFloatItem, 4)
	F8 = sizedItem(NewFloatItem, 8)
)

func sizedItem(newItem func(int, ...any) Item, byteSize int) func(values ...any) Item {
	return func(values ...any) Item {
		return newItem(byteSize, values...)
	}
}
