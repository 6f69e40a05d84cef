package cbor

import "encoding/binary"

// Major types, per RFC 8949 §3.
const (
	majorUint  = 0
	majorNint  = 1
	majorBstr  = 2
	majorTstr  = 3
	majorArray = 4
	majorMap   = 5
	majorTag   = 6
	majorFloat = 7
)

// Additional-info values with special meaning.
const (
	infoIndefinite = 31 // array/map/bstr/tstr: indefinite length
	infoOneByte    = 24
	infoTwoByte    = 25
	infoFourByte   = 26
	infoEightByte  = 27
)

const breakByte = byte(majorFloat<<5) | infoIndefinite // 0xFF indefinite-length terminator

// Argument width ceilings accessors pass to the primitive reader.
const (
	sizeByte  = infoOneByte   // 1-byte argument max
	sizeShort = infoTwoByte   // 2-byte argument max
	sizeWord  = infoFourByte  // 4-byte argument max
	sizeLong  = infoEightByte // 8-byte argument max
)

// NestedTablesMax bounds the number of simultaneously active packing
// tables a single Cursor can track; it is fixed at build time so the
// active-table set can live inline in Cursor without allocation.
const NestedTablesMax = 8

// RecursionMax bounds the depth of skip/packed-resolution recursion so an
// adversarial document cannot cause unbounded work or a stack overflow.
const RecursionMax = 16

type flags uint8

const (
	flagInContainer flags = 1 << iota
	flagIndefinite
	flagPackedEnabled
	flagSharedOrigin
)

// table is a borrowed reference to a packed-table's array literal body: a
// sub-slice of some buffer (the original stream or another table),
// addressed by the ordinal of its entries within the active-table
// concatenation.
type table struct {
	data []byte
}

// Cursor is the decoder handle: an exclusively-owned, non-allocating view
// over a borrowed byte slice, optionally carrying an inline set of active
// packed-CBOR tables. The zero Cursor is not usable; construct one with
// [Init], [InitPacked], or [InitPackedWithTable].
type Cursor struct {
	data            []byte
	remaining       uint64
	flags           flags
	tables          [NestedTablesMax]table
	numActiveTables uint8
}

// Init creates a cursor over buf with packed-CBOR resolution disabled.
func Init(buf []byte) Cursor {
	return Cursor{data: buf}
}

// InitPacked creates a cursor over buf with packed-CBOR resolution
// enabled and no initial active table.
func InitPacked(buf []byte) Cursor {
	return Cursor{data: buf, flags: flagPackedEnabled}
}

// InitPackedWithTable creates a packed-aware cursor over buf with one
// initial active table borrowed from tableBytes (an array literal's
// encoded bytes, supplied out-of-band by the caller). This mirrors
// loading a pre-trained lookup table out of band, the way the teacher's
// Table.ReadFrom loads a serialized symbol table.
func InitPackedWithTable(buf, tableBytes []byte) Cursor {
	c := InitPacked(buf)
	if len(tableBytes) > 0 {
		c.tables[0] = table{data: tableBytes}
		c.numActiveTables = 1
	}
	return c
}

func (c *Cursor) packedEnabled() bool { return c.flags&flagPackedEnabled != 0 }

func (c *Cursor) inContainer() bool { return c.flags&flagInContainer != 0 }

func (c *Cursor) indefinite() bool { return c.flags&flagIndefinite != 0 }

func (c *Cursor) sharedOrigin() bool { return c.flags&flagSharedOrigin != 0 }

// copyTablesFrom overwrites c's active-table set with src's, by value;
// later additions in a subtree must never leak upward into the parent's
// scope.
func (c *Cursor) copyTablesFrom(src *Cursor) {
	c.tables = src.tables
	c.numActiveTables = src.numActiveTables
}

// InContainer reports whether c was produced by entering an array or map.
func (c *Cursor) InContainer() bool { return c.inContainer() }

// ContainerIndefinite reports whether c is an indefinite-length container.
func (c *Cursor) ContainerIndefinite() bool { return c.indefinite() }

// ArrayItemsRemaining returns the number of array items left to read and
// whether the count is known (false for an indefinite-length array).
func (c *Cursor) ArrayItemsRemaining() (uint64, bool) {
	if c.indefinite() {
		return 0, false
	}
	return c.remaining, true
}

// MapItemsRemaining returns the number of key/value pairs left to read
// and whether the count is known (false for an indefinite-length map).
func (c *Cursor) MapItemsRemaining() (uint64, bool) {
	if c.indefinite() {
		return 0, false
	}
	return c.remaining / 2, true
}

// AtEnd reports whether c has no more items to decode: the buffer is
// exhausted, the indefinite-length terminator is next, or (for a definite
// container) the item count has reached zero.
func (c *Cursor) AtEnd() bool {
	if len(c.data) == 0 {
		return true
	}
	if c.indefinite() && c.data[0] == breakByte {
		return true
	}
	if !c.indefinite() && c.inContainer() && c.remaining == 0 {
		return true
	}
	return false
}

// advance drops n bytes from the front of c's window and, if c is inside
// a container, decrements the remaining-item count by one.
func (c *Cursor) advance(n int) {
	c.data = c.data[n:]
	if c.inContainer() {
		c.remaining--
	}
}

// readHead reads the item head at the front of data without consuming it:
// major/info split, argument assembly for info in {24,25,26,27}, and the
// structural checks from spec.md §4.1. It takes no expected major type:
// callers compare the returned major type themselves where they need a
// type-mismatch probe that doesn't also reject on argument width.
func readHead(data []byte, maxWidth uint8) (major int, arg uint64, headLen int, res Result) {
	if len(data) == 0 {
		return 0, 0, 0, End
	}
	b := data[0]
	major = int(b >> 5)
	info := b & 0x1F

	switch {
	case info < infoOneByte:
		return major, uint64(info), 1, OK
	case info == infoIndefinite:
		if major == majorArray || major == majorMap || major == majorBstr || major == majorTstr {
			return major, 0, 1, OK
		}
		return major, 0, 0, InvalidType
	case info >= 28 && info <= 30:
		return major, 0, 0, InvalidType
	}

	if info > maxWidth {
		return major, 0, 0, Overflow
	}

	n := 1 << (info - infoOneByte)
	if len(data) <= n { // strict '>' contract: payload may end exactly at end
		return major, 0, 0, End
	}

	var v uint64
	switch n {
	case 1:
		v = uint64(data[1])
	case 2:
		v = uint64(binary.BigEndian.Uint16(data[1:3]))
	case 4:
		v = uint64(binary.BigEndian.Uint32(data[1:5]))
	case 8:
		v = binary.BigEndian.Uint64(data[1:9])
	}
	return major, v, 1 + n, OK
}

// peekMajor returns the major type of the item at the front of c's
// window without any validation of the rest of the head, for use by code
// that must distinguish "no bytes left" from "well-formed item of some
// type" cheaply (the packed engine's dispatch).
func peekMajor(data []byte) (major int, info byte, ok bool) {
	if len(data) == 0 {
		return 0, 0, false
	}
	return int(data[0] >> 5), data[0] & 0x1F, true
}

// Type returns the major type of the next item (0..7), or a negative
// Result. It never advances the cursor, and is itself transparent to
// packed resolution so callers see the type of the item a reference
// ultimately points at.
func (c *Cursor) Type() (int, Result) {
	probe := *c
	working, res := probe.resolved(RecursionMax)
	if res < 0 {
		return 0, res
	}
	if working.AtEnd() {
		return 0, End
	}
	major, _, ok := peekMajor(working.data)
	if !ok {
		return 0, End
	}
	return major, OK
}
