package cbor

import "unsafe"

// getUint reads an unsigned integer whose argument is at most maxWidth
// bytes wide, transparent to packed resolution.
func (c *Cursor) getUint(maxWidth uint8) (uint64, Result) {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return 0, res
	}
	major, arg, headLen, res2 := readHead(working.data, maxWidth)
	if res2 < 0 {
		return 0, res2
	}
	if major != majorUint {
		return 0, InvalidType
	}
	working.advance(headLen)
	return arg, OK
}

// getInt reads a signed integer (major 0 or 1) whose argument is at most
// maxWidth bytes wide, transparent to packed resolution.
func (c *Cursor) getInt(maxWidth uint8) (int64, Result) {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return 0, res
	}
	major, arg, headLen, res2 := readHead(working.data, maxWidth)
	if res2 < 0 {
		return 0, res2
	}
	const maxSigned = uint64(1)<<63 - 1
	switch major {
	case majorUint:
		if arg > maxSigned {
			return 0, Overflow
		}
		working.advance(headLen)
		return int64(arg), OK
	case majorNint:
		if arg > maxSigned {
			return 0, Overflow
		}
		working.advance(headLen)
		return -1 - int64(arg), OK
	default:
		return 0, InvalidType
	}
}

// GetUint8 reads an unsigned integer whose on-wire argument fits in a
// single byte.
func (c *Cursor) GetUint8() (uint8, Result) {
	v, res := c.getUint(sizeByte)
	if res < 0 {
		return 0, res
	}
	return uint8(v), OK
}

// GetUint16 reads an unsigned integer whose on-wire argument fits in two
// bytes.
func (c *Cursor) GetUint16() (uint16, Result) {
	v, res := c.getUint(sizeShort)
	if res < 0 {
		return 0, res
	}
	return uint16(v), OK
}

// GetUint32 reads an unsigned integer whose on-wire argument fits in four
// bytes.
func (c *Cursor) GetUint32() (uint32, Result) {
	v, res := c.getUint(sizeWord)
	if res < 0 {
		return 0, res
	}
	return uint32(v), OK
}

// GetUint64 reads an unsigned integer of any encoded width.
func (c *Cursor) GetUint64() (uint64, Result) {
	return c.getUint(sizeLong)
}

// GetInt8 reads a signed integer whose on-wire argument fits in a single
// byte and whose value fits in int8.
func (c *Cursor) GetInt8() (int8, Result) {
	v, res := c.getInt(sizeByte)
	if res < 0 {
		return 0, res
	}
	if v < -128 || v > 127 {
		return 0, Overflow
	}
	return int8(v), OK
}

// GetInt16 reads a signed integer whose on-wire argument fits in two
// bytes and whose value fits in int16.
func (c *Cursor) GetInt16() (int16, Result) {
	v, res := c.getInt(sizeShort)
	if res < 0 {
		return 0, res
	}
	if v < -32768 || v > 32767 {
		return 0, Overflow
	}
	return int16(v), OK
}

// GetInt32 reads a signed integer whose on-wire argument fits in four
// bytes and whose value fits in int32.
func (c *Cursor) GetInt32() (int32, Result) {
	v, res := c.getInt(sizeWord)
	if res < 0 {
		return 0, res
	}
	if v < -2147483648 || v > 2147483647 {
		return 0, Overflow
	}
	return int32(v), OK
}

// GetInt64 reads a signed integer of any encoded width.
func (c *Cursor) GetInt64() (int64, Result) {
	return c.getInt(sizeLong)
}

// getStrRaw reads a definite-length byte or text string head at the front
// of c's window, without attempting packed resolution, and returns the
// string body as a slice of c's own buffer. Indefinite-length strings are
// not synthesized here: the caller gets an explicit InvalidType, since
// reading one as a single value would silently return an empty string
// (see skipIndefiniteString for the form that does walk the chunks).
func getStrRaw(c *Cursor, major int) ([]byte, Result) {
	gotMajor, info, ok := peekMajor(c.data)
	if !ok {
		return nil, End
	}
	if gotMajor != major {
		return nil, InvalidType
	}
	if info == infoIndefinite {
		return nil, InvalidType
	}
	_, arg, headLen, res := readHead(c.data, sizeLong)
	if res < 0 {
		return nil, res
	}
	if uint64(len(c.data)-headLen) < arg {
		return nil, End
	}
	out := c.data[headLen : headLen+int(arg)]
	c.advance(headLen + int(arg))
	return out, OK
}

// GetBstr reads a definite-length byte string, transparent to packed
// resolution. The returned slice aliases the underlying buffer; it is
// valid only as long as that buffer is.
func (c *Cursor) GetBstr() ([]byte, Result) {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return nil, res
	}
	return getStrRaw(working, majorBstr)
}

// GetTstr reads a definite-length text string, transparent to packed
// resolution. The returned string aliases the underlying buffer without
// copying (via [unsafe.String]); it is valid only as long as that buffer
// is, and must not be retained past the buffer's lifetime if the caller
// intends to mutate or free it.
func (c *Cursor) GetTstr() (string, Result) {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return "", res
	}
	b, res2 := getStrRaw(working, majorTstr)
	if res2 < 0 {
		return "", res2
	}
	if len(b) == 0 {
		return "", OK
	}
	return unsafe.String(&b[0], len(b)), OK
}

// GetBool reads a boolean simple value, transparent to packed resolution.
func (c *Cursor) GetBool() (bool, Result) {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return false, res
	}
	major, info, ok := peekMajor(working.data)
	if !ok {
		return false, End
	}
	if major != majorFloat || (info != 20 && info != 21) {
		return false, InvalidType
	}
	working.advance(1)
	return info == 21, OK
}

// GetNull consumes a null simple value, transparent to packed resolution.
func (c *Cursor) GetNull() Result {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return res
	}
	major, info, ok := peekMajor(working.data)
	if !ok {
		return End
	}
	if major != majorFloat || info != 22 {
		return InvalidType
	}
	working.advance(1)
	return OK
}

// GetUndefined consumes an undefined simple value, transparent to packed
// resolution.
func (c *Cursor) GetUndefined() Result {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return res
	}
	major, info, ok := peekMajor(working.data)
	if !ok {
		return End
	}
	if major != majorFloat || info != 23 {
		return InvalidType
	}
	working.advance(1)
	return OK
}

// GetSimple reads a major-7 simple value's raw code (including the
// booleans, null, and undefined as their RFC 8949 codes 20–23), transparent
// to packed resolution.
func (c *Cursor) GetSimple() (uint8, Result) {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return 0, res
	}
	major, arg, headLen, res2 := readHead(working.data, sizeByte)
	if res2 < 0 {
		return 0, res2
	}
	if major != majorFloat {
		return 0, InvalidType
	}
	working.advance(headLen)
	return uint8(arg), OK
}

// GetTag reads a tag number and advances past its head, transparent to
// packed resolution. Since resolution itself consumes the two reserved
// packing tags before GetTag ever sees them, this only ever surfaces an
// ordinary (non-packing) tag.
func (c *Cursor) GetTag() (uint32, Result) {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return 0, res
	}
	major, tag, headLen, res2 := readHead(working.data, sizeWord)
	if res2 < 0 {
		return 0, res2
	}
	if major != majorTag {
		return 0, InvalidType
	}
	working.advance(headLen)
	return uint32(tag), OK
}
