package cbor

// rawMajor returns the major type of the item at the front of it's window
// without attempting packed resolution. Skip is purely structural: it must
// measure the exact on-wire length of whatever sits at the cursor, whether
// that is an ordinary item or packed syntax (a reference is one byte, a
// packing-table tag is a tag like any other), so it never calls into the
// resolution engine directly.
func rawMajor(it *Cursor) (int, Result) {
	if it.AtEnd() {
		return 0, End
	}
	major, _, ok := peekMajor(it.data)
	if !ok {
		return 0, End
	}
	return major, OK
}

// skipSimpleRaw consumes exactly one non-container, non-tag item: a
// string's length-prefixed payload (or, for an indefinite-length string,
// its chunks and terminator), or a primitive head with no body
// (unsigned/negative integers, simple values, floats, including, as an
// unremarkable one-byte major-7 item, a short-form packed reference).
func skipSimpleRaw(it *Cursor) Result {
	major, res := rawMajor(it)
	if res < 0 {
		return res
	}
	if major == majorBstr || major == majorTstr {
		_, info, ok := peekMajor(it.data)
		if !ok {
			return End
		}
		if info == infoIndefinite {
			return skipIndefiniteString(it, major)
		}
		_, res := getStrRaw(it, major)
		return res
	}
	_, _, headLen, res2 := readHead(it.data, sizeLong)
	if res2 < 0 {
		return res2
	}
	it.advance(headLen)
	return OK
}

// skipIndefiniteString walks the chunk sequence of an indefinite-length
// byte or text string and its break byte. [Cursor.GetBstr] and
// [Cursor.GetTstr] refuse to synthesize this form (spec'd behavior: an
// indefinite string is not a single borrowable slice), but Skip still
// needs to account for its exact byte length, so it is walked the same
// way an array of same-major chunks would be.
func skipIndefiniteString(it *Cursor, major int) Result {
	child, res := enterContainer(it, false, major)
	if res < 0 {
		return res
	}
	for !child.AtEnd() {
		chunkMajor, res := rawMajor(&child)
		if res < 0 {
			return res
		}
		if chunkMajor != major {
			return InvalidType
		}
		if res := skipSimpleRaw(&child); res < 0 {
			return res
		}
	}
	return it.LeaveContainer(&child)
}

// SkipSimple consumes exactly one non-container, non-tag item at c's
// current position.
func (c *Cursor) SkipSimple() Result {
	return skipSimpleRaw(c)
}

// skipLimited is the bounded-recursion core shared by Skip and the packed
// engine, which calls it directly to measure packed-table entries without
// building an intermediate representation of them. limit bounds container
// and tag nesting depth, independent of (and not shared with) the
// recursion budget packed resolution uses internally when entering a
// container along the way.
func skipLimited(it *Cursor, limit int) Result {
	if limit == 0 {
		return Recursion
	}
	major, res := rawMajor(it)
	if res < 0 {
		return res
	}
	switch major {
	case majorArray, majorMap:
		var child Cursor
		var eres Result
		if major == majorMap {
			child, eres = it.EnterMap()
		} else {
			child, eres = it.EnterArray()
		}
		if eres < 0 {
			return eres
		}
		for !child.AtEnd() {
			if res = skipLimited(&child, limit-1); res < 0 {
				return res
			}
		}
		return it.LeaveContainer(&child)
	case majorTag:
		_, _, headLen, res2 := readHead(it.data, sizeWord)
		if res2 < 0 {
			return res2
		}
		it.data = it.data[headLen:]
		return skipLimited(it, limit-1)
	default:
		return skipSimpleRaw(it)
	}
}

// Skip consumes exactly one logical item at c's current position,
// regardless of nesting depth: a container, a tagged item, or a simple
// value.
func (c *Cursor) Skip() Result {
	return skipLimited(c, RecursionMax)
}

// GetSubCBOR returns the exact encoded byte span a full [Cursor.Skip]
// would consume from c's current position, without interpreting it, and
// advances c past it. The returned slice aliases c's underlying buffer.
func (c *Cursor) GetSubCBOR() ([]byte, Result) {
	start := c.data
	res := c.Skip()
	if res < 0 {
		return nil, res
	}
	return start[:len(start)-len(c.data)], OK
}
