package cbor

// enterContainer implements EnterArray/EnterMap for the resolved working
// cursor "it", producing a child cursor over the container body. It
// mirrors decoder.c's _enter_container, including the SHARED_ORIGIN
// tagging: a container entered from a cursor that packed resolution
// rewrote (it's not the same object the caller started with) is marked
// so LeaveContainer knows the child lives inside a table slice unrelated
// to the parent's own stream.
func enterContainer(it *Cursor, wasFollowed bool, major int) (Cursor, Result) {
	var child Cursor
	if it.packedEnabled() {
		child.flags = flagPackedEnabled
		if wasFollowed {
			child.flags |= flagSharedOrigin
		}
	}

	if len(it.data) == 0 {
		return Cursor{}, End
	}
	valueMatch := byte(major<<5) | infoIndefinite
	if it.data[0] == valueMatch {
		child.flags |= flagIndefinite | flagInContainer
		child.data = it.data[1:]
		child.copyTablesFrom(it)
		return child, OK
	}

	gotMajor, arg, headLen, res := readHead(it.data, sizeLong)
	if res < 0 {
		return Cursor{}, res
	}
	if gotMajor != major {
		return Cursor{}, InvalidType
	}
	child.flags |= flagInContainer
	child.remaining = arg
	child.data = it.data[headLen:]
	child.copyTablesFrom(it)
	return child, OK
}

// EnterArray enters the array at c's current position, returning a child
// cursor positioned at the first element. c is not advanced; advancement
// happens when the child is later passed to [Cursor.LeaveContainer].
func (c *Cursor) EnterArray() (Cursor, Result) {
	start, startRemaining := c.data, c.remaining
	working, followed, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return Cursor{}, res
	}
	if followed {
		// Resolution moved c past the packed syntax; put it back so that
		// LeaveContainer's one-item skip consumes that syntax exactly once.
		c.data, c.remaining = start, startRemaining
	}
	return enterContainer(working, followed, majorArray)
}

// EnterMap enters the map at c's current position, returning a child
// cursor positioned at the first key. The remaining-item count is the
// pair count doubled, so each key or value read decrements it once.
func (c *Cursor) EnterMap() (Cursor, Result) {
	start, startRemaining := c.data, c.remaining
	working, followed, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return Cursor{}, res
	}
	if followed {
		c.data, c.remaining = start, startRemaining
	}
	child, res := enterContainer(working, followed, majorMap)
	if res < 0 {
		return Cursor{}, res
	}
	if !child.indefinite() {
		if child.remaining > (^uint64(0))/2 {
			return Cursor{}, Overflow
		}
		child.remaining *= 2
	}
	return child, OK
}

// LeaveContainer advances c past the container that was entered into
// child. child must be a fully-consumed container ([Cursor.AtEnd] true).
// If child was materialized from a shared-table reference, c is advanced
// by skipping exactly one item at c's own position instead of adopting
// child's cursor, since child's data lives in a table slice unrelated to
// c's stream.
func (c *Cursor) LeaveContainer(child *Cursor) Result {
	if !child.inContainer() || !child.AtEnd() {
		return InvalidType
	}
	if child.sharedOrigin() {
		return skipLimited(c, RecursionMax)
	}

	// child.data is always a suffix of c.data when not shared-origin
	// (enterContainer slices it directly off c's own window); a child
	// window longer than c's own means it did not come from here.
	if len(child.data) > len(c.data) {
		return InvalidType
	}

	if c.inContainer() {
		if c.remaining > 0 {
			c.remaining--
		}
	}
	if child.indefinite() {
		c.data = child.data[1:]
	} else {
		c.data = child.data
	}
	return OK
}
