package cbor

// Recognized packing tags (spec.md §6). The exact tag numbers are a
// build-time configuration detail the CBOR packed draft leaves to the
// implementation; these match the values NanoCBOR ships with.
const (
	TagPackedTable     = 113
	TagPackedRefShared = 6
)

// resolveOnce inspects the item at the front of cvalue's window and, if it
// is a supported packed-CBOR construct (a packing-table tag or a shared-
// item reference, short or long form), resolves it into out and returns
// OK. Otherwise it returns NotFound and leaves cvalue untouched beyond
// whatever partial advancement resolving itself required.
//
// cvalue is mutated in place for the "consume this much of the real
// stream" side of resolution (the tag head, and for a reference, the tag
// head plus the integer argument): once an item has been recognized as
// packed syntax, that syntax is gone from the stream regardless of what
// it resolves to, so the caller's cursor must move past it exactly once.
// out is populated to point at the reconstructed item and is what actual
// value-reads subsequently operate on.
func resolveOnce(cvalue *Cursor, out *Cursor, limit int) Result {
	if !cvalue.packedEnabled() {
		return NotFound
	}
	if limit == 0 {
		return Recursion
	}

	major, info, ok := peekMajor(cvalue.data)
	if !ok {
		return NotFound
	}

	switch major {
	case majorTag:
		tagMajor, tag, headLen, res := readHead(cvalue.data, sizeWord)
		if res < 0 || tagMajor != majorTag {
			return NotFound
		}
		switch tag {
		case TagPackedTable:
			cvalue.data = cvalue.data[headLen:]
			return consumeTable(cvalue, out, limit)
		case TagPackedRefShared:
			cvalue.data = cvalue.data[headLen:]
			working, _, res := cvalue.resolvedFollowed(limit)
			if res < 0 {
				return res
			}
			idxMajor, idxArg, idxHeadLen, res2 := readHead(working.data, sizeLong)
			if res2 < 0 || (idxMajor != majorUint && idxMajor != majorNint) {
				return PackedFormat
			}
			working.advance(idxHeadLen)
			var idx uint64
			if idxMajor == majorUint {
				idx = 16 + 2*idxArg
			} else {
				idx = 16 + 2*idxArg + 1
			}
			return followReference(working, out, idx, limit)
		default:
			return NotFound
		}
	case majorFloat:
		if info < 16 {
			cvalue.advance(1)
			return followReference(cvalue, out, uint64(info), limit)
		}
		return NotFound
	default:
		return NotFound
	}
}

// resolvedFollowed returns the cursor subsequent operations should read
// from: c itself, unchanged, if nothing packed is present (followed is
// false), or a freshly resolved cursor chased through any number of
// chained references until resolution stabilizes at NotFound (followed is
// true). It never mutates c's value-shape, only its position, and only
// when resolution actually consumed real-stream bytes (see resolveOnce).
func (c *Cursor) resolvedFollowed(limit int) (*Cursor, bool, Result) {
	if !c.packedEnabled() {
		return c, false, OK
	}
	if limit == 0 {
		return nil, false, Recursion
	}
	lim := limit - 1

	var out Cursor
	res := resolveOnce(c, &out, lim)
	if res == NotFound {
		return c, false, OK
	}
	if res < 0 {
		return nil, false, res
	}

	cur := out
	for {
		if lim == 0 {
			return nil, false, Recursion
		}
		lim--
		var next Cursor
		res = resolveOnce(&cur, &next, lim)
		if res == NotFound {
			break
		}
		if res < 0 {
			return nil, false, res
		}
		cur = next
	}
	return &cur, true, OK
}

// resolved is the value-returning form of resolvedFollowed for callers
// that only need the working cursor, not whether resolution happened.
func (c *Cursor) resolved(limit int) (Cursor, Result) {
	w, _, res := c.resolvedFollowed(limit)
	if res < 0 {
		return Cursor{}, res
	}
	return *w, OK
}

// consumeTable parses a packing-table tag's payload, a two-element array
// `[[entry0, entry1, ...], rump]`, appends the table literal to the
// outgoing cursor's active set, and points the outgoing cursor at the
// rump. cvalue must already be positioned just past the packing-table
// tag's head, at the start of the two-element array.
func consumeTable(cvalue *Cursor, out *Cursor, limit int) Result {
	arr, res := enterContainer(cvalue, false, majorArray)
	if res < 0 {
		if res == Recursion {
			return res
		}
		return PackedFormat
	}

	*out = Cursor{flags: flagPackedEnabled}
	out.copyTablesFrom(&arr)
	if int(out.numActiveTables) >= NestedTablesMax {
		return PackedMemory
	}

	major, _, ok := peekMajor(arr.data)
	if !ok || major != majorArray {
		return PackedFormat
	}
	tableBody := arr.data
	if res := skipLimited(&arr, limit-1); res < 0 {
		return res
	}
	tableLen := len(tableBody) - len(arr.data)
	newTable := table{data: tableBody[:tableLen]}

	rumpStart := arr.data
	if res := skipLimited(&arr, limit-1); res < 0 {
		return res
	}
	out.data = rumpStart[:len(rumpStart)-len(arr.data)]

	// Advance the real cursor past the whole two-element array via the
	// ordinary leave-container path, so a packing-table tag sitting
	// inside a definite container decrements its parent's remaining
	// count exactly like any other item. cvalue and out are always
	// distinct in this codebase's call graph (every call site passes a
	// fresh outgoing cursor); the comparison is kept to mirror the
	// source's own defensive check for a recursive variant that builds
	// the outgoing cursor without consuming the incoming one.
	if cvalue != out {
		if res := cvalue.LeaveContainer(&arr); res < 0 {
			return res
		}
	}

	out.tables[out.numActiveTables] = newTable
	out.numActiveTables++
	return OK
}

// followReference resolves shared-item index idx against cvalue's active
// table set, scanning innermost table first. On a hit, out is set to the
// selected item and carries only the tables that were in scope at or
// before the hit table's own definition (the hit table included), so an
// entry never sees a table defined after its own. An entry that refers
// back into its own table is still possible; such a cycle ends with
// [Recursion] once the limit is used up.
func followReference(cvalue *Cursor, out *Cursor, idx uint64, limit int) Result {
	num := int(cvalue.numActiveTables)
	for i := 0; i < num; i++ {
		t := cvalue.tables[num-1-i]
		if t.data == nil {
			return PackedFormat
		}
		tableCursor := Cursor{flags: flagPackedEnabled, data: t.data}
		tableCursor.copyTablesFrom(cvalue)

		child, res := enterContainer(&tableCursor, false, majorArray)
		if res < 0 {
			if res == Recursion {
				return res
			}
			return PackedFormat
		}

		var tableSize uint64
		if child.indefinite() {
			tableSize = ^uint64(0)
		} else {
			tableSize = child.remaining
		}

		if idx < tableSize {
			var j uint64
			for j < idx && !child.AtEnd() {
				if res := skipLimited(&child, limit); res < 0 {
					return res
				}
				j++
			}
			if child.AtEnd() {
				idx -= j
				continue
			}
			*out = child
			out.copyTablesFrom(cvalue)
			out.numActiveTables = uint8(num - i)
			return OK
		}
		idx -= tableSize
	}
	return PackedUndefinedReference
}
