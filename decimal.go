package cbor

// DecimalFractionTag is the RFC 8949 tag number for a decimal fraction: a
// two-element array [exponent, mantissa] meaning mantissa * 10^exponent.
const DecimalFractionTag = 4

// GetDecimalFraction reads a decimal-fraction tagged item (tag 4, a
// two-element array of [exponent, mantissa]), transparent to packed
// resolution at every level: the tag itself and either array element may
// be a packed reference.
func (c *Cursor) GetDecimalFraction() (exponent int32, mantissa int32, res Result) {
	tag, res := c.GetTag()
	if res < 0 {
		return 0, 0, res
	}
	if tag != DecimalFractionTag {
		return 0, 0, InvalidType
	}

	arr, res := c.EnterArray()
	if res < 0 {
		return 0, 0, res
	}
	exponent, res = arr.GetInt32()
	if res < 0 {
		return 0, 0, res
	}
	mantissa, res = arr.GetInt32()
	if res < 0 {
		return 0, 0, res
	}
	if !arr.AtEnd() {
		return 0, 0, InvalidType
	}
	if res = c.LeaveContainer(&arr); res < 0 {
		return 0, 0, res
	}
	return exponent, mantissa, OK
}
