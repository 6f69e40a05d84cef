package cbor

import "math"

// decodeHalfFloat widens an IEEE-754 binary16 value to binary32. Normals
// and the infinity/NaN exponent are reconstructed by shifting the
// exponent and mantissa fields directly into a float32 bit pattern;
// subnormals are widened by scaling the raw mantissa by the constant
// 2^-24, the smallest representable binary16 subnormal step, so no
// float32 subnormal arithmetic is ever required.
func decodeHalfFloat(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1f
	mant := uint32(h & 0x3ff)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		const halfSubnormalStep = 103 << 23 // 2^-24 as a float32 bit pattern
		val := float32(mant) * math.Float32frombits(halfSubnormalStep)
		return math.Float32frombits(sign | math.Float32bits(val))
	case 0x1f:
		return math.Float32frombits(sign | 0x7f800000 | (mant << 13))
	default:
		return math.Float32frombits(sign | ((exp + (127 - 15)) << 23) | (mant << 13))
	}
}

// GetFloat reads a floating-point item encoded as binary16 or binary32,
// widening a half-precision value to float32, transparent to packed
// resolution. A double-precision item is [InvalidType]; use [Cursor.GetDouble]
// when the encoded width is not known ahead of time.
func (c *Cursor) GetFloat() (float32, Result) {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return 0, res
	}
	major, info, ok := peekMajor(working.data)
	if !ok {
		return 0, End
	}
	if major != majorFloat {
		return 0, InvalidType
	}
	switch info {
	case infoTwoByte:
		_, arg, headLen, res2 := readHead(working.data, sizeShort)
		if res2 < 0 {
			return 0, res2
		}
		working.advance(headLen)
		return decodeHalfFloat(uint16(arg)), OK
	case infoFourByte:
		_, arg, headLen, res2 := readHead(working.data, sizeWord)
		if res2 < 0 {
			return 0, res2
		}
		working.advance(headLen)
		return math.Float32frombits(uint32(arg)), OK
	default:
		return 0, InvalidType
	}
}

// GetDouble reads a floating-point item of any encoded width (binary16,
// binary32, or binary64), widening it to float64, transparent to packed
// resolution.
func (c *Cursor) GetDouble() (float64, Result) {
	working, _, res := c.resolvedFollowed(RecursionMax)
	if res < 0 {
		return 0, res
	}
	major, info, ok := peekMajor(working.data)
	if !ok {
		return 0, End
	}
	if major != majorFloat {
		return 0, InvalidType
	}
	switch info {
	case infoTwoByte:
		_, arg, headLen, res2 := readHead(working.data, sizeShort)
		if res2 < 0 {
			return 0, res2
		}
		working.advance(headLen)
		return float64(decodeHalfFloat(uint16(arg))), OK
	case infoFourByte:
		_, arg, headLen, res2 := readHead(working.data, sizeWord)
		if res2 < 0 {
			return 0, res2
		}
		working.advance(headLen)
		return float64(math.Float32frombits(uint32(arg))), OK
	case infoEightByte:
		_, arg, headLen, res2 := readHead(working.data, sizeLong)
		if res2 < 0 {
			return 0, res2
		}
		working.advance(headLen)
		return math.Float64frombits(arg), OK
	default:
		return 0, InvalidType
	}
}
