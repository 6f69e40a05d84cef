package cbor

import (
	"testing"

	"pgregory.net/rapid"
)

// encodeHead renders a canonical (minimal-width) CBOR head for the given
// major type and argument, the inverse of readHead, for building test
// fixtures without hand-written hex.
func encodeHead(major int, arg uint64) []byte {
	b := byte(major) << 5
	switch {
	case arg < 24:
		return []byte{b | byte(arg)}
	case arg <= 0xFF:
		return []byte{b | infoOneByte, byte(arg)}
	case arg <= 0xFFFF:
		return []byte{b | infoTwoByte, byte(arg >> 8), byte(arg)}
	case arg <= 0xFFFFFFFF:
		return []byte{b | infoFourByte, byte(arg >> 24), byte(arg >> 16), byte(arg >> 8), byte(arg)}
	default:
		out := []byte{b | infoEightByte}
		for i := 56; i >= 0; i -= 8 {
			out = append(out, byte(arg>>uint(i)))
		}
		return out
	}
}

func TestPropertyUint64Roundtrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Uint64().Draw(rt, "v")
		c := Init(encodeHead(majorUint, v))
		got, res := c.GetUint64()
		if res != OK {
			rt.Fatalf("GetUint64: %v", res)
		}
		if got != v {
			rt.Fatalf("got %d, want %d", got, v)
		}
		if !c.AtEnd() {
			rt.Fatalf("cursor not fully consumed")
		}
	})
}

func TestPropertySkipMeasuresExactLength(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Uint64Range(0, 1<<40).Draw(rt, "v")
		major := rapid.SampledFrom([]int{majorUint, majorNint}).Draw(rt, "major")
		head := encodeHead(major, v)
		trailing := rapid.SliceOfN(rapid.Byte(), 0, 8).Draw(rt, "trailing")
		buf := append(append([]byte{}, head...), trailing...)

		c := Init(buf)
		sub, res := c.GetSubCBOR()
		if res != OK {
			rt.Fatalf("GetSubCBOR: %v", res)
		}
		if len(sub) != len(head) {
			rt.Fatalf("skip consumed %d bytes, want %d", len(sub), len(head))
		}
		if len(c.data) != len(trailing) {
			rt.Fatalf("cursor left %d bytes, want %d", len(c.data), len(trailing))
		}
	})
}

func TestPropertyTstrRoundtrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bs := rapid.SliceOfN(rapid.ByteRange(0x20, 0x7e), 0, 40).Draw(rt, "s")
		s := string(bs)
		buf := append(encodeHead(majorTstr, uint64(len(s))), []byte(s)...)

		c := Init(buf)
		got, res := c.GetTstr()
		if res != OK {
			rt.Fatalf("GetTstr: %v", res)
		}
		if got != s {
			rt.Fatalf("got %q, want %q", got, s)
		}
		if !c.AtEnd() {
			rt.Fatalf("cursor not fully consumed")
		}
	})
}

// TestPropertyEnterLeaveIsIdentityModuloOneItem exercises invariant 2 and
// the "enter . leave is the identity modulo advancement by one item" law:
// after walking every element of a freshly entered array and leaving it,
// the parent cursor sits exactly where it would if the whole array had
// been skipped as a single item.
func TestPropertyEnterLeaveIsIdentityModuloOneItem(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(rt, "n")
		buf := append([]byte{}, encodeHead(majorArray, uint64(n))...)
		for i := 0; i < n; i++ {
			buf = append(buf, encodeHead(majorUint, uint64(i))...)
		}
		trailing := rapid.SliceOfN(rapid.Byte(), 0, 4).Draw(rt, "trailing")
		buf = append(buf, trailing...)

		c := Init(buf)
		arr, res := c.EnterArray()
		if res != OK {
			rt.Fatalf("EnterArray: %v", res)
		}
		for !arr.AtEnd() {
			if _, res := arr.GetUint64(); res != OK {
				rt.Fatalf("GetUint64: %v", res)
			}
		}
		if res := c.LeaveContainer(&arr); res != OK {
			rt.Fatalf("LeaveContainer: %v", res)
		}
		if len(c.data) != len(trailing) {
			rt.Fatalf("left %d bytes, want %d", len(c.data), len(trailing))
		}
	})
}

// TestPropertyPackedTransparentEqualsUnpacked exercises invariant 4:
// decoding a packed document and decoding its already-substituted
// ("unpacked") equivalent must yield the same sequence of typed values.
func TestPropertyPackedTransparentEqualsUnpacked(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Uint64Range(0, 1000).Draw(rt, "v")

		// Packed: tag(113) [[v], [<ref 0>]]
		table := append([]byte{0x81}, encodeHead(majorUint, v)...)
		rump := append([]byte{0x81}, []byte{0xE0}...) // array of 1: short ref 0
		packed := append([]byte{0xD9, 0x00, 0x71, 0x82}, table...)
		packed = append(packed, rump...)

		// Unpacked: [v] directly.
		unpacked := append([]byte{0x81}, encodeHead(majorUint, v)...)

		pc := InitPacked(packed)
		parr, res := pc.EnterArray()
		if res != OK {
			rt.Fatalf("EnterArray(packed): %v", res)
		}
		pv, res := parr.GetUint64()
		if res != OK {
			rt.Fatalf("GetUint64(packed): %v", res)
		}

		uc := Init(unpacked)
		uarr, res := uc.EnterArray()
		if res != OK {
			rt.Fatalf("EnterArray(unpacked): %v", res)
		}
		uv, res := uarr.GetUint64()
		if res != OK {
			rt.Fatalf("GetUint64(unpacked): %v", res)
		}

		if pv != uv {
			rt.Fatalf("packed=%d unpacked=%d", pv, uv)
		}
	})
}
