package cbor

import "testing"

func TestGetDecimalFraction(t *testing.T) {
	// tag(4) [exponent=-2, mantissa=273] -> 2.73
	buf := []byte{
		0xC4,       // tag 4
		0x82,       // array, 2
		0x21,       // nint, arg 1 -> -2
		0x19, 0x01, 0x11, // uint 273
	}
	c := Init(buf)
	exp, mant, res := c.GetDecimalFraction()
	if res != OK {
		t.Fatalf("GetDecimalFraction: %v", res)
	}
	if exp != -2 || mant != 273 {
		t.Fatalf("got (%d, %d), want (-2, 273)", exp, mant)
	}
}

func TestGetDecimalFractionWrongTag(t *testing.T) {
	buf := []byte{0xC1, 0x82, 0x00, 0x00} // tag 1, not 4
	c := Init(buf)
	if _, _, res := c.GetDecimalFraction(); res != InvalidType {
		t.Fatalf("got %v, want InvalidType", res)
	}
}
