package cbor

import "testing"

func TestPackedTableSingleEntryReference(t *testing.T) {
	// D9 00 71 (tag 113) 82 (array,2) 81 18 2A (table=[42]) 81 E0 (rump=[<ref 0>])
	buf := []byte{0xD9, 0x00, 0x71, 0x82, 0x81, 0x18, 0x2A, 0x81, 0xE0}
	c := InitPacked(buf)

	rump, res := c.EnterArray()
	if res != OK {
		t.Fatalf("EnterArray: %v", res)
	}
	v, res := rump.GetUint8()
	if res != OK {
		t.Fatalf("GetUint8 through reference: %v", res)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
	if !rump.AtEnd() {
		t.Fatalf("expected rump exhausted after its one element")
	}
}

func TestPackedCyclicReferenceTerminates(t *testing.T) {
	// D9 00 71 82 81 E0 81 E0: table = [<ref 0>] (an entry referencing
	// itself), rump = [<ref 0>].
	buf := []byte{0xD9, 0x00, 0x71, 0x82, 0x81, 0xE0, 0x81, 0xE0}
	c := InitPacked(buf)

	rump, res := c.EnterArray()
	if res != OK {
		t.Fatalf("EnterArray: %v", res)
	}
	_, res = rump.GetUint8()
	if res != Recursion && res != PackedUndefinedReference {
		t.Fatalf("cyclic reference result = %v, want Recursion or PackedUndefinedReference", res)
	}
}

func TestPackedPlainIntegerIsNotAReference(t *testing.T) {
	// table = [42] (one entry, index 0 valid); rump holds the plain
	// integer 5, which is outside the table's index range.
	buf := []byte{
		0xD9, 0x00, 0x71, // tag 113
		0x82,             // array, 2
		0x81, 0x18, 0x2A, // table = [42]
		0x81, 0x05, // rump = [5]
	}
	c := InitPacked(buf)
	rump, res := c.EnterArray()
	if res != OK {
		t.Fatalf("EnterArray: %v", res)
	}
	// 0x05 here is a plain uint 5, not a reference: confirm it decodes
	// as an ordinary integer (packed resolution must not kick in for
	// major-0 items), proving references are recognized structurally
	// rather than by coincidental value.
	v, res := rump.GetUint8()
	if res != OK || v != 5 {
		t.Fatalf("GetUint8 = %d, %v, want 5, OK", v, res)
	}
}

func TestInitPackedWithTableExternalLookup(t *testing.T) {
	// External table bytes: an array literal [10, 20, 30].
	table := []byte{0x83, 0x0A, 0x14, 0x1E}
	// Document: a short-form reference to index 1 (value 20).
	buf := []byte{0xE1}
	c := InitPackedWithTable(buf, table)

	v, res := c.GetUint8()
	if res != OK {
		t.Fatalf("GetUint8: %v", res)
	}
	if v != 20 {
		t.Fatalf("got %d, want 20", v)
	}
}
