package opcode

import "testing"

func TestArmOpcodeRoundTripsThroughLittleEndianWrapper(t *testing.T) {
	for _, v := range []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF, 0xE3A01005} {
		o := NewArm(v)
		if got := o.Uint32(); got != v {
			t.Errorf("NewArm(%#x).Uint32() = %#x, want %#x", v, got, v)
		}
	}
}

func TestThumbOpcodeRoundTripsThroughLittleEndianWrapper(t *testing.T) {
	for _, v := range []uint16{0, 1, 0xBEEF, 0xFFFF, 0x4770} {
		o := NewThumb(v)
		if got := o.Uint16(); got != v {
			t.Errorf("NewThumb(%#x).Uint16() = %#x, want %#x", v, got, v)
		}
	}
}

func TestArmOpcodeString(t *testing.T) {
	o := NewArm(0xE3A01005)
	if got, want := o.String(), "0xe3a01005"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestArmOpcodeGoString(t *testing.T) {
	o := NewArm(1)
	want := "00000000000000000000000000000001"
	if got := o.GoString(); got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
}

func TestThumbOpcodeString(t *testing.T) {
	o := NewThumb(0x4770)
	if got, want := o.String(), "0x4770"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestThumbOpcodeGoString(t *testing.T) {
	o := NewThumb(1)
	want := "0000000000000001"
	if got := o.GoString(); got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
}

func TestThumbSizeConstant(t *testing.T) {
	if Size != 2 {
		t.Errorf("Size = %d, want 2", Size)
	}
}
