package rawarray

import "testing"

func TestFlagString(t *testing.T) {
	cases := []struct {
		flags uint64
		want  string
	}{
		{0, "LittleEndian"},
		{FlagBigEndian, "BigEndian"},
		{FlagEncoded, "LittleEndian RLE"},
		{FlagBigEndian | FlagBits, "BigEndian BitArray"},
		{1 << 7, "LittleEndian Unknown"},
	}
	for _, c := range cases {
		if got := FlagString(c.flags); got != c.want {
			t.Errorf("FlagString(%#x) = %q, want %q", c.flags, got, c.want)
		}
	}
}

func TestElementTypeString(t *testing.T) {
	names := map[ElementType]string{
		User:       "user",
		Int:        "int",
		Uint:       "uint",
		Float:      "float",
		Complex:    "complex",
		BrainFloat: "bfloat",
	}
	for e, want := range names {
		if !e.Valid() {
			t.Errorf("%s should be valid", want)
		}
		if got := e.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", uint64(e), got, want)
		}
	}
	if ElementType(6).Valid() {
		t.Error("tag 6 is reserved, not valid")
	}
}
