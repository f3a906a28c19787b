package event

import "testing"

func TestParseKeySym(t *testing.T) {
	for ks := range keySymNames {
		ks2, err := ParseKeySym(ks.String())
		if err != nil {
			t.Fatal(err)
		}
		if ks2 != ks {
			t.Fatalf("%v != %v", ks2, ks)
		}
	}
	if ks, err := ParseKeySym("BackSpace"); err != nil || ks != KSymBackspace {
		t.Fatal(ks, err)
	}
	if ks, err := ParseKeySym("a"); err != nil || ks != KeySym('a') {
		t.Fatal(ks, err)
	}
	if _, err := ParseKeySym("nokey"); err == nil {
		t.Fatal("expected error")
	}
}

func TestMouseButtons(t *testing.T) {
	mb, err := ParseMouseButton("Left")
	if err != nil {
		t.Fatal(err)
	}
	bs := MouseButtons(mb) | MouseButtons(ButtonRight)
	if !bs.Has(ButtonLeft) || !bs.Has(ButtonRight) || bs.Has(ButtonMiddle) {
		t.Fatal(bs)
	}
	if bs.Is(ButtonLeft) {
		t.Fatal(bs)
	}
	if _, err := ParseMouseButton("side"); err == nil {
		t.Fatal("expected error")
	}
}

func TestKeySymSet(t *testing.T) {
	var s KeySymSet
	if s.Has(KSymLeft) {
		t.Fatal("nil set has key")
	}
	s = NewKeySymSet(KSymLeft, KSymDelete)
	if !s.Has(KSymLeft) || !s.Has(KSymDelete) || s.Has(KSymRight) {
		t.Fatal(s)
	}
}
