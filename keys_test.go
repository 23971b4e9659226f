package texelfw

import "testing"

func TestKeyConstants(t *testing.T) {
	if KeyMin != 0o401 {
		t.Errorf("KeyMin = %o, want 401", KeyMin)
	}
	if KeyMax != 0o777 {
		t.Errorf("KeyMax = %o, want 777", KeyMax)
	}
	if KeyMin > KeyMax {
		t.Errorf("KeyMin (%o) should not exceed KeyMax (%o)", KeyMin, KeyMax)
	}
	if KeyResize < KeyMin || KeyResize > KeyMax {
		t.Errorf("KeyResize (%o) should fall within [KeyMin, KeyMax]", KeyResize)
	}
}

func TestF(t *testing.T) {
	if F(0) != KeyF0 {
		t.Errorf("F(0) = %o, want KeyF0 (%o)", F(0), KeyF0)
	}
	if got, want := F(5), KeyF0+5; got != want {
		t.Errorf("F(5) = %o, want %o", got, want)
	}
}
