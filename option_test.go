package boundz

import "testing"

func TestOption_Some(t *testing.T) {
	o := Some(42)

	if !o.IsSome() || o.IsNone() {
		t.Error("Expected Some to be present")
	}
	if v, ok := o.Get(); !ok || v != 42 {
		t.Errorf("Expected Get to return (42, true), got (%d, %t)", v, ok)
	}
	if got := o.OrElse(7); got != 42 {
		t.Errorf("Expected OrElse to return held value 42, got %d", got)
	}
	if got := o.MustGet(); got != 42 {
		t.Errorf("Expected MustGet 42, got %d", got)
	}
	if got := o.String(); got != "Some(42)" {
		t.Errorf("Expected String 'Some(42)', got %q", got)
	}
}

func TestOption_None(t *testing.T) {
	o := None[int]()

	if o.IsSome() || !o.IsNone() {
		t.Error("Expected None to be absent")
	}
	if v, ok := o.Get(); ok || v != 0 {
		t.Errorf("Expected Get to return (0, false), got (%d, %t)", v, ok)
	}
	if got := o.OrElse(7); got != 7 {
		t.Errorf("Expected OrElse fallback 7, got %d", got)
	}
	if got := o.String(); got != "None" {
		t.Errorf("Expected String 'None', got %q", got)
	}
}

func TestOption_ZeroValueIsNone(t *testing.T) {
	var o Option[string]

	if !o.IsNone() {
		t.Error("Expected zero-value Option to be None")
	}
}

func TestOption_AbsenceDistinctFromZero(t *testing.T) {
	// Some(0) and None are different outcomes; absence is never conflated
	// with an in-domain zero.
	if Some(0) == None[int]() {
		t.Error("Expected Some(0) to differ from None")
	}
	if v, ok := Some(0).Get(); !ok || v != 0 {
		t.Errorf("Expected Some(0).Get() = (0, true), got (%d, %t)", v, ok)
	}
}

func TestOption_MustGetPanicsWhenAbsent(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected MustGet on None to panic")
		}
	}()

	None[int]().MustGet()
}
