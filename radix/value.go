// Copyright 2020 Aleksandr Demakin. All rights reserved.

package radix

// Value is a magnitude together with the base it was parsed from or is rendered into.
type Value struct {
	Magnitude Nat
	Base      Base
}

// Parse decodes text in base b into a Value.
func Parse(text string, b Base) (Value, error) {
	n, err := Decode(text, b)
	if err != nil {
		return Value{}, err
	}
	return Value{Magnitude: n, Base: b}, nil
}

// In returns the same magnitude with another base.
func (v Value) In(b Base) Value {
	return Value{Magnitude: v.Magnitude, Base: b}
}

// String encodes the magnitude in v's base.
func (v Value) String() string {
	return Encode(v.Magnitude, v.Base)
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return v.String() + " (base " + v.Base.String() + ")"
}
