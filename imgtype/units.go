// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgtype

import (
	"fmt"
	"math"
	"strings"
)

// BaseDimension indexes the seven SI base dimensions used by Units.
type BaseDimension int

const (
	Length BaseDimension = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity
	numBaseDimensions
)

var baseSymbolsASCII = [numBaseDimensions]string{"m", "kg", "s", "A", "K", "mol", "cd"}
var baseSymbolsUnicode = [numBaseDimensions]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// Units is a physical unit expressed as powers of the seven SI base
// dimensions plus a power-of-ten SI prefix, per spec.md §6.
type Units struct {
	Exponents [numBaseDimensions]int8
	// Prefix is the power of ten of the SI prefix (e.g. -6 for micro, 3 for kilo).
	Prefix int8
}

// NewUnits builds a Units value, e.g. NewUnits(Length, 1) for meters.
func NewUnits(dim BaseDimension, exp int8) Units {
	var u Units
	u.Exponents[dim] = exp
	return u
}

// Micrometers is the default spatial unit pixel sizes are usually given in.
func Micrometers() Units {
	u := NewUnits(Length, 1)
	u.Prefix = -6
	return u
}

// Dimensionless is the zero value: no units attached.
func Dimensionless() Units { return Units{} }

// IsDimensionless reports whether every exponent is zero (the SI prefix may
// still be non-zero, e.g. a pure scale factor).
func (u Units) IsDimensionless() bool {
	for _, e := range u.Exponents {
		if e != 0 {
			return false
		}
	}
	return true
}

// Mul returns the unit product of u and o (exponents add).
func (u Units) Mul(o Units) Units {
	var r Units
	for i := range u.Exponents {
		r.Exponents[i] = u.Exponents[i] + o.Exponents[i]
	}
	r.Prefix = u.Prefix + o.Prefix
	return r
}

// Div returns the unit quotient u/o (exponents subtract).
func (u Units) Div(o Units) Units {
	var r Units
	for i := range u.Exponents {
		r.Exponents[i] = u.Exponents[i] - o.Exponents[i]
	}
	r.Prefix = u.Prefix - o.Prefix
	return r
}

// Pow raises the unit to the given power: every exponent (and the prefix's
// power of ten) is multiplied by p.
func (u Units) Pow(p int8) Units {
	var r Units
	for i := range u.Exponents {
		r.Exponents[i] = u.Exponents[i] * p
	}
	r.Prefix = u.Prefix * p
	return r
}

// prefixSymbol returns the conventional SI prefix symbol for a power of ten,
// or "" with ok=false if there is no single-letter symbol for it.
func prefixSymbol(p int8) (string, bool) {
	switch p {
	case -12:
		return "p", true
	case -9:
		return "n", true
	case -6:
		return "u", true
	case -3:
		return "m", true
	case 0:
		return "", true
	case 3:
		return "k", true
	case 6:
		return "M", true
	case 9:
		return "G", true
	}
	return "", false
}

// String formats Units deterministically: SI prefix followed by each
// non-zero base dimension in canonical order (Length, Mass, Time, Current,
// Temperature, Amount, Luminosity), each as "symbol^exp" (exp 1 omitted).
// String formatting is ASCII; use StringUnicode for the unicode variant
// that renders exponents as superscripts.
func (u Units) String() string {
	return u.format(baseSymbolsASCII[:], false)
}

// StringUnicode is the unicode-superscript variant of String.
func (u Units) StringUnicode() string {
	return u.format(baseSymbolsUnicode[:], true)
}

var superscriptDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

func toSuperscript(s string) string {
	var b strings.Builder
	for _, r := range s {
		if sup, ok := superscriptDigits[r]; ok {
			b.WriteRune(sup)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (u Units) format(symbols []string, unicode bool) string {
	var b strings.Builder
	if pfx, ok := prefixSymbol(u.Prefix); ok {
		b.WriteString(pfx)
	} else if u.Prefix != 0 {
		fmt.Fprintf(&b, "e%d*", u.Prefix)
	}
	wrote := false
	for i, e := range u.Exponents {
		if e == 0 {
			continue
		}
		if wrote {
			b.WriteString(unicodeDot(unicode))
		}
		b.WriteString(symbols[i])
		if e != 1 {
			exp := fmt.Sprintf("%d", e)
			if unicode {
				b.WriteString(toSuperscript(exp))
			} else {
				b.WriteString("^")
				b.WriteString(exp)
			}
		}
		wrote = true
	}
	if !wrote && b.Len() == 0 {
		return "1"
	}
	return b.String()
}

func unicodeDot(unicode bool) string {
	if unicode {
		return "·"
	}
	return "."
}

// PixelSize is the physical magnitude + unit attached to one spatial
// dimension of an image.
type PixelSize struct {
	Magnitude float64
	Units     Units
}

// IsSet reports whether this pixel size carries a non-default magnitude.
func (p PixelSize) IsSet() bool {
	return p.Magnitude != 0 && !math.IsNaN(p.Magnitude)
}

func (p PixelSize) String() string {
	if !p.IsSet() {
		return ""
	}
	return fmt.Sprintf("%g %s", p.Magnitude, p.Units.String())
}
