// Package decimal provides a fixed point base 36 number.
//
// The equation for a decimal number is:
//
//  number = value * 36 ^ -scale
//
// Where number is the fixed point number, value is an unscaled arbitrary
// precision integer, and scale is the count of fractional base 36 digits.
// For example:
//
//  1:i = 1i * 36^-1 = 54 / 36 = 1.5
//
// Canonical Form
//
// Decimals are kept in canonical form: zero digits at the low end of the
// fractional part are dropped (reducing the scale) and zero always has a
// scale of 0. Two decimals with the same numeric value therefore have the
// same value and scale.
//
// Text Format
//
// The integer and fractional digits are separated by the radix point ':'.
// An optional leading '+' or '-' gives the sign. Digits after the radix point
// set the scale, so "1:i0" parses to the canonical "1:i".
//
//  | Text      | Value   | Scale | Canonical |
//  |-----------|---------|-------|-----------|
//  | 0         | 0       | 0     | 0         |
//  | 0i0000:   | i0000   | 0     | i0000     |
//  | 0:i       | i       | 1     | 0:i       |
//  | -1:50     | -15     | 1     | -1:5      |
//  | hzzzzz:i  | hzzzzzi | 1     | hzzzzz:i  |
//  |-----------|---------|-------|-----------|
package decimal
