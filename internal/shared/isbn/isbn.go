// Package isbn validates and generates ISBN-13 identifiers.
package isbn

import (
	"math/rand"
	"strings"
)

const length = 13

// IsValid reports whether s is a well-formed ISBN-13: exactly 13 ASCII
// digits whose final digit matches the EAN-13 check digit of the first
// twelve.
func IsValid(s string) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < length; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return int(s[length-1]-'0') == CheckDigit(s[:length-1])
}

// CheckDigit computes the EAN-13 check digit for the given 12 digit
// prefix. Digits at even positions weigh 1, odd positions weigh 3.
func CheckDigit(prefix string) int {
	sum := 0
	for i := 0; i < len(prefix); i++ {
		d := int(prefix[i] - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	if r := sum % 10; r != 0 {
		return 10 - r
	}
	return 0
}

// Generate returns a random valid ISBN-13.
func Generate() string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length-1; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	s := b.String()
	return s + string(byte('0'+CheckDigit(s)))
}
