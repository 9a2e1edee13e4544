package docquery

import "unicode/utf8"

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Successor returns the smallest string greater than every string that
// starts with s, under byte-wise (equivalently code point) ordering.
//
// For valid UTF-8 the last code point is incremented; trailing U+10FFFF runes
// cannot be incremented and are dropped first. When s is not valid UTF-8, or
// holds nothing but U+10FFFF runes, no valid UTF-8 bound exists and the
// successor is computed over bytes instead.
func Successor(s string) string {
	if utf8.ValidString(s) {
		runes := []rune(s)
		for i := len(runes) - 1; i >= 0; i-- {
			r := runes[i]
			if r >= utf8.MaxRune {
				continue
			}
			r++
			if r >= surrogateMin && r <= surrogateMax {
				r = surrogateMax + 1
			}
			return string(runes[:i]) + string(r)
		}
	}
	return byteSuccessor(s)
}

// byteSuccessor drops trailing 0xFF bytes and increments the last remaining
// byte. A string made only of 0xFF bytes gets one more appended, which bounds
// every extension of s that is valid UTF-8.
func byteSuccessor(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 0xFF {
			b[i]++
			return string(b[:i+1])
		}
	}
	return s + "\xff"
}
