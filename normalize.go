package decompound

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold brings a word into the form used by dictionaries: NFC composed and
// lowercased with German casing rules. Composition keeps umlauts a single
// code point, whatever form the input used.
func Fold(word string) string {
	// A Caser keeps state and must not be shared between goroutines.
	return cases.Lower(language.German).String(norm.NFC.String(word))
}

func reverseRunes(r []rune) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

func reverseString(s string) string {
	r := []rune(s)
	reverseRunes(r)
	return string(r)
}
