package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var StringLength = utf8.RuneCountInString

var StringToLower = strings.ToLower

var StringToUpper = strings.ToUpper

var StringInsensitiveMatch = strings.EqualFold

func ArrayMatchString(a []string, match string) bool {
	for _, x := range a {
		if x == match {
			return true
		}
	}
	return false
}

func ArrayInsensitiveMatchString(a []string, match string) bool {
	for _, x := range a {
		if StringInsensitiveMatch(x, match) {
			return true
		}
	}
	return false
}

// IsBlank reports whether a string contains nothing but whitespace.
func IsBlank(a string) bool {
	for _, r := range a {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
