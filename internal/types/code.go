package types

import "unicode/utf8"

// JokerCode marks wildcard items that may occupy any slot left unmatched.
const JokerCode Code = "*"

// Code is a short category identifier. One-character codes are general
// categories ("r"); two-character codes are specializations of the category
// named by their first character ("rd").
type Code string

// Len returns the number of characters in the code.
func (c Code) Len() int {
	return utf8.RuneCountInString(string(c))
}

// IsJoker reports whether the code is the wildcard code.
func (c Code) IsJoker() bool {
	return c == JokerCode
}

// Specific reports whether the code is a two-character specialization.
func (c Code) Specific() bool {
	return !c.IsJoker() && c.Len() == 2
}

// HasPrefix reports whether prefix is a leading part of c.
func (c Code) HasPrefix(prefix Code) bool {
	if prefix == "" || len(prefix) > len(c) {
		return false
	}
	return string(c)[:len(prefix)] == string(prefix)
}

// Valid reports whether the code is the joker or has one or two characters.
func (c Code) Valid() bool {
	if c.IsJoker() {
		return true
	}
	n := c.Len()
	return n >= 1 && n <= 2
}
