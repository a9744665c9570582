// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// whitespaceRun matches the same characters as \s in browser regexps,
	// which is wider than RE2's ASCII-only \s.
	whitespaceRun   = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)
	disallowedRunes = regexp.MustCompile(`[^a-z0-9_]`)
	underscoreRun   = regexp.MustCompile(`_{2,}`)
)

// SanitizeName normalizes a free-text label into a token made of lowercase
// ASCII letters, digits and single underscores.
//
// Steps, in order:
//  1. lowercase;
//  2. canonical decomposition with combining marks removed ("café" -> "cafe");
//  3. every whitespace run becomes one underscore;
//  4. everything outside [a-z0-9_] is dropped;
//  5. underscore runs collapse into one underscore.
//
// Leading and trailing underscores are kept: names are sanitized while the
// user is still typing and an edge underscore may be followed by more text.
//
// Example:
//
//	utils.SanitizeName("André   Özil!!") // "andre_ozil"
func SanitizeName(input string) string {
	if input == "" {
		return ""
	}

	s := strings.ToLower(input)
	s = stripDiacritics(s)
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = disallowedRunes.ReplaceAllString(s, "")
	s = underscoreRun.ReplaceAllString(s, "_")

	return s
}

// stripDiacritics decomposes s (NFD) and removes nonspacing marks.
// On a transformer failure s is returned as is; step 4 of SanitizeName then
// drops the non-ASCII letters.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return result
}
