package names

import "strings"

// upperSegments lists the name fragments that render fully uppercased so
// converted identifiers read like hand-written Objective-C (myURL, not
// myUrl).
var upperSegments = wordSet("url", "http", "https")

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func lowerByte(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

func upperByte(c byte) byte {
	if isLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

// ToCamelCase converts a schema element name into a CamelCase identifier.
//
// The input is scanned into segments: a digit starts a new segment unless it
// follows a digit, a lowercase letter unless it follows a letter, and an
// uppercase letter unless it follows an uppercase letter. Consecutive
// uppercase letters therefore stay together as one segment, and a lowercase
// letter extends an uppercase run rather than splitting it. Every other byte
// is a separator: it is dropped and forces the next alphanumeric to open a
// new segment.
//
// Segments are reassembled with their first byte uppercased. Segments in the
// acronym table come back fully uppercased, and when the leading segment is
// one of them the result keeps its capital letter even when firstCapitalized
// is false.
func ToCamelCase(input string, firstCapitalized bool) string {
	var segments []string
	var current []byte

	lastWasNumber := false
	lastWasLower := false
	lastWasUpper := false
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case isDigit(c):
			if !lastWasNumber {
				segments = append(segments, string(current))
				current = current[:0]
			}
			current = append(current, c)
			lastWasNumber, lastWasLower, lastWasUpper = true, false, false
		case isLower(c):
			// Lowercase continues either a lowercase or an uppercase run.
			if !lastWasLower && !lastWasUpper {
				segments = append(segments, string(current))
				current = current[:0]
			}
			current = append(current, c)
			lastWasNumber, lastWasLower, lastWasUpper = false, true, false
		case isUpper(c):
			if !lastWasUpper {
				segments = append(segments, string(current))
				current = current[:0]
			}
			current = append(current, lowerByte(c))
			lastWasNumber, lastWasLower, lastWasUpper = false, false, true
		default:
			lastWasNumber, lastWasLower, lastWasUpper = false, false, false
		}
	}
	segments = append(segments, string(current))

	var result strings.Builder
	firstSegmentForcesUpper := false
	for _, segment := range segments {
		allUpper := upperSegments[segment]
		if allUpper && result.Len() == 0 {
			firstSegmentForcesUpper = true
		}
		for j := 0; j < len(segment); j++ {
			if j == 0 || allUpper {
				result.WriteByte(upperByte(segment[j]))
			} else {
				result.WriteByte(segment[j])
			}
		}
	}
	out := result.String()
	if len(out) != 0 && !firstCapitalized && !firstSegmentForcesUpper {
		out = string(lowerByte(out[0])) + out[1:]
	}
	return out
}

// UnCamelCaseEnumShortName maps a CamelCased enum value name back to its
// SCREAMING_SNAKE_CASE spelling: an underscore lands before every uppercase
// letter past the first byte and everything is uppercased.
func UnCamelCaseEnumShortName(name string) string {
	var result strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if i > 0 && isUpper(c) {
			result.WriteByte('_')
		}
		result.WriteByte(upperByte(c))
	}
	return result.String()
}
