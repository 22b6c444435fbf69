package calibration

import (
	"strconv"
	"strings"

	"github.com/vvka-141/calsum/pkg/calsum"
)

// Scan finds the first and last digit in text and combines them into a
// calibration value. It never fails: a line without digits yields a zero
// result with both indices set to calsum.NotFound.
func Scan(text string) calsum.LineResult {
	result := calsum.LineResult{
		FirstIndex: calsum.NotFound,
		LastIndex:  calsum.NotFound,
	}

	for digit := range calsum.DigitNames {
		if index := FindFirst(text, digit); index != calsum.NotFound &&
			(result.FirstIndex == calsum.NotFound || index < result.FirstIndex) {
			result.First = digit
			result.FirstIndex = index
		}

		if index := FindLast(text, digit); index > result.LastIndex {
			result.Last = digit
			result.LastIndex = index
		}
	}

	result.Value = result.First*10 + result.Last
	return result
}

// FindFirst returns the earliest byte offset at which digit occurs in text,
// as a numeral or as its word, or calsum.NotFound.
func FindFirst(text string, digit int) int {
	if !isDigit(digit) {
		return calsum.NotFound
	}

	numeral := strings.Index(text, strconv.Itoa(digit))
	word := strings.Index(text, calsum.DigitNames[digit])

	switch {
	case numeral == -1:
		return normalize(word)
	case word == -1:
		return numeral
	default:
		return min(numeral, word)
	}
}

// FindLast returns the latest byte offset at which digit occurs in text,
// as a numeral or as its word, or calsum.NotFound.
func FindLast(text string, digit int) int {
	if !isDigit(digit) {
		return calsum.NotFound
	}

	numeral := strings.LastIndex(text, strconv.Itoa(digit))
	word := strings.LastIndex(text, calsum.DigitNames[digit])

	return normalize(max(numeral, word))
}

func isDigit(digit int) bool {
	return digit >= 0 && digit < len(calsum.DigitNames)
}

// normalize maps the strings package's -1 onto calsum.NotFound.
func normalize(index int) int {
	if index < 0 {
		return calsum.NotFound
	}
	return index
}
