// Package calibration extracts calibration values from lines of text.
//
// The calibration package is responsible for:
//   - Finding the first and last digit of a line, written either as a
//     numeral ("7") or as an English word ("seven")
//   - Combining them into a two-digit value
//   - Summing values across an input while counting lines without digits
//
// Each digit's two forms are searched independently over the whole line,
// so overlapping spellings such as "eightwo" yield both 8 and 2.
package calibration
