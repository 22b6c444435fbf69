// Package report renders calibration summaries.
//
// Every renderer implements calsum.Sink and writes to an io.Writer:
//   - text: the plain two-line summary
//   - styled: a bordered panel for interactive terminals
//   - json, yaml: machine-readable documents including per-line values
//   - table: one row per input line plus totals
//
// The pseudo-format "auto" resolves to styled on a terminal and to text otherwise.
package report
