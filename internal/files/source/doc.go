// Package source provides calsum.LineSource implementations.
//
// Sources differ only in where lines come from:
//   - FromReader: any io.Reader, e.g. standard input
//   - FromFile: a file opened through a filesystem.FileSystemProvider
//
// Lines are yielded without their terminating newline. Trimming is left to
// the consumer.
package source
