// Package files groups the input-side sub-packages.
//
//   - filesystem: read-only filesystem abstraction (OS and in-memory)
//   - source: calsum.LineSource implementations over readers, slices and files
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/calsum/internal/files/filesystem"
//	    "github.com/vvka-141/calsum/internal/files/source"
//	)
//
//	src := source.FromFile(filesystem.NewOSFileSystem(), "input.txt")
//	summary, err := calibration.NewAggregator(logger).Aggregate(src)
package files
