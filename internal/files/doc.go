// Package files locates survey input files on disk.
//
// Discovery lists the survey exports in a directory (.txt, .csv and .xlsx),
// leaving out result tables written by earlier runs, and resolves a command
// line argument that may name either a file or a directory.
//
// Example usage:
//
//	discovery := files.NewDiscovery(".", "_resultaten")
//
//	// Pick the newest export in a directory
//	input, err := discovery.Resolve("metingen")
package files
