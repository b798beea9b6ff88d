// Package shared holds code used by several packages without belonging to
// any of them.
//
// # Test Utilities
//
// The testutil subpackage provides:
//
//	- BufferedSlogHandler, a slog.Handler that keeps records for assertions
//	- WriteSurveyFile, which writes readings as a UTF-16 survey export
//
// testutil is only imported from _test.go files.
package shared
