// Package services wires the survey pipeline together.
//
// SurveyService validates the input, parses the survey file, runs the
// aggregation engine and writes the result table. Every run gets a trace ID
// that is attached to its log records, and each stage runs in its own span:
//
//	survey.process
//	├── survey.parse
//	├── survey.aggregate
//	└── survey.export
//
// Failures are reported as *errors.AppError values. A missing column is a
// VALIDATION error, an unparseable number a PARSING error and a failed write
// a STORAGE error. The underlying cause stays reachable through errors.As.
//
// Opener hands the finished result file to the default application of the
// desktop. It is best effort: callers log its error and carry on.
package services
