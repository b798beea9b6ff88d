// Package dataprocessing reads raw GPS survey files into domain readings.
//
// Two layouts are supported:
//
//   - Delimited text as exported by the survey controller: columns
//     FID, VID, X, Y, Z, accuracy, well_id in that order, one header line,
//     ";" as delimiter, UTF-16 encoded and a decimal point as separator.
//   - An Excel workbook (.xlsx) with the same columns on its first sheet.
//
// # Usage
//
//	parser := dataprocessing.NewParser(dataprocessing.DefaultOptions(), logger)
//	readings, err := parser.ParseFile("metingen.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Parsing is all or nothing. A row that lacks a required column aborts with
// an *errors.MissingColumnError naming the column and line; a value that is
// not a finite number aborts with an *errors.ParseError. Blank lines are
// skipped.
package dataprocessing
