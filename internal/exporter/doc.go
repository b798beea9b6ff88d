// Package exporter writes the aggregated well table to disk.
//
// Two formats are available behind the Writer interface:
//
// XLSXWriter: one worksheet with the header row putnummer, X, Y, Z,
// Nauwkeurigheid, Melding and numeric coordinate cells shown with three
// decimals. Wells without coordinates get empty cells.
//
// CSVWriter: the same table as comma separated text with a UTF-8 BOM so
// spreadsheet applications detect the encoding.
//
// Example usage:
//
//	w, err := exporter.New(cfg.Output, logger)
//	if err != nil {
//	    return err
//	}
//	err = w.Write("metingen_resultaten.xlsx", result.Wells)
//
// An empty table still produces a file holding only the header row.
package exporter
