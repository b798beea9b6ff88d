package domain

// Reading is one raw GPS observation taken at a well.
// Readings are produced by the parser and never modified afterwards.
type Reading struct {
	ID        string  `json:"fid" csv:"FID"`
	VehicleID string  `json:"vid" csv:"VID"`
	X         float64 `json:"x" csv:"X"`
	Y         float64 `json:"y" csv:"Y"`
	Z         float64 `json:"z" csv:"Z"`
	Accuracy  float64 `json:"accuracy" csv:"accuracy"`
	WellID    string  `json:"well_id" csv:"well_id" validate:"required"`
}

// ReadingColumns is the column order of a raw survey file.
var ReadingColumns = []string{"FID", "VID", "X", "Y", "Z", "accuracy", "well_id"}
