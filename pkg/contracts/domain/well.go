package domain

// WellAggregate is the averaged, annotated result for one well.
type WellAggregate struct {
	WellID   string   `json:"well_id"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Z        *float64 `json:"z"`
	Accuracy float64  `json:"accuracy"`
	Message  string   `json:"message"`
}

// HasCentroid reports whether coordinates could be computed for the well.
func (w WellAggregate) HasCentroid() bool {
	return w.X != nil && w.Y != nil && w.Z != nil
}

// NoticeKind identifies which filter produced a notice
type NoticeKind string

const (
	NoticeAccuracy   NoticeKind = "accuracy"
	NoticeDeviation  NoticeKind = "deviation"
	NoticeNoCentroid NoticeKind = "no_centroid"
)

// Notice is a rejection message attached to a well.
type Notice struct {
	WellID string     `json:"well_id"`
	Kind   NoticeKind `json:"kind"`
	Text   string     `json:"text"`
}

// AggregationSummary holds per-batch counters.
type AggregationSummary struct {
	Readings          int `json:"readings"`
	Wells             int `json:"wells"`
	AccuracyRejected  int `json:"accuracy_rejected"`
	DeviationRejected int `json:"deviation_rejected"`
	Averaged          int `json:"averaged"`
	WithoutCentroid   int `json:"without_centroid"`
}

// ResultHeaders is the header row of the exported result table.
var ResultHeaders = []string{"putnummer", "X", "Y", "Z", "Nauwkeurigheid", "Melding"}
