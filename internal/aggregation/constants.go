package aggregation

import "fmt"

const (
	// AccuracyThreshold is the highest accepted instrument accuracy. It is also
	// the accuracy reported for every well.
	AccuracyThreshold = 0.02

	// Maximum allowed absolute deviation from the well centroid per axis
	MaxDeviationX = 10.0
	MaxDeviationY = 10.0
	MaxDeviationZ = 3.0

	// MVSuffix marks wells that are sorted after all other wells
	MVSuffix = "-mv"

	// MessageSeparator joins the notices of one well
	MessageSeparator = ", "

	coordinateDecimals = 3
)

const (
	noAccurateValuesNotice = "no values within accuracy limit, no average computed"
	allRejectedNotice      = "all values rejected, no average computed"
)

func accuracyNotice(count int) string {
	return fmt.Sprintf("accuracy exceeds 0.02, value filtered. Total: %d values", count)
}

func deviationNotice(count int) string {
	return fmt.Sprintf("value deviates more than allowed units, not included in average. Total: %d values", count)
}
