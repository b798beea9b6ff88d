// Package aggregation turns raw GPS survey readings into one averaged
// coordinate per well.
//
// The pipeline runs in a single pass over an in-memory batch:
//
//  1. Quality filter: readings with an accuracy above AccuracyThreshold are
//     rejected (the boundary itself is accepted).
//  2. Mean estimator: a reference centroid per well is computed from the
//     accepted readings.
//  3. Deviation filter: every reading of the batch, including the ones the
//     quality filter rejected, is compared with its well's reference
//     centroid. A reading deviating more than MaxDeviationX, MaxDeviationY or
//     MaxDeviationZ on any axis is an outlier.
//  4. Annotator: rejection notices are collected as (well, text) pairs and
//     merged into one message per well, without duplicates.
//  5. Result builder: the reported coordinate is the mean of the readings
//     that passed both filters, rounded to three decimals, and the wells are
//     sorted with "-mv" wells last.
//
// Wells for which no coordinate can be computed are still reported, with nil
// coordinates and a notice explaining why.
//
// # Usage
//
//	result, err := aggregation.Aggregate(readings)
//	if err != nil {
//	    return err // *errors.MissingColumnError, nothing was produced
//	}
//	for _, well := range result.Wells {
//	    fmt.Println(well.WellID, well.Message)
//	}
//
// Aggregate holds no state between calls; the same readings always produce
// the same result.
package aggregation
