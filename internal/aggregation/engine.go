package aggregation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "peilbuis/internal/errors"
	"peilbuis/pkg/contracts/domain"
)

// Result is the outcome of one aggregation run.
type Result struct {
	// Wells holds one row per distinct well id of the input, in output order
	Wells []domain.WellAggregate
	// Notices lists every notice in the order it was generated
	Notices []domain.Notice
	Summary domain.AggregationSummary
}

var readingValidator = newReadingValidator()

func newReadingValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their column name in the survey file
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("csv"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Aggregate runs the full pipeline over readings. A reading without a well id
// aborts the batch with a *errors.MissingColumnError and no result.
// An empty batch yields an empty result.
func Aggregate(readings []domain.Reading) (*Result, error) {
	if err := validateReadings(readings); err != nil {
		return nil, err
	}

	accepted, rejected, accuracyNotices := FilterAccuracy(readings)
	reference := ComputeCentroids(accepted)
	outliers, deviationNotices := FilterDeviation(readings, reference)

	// The reported mean only uses readings that survived both filters
	final := centroidsWhere(readings, func(i int, r domain.Reading) bool {
		return IsAccurate(r) && !outliers[i]
	})

	wellIDs := distinctWellIDs(readings)

	var emptyNotices []domain.Notice
	for _, wellID := range wellIDs {
		if _, ok := final[wellID]; ok {
			continue
		}
		text := noAccurateValuesNotice
		if _, ok := reference[wellID]; ok {
			text = allRejectedNotice
		}
		emptyNotices = append(emptyNotices, domain.Notice{
			WellID: wellID,
			Kind:   domain.NoticeNoCentroid,
			Text:   text,
		})
	}

	notices := make([]domain.Notice, 0, len(accuracyNotices)+len(deviationNotices)+len(emptyNotices))
	notices = append(notices, accuracyNotices...)
	notices = append(notices, deviationNotices...)
	notices = append(notices, emptyNotices...)

	wells := BuildResults(wellIDs, final, Annotate(notices))

	summary := domain.AggregationSummary{
		Readings:         len(readings),
		Wells:            len(wellIDs),
		AccuracyRejected: len(rejected),
		WithoutCentroid:  len(emptyNotices),
	}
	for _, outlier := range outliers {
		if outlier {
			summary.DeviationRejected++
		}
	}
	for _, c := range final {
		summary.Averaged += c.Count
	}

	return &Result{
		Wells:   wells,
		Notices: notices,
		Summary: summary,
	}, nil
}

func validateReadings(readings []domain.Reading) error {
	for i := range readings {
		err := readingValidator.Struct(readings[i])
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if apperrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &apperrors.MissingColumnError{Column: fieldErrs[0].Field(), Index: i}
		}
		return err
	}
	return nil
}

func distinctWellIDs(readings []domain.Reading) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range readings {
		if seen[r.WellID] {
			continue
		}
		seen[r.WellID] = true
		ids = append(ids, r.WellID)
	}
	return ids
}
