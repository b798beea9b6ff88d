package aggregation

import (
	"peilbuis/pkg/contracts/domain"
)

// IsAccurate reports whether a reading passes the quality filter.
func IsAccurate(r domain.Reading) bool {
	return r.Accuracy <= AccuracyThreshold
}

// FilterAccuracy partitions readings on AccuracyThreshold.
// One notice is produced per well that lost at least one reading; it carries
// the number of readings rejected for that well.
func FilterAccuracy(readings []domain.Reading) (accepted, rejected []domain.Reading, notices []domain.Notice) {
	counts := make(map[string]int)
	var order []string

	for _, r := range readings {
		if IsAccurate(r) {
			accepted = append(accepted, r)
			continue
		}
		rejected = append(rejected, r)
		if counts[r.WellID] == 0 {
			order = append(order, r.WellID)
		}
		counts[r.WellID]++
	}

	for _, wellID := range order {
		notices = append(notices, domain.Notice{
			WellID: wellID,
			Kind:   domain.NoticeAccuracy,
			Text:   accuracyNotice(counts[wellID]),
		})
	}

	return accepted, rejected, notices
}
