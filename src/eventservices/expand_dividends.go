package eventservices

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/dividend-expander/src/eventmodels"
)

func sortedByDate(dividends []*eventmodels.Dividend) []*eventmodels.Dividend {
	out := make([]*eventmodels.Dividend, len(dividends))
	copy(out, dividends)

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out
}

// daysBetween assumes both dates sit at midnight UTC, which holds for any
// date parsed with eventmodels.DateFormat.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// AvgDaysBetween returns the average number of days between consecutive
// dividend payments.
func AvgDaysBetween(dividends []*eventmodels.Dividend) (float64, error) {
	if len(dividends) < 2 {
		return 0, fmt.Errorf("%w: got %d", eventmodels.InsufficientDataErr, len(dividends))
	}

	sorted := sortedByDate(dividends)

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, float64(daysBetween(sorted[i-1].Date, sorted[i].Date)))
	}

	avg, err := stats.Mean(gaps)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate mean: %v", err)
	}

	return avg, nil
}

// LastDividendBefore returns the latest dividend strictly before the given
// date, or nil if no dividend precedes it.
func LastDividendBefore(dividends []*eventmodels.Dividend, date time.Time) *eventmodels.Dividend {
	var last *eventmodels.Dividend

	for _, d := range sortedByDate(dividends) {
		if !d.Date.Before(date) {
			break
		}

		last = d
	}

	return last
}

// DailyDividends spreads each payment evenly across the days until the next
// payment. A payment covers the period that follows it, so the last known
// payment date itself only appears in the output when predictFuture is set:
// in that case one extra period, sized by the rounded-up average payment
// interval, is projected from the last payment.
func DailyDividends(dividends []*eventmodels.Dividend, predictFuture bool) ([]*eventmodels.DailyDividend, error) {
	if len(dividends) < 2 {
		return nil, fmt.Errorf("%w: got %d", eventmodels.InsufficientDataErr, len(dividends))
	}

	sorted := sortedByDate(dividends)

	var days []*eventmodels.DailyDividend
	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1]

		gap := daysBetween(prev.Date, sorted[i].Date)
		if gap == 0 {
			return nil, fmt.Errorf("%w: %s", eventmodels.DuplicateDateErr, prev.Date.Format(eventmodels.DateFormat))
		}

		if prev.Dividend == nil {
			return nil, fmt.Errorf("%w: %s", eventmodels.MissingAmountErr, prev.Date.Format(eventmodels.DateFormat))
		}

		for d := 0; d < gap; d++ {
			days = append(days, &eventmodels.DailyDividend{
				Date:     prev.Date.AddDate(0, 0, d),
				Dividend: *prev.Dividend / float64(gap),
			})
		}
	}

	if predictFuture {
		last := sorted[len(sorted)-1]
		if last.Dividend == nil {
			return nil, fmt.Errorf("%w: %s", eventmodels.MissingAmountErr, last.Date.Format(eventmodels.DateFormat))
		}

		avg, err := AvgDaysBetween(sorted)
		if err != nil {
			return nil, err
		}

		// Round up: flooring would truncate the last predicted days.
		gap := int(math.Ceil(avg))
		for d := 0; d < gap; d++ {
			days = append(days, &eventmodels.DailyDividend{
				Date:     last.Date.AddDate(0, 0, d),
				Dividend: *last.Dividend / float64(gap),
			})
		}
	}

	return days, nil
}
