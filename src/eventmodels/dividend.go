package eventmodels

import (
	"fmt"
	"strconv"
	"time"
)

// DateFormat matches the date column of a Yahoo dividend history export.
const DateFormat = "2006-01-02"

// Dividend is a single recorded dividend payment. The amount is the
// quarterly percent return. A nil amount marks a date-only event, used by
// lookups that never read the amount.
type Dividend struct {
	Date     time.Time
	Dividend *float64
}

// NewDividend builds a Dividend from raw CSV text. An empty dividendStr
// yields a date-only event.
func NewDividend(dateStr string, dividendStr string) (*Dividend, error) {
	date, err := time.Parse(DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': got '%s'", InvalidDateFormatErr, DateFormat, dateStr)
	}

	var dividend *float64
	if dividendStr != "" {
		v, err := strconv.ParseFloat(dividendStr, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to convert dividend '%s' to float: %v", dividendStr, err)
		}

		dividend = &v
	}

	return &Dividend{
		Date:     date,
		Dividend: dividend,
	}, nil
}

func (d *Dividend) Equal(other *Dividend) bool {
	if other == nil {
		return false
	}

	if !d.Date.Equal(other.Date) {
		return false
	}

	if d.Dividend == nil || other.Dividend == nil {
		return d.Dividend == other.Dividend
	}

	return *d.Dividend == *other.Dividend
}

func (d *Dividend) String() string {
	if d.Dividend == nil {
		return fmt.Sprintf("(%s, nil)", d.Date.Format(DateFormat))
	}

	return fmt.Sprintf("(%s, %v)", d.Date.Format(DateFormat), *d.Dividend)
}
