package eventmodels

import (
	"strconv"
	"time"
)

// DailyDividend is one day's allocated share of a dividend payment. Unlike
// Dividend, the amount is always present.
type DailyDividend struct {
	Date     time.Time
	Dividend float64
}

func (d *DailyDividend) ToDTO() *CsvDailyDividendDTO {
	return &CsvDailyDividendDTO{
		Date:     d.Date.Format(DateFormat),
		Dividend: strconv.FormatFloat(d.Dividend, 'f', -1, 64),
	}
}
