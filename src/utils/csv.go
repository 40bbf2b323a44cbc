package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/jiaming2012/dividend-expander/src/eventmodels"
)

// ImportDividends reads a two-column dividend history CSV. The first row is
// discarded unconditionally: Yahoo always exports with a header, and the
// header text is not validated. The result is returned in file order; it is
// the caller's job to sort before any date-interval math.
func ImportDividends(path string) ([]*eventmodels.Dividend, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: '%s'", eventmodels.SourceNotFoundErr, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}

	defer f.Close()

	reader := csv.NewReader(f)

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read header: %v", err)
	}

	var dividends []*eventmodels.Dividend
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row: %v", err)
		}

		if len(record) < 2 {
			return nil, fmt.Errorf("invalid row: %v", record)
		}

		dividend, err := eventmodels.NewDividend(record[0], record[1])
		if err != nil {
			return nil, err
		}

		dividends = append(dividends, dividend)
	}

	return dividends, nil
}

// ExportDailyDividends writes the daily series in the order given. Records
// arrive in ascending date order by construction; re-sorting here would hide
// a producer bug.
func ExportDailyDividends(path string, days []*eventmodels.DailyDividend) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}

	defer f.Close()

	rows := make([]*eventmodels.CsvDailyDividendDTO, 0, len(days))
	for _, d := range days {
		rows = append(rows, d.ToDTO())
	}

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("failed to marshal CSV: %v", err)
	}

	return nil
}
