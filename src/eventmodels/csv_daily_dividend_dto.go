package eventmodels

type CsvDailyDividendDTO struct {
	Date     string `csv:"Date"`
	Dividend string `csv:"Dividend"`
}
