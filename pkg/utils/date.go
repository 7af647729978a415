package utils

import "time"

// ParseDate interpreta datas YYYY-MM-DD. String vazia resulta em nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// MonthRange retorna o primeiro e o último dia do mês de reference
func MonthRange(reference time.Time) (time.Time, time.Time) {
	start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// PreviousPeriod retorna o período MM/YYYY anterior ao informado
func PreviousPeriod(year int, month int) (int, int) {
	previous := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return previous.Year(), int(previous.Month())
}
