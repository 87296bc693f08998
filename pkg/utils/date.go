package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD. String vazia é válida
// e produz o zero value.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
