package pricing

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SarthakPDalvi/quant-research/internal/model"
)

// csvDateLayout matches the vendor export format, e.g. "10/31/23".
const csvDateLayout = "1/2/06"

// LoadCSV reads a Dates,Prices history file and builds a series.
// Rows with unparseable prices are skipped rather than failing the load,
// matching how the vendor files occasionally carry blank cells.
func LoadCSV(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	header := rows[0]
	dateCol, priceCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "dates", "date":
			dateCol = i
		case "prices", "price":
			priceCol = i
		}
	}
	if dateCol < 0 || priceCol < 0 {
		return nil, fmt.Errorf("%s: expected Dates and Prices columns, got %v", path, header)
	}

	points := make([]model.PricePoint, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if len(row) <= dateCol || len(row) <= priceCol {
			continue
		}
		date, err := time.Parse(csvDateLayout, strings.TrimSpace(row[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad date %q", path, n+2, row[dateCol])
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[priceCol]), 64)
		if err != nil {
			continue
		}
		points = append(points, model.PricePoint{Date: date, Price: price})
	}
	return NewSeries(points)
}
