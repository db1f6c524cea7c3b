// Package series loads historical close-price series from CSV files.
//
// The loader accepts the export formats of common market-data providers:
// it finds the date column among "date"/"datetime"/"time" and the price
// column among anything containing "close", "price", or "last"
// (case-insensitive), strips currency symbols and thousands separators,
// drops unparseable rows, and sorts ascending by date.
package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Errors returned by series loading and slicing.
var (
	ErrNoDateColumn  = errors.New("series: no date column found")
	ErrNoCloseColumn = errors.New("series: no close/price column found")
	ErrEmptySeries   = errors.New("series: no valid rows")
	ErrDateNotFound  = errors.New("series: date not in series")
	ErrDateOrder     = errors.New("series: start date must be before end date")
)

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
	time.RFC3339,
}

// Point is one dated close price.
type Point struct {
	Date  time.Time
	Close float64
}

// Series is a close-price series sorted ascending by date.
type Series struct {
	points []Point
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.points)
}

// Points returns the underlying points, sorted ascending by date.
func (s *Series) Points() []Point {
	return s.points
}

// Closes returns the close prices in date order.
func (s *Series) Closes() []float64 {
	out := make([]float64, len(s.points))
	for i, pt := range s.points {
		out[i] = pt.Close
	}

	return out
}

// index returns the position of date, or -1.
func (s *Series) index(date time.Time) int {
	y, m, d := date.Date()

	for i, pt := range s.points {
		py, pm, pd := pt.Date.Date()
		if py == y && pm == m && pd == d {
			return i
		}
	}

	return -1
}

// Contains reports whether the series has a point on the given date.
func (s *Series) Contains(date time.Time) bool {
	return s.index(date) >= 0
}

// Range returns the closes from start through end inclusive. Both dates
// must exist in the series and start must precede end.
func (s *Series) Range(start, end time.Time) ([]float64, error) {
	si := s.index(start)
	if si < 0 {
		return nil, fmt.Errorf("%w: %s", ErrDateNotFound, start.Format("2006-01-02"))
	}

	ei := s.index(end)
	if ei < 0 {
		return nil, fmt.Errorf("%w: %s", ErrDateNotFound, end.Format("2006-01-02"))
	}

	if si >= ei {
		return nil, ErrDateOrder
	}

	return s.Closes()[si : ei+1], nil
}

// MaxPredictionSteps returns how many points follow end, for comparing a
// simulated horizon against realized prices.
func (s *Series) MaxPredictionSteps(end time.Time) (int, error) {
	ei := s.index(end)
	if ei < 0 {
		return 0, fmt.Errorf("%w: %s", ErrDateNotFound, end.Format("2006-01-02"))
	}

	return len(s.points) - 1 - ei, nil
}

// LoadFile reads a CSV price series from path.
func LoadFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads a CSV price series from r.
func Load(r io.Reader) (*Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("series: failed to read CSV header: %w", err)
	}

	dateCol, closeCol, err := findColumns(header)
	if err != nil {
		return nil, err
	}

	var points []Point

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			continue // skip malformed rows
		}

		if len(row) <= dateCol || len(row) <= closeCol {
			continue
		}

		date, ok := parseDate(strings.TrimSpace(row[dateCol]))
		if !ok {
			continue
		}

		close, ok := parseClose(strings.TrimSpace(row[closeCol]))
		if !ok {
			continue
		}

		points = append(points, Point{Date: date, Close: close})
	}

	if len(points) == 0 {
		return nil, ErrEmptySeries
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return &Series{points: points}, nil
}

// findColumns locates the date and close columns in the header.
func findColumns(header []string) (dateCol, closeCol int, err error) {
	dateCol, closeCol = -1, -1

	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))

		if dateCol < 0 {
			switch name {
			case "date", "datetime", "time":
				dateCol = i
			}
		}

		if closeCol < 0 && i != dateCol {
			if strings.Contains(name, "close") ||
				strings.Contains(name, "price") ||
				strings.Contains(name, "last") {
				closeCol = i
			}
		}
	}

	if dateCol < 0 {
		return 0, 0, fmt.Errorf("%w: columns are %s", ErrNoDateColumn, strings.Join(header, ", "))
	}

	if closeCol < 0 {
		return 0, 0, fmt.Errorf("%w: columns are %s", ErrNoCloseColumn, strings.Join(header, ", "))
	}

	return dateCol, closeCol, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseClose parses a price cell, tolerating currency symbols and
// thousands separators ("$1,234.56").
func parseClose(s string) (float64, bool) {
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}

	return v, true
}
