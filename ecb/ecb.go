// Package ecb fetches daily foreign-exchange reference rates published by the
// European Central Bank.
//
// The ECB publishes one historical CSV file, zipped, with one row per
// business day and one column per currency, all quoted against the euro.
// Rates against any other base currency are derived by crossing through the
// euro.
package ecb

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/etnz/perfindex"
	"github.com/etnz/perfindex/date"
)

// historyURL is the ECB historical reference-rates archive, overridable in
// tests.
var historyURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist.zip"

const historyFile = "eurofxref-hist.csv"

// Fetch downloads the ECB reference rates and returns a rate table quoting
// every requested currency against base, restricted to the requested range.
// The base currency itself is never a column of the result, its rate is 1 by
// definition.
func Fetch(base string, currencies []string, r date.Range) (*perfindex.Table, error) {
	log.Println("Downloading from ECB:", historyURL)

	resp, err := http.Get(historyURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download from ECB: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download from ECB: received status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	zipReader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive from ECB response: %w", err)
	}

	for _, f := range zipReader.File {
		if f.Name != historyFile {
			continue
		}
		csvFile, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %q from zip archive: %w", f.Name, err)
		}
		defer csvFile.Close()

		history, err := parseHistory(csvFile)
		if err != nil {
			return nil, err
		}
		return crossRates(history, base, currencies, r)
	}

	return nil, fmt.Errorf("could not find %q in the downloaded zip file", historyFile)
}

// day holds the euro-quoted rates observed on one date.
type day struct {
	on    date.Date
	rates map[string]float64 // currency code to units per euro
}

// parseHistory reads the ECB historical CSV: a header row naming the currency
// columns, then one row per business day, most recent first. Cells with no
// published rate hold "N/A" and are skipped.
func parseHistory(r io.Reader) ([]day, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // trailing comma yields a ragged last column

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("not enough records in csv to parse rates")
	}

	header := records[0]
	if len(header) < 2 || header[0] != "Date" {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}

	days := make([]day, 0, len(records)-1)
	for i, record := range records[1:] {
		on, err := date.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid date %q: %w", i+2, record[0], err)
		}
		d := day{on: on, rates: make(map[string]float64)}
		for col := 1; col < len(record) && col < len(header); col++ {
			cell := strings.TrimSpace(record[col])
			code := strings.TrimSpace(header[col])
			if cell == "" || cell == "N/A" || code == "" {
				continue
			}
			rate, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid rate %q for %s: %w", i+2, cell, code, err)
			}
			d.rates[code] = rate
		}
		days = append(days, d)
	}
	return days, nil
}

// crossRates converts euro-quoted rates into a table quoting each requested
// currency against base: the value of one unit of the currency expressed in
// base units. Days where either leg of the cross is unpublished are skipped;
// the gap is filled downstream by calendar normalization.
func crossRates(history []day, base string, currencies []string, r date.Range) (*perfindex.Table, error) {
	t := perfindex.NewTable()
	for _, d := range history {
		if !r.Contains(d.on) {
			continue
		}
		for _, code := range currencies {
			if code == base {
				continue
			}
			rate, ok := cross(d.rates, code, base)
			if !ok {
				continue
			}
			t.Append(code, d.on, rate)
		}
	}
	if t.Len() == 0 && len(currencies) > 0 {
		return nil, fmt.Errorf("no ECB rate found for %s against %s in %s to %s", strings.Join(currencies, ","), base, r.From, r.To)
	}
	return t, nil
}

// cross returns the value of one unit of code in base units, from euro-quoted
// rates (units per euro).
func cross(rates map[string]float64, code, base string) (float64, bool) {
	perEuro := func(c string) (float64, bool) {
		if c == "EUR" {
			return 1, true
		}
		v, ok := rates[c]
		return v, ok && v != 0
	}
	codeRate, ok := perEuro(code)
	if !ok {
		return 0, false
	}
	baseRate, ok := perEuro(base)
	if !ok {
		return 0, false
	}
	// one code unit = 1/codeRate euro = baseRate/codeRate base units.
	return baseRate / codeRate, true
}
