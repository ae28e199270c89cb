package perfindex

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/perfindex/date"
)

// This file contains code to persist a dataset in a folder, in a way that is
// still human-readable and git-friendly.
//
// A dataset folder holds four JSONL files: one definition file mapping assets
// to currencies, and one file per date-indexed table. Table files hold one
// line per observed day, with the date under the reserved property "on" and
// one property per column that has a value on that day.

const attrOn = "on"

const (
	assetsFile  = "assets.jsonl"
	pricesFile  = "prices.jsonl"
	weightsFile = "weights.jsonl"
	ratesFile   = "rates.jsonl"
)

// DecodeTable parses a date-indexed table from its JSONL representation.
// filename is for error messages only.
func DecodeTable(filename string, r io.Reader) (*Table, error) {
	t := NewTable()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		jobj := make(map[string]any)
		if err := json.Unmarshal([]byte(line), &jobj); err != nil {
			return nil, fmt.Errorf("parse error %s:%v: not a correct json: %w", filename, i, err)
		}

		jvalue, ok := jobj[attrOn]
		if !ok {
			return nil, fmt.Errorf("parse error %s:%v: missing the property %q with a date", filename, i, attrOn)
		}
		jstring, ok := jvalue.(string)
		if !ok {
			return nil, fmt.Errorf("parse error %s:%v: property %q must be of type 'string'", filename, i, attrOn)
		}
		on, err := date.Parse(jstring)
		if err != nil {
			return nil, fmt.Errorf("parse error %s:%v: property %q must be a valid date: %w", filename, i, attrOn, err)
		}

		// Read all other attributes as (column, value) pairs.
		for key, value := range jobj {
			if key == attrOn {
				// reserved word for the date
				continue
			}
			v, ok := value.(float64)
			if !ok {
				return nil, fmt.Errorf("parse error %s:%v: property %q must be of type 'number'", filename, i, key)
			}
			t.Append(key, on, v)
		}
	}
	return t, nil
}

// EncodeTable writes a table in its JSONL representation: one line per day
// that has at least one observation, columns in alphabetical order for stable
// output.
func EncodeTable(w io.Writer, t *Table) error {
	keys := slices.Clone(t.Keys())
	slices.Sort(keys)

	histories := make([]*date.History[float64], 0, len(keys))
	for _, key := range keys {
		histories = append(histories, t.Column(key))
	}

	for day := range date.Iterate(histories...) {
		var jw jsonObjectWriter
		jw.Append(attrOn, day.String())
		for i, key := range keys {
			if v, ok := histories[i].Get(day); ok {
				jw.Append(key, v)
			}
		}
		b, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("persist error: cannot marshal day %s: %w", day, err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("persist error: cannot write to file: %w", err)
		}
	}
	return nil
}

// DecodeCurrencies parses the asset definition file mapping each asset to its
// currency code. filename is for error messages only.
func DecodeCurrencies(filename string, r io.Reader) (map[string]string, error) {
	// to parse a json, we use a dedicated local struct with tag annotation.
	type jasset struct {
		Asset    string `json:"asset"`
		Currency string `json:"currency"`
	}

	currencies := make(map[string]string)
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var ja jasset
		if err := json.Unmarshal(line, &ja); err != nil {
			return nil, fmt.Errorf("parse error %s:%v: %w", filename, i, err)
		}
		if ja.Asset == "" {
			return nil, fmt.Errorf("parse error %s:%v: missing the property \"asset\"", filename, i)
		}
		if _, exists := currencies[ja.Asset]; exists {
			log.Printf("parse warning %s:%v: asset %q is already defined", filename, i, ja.Asset)
			continue
		}
		currencies[ja.Asset] = ja.Currency
	}
	return currencies, nil
}

// EncodeCurrencies writes the asset definition file, assets in alphabetical
// order for stable output.
func EncodeCurrencies(w io.Writer, currencies map[string]string) error {
	type jasset struct {
		Asset    string `json:"asset"`
		Currency string `json:"currency"`
	}

	assets := make([]string, 0, len(currencies))
	for asset := range currencies {
		assets = append(assets, asset)
	}
	slices.Sort(assets)

	for _, asset := range assets {
		data, err := json.Marshal(jasset{Asset: asset, Currency: currencies[asset]})
		if err != nil {
			return fmt.Errorf("persist error: cannot marshal asset %q: %w", asset, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("persist error: cannot write to file: %w", err)
		}
	}
	return nil
}

// LoadDataset reads a dataset folder. The asset definition, price and weight
// files are required; a missing rate file yields an empty rate table, which
// treats every asset as carrying a constant rate of 1. The base currency is
// not persisted, the caller chooses it.
func LoadDataset(dir, base string) (Dataset, error) {
	d := Dataset{Base: base, Rates: NewTable()}

	name := filepath.Join(dir, assetsFile)
	f, err := os.Open(name)
	if err != nil {
		return Dataset{}, fmt.Errorf("load error: cannot open asset definition file %q: %w", name, err)
	}
	d.Currencies, err = DecodeCurrencies(name, f)
	f.Close()
	if err != nil {
		return Dataset{}, err
	}

	tables := []struct {
		file     string
		dst      **Table
		required bool
	}{
		{pricesFile, &d.Prices, true},
		{weightsFile, &d.Weights, true},
		{ratesFile, &d.Rates, false},
	}
	for _, tb := range tables {
		name := filepath.Join(dir, tb.file)
		f, err := os.Open(name)
		if err != nil {
			if os.IsNotExist(err) && !tb.required {
				continue
			}
			return Dataset{}, fmt.Errorf("load error: cannot open table file %q: %w", name, err)
		}
		t, err := DecodeTable(name, f)
		f.Close()
		if err != nil {
			return Dataset{}, err
		}
		*tb.dst = t
	}
	return d, nil
}

// SaveDataset writes a dataset folder, creating it if needed.
func SaveDataset(dir string, d Dataset) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("persist error: cannot create folder %q: %w", dir, err)
	}

	write := func(file string, encode func(io.Writer) error) error {
		name := filepath.Join(dir, file)
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("persist error: cannot create file %q: %w", name, err)
		}
		defer f.Close()
		log.Printf("create-dataset-file name=%q", name)
		return encode(f)
	}

	if err := write(assetsFile, func(w io.Writer) error { return EncodeCurrencies(w, d.Currencies) }); err != nil {
		return err
	}
	if err := write(pricesFile, func(w io.Writer) error { return EncodeTable(w, d.Prices) }); err != nil {
		return err
	}
	if err := write(weightsFile, func(w io.Writer) error { return EncodeTable(w, d.Weights) }); err != nil {
		return err
	}
	if d.Rates != nil && d.Rates.Len() > 0 {
		if err := write(ratesFile, func(w io.Writer) error { return EncodeTable(w, d.Rates) }); err != nil {
			return err
		}
	}
	return nil
}
