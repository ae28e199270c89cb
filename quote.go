package perfindex

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file fetches live intraday quotes, ahead of the official daily close
// that eventually lands in the dataset. Quotes are read from Lang & Schwarz
// (chart endpoint, nested JSON walked with jsonpath) for currency pairs, and
// from Tradegate (refresh endpoint) for securities by ISIN.

// instrument ids of the currency pairs quoted on the ls-tc chart endpoint.
var lsInstruments = map[string]string{
	"EUR/USD": "349938",
}

/*
	{
	    "info": {
	        "isin": "LS000IUSD016",
	        "chartType": "mini",
	        ...
	    },
	    "series": {
	        "intraday": {
	            "data": [[1756624200000, 1.0702], ...]
	        }
	    }
	}
*/

// LatestRate returns the last intraday exchange rate for a currency pair such
// as "EUR/USD". Pairs without a known instrument id fail.
func LatestRate(pair string) (float64, error) {
	instrument, ok := lsInstruments[pair]
	if !ok {
		return math.NaN(), fmt.Errorf("no live instrument known for pair %q", pair)
	}
	addr := "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=" + instrument + "&series=intraday&type=mini"
	var jobj any
	err := JSONGet(new(http.Client), addr, &jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", pair, err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", pair, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", pair, path, "not a float", jval)
	}
	return val, nil
}

// LatestQuote returns the last value exchanged on Tradegate for the asset with
// the given ISIN. Tradegate quotes in EUR regardless of the asset's own
// currency.
func LatestQuote(name, isin string) (float64, error) {

	base := "https://www.tradegate.de/refresh.php?isin="
	addr := base + isin

	var jobj map[string]any

	err := JSONGet(new(http.Client), addr, &jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", name, err)
	}
	// last is the last transaction, moves slower than the bid, but the bid can be 0.
	jval := jobj["last"] // or bid
	if s, ok := jval.(string); ok {
		if s == "./." {
			// trade gate show's empty last this way, use the bid instead
			log.Println("'last' is empty, falling back to 'bid'")
			jval = jobj["bid"]
		}
	}
	val, ok := jval.(float64)
	if !ok {
		// sometimes, this weird API returns the value as a string
		sval, ok := jval.(string)
		if !ok {
			return math.NaN(), fmt.Errorf("cannot read value from %q: doesn't have a value and neither a float or string", name)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("cannot read value from %q: value is an invalid string %q: %w", name, sval, err)
		}
	}
	if val == 0 {
		// sometimes the bid is empty and returns 0
		return math.NaN(), fmt.Errorf("empty bid for %s no value to return: bidsize=%v", name, jobj["bidsize"])
	}
	return val, nil
}
