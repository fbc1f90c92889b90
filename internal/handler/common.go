package handler // handler package contains the HTTP handlers for the admin API

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The admin frontend is loose about numeric types: capacity, price and
// member ids arrive either as JSON numbers or as numeric strings depending
// on the form that produced them.  Handlers therefore bind request bodies
// into map[string]any and coerce the numeric fields explicitly instead of
// rejecting one of the two encodings at bind time.

// asNumber coerces a decoded JSON value into a float64.
func asNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("could not convert string to float: '%s'", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value is not numeric")
	}
}

// asInt coerces a decoded JSON value into an int64, rejecting fractions.
func asInt(v any) (int64, error) {
	f, err := asNumber(v)
	if err != nil {
		return 0, err
	}
	n := int64(f)
	if float64(n) != f {
		return 0, fmt.Errorf("value is not an integer")
	}
	return n, nil
}

// asString renders a decoded JSON value as a string.  Numbers are
// formatted without a trailing ".0" so a numeric room number round-trips
// cleanly.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// missingField returns the first required key absent from data, or "".
func missingField(data map[string]any, required ...string) string {
	for _, f := range required {
		if _, ok := data[f]; !ok {
			return f
		}
	}
	return ""
}
