package gbfs

import (
	"strconv"
	"strings"
)

// GBFS producers are inconsistent about scalar types: station ids show up
// as strings or numbers, counts as ints, floats, or quoted numbers, and
// renting flags as 0/1 or booleans. These helpers normalize whatever
// arrives so the rest of the pipeline only ever sees clean values.

// asString normalizes an id field that can be a string or a number.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return ""
}

// asCount normalizes a count field to a non-negative int.
// Non-numeric or missing values become 0.
func asCount(v any) int {
	var n int
	switch val := v.(type) {
	case float64:
		n = int(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		n = int(f)
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

// asEpoch normalizes an epoch-seconds field to int64.
func asEpoch(v any) int64 {
	switch val := v.(type) {
	case float64:
		return int64(val)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// asBool normalizes a flag field that can be a bool or a 0/1 value.
func asBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val == "1" || strings.EqualFold(val, "true")
	}
	return false
}
