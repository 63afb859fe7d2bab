// Package numparse coerces loosely formatted spreadsheet numbers into float64
//
// Both "1.234,56" and "1,234.56" read as 1234.56: when both separators appear the
// rightmost one is the decimal mark. A lone separator is always the decimal mark.
// Parsing never fails, anything that does not yield a finite number becomes 0
package numparse

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Parse converts v to a finite float64
// v may be nil, any Go numeric kind, json.Number or a string
func Parse(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return String(x)
	case json.Number:
		return String(string(x))
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	default:
		return 0
	}
}

// String parses a numeric-looking string with locale separator detection
func String(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	comma := strings.LastIndexByte(s, ',')
	dot := strings.LastIndexByte(s, '.')
	switch {
	case comma >= 0 && dot >= 0 && comma > dot:
		// 1.234,56
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case comma >= 0 && dot >= 0:
		// 1,234.56
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	}

	return finite(leading(strip(s)))
}

// strip drops everything but digits, '.' and '-'
func strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// leading parses the longest prefix of s shaped like -?digits[.digits]
// trailing garbage such as a second '.' or a '-' inside the number is ignored
func leading(s string) float64 {
	i := 0
	neg := false
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}
	intStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	intPart := s[intStart:i]

	fracPart := ""
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		fracPart = s[i+1 : j]
	}

	if intPart == "" && fracPart == "" {
		return 0
	}
	if intPart == "" {
		intPart = "0"
	}
	num := intPart
	if fracPart != "" {
		num += "." + fracPart
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if neg {
		f = -f
	}
	return f
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
