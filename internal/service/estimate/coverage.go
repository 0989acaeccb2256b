package estimate

import (
	"regexp"
	"strconv"
	"strings"

	"paint-quote/internal/constants"
)

var (
	coverageRangeRe  = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*[-–—]\s*(\d+(?:\.\d+)?)`)
	coverageSingleRe = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)
)

// ParseCoverageRange turns catalog text such as "140-160" or "140–160 sq.ft/L"
// into a rate. A range gives its midpoint, a lone number gives itself and
// anything else gives the default of 100.
func ParseCoverageRange(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return constants.DefaultCoverageRate
	}

	if m := coverageRangeRe.FindStringSubmatch(text); m != nil {
		a, errA := strconv.ParseFloat(m[1], 64)
		b, errB := strconv.ParseFloat(m[2], 64)
		if errA == nil && errB == nil && a+b > 0 {
			return (a + b) / 2
		}
		return constants.DefaultCoverageRate
	}

	if m := coverageSingleRe.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil && v > 0 {
			return v
		}
	}

	return constants.DefaultCoverageRate
}

func (e *Engine) CoverageRate(text string) float64 {
	key := "coverage:" + text
	if v, ok := e.lookup(key); ok {
		if rate, ok := v.(float64); ok {
			return rate
		}
	}

	rate := ParseCoverageRange(text)
	e.store(key, rate)
	return rate
}
