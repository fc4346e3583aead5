package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDecimal parses decimal text into a float64, rounding to nearest even.
// "nan", "inf", "infinity", "-inf" and "-infinity" are accepted in any case.
// Values too large for a float64 become infinities.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan":
		return math.NaN(), nil
	case "inf", "+inf", "infinity", "+infinity":
		return math.Inf(1), nil
	case "-inf", "-infinity":
		return math.Inf(-1), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}
