package cli

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		v   float64
		err bool
	}{
		{"3.14", 3.14, false},
		{" -2.5 ", -2.5, false},
		{"1e3", 1000, false},
		{"-0", math.Copysign(0, -1), false},
		{"inf", math.Inf(1), false},
		{"Infinity", math.Inf(1), false},
		{"+INF", math.Inf(1), false},
		{"-inf", math.Inf(-1), false},
		{"-Infinity", math.Inf(-1), false},
		{"1e400", math.Inf(1), false},
		{"-1e400", math.Inf(-1), false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := ParseDecimal(test.s)
			if test.err {
				a.Error(err)
				return
			}
			if a.NoError(err) {
				a.Equal(math.Float64bits(test.v), math.Float64bits(v))
			}
		})
	}

	for _, s := range []string{"nan", "NaN", " NAN"} {
		v, err := ParseDecimal(s)
		a.NoError(err)
		a.True(math.IsNaN(v))
	}
}
