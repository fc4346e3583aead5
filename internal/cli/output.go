package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/avdva/numconv/ieee754"
	"github.com/avdva/numconv/radix"
)

// floatRecord is the cbor form of ieee754.FloatParts.
// Value is encoded as a number, cbor has no problem with NaN and infinities.
type floatRecord struct {
	Precision int     `cbor:"precision"`
	Sign      uint8   `cbor:"sign"`
	Exponent  uint16  `cbor:"exponent"`
	Mantissa  uint64  `cbor:"mantissa"`
	Bits      uint64  `cbor:"bits"`
	Value     float64 `cbor:"value"`
	Special   string  `cbor:"special"`
}

type radixRecord struct {
	Input  string `json:"input" cbor:"input"`
	From   int    `json:"from" cbor:"from"`
	Output string `json:"output" cbor:"output"`
	To     int    `json:"to" cbor:"to"`
}

var cborMode cbor.EncMode

func init() {
	var err error
	// deterministic encoding with the shortest lossless float width.
	if cborMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
}

func writeParts(env *Env, parts ieee754.FloatParts) error {
	switch env.Output {
	case OutputJSON:
		return writeJSON(env, parts)
	case OutputCBOR:
		return writeCBOR(env, floatRecord{
			Precision: int(parts.Precision),
			Sign:      parts.Sign,
			Exponent:  parts.Exponent,
			Mantissa:  parts.Mantissa,
			Bits:      parts.Bits,
			Value:     parts.Value,
			Special:   parts.Special.String(),
		})
	}
	exact := "-"
	if d, ok := parts.ExactDecimal(); ok {
		exact = d.String()
	}
	_, err := fmt.Fprintf(env.Out,
		"value     %s\nprecision %d\nhex       %s\nbinary    %s\nsign      %d\nexponent  %d (unbiased %d)\nmantissa  %d\nspecial   %s\nexact     %s\n",
		parts.ValueString(), int(parts.Precision), parts.HexText, parts.GroupedBinary(), parts.Sign,
		parts.Exponent, parts.UnbiasedExponent(), parts.Mantissa, parts.Special, exact)
	return err
}

func writeRadix(env *Env, in, out radix.Value) error {
	record := radixRecord{
		Input:  in.String(),
		From:   int(in.Base),
		Output: out.String(),
		To:     int(out.Base),
	}
	switch env.Output {
	case OutputJSON:
		return writeJSON(env, record)
	case OutputCBOR:
		return writeCBOR(env, record)
	}
	_, err := fmt.Fprintln(env.Out, record.Output)
	return err
}

func writeJSON(env *Env, v interface{}) error {
	return json.NewEncoder(env.Out).Encode(v)
}

func writeCBOR(env *Env, v interface{}) error {
	data, err := cborMode.Marshal(v)
	if err != nil {
		return fmt.Errorf("cbor: %w", err)
	}
	_, err = fmt.Fprintln(env.Out, hex.EncodeToString(data))
	return err
}
