package fixture

import (
	"fmt"
	"strings"
	"time"

	"github.com/NielsdaWheelz/genelection/internal/errors"
)

// Encoding selects how Start and End are written to JSON.
type Encoding int

const (
	// EncodingString writes timestamps as JSON strings. Consumers that parse
	// JSON numbers as float64 lose precision on 19-digit values.
	EncodingString Encoding = iota
	// EncodingNumber writes timestamps as native JSON integers.
	EncodingNumber
)

func (e Encoding) String() string {
	switch e {
	case EncodingString:
		return "string"
	case EncodingNumber:
		return "number"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Variant is one of the known shapes of the fixture.
type Variant struct {
	Name        string
	StartOffset time.Duration
	Encoding    Encoding
	// Wrapper is the outer JSON key the election is nested under; empty means unwrapped.
	Wrapper string
}

// Preset names.
const (
	VariantFlat     = "flat"
	VariantInput    = "input"
	VariantElection = "election"

	DefaultVariant = VariantFlat
)

var presets = []Variant{
	{Name: VariantFlat, StartOffset: time.Minute, Encoding: EncodingString},
	{Name: VariantInput, StartOffset: 24 * time.Hour, Encoding: EncodingNumber, Wrapper: "input"},
	{Name: VariantElection, StartOffset: 24 * time.Hour, Encoding: EncodingNumber, Wrapper: "election"},
}

// Variants returns the presets in a stable order.
func Variants() []Variant {
	out := make([]Variant, len(presets))
	copy(out, presets)
	return out
}

// VariantNames returns the preset names in the order of Variants.
func VariantNames() []string {
	names := make([]string, 0, len(presets))
	for _, v := range presets {
		names = append(names, v.Name)
	}
	return names
}

// LookupVariant returns the preset with the given name.
// An empty name selects DefaultVariant.
func LookupVariant(name string) (Variant, error) {
	if name == "" {
		name = DefaultVariant
	}
	for _, v := range presets {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, errors.NewWithDetails(
		errors.EUnknownVariant,
		fmt.Sprintf("unknown variant %q", name),
		map[string]string{
			"variant": name,
			"known":   strings.Join(VariantNames(), ","),
		},
	)
}
