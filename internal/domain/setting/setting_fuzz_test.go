package setting

import (
	"testing"
	"time"
)

var nowForTest = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// FuzzDefinitionParse checks that every accepted value survives a round trip
// through its canonical string form and stays inside the declared range.
func FuzzDefinitionParse(f *testing.F) {
	seeds := []string{
		"", "0", "1", "-1", "2", "24", "8760", "8761",
		"9223372036854775807", "99999999999999999999",
		"true", "false", "TRUE", "t", "yes",
		"500", "500.00", "0.5", "1.005", "1e10", "NaN", "Inf", " 12 ",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		for _, def := range Definitions() {
			v, err := def.Parse(input)
			if err != nil {
				continue
			}

			again, err := def.Parse(v.String())
			if err != nil {
				t.Fatalf("%s: canonical form %q of %q does not parse: %v", def.Key, v.String(), input, err)
			}
			if again.Any() != v.Any() {
				t.Fatalf("%s: round trip changed %v to %v", def.Key, v.Any(), again.Any())
			}

			switch def.Type {
			case ValueTypeInt:
				if float64(v.Int()) < def.Min || float64(v.Int()) > def.Max {
					t.Fatalf("%s: %d outside range", def.Key, v.Int())
				}
			case ValueTypeDecimal:
				if v.Decimal() < def.Min || v.Decimal() > def.Max {
					t.Fatalf("%s: %f outside range", def.Key, v.Decimal())
				}
			}
		}
	})
}
