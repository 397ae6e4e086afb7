package measure

import "math"

// MetricPrefix is one of the SI prefixes from yocto (10^-24) to yotta (10^24).
type MetricPrefix struct {
	power  int
	name   string
	symbol string
}

// The SI prefixes.
var (
	Yocto = MetricPrefix{-24, "yocto", "y"}
	Zepto = MetricPrefix{-21, "zepto", "z"}
	Atto  = MetricPrefix{-18, "atto", "a"}
	Femto = MetricPrefix{-15, "femto", "f"}
	Pico  = MetricPrefix{-12, "pico", "p"}
	Nano  = MetricPrefix{-9, "nano", "n"}
	Micro = MetricPrefix{-6, "micro", "μ"}
	Milli = MetricPrefix{-3, "milli", "m"}
	Centi = MetricPrefix{-2, "centi", "c"}
	Deci  = MetricPrefix{-1, "deci", "d"}
	Deca  = MetricPrefix{1, "deca", "da"}
	Hecto = MetricPrefix{2, "hecto", "h"}
	Kilo  = MetricPrefix{3, "kilo", "k"}
	Mega  = MetricPrefix{6, "mega", "M"}
	Giga  = MetricPrefix{9, "giga", "G"}
	Tera  = MetricPrefix{12, "tera", "T"}
	Peta  = MetricPrefix{15, "peta", "P"}
	Exa   = MetricPrefix{18, "exa", "E"}
	Zetta = MetricPrefix{21, "zetta", "Z"}
	Yotta = MetricPrefix{24, "yotta", "Y"}
)

const minPrefixPower = -24

// prefixes is indexed by power - minPrefixPower; powers without a prefix
// hold the zero MetricPrefix.
var prefixes = func() [49]MetricPrefix {
	var table [49]MetricPrefix
	for _, p := range []MetricPrefix{
		Yocto, Zepto, Atto, Femto, Pico, Nano, Micro, Milli, Centi, Deci,
		Deca, Hecto, Kilo, Mega, Giga, Tera, Peta, Exa, Zetta, Yotta,
	} {
		table[p.power-minPrefixPower] = p
	}
	return table
}()

// MetricPrefixOf returns the prefix for 10^power. The second result is
// false when no prefix is defined for power, including power 0.
func MetricPrefixOf(power int) (MetricPrefix, bool) {
	i := power - minPrefixPower
	if i < 0 || i >= len(prefixes) || prefixes[i].name == "" {
		return MetricPrefix{}, false
	}
	return prefixes[i], true
}

// MetricPrefixNamed returns the prefix with the given name, e.g. "kilo".
func MetricPrefixNamed(name string) (MetricPrefix, bool) {
	for _, p := range prefixes {
		if p.name != "" && p.name == name {
			return p, true
		}
	}
	return MetricPrefix{}, false
}

// Power returns the decimal exponent of the prefix.
func (p MetricPrefix) Power() int {
	return p.power
}

// Name returns the prefix name, e.g. "kilo".
func (p MetricPrefix) Name() string {
	return p.name
}

// Symbol returns the prefix symbol, e.g. "k".
func (p MetricPrefix) Symbol() string {
	return p.symbol
}

// Factor returns 10^Power().
func (p MetricPrefix) Factor() float64 {
	return math.Pow10(p.power)
}

// String returns the prefix name.
func (p MetricPrefix) String() string {
	return p.name
}
