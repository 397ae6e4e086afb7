package quantity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/openjax/measure"
)

// ErrInvalidDMS is returned by ParseDMS for text that holds no
// degrees-minutes-seconds value.
var ErrInvalidDMS = errors.New("invalid degrees-minutes-seconds value")

// Angle is a plane angle, such as 45 deg.
type Angle struct{ measure.Scalar }

// NewAngle returns value expressed in unit.
func NewAngle(value float64, unit *measure.Unit) (Angle, error) {
	s, err := measure.NewScalar(value, unit)
	if err != nil {
		return Angle{}, err
	}
	return Angle{s}, nil
}

// Replicate returns an Angle in the same unit holding value.
func (a Angle) Replicate(value float64) Angle {
	return Angle{a.Scalar.Replicate(value)}
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return inDefault(a.Scalar, FamilyAngle)
}

// Degrees returns the angle in degrees. It converts through the registry's
// deg unit when there is one.
func (a Angle) Degrees() float64 {
	if a.IsZero() {
		return math.NaN()
	}
	if deg, ok := a.Unit().Registry().Lookup("deg"); ok && deg.Family() == FamilyAngle {
		return a.Value(deg)
	}
	return a.Radians() * 180 / math.Pi
}

// DMS formats the angle as degrees, minutes and seconds, e.g.
// 3˚34'59.664". Seconds are printed with single precision; a negative angle
// gets a leading minus sign. An absent, NaN or infinite angle gives "".
func (a Angle) DMS() string {
	deg := a.Degrees()
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return ""
	}
	sign := ""
	if deg < 0 {
		sign = "-"
		deg = -deg
	}

	d := math.Trunc(deg)
	m := math.Trunc((deg - d) * 60)
	s := float32(math.Mod(float64(float32((deg-d)*3600-m*60)), 60))

	sec := strconv.FormatFloat(float64(s), 'f', -1, 32)
	if !strings.Contains(sec, ".") {
		sec += ".0"
	}
	return fmt.Sprintf("%s%d˚%d'%s\"", sign, int64(d), int64(m)%60, sec)
}

// ParseDMS parses degrees, minutes and seconds separated by any non-numeric
// characters, e.g. 3˚34'59.664" or 77 2 16.27 W, into an Angle in Degree.
// Minutes and seconds are optional. A leading '-' or a trailing S or W
// makes the angle negative.
func ParseDMS(s string) (Angle, error) {
	text := strings.TrimSpace(s)
	negative := strings.HasPrefix(text, "-")
	if n := len(text); n > 0 {
		switch text[n-1] {
		case 'S', 's', 'W', 'w':
			negative = true
		}
	}

	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	})
	if len(parts) == 0 || len(parts) > 3 {
		return Angle{}, fmt.Errorf("%w: %q", ErrInvalidDMS, s)
	}

	var deg float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Angle{}, fmt.Errorf("%w: %q: %v", ErrInvalidDMS, s, err)
		}
		deg += v / math.Pow(60, float64(i))
	}
	if negative {
		deg = -deg
	}
	return NewAngle(deg, Degree)
}
