package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/openjax/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// parseResult splits "<value> <unit>" output.
func parseResult(t *testing.T, out string) (float64, string) {
	t.Helper()
	fields := strings.Fields(out)
	require.Len(t, fields, 2, "output %q", out)
	v, err := strconv.ParseFloat(fields[0], 64)
	require.NoError(t, err)
	return v, fields[1]
}

func TestConvert(t *testing.T) {
	tests := []struct {
		args []string
		want float64
		unit string
	}{
		{args: []string{"1", "mi", "ft"}, want: 5280, unit: "ft"},
		{args: []string{"2.5", "km", "m"}, want: 2500, unit: "m"},
		{args: []string{"90", "deg", "rad"}, want: 1.5707963267948966, unit: "rad"},
		{args: []string{"100", "km/hr", "m/sec"}, want: 27.777777777777778, unit: "m/sec"},
		{args: []string{"1", "kg/l", "g/ml"}, want: 1, unit: "g/ml"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, append([]string{"convert"}, tt.args...)...)
			require.NoError(t, err)

			v, unit := parseResult(t, out)
			assert.InEpsilon(t, tt.want, v, 1e-12)
			assert.Equal(t, tt.unit, unit)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	_, _, err := run(t, "convert", "ten", "km", "m")
	assert.Error(t, err)

	_, _, err = run(t, "convert", "1", "furlong", "m")
	assert.ErrorIs(t, err, measure.ErrUnknownUnit)
	assert.True(t, measure.IsInvalidArgument(err))

	_, _, err = run(t, "convert", "1", "km")
	assert.Error(t, err)
}

func TestConvertStrict(t *testing.T) {
	out, stderr, err := run(t, "convert", "1", "kg", "m")
	require.NoError(t, err)
	v, _ := parseResult(t, out)
	assert.Equal(t, 1.0, v)
	assert.Contains(t, stderr, "level=WARN")

	_, _, err = run(t, "--strict", "convert", "1", "kg", "m")
	assert.ErrorIs(t, err, measure.ErrUnrelatedUnits)
}

func TestConvertEnvironment(t *testing.T) {
	t.Setenv("MEASURE_STRICT", "true")

	_, _, err := run(t, "convert", "1", "kg", "m")
	assert.ErrorIs(t, err, measure.ErrUnrelatedUnits)
}

func TestConvertCatalog(t *testing.T) {
	out, _, err := run(t, "--catalog", "../../catalog/testdata/units.yaml", "convert", "1", "mi", "in")
	require.NoError(t, err)
	v, unit := parseResult(t, out)
	assert.InEpsilon(t, 63360.0, v, 1e-12)
	assert.Equal(t, "in", unit)

	// the catalog selects the error policy
	_, _, err = run(t, "--catalog", "../../catalog/testdata/units.yaml", "convert", "1", "m", "sec")
	assert.ErrorIs(t, err, measure.ErrUnrelatedUnits)

	_, _, err = run(t, "--catalog", "testdata/missing.yaml", "table")
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	out, _, err := run(t, "table")
	require.NoError(t, err)
	assert.Contains(t, out, "1 km = 1000 * m\n")
	assert.Contains(t, out, "1 m = 0.001 * km\n")
}

func TestDistance(t *testing.T) {
	out, _, err := run(t, "distance", "38.898556", "77.037852W", "38.898556", "77.043934W")
	require.NoError(t, err)
	v, unit := parseResult(t, out)
	assert.InDelta(t, 0.5269164586229639, v, 1e-9)
	assert.Equal(t, "km", unit)

	out, _, err = run(t, "--unit", "m", "distance", "--", "38.898556", "-77.037852", "38.898556", "-77.043934")
	require.NoError(t, err)
	v, unit = parseResult(t, out)
	assert.InDelta(t, 526.9164586229639, v, 1e-6)
	assert.Equal(t, "m", unit)
}

func TestDistanceCatalogUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	data := "families:\n" +
		"  - name: distance\n" +
		"    default: m\n" +
		"    units:\n" +
		"      - {name: furlong, factor: 201.168}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, _, err := run(t, "--catalog", path, "--unit", "furlong",
		"distance", "38.898556", "77.037852W", "38.898556", "77.043934W")
	require.NoError(t, err)
	v, unit := parseResult(t, out)
	assert.InDelta(t, 526.9164586229639/201.168, v, 1e-9)
	assert.Equal(t, "furlong", unit)

	// furlong is not a quantity unit
	_, _, err = run(t, "--unit", "furlong", "distance", "0", "0", "0", "1")
	assert.ErrorIs(t, err, measure.ErrUnknownUnit)
}

func TestDistanceErrors(t *testing.T) {
	_, _, err := run(t, "distance", "north", "0", "0", "0")
	assert.Error(t, err)

	_, _, err = run(t, "--unit", "hr", "distance", "0", "0", "0", "1")
	assert.ErrorIs(t, err, measure.ErrUnknownUnit)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "table")
	assert.Error(t, err)
}
