package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/openjax/measure"
	"github.com/openjax/measure/catalog"
	"github.com/openjax/measure/quantity"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app holds the state shared by the subcommands.
type app struct {
	cfg      *viper.Viper
	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	registry *measure.Registry
}

var options = []struct {
	name, usage string
	defaultVal  any
}{
	{
		name:       "catalog",
		usage:      "unit catalog file or directory; the quantity units are used when empty",
		defaultVal: "",
	},
	{
		name:       "strict",
		usage:      "fail on conversions between unrelated units instead of assuming 1:1",
		defaultVal: false,
	},
	{
		name:       "log-level",
		usage:      "log level: debug, info, warn or error",
		defaultVal: "warn",
	},
	{
		name:       "unit",
		usage:      "distance unit of the distance command output",
		defaultVal: "km",
	},
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		cfg:    viper.New(),
		out:    out,
		errOut: errOut,
	}

	root := &cobra.Command{
		Use:   "measure",
		Short: "Convert values between units.",
		Long: `measure converts values between units of measure.

Units are the distance, time, mass, angle and volume units of the quantity
package unless a catalog is given with --catalog. Configuration can also be
set with environment variables in the format 'MEASURE_var', e.g.
MEASURE_STRICT=true.`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	a.cfg.SetEnvPrefix("MEASURE")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()
	bindOptions(a.cfg, root.PersistentFlags())

	root.AddCommand(a.tableCmd(), a.convertCmd(), a.distanceCmd())
	return root
}

func bindOptions(cfg *viper.Viper, set *pflag.FlagSet) {
	for _, option := range options {
		switch v := option.defaultVal.(type) {
		case string:
			set.String(option.name, v, option.usage)
		case bool:
			set.Bool(option.name, v, option.usage)
		default:
			panic("invalid option type")
		}
		if err := cfg.BindPFlag(option.name, set.Lookup(option.name)); err != nil {
			panic(err)
		}
	}
}

// setup builds the logger and the registry from the configuration.
func (a *app) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.GetString("log-level"))); err != nil {
		return fmt.Errorf("measure: invalid log level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	opts := []measure.Option{measure.WithLogger(a.logger)}

	path := a.cfg.GetString("catalog")
	if path == "" {
		if a.cfg.GetBool("strict") {
			opts = append(opts, measure.WithUnrelatedPolicy(measure.UnrelatedError))
		}
		a.registry = measure.NewRegistry(opts...)
		if _, err := quantity.Register(a.registry); err != nil {
			return err
		}
		return nil
	}

	c, err := catalog.Load(path)
	if err != nil {
		return err
	}
	opts = append(opts, c.Options()...)
	if a.cfg.GetBool("strict") {
		opts = append(opts, measure.WithUnrelatedPolicy(measure.UnrelatedError))
	}
	a.registry = measure.NewRegistry(opts...)

	units, err := c.Apply(cmd.Context(), a.registry)
	if err != nil {
		return err
	}
	a.logger.Debug("loaded catalog", "path", path, "units", len(units.All()))
	return nil
}

// lookup resolves a unit name. Names of the form a/b and a*b (or a·b) build
// ratio and product units from registered units.
func (a *app) lookup(name string) (*measure.Unit, error) {
	if u, ok := a.registry.Lookup(name); ok {
		return u, nil
	}
	if num, den, ok := strings.Cut(name, "/"); ok {
		n, err := a.lookup(num)
		if err != nil {
			return nil, err
		}
		d, err := a.lookup(den)
		if err != nil {
			return nil, err
		}
		return a.registry.Ratio(n, d)
	}
	for _, sep := range []string{"·", "*"} {
		if first, second, ok := strings.Cut(name, sep); ok {
			f, err := a.lookup(first)
			if err != nil {
				return nil, err
			}
			s, err := a.lookup(second)
			if err != nil {
				return nil, err
			}
			return a.registry.Product(f, s)
		}
	}
	return nil, measure.NewInvalidArgumentError("lookup", measure.ErrUnknownUnit).
		WithContext(map[string]any{"unit": name})
}

func (a *app) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the conversion table.",
		Long: `table prints one line for every known conversion factor, in the form
"1 <from> = <factor> * <to>".`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.registry.WriteConversionTable(a.out)
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between units.",
		Long: `convert expresses value, given in unit from, in unit to. Units may be
compound, e.g. km/hr.`,
		Example:           "  measure convert 100 km/hr m/sec",
		Args:              cobra.ExactArgs(3),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("measure: invalid value %q: %w", args[0], err)
			}
			from, err := a.lookup(args[1])
			if err != nil {
				return err
			}
			to, err := a.lookup(args[2])
			if err != nil {
				return err
			}

			s, err := measure.NewScalar(value, from)
			if err != nil {
				return err
			}
			v, err := s.Convert(to)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s %s\n", strconv.FormatFloat(v, 'g', -1, 64), to.Name())
			return nil
		},
	}
}

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <lat1> <lon1> <lat2> <lon2>",
		Short: "Print the great-circle distance between two locations.",
		Long: `distance prints the haversine distance between two locations. Coordinates
are decimal degrees or degrees, minutes and seconds, with an optional
trailing N, S, E or W, e.g. 38˚53'54.8"N. Put negative coordinates after
"--" so they are not read as flags.

The output unit, set with --unit, is looked up among the loaded units, so
it may come from a catalog. The catalog's default distance unit is taken
to be the meter.`,
		Example:           `  measure distance 38.898556 77.037852W 38.898556 77.043934W`,
		Args:              cobra.ExactArgs(4),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var angles [4]quantity.Angle
			for i, arg := range args {
				angle, err := quantity.ParseDMS(arg)
				if err != nil {
					return err
				}
				angles[i] = angle
			}

			name := a.cfg.GetString("unit")
			unit, ok := a.registry.Lookup(name)
			if !ok || unit.Family() != quantity.FamilyDistance {
				return measure.NewInvalidArgumentError("distance", measure.ErrUnknownUnit).
					WithContext(map[string]any{"unit": name})
			}
			meter, err := a.registry.DefaultUnit(quantity.FamilyDistance)
			if err != nil {
				return err
			}

			from := quantity.NewLocation(angles[0], angles[1])
			to := quantity.NewLocation(angles[2], angles[3])
			d := from.Distance(to)

			v, err := measure.Convert(d.Value(quantity.Meter), meter, unit)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s %s\n", strconv.FormatFloat(v, 'g', -1, 64), unit.Name())
			return nil
		},
	}
}
