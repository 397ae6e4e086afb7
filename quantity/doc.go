// Package quantity defines the physical quantity types built on the measure
// conversion engine: Distance, Time, Mass, Angle, Volume, Speed, Density,
// Velocity and Location.
//
// The package-level units (Meter, Hour, Degree, ...) live in
// measure.Default() and are registered when the package is initialized.
// Register installs the same families into any other registry:
//
//	r := measure.NewRegistry(measure.WithUnrelatedPolicy(measure.UnrelatedError))
//	units, err := quantity.Register(r)
//	if err != nil {
//		return err
//	}
//	d, _ := quantity.NewDistance(5, units.Kilometer)
//
// Geodesy (Location.Distance, Distance.Locate) and the SI bridges read
// quantities through the default unit of their family, so a registry used
// with them must keep m, sec, g, rad and l as the distance, time, mass,
// angle and volume defaults.
package quantity
