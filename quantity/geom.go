package quantity

import "github.com/ctessum/geom"

// Point returns the location as a geometry point with X the longitude and Y
// the latitude, both in degrees.
func (l Location) Point() geom.Point {
	return geom.Point{X: l.Longitude.Degrees(), Y: l.Latitude.Degrees()}
}

// LocationFromPoint returns the location of p, reading X as the longitude
// and Y as the latitude in degrees.
func LocationFromPoint(p geom.Point) Location {
	return Location{
		Latitude:  Angle{mustScalar(p.Y, Degree)},
		Longitude: Angle{mustScalar(p.X, Degree)},
	}
}
