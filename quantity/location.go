package quantity

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
)

// EarthRadius is the radius used by Location.Distance and Distance.Locate,
// the WGS-84 equatorial radius by default.
var EarthRadius = Distance{mustScalar(6378.137, Kilometer)}

// earthRadius returns EarthRadius in the default unit of its registry.
func earthRadius() float64 {
	return inDefault(EarthRadius.Scalar, FamilyDistance)
}

// Location is a point on the earth.
type Location struct {
	Latitude  Angle
	Longitude Angle
}

// NewLocation returns the location at latitude and longitude.
func NewLocation(latitude, longitude Angle) Location {
	return Location{Latitude: latitude, Longitude: longitude}
}

// Distance returns the great-circle distance to o, computed with the
// haversine formula on a sphere of radius EarthRadius. The result is in
// the default distance unit of l's registry.
func (l Location) Distance(o Location) Distance {
	lat1, lat2 := l.Latitude.Radians(), o.Latitude.Radians()
	dLat := lat2 - lat1
	dLon := o.Longitude.Radians() - l.Longitude.Radians()

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	d := 2 * earthRadius() * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return Distance{defaultScalar(l.Latitude.Scalar, FamilyDistance, d)}
}

// Locate returns the location reached by travelling d from start along the
// initial bearing, measured clockwise from north. Longitudes grow eastward
// and the result is normalized to (-180°, 180°]. The result angles use the
// units of start.
func (d Distance) Locate(start Location, bearing Angle) Location {
	delta := inDefault(d.Scalar, FamilyDistance) / earthRadius()
	brng := bearing.Radians()
	lat1 := start.Latitude.Radians()
	lon1 := start.Longitude.Radians()

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) +
		math.Cos(lat1)*math.Sin(delta)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(
		math.Sin(brng)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))

	return Location{
		Latitude:  Angle{fromDefault(start.Latitude.Scalar, FamilyAngle, lat2)},
		Longitude: Angle{fromDefault(start.Longitude.Scalar, FamilyAngle, normalizeLongitude(lon2))},
	}
}

// normalizeLongitude maps lon, in radians, into (-π, π].
func normalizeLongitude(lon float64) float64 {
	x := math.Mod(math.Pi-lon, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return math.Pi - x
}

// Equal reports whether both coordinates are equal, unit included.
func (l Location) Equal(o Location) bool {
	return l.Latitude.Equal(o.Latitude.Scalar) && l.Longitude.Equal(o.Longitude.Scalar)
}

// Hash is consistent with Equal.
func (l Location) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], l.Latitude.Hash())
	binary.LittleEndian.PutUint64(buf[8:], l.Longitude.Hash())

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// String returns the coordinates in degrees, e.g. "(38.898556N, -77.037852E)".
func (l Location) String() string {
	return "(" + coordinate(l.Latitude) + "N, " + coordinate(l.Longitude) + "E)"
}

func coordinate(a Angle) string {
	if a.IsZero() {
		return "?"
	}
	return strconv.FormatFloat(a.Degrees(), 'g', -1, 64)
}
