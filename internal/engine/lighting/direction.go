package lighting

import "github.com/chewxy/math32"

// Direction converts azimuth/elevation angles in degrees to a unit direction
// vector. Azimuth is rotation around the Y axis (0 points down +Z), elevation
// is measured up from the horizon.
func Direction(azimuth, elevation float32) [3]float32 {
	azRad := azimuth * math32.Pi / 180.0
	elRad := elevation * math32.Pi / 180.0

	x := math32.Cos(elRad) * math32.Sin(azRad)
	y := math32.Sin(elRad)
	z := math32.Cos(elRad) * math32.Cos(azRad)

	return [3]float32{x, y, z}
}
