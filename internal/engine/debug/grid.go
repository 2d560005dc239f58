package debug

// Grid line colors. The two world axes get their own tint so orientation
// stays readable while orbiting.
var (
	gridColor  = [3]float32{0.35, 0.35, 0.38}
	xAxisColor = [3]float32{0.75, 0.3, 0.3}
	zAxisColor = [3]float32{0.3, 0.4, 0.75}
)

// GenerateGroundGrid generates line vertices for a reference grid on the
// y=0 plane, centered on the origin. Lines run every spacing units out to
// halfExtent in both directions. Returns vertices in [x, y, z, r, g, b]
// interleaved format, two per line.
func GenerateGroundGrid(halfExtent, spacing float32) []float32 {
	if halfExtent <= 0 || spacing <= 0 {
		return nil
	}

	n := int(halfExtent / spacing)
	extent := float32(n) * spacing

	verts := make([]float32, 0, (2*n+1)*24)
	appendLine := func(x0, z0, x1, z1 float32, color [3]float32) {
		verts = append(verts,
			x0, 0, z0, color[0], color[1], color[2],
			x1, 0, z1, color[0], color[1], color[2],
		)
	}

	// Lines parallel to Z (varying x), then parallel to X (varying z).
	// The center lines trace the world axes.
	for i := -n; i <= n; i++ {
		x := float32(i) * spacing
		color := gridColor
		if i == 0 {
			color = zAxisColor
		}
		appendLine(x, -extent, x, extent, color)
	}
	for i := -n; i <= n; i++ {
		z := float32(i) * spacing
		color := gridColor
		if i == 0 {
			color = xAxisColor
		}
		appendLine(-extent, z, extent, z, color)
	}

	return verts
}
