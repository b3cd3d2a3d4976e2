package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBWhite      = RGB{255, 255, 255}
	RGBBackground = RGB{6, 6, 6}
	RGBGrid       = RGB{22, 26, 30}
	RGBDimText    = RGB{120, 130, 140}

	// Neon accents
	RGBNeonCyan   = RGB{0, 242, 255}
	RGBNeonPink   = RGB{255, 0, 85}
	RGBNeonViolet = RGB{189, 0, 255}
	RGBNeonAmber  = RGB{255, 204, 0}
	RGBNeonGreen  = RGB{34, 197, 94}
	RGBAlertRed   = RGB{239, 68, 68}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (particle fade-out)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
