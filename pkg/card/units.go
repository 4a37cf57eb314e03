package card

// Physical card geometry, in millimeters.
const (
	WidthMM    = 88.9
	HeightMM   = 50.8
	SafeZoneMM = 3.0
	GutterMM   = 3.0
	GapMM      = 2.0
	LogoMM     = 10.0
)

// DefaultDPI is the print resolution used when none is given.
const DefaultDPI = 300

const (
	mmPerInch = 25.4
	ptPerInch = 72
)

// MMToPx converts millimeters to pixels at dpi.
func MMToPx(mm, dpi float64) float64 {
	return mm / mmPerInch * dpi
}

// PtToPx converts typographic points to pixels at dpi.
func PtToPx(pt, dpi float64) float64 {
	return pt / ptPerInch * dpi
}
