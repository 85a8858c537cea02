// Package geo places talents on a map: bounds fitting, viewport state and
// projection onto a character grid.
package geo

import "math"

type Point struct {
	Lat float64
	Lng float64
}

type Location struct {
	ID        int
	Name      string
	Role      string
	City      string
	State     string
	Position  Point
	Expertise []string
	Phone     string
}

type Bounds struct {
	SouthWest Point
	NorthEast Point
}

// Brazil is the initial map centre, shown before any marker is selected.
var Brazil = Point{Lat: -14.2350, Lng: -51.9253}

const (
	DefaultZoom  = 4
	SelectedZoom = 12
	SingleZoom   = 10
	MaxZoom      = 18
)

// FitBounds returns the smallest box containing every location.
func FitBounds(locs []Location) (Bounds, bool) {
	if len(locs) == 0 {
		return Bounds{}, false
	}
	b := Bounds{SouthWest: locs[0].Position, NorthEast: locs[0].Position}
	for _, l := range locs[1:] {
		b.SouthWest.Lat = math.Min(b.SouthWest.Lat, l.Position.Lat)
		b.SouthWest.Lng = math.Min(b.SouthWest.Lng, l.Position.Lng)
		b.NorthEast.Lat = math.Max(b.NorthEast.Lat, l.Position.Lat)
		b.NorthEast.Lng = math.Max(b.NorthEast.Lng, l.Position.Lng)
	}
	return b, true
}

func (b Bounds) Center() Point {
	return Point{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

// Degenerate reports a zero-area box, as produced by a single marker.
func (b Bounds) Degenerate() bool {
	return b.SouthWest == b.NorthEast
}

// Pad grows the box by frac of its span on every side.
func (b Bounds) Pad(frac float64) Bounds {
	dLat := (b.NorthEast.Lat - b.SouthWest.Lat) * frac
	dLng := (b.NorthEast.Lng - b.SouthWest.Lng) * frac
	return Bounds{
		SouthWest: Point{Lat: b.SouthWest.Lat - dLat, Lng: b.SouthWest.Lng - dLng},
		NorthEast: Point{Lat: b.NorthEast.Lat + dLat, Lng: b.NorthEast.Lng + dLng},
	}
}

// Viewport is the visible map window: a centre and a web-map style zoom.
type Viewport struct {
	Center Point
	Zoom   int
}

func InitialViewport() Viewport {
	return Viewport{Center: Brazil, Zoom: DefaultZoom}
}

// Fit frames every location; a single location is framed at SingleZoom.
func Fit(locs []Location) Viewport {
	b, ok := FitBounds(locs)
	if !ok {
		return InitialViewport()
	}
	if b.Degenerate() {
		return Viewport{Center: b.Center(), Zoom: SingleZoom}
	}
	span := math.Max(b.NorthEast.Lat-b.SouthWest.Lat, b.NorthEast.Lng-b.SouthWest.Lng)
	zoom := int(math.Floor(math.Log2(360 / span)))
	return Viewport{Center: b.Center(), Zoom: clampZoom(zoom)}
}

// Focus centres the viewport on one location.
func Focus(l Location) Viewport {
	return Viewport{Center: l.Position, Zoom: SelectedZoom}
}

// Span returns the degrees of longitude visible at the viewport's zoom.
func (v Viewport) Span() float64 {
	return 360 / math.Pow(2, float64(clampZoom(v.Zoom)))
}

// Bounds returns the window, squashing latitude by aspect (rows per column).
func (v Viewport) Bounds(aspect float64) Bounds {
	half := v.Span() / 2
	halfLat := half * aspect
	return Bounds{
		SouthWest: Point{Lat: v.Center.Lat - halfLat, Lng: v.Center.Lng - half},
		NorthEast: Point{Lat: v.Center.Lat + halfLat, Lng: v.Center.Lng + half},
	}
}

// Project maps p into a width x height grid over b. ok is false outside b.
func Project(p Point, b Bounds, width, height int) (x, y int, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	lngSpan := b.NorthEast.Lng - b.SouthWest.Lng
	latSpan := b.NorthEast.Lat - b.SouthWest.Lat
	if lngSpan <= 0 || latSpan <= 0 {
		return 0, 0, false
	}
	fx := (p.Lng - b.SouthWest.Lng) / lngSpan
	fy := (b.NorthEast.Lat - p.Lat) / latSpan
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}
	x = min(width-1, int(fx*float64(width)))
	y = min(height-1, int(fy*float64(height)))
	return x, y, true
}

func clampZoom(z int) int {
	return min(MaxZoom, max(1, z))
}
