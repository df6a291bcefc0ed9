package pipes

// scanState tracks a left to right scan across one row of the map. It
// records whether the scan is inside the loop and which opening corner,
// if any, is waiting for its closing corner.
//
// A run of loop tiles along the row crosses the loop only if it leaves on
// the other vertical side from where it came in: L--7 and F--J cross,
// L--J and F--7 do not.
type scanState uint8

const (
	outside scanState = iota
	outsideAfterF
	outsideAfterL
	inside
	insideAfterF
	insideAfterL
)

func (s scanState) inside() bool {
	return s >= inside
}

// withCorner returns s with the same side and pending corner c (0, F or L).
func (s scanState) withCorner(c Tile) scanState {
	base := outside
	if s.inside() {
		base = inside
	}
	switch c {
	case SouthEast:
		return base + 1
	case NorthEast:
		return base + 2
	}
	return base
}

func (s scanState) corner() Tile {
	switch s {
	case outsideAfterF, insideAfterF:
		return SouthEast
	case outsideAfterL, insideAfterL:
		return NorthEast
	}
	return 0
}

func (s scanState) flip() scanState {
	if s.inside() {
		return s - inside
	}
	return s + inside
}

// next returns the state after scanning a loop tile t, and whether t
// completed a crossing. Tiles that are not loop pipes leave the state alone.
func (s scanState) next(t Tile) (scanState, bool) {
	switch t {
	case Vertical:
		return s.withCorner(0).flip(), true
	case SouthEast, NorthEast:
		return s.withCorner(t), false
	case SouthWest:
		if s.corner() == NorthEast {
			return s.withCorner(0).flip(), true
		}
		return s.withCorner(0), false
	case NorthWest:
		if s.corner() == SouthEast {
			return s.withCorner(0).flip(), true
		}
		return s.withCorner(0), false
	}
	return s, false
}

func (s scanState) String() string {
	switch s {
	case outside:
		return "outside"
	case outsideAfterF:
		return "outside+F"
	case outsideAfterL:
		return "outside+L"
	case inside:
		return "inside"
	case insideAfterF:
		return "inside+F"
	case insideAfterL:
		return "inside+L"
	}
	return "invalid"
}
