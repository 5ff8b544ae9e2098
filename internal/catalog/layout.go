package catalog

import "fmt"

// Layout maps the semantic fields of a Section to 0-based column positions
// of a raw table row. Position 0 is always the size label.
type Layout struct {
	WebThickness    int
	FlangeThickness int
	Weight          int
	Area            int
	Ix              int
	Iy              int
	Zx              int
	Zy              int
	Rx              int
	Ry              int
}

// Pile rows carry a single inertia, modulus and radius, so the weak axis
// columns point at the same positions as the strong axis ones. Iy reads
// the modulus column as the published calculator does.
var layouts = map[TableID]Layout{
	Pile: {
		WebThickness: 1, FlangeThickness: 1, Weight: 2, Area: 3,
		Ix: 4, Iy: 5, Zx: 5, Zy: 5, Rx: 6, Ry: 6,
	},
	LightLipChannel: {
		WebThickness: 4, FlangeThickness: 4, Weight: 5, Area: 6,
		Ix: 7, Iy: 8, Zx: 9, Zy: 10, Rx: 11, Ry: 12,
	},
	RectangularTube: {
		WebThickness: 3, FlangeThickness: 3, Weight: 4, Area: 5,
		Ix: 6, Iy: 7, Zx: 8, Zy: 9, Rx: 10, Ry: 11,
	},
	LightChannel: {
		WebThickness: 3, FlangeThickness: 4, Weight: 5, Area: 6,
		Ix: 7, Iy: 8, Zx: 9, Zy: 10, Rx: 11, Ry: 12,
	},
	ISection: {
		WebThickness: 3, FlangeThickness: 4, Weight: 5, Area: 6,
		Ix: 7, Iy: 8, Zx: 9, Zy: 10, Rx: 11, Ry: 12,
	},
	WideFlange: {
		WebThickness: 3, FlangeThickness: 4, Weight: 5, Area: 6,
		Ix: 7, Iy: 8, Zx: 9, Zy: 10, Rx: 11, Ry: 12,
	},
}

// LayoutOf returns the column layout used to normalize a table
func LayoutOf(id TableID) (Layout, error) {
	t, err := lookupTable(id)
	if err != nil {
		return Layout{}, err
	}
	return layouts[t.info.ID], nil
}

// rawRow is a table row as published: a size label followed by the numeric
// columns. cols[i] holds raw position i+1.
type rawRow struct {
	size string
	cols []float64
}

func row(size string, cols ...float64) rawRow {
	return rawRow{size: size, cols: cols}
}

// width is the raw column count including the size label
func (r rawRow) width() int {
	return len(r.cols) + 1
}

func (r rawRow) at(pos int) float64 {
	return r.cols[pos-1]
}

func (l Layout) maxPosition() int {
	m := 0
	for _, p := range []int{l.WebThickness, l.FlangeThickness, l.Weight, l.Area, l.Ix, l.Iy, l.Zx, l.Zy, l.Rx, l.Ry} {
		if p > m {
			m = p
		}
	}
	return m
}

func (l Layout) normalize(r rawRow) (Section, error) {
	if l.maxPosition() >= r.width() {
		return Section{}, fmt.Errorf("row has %d columns, layout needs %d", r.width(), l.maxPosition()+1)
	}
	return Section{
		Size:            r.size,
		WebThickness:    r.at(l.WebThickness),
		FlangeThickness: r.at(l.FlangeThickness),
		Weight:          r.at(l.Weight),
		Area:            r.at(l.Area),
		Ix:              r.at(l.Ix),
		Iy:              r.at(l.Iy),
		Zx:              r.at(l.Zx),
		Zy:              r.at(l.Zy),
		Rx:              r.at(l.Rx),
		Ry:              r.at(l.Ry),
	}, nil
}

type definition struct {
	id   TableID
	name string
	rows []rawRow
}

var definitions = []definition{
	{Pile, "Pile Section", pileRows},
	{LightLipChannel, "Light Lip Channel Section", lightLipChannelRows},
	{RectangularTube, "Rectangular Tube Section", rectangularTubeRows},
	{LightChannel, "Light Channel Section", lightChannelRows},
	{ISection, "I Section", iRows},
	{WideFlange, "WF Section", wideFlangeRows},
}
