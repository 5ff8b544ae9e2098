package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidSection is matched by every failed table or row lookup.
	ErrInvalidSection = errors.New("invalid section")
	ErrUnknownTable   = fmt.Errorf("%w: unknown table", ErrInvalidSection)
	ErrOutOfRange     = fmt.Errorf("%w: row out of range", ErrInvalidSection)
)

// TableID is the stable identifier of a section table
type TableID string

const (
	Pile            TableID = "Pile"
	LightLipChannel TableID = "LightLipChannel"
	RectangularTube TableID = "RectangularTube"
	LightChannel    TableID = "LightChannel"
	ISection        TableID = "I"
	WideFlange      TableID = "WF"
)

// Section is one catalog row normalized to its structural meaning.
// Dimensions are in mm, weight in kg/m, area in cm², inertia in cm⁴,
// section modulus in cm³ and radius of gyration in cm.
type Section struct {
	Table TableID `json:"table" yaml:"table"`
	Index int     `json:"index" yaml:"index"` // 1-based position within the table

	Size            string  `json:"size" yaml:"size"`
	WebThickness    float64 `json:"web_thickness" yaml:"web_thickness"`
	FlangeThickness float64 `json:"flange_thickness" yaml:"flange_thickness"`
	Weight          float64 `json:"weight" yaml:"weight"`
	Area            float64 `json:"area" yaml:"area"`

	Ix float64 `json:"ix" yaml:"ix"` // strong axis moment of inertia
	Iy float64 `json:"iy" yaml:"iy"` // weak axis moment of inertia
	Zx float64 `json:"zx" yaml:"zx"` // strong axis section modulus
	Zy float64 `json:"zy" yaml:"zy"` // weak axis section modulus
	Rx float64 `json:"rx" yaml:"rx"`
	Ry float64 `json:"ry" yaml:"ry"`
}

// MinRadius returns the governing radius of gyration
func (s Section) MinRadius() float64 {
	return math.Min(s.Rx, s.Ry)
}

// TableInfo describes a table for selection lists
type TableInfo struct {
	ID       TableID `json:"id"`
	Name     string  `json:"name"`
	RowCount int     `json:"row_count"`
}

type table struct {
	info     TableInfo
	sections []Section
}

var (
	tables  []table
	byID    = map[TableID]int{}
	aliases = map[string]TableID{}
)

func init() {
	for _, def := range definitions {
		layout, ok := layouts[def.id]
		if !ok {
			panic(fmt.Sprintf("catalog: no column layout for table %s", def.id))
		}

		sections := make([]Section, len(def.rows))
		for i, r := range def.rows {
			s, err := layout.normalize(r)
			if err != nil {
				panic(fmt.Sprintf("catalog: %s row %d: %v", def.id, i+1, err))
			}
			s.Table = def.id
			s.Index = i + 1
			sections[i] = s
		}

		byID[def.id] = len(tables)
		aliases[strings.ToLower(string(def.id))] = def.id
		aliases[strings.ToLower(def.name)] = def.id
		tables = append(tables, table{
			info:     TableInfo{ID: def.id, Name: def.name, RowCount: len(sections)},
			sections: sections,
		})
	}
}

// ListTables returns every table in catalog order
func ListTables() []TableInfo {
	out := make([]TableInfo, len(tables))
	for i, t := range tables {
		out[i] = t.info
	}
	return out
}

// Lookup resolves a table by id or display name, ignoring case
func Lookup(name string) (TableID, error) {
	id, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownTable, name)
	}
	return id, nil
}

// RowCount returns the number of rows in a table
func RowCount(id TableID) (int, error) {
	t, err := lookupTable(id)
	if err != nil {
		return 0, err
	}
	return len(t.sections), nil
}

// Row returns the section at the 1-based index of a table.
// Indices outside [1, RowCount] are rejected, never clamped.
func Row(id TableID, index int) (Section, error) {
	t, err := lookupTable(id)
	if err != nil {
		return Section{}, err
	}
	if index < 1 || index > len(t.sections) {
		return Section{}, fmt.Errorf("%w: %s has rows 1-%d, got %d", ErrOutOfRange, id, len(t.sections), index)
	}
	return t.sections[index-1], nil
}

// Rows returns a copy of every section in a table
func Rows(id TableID) ([]Section, error) {
	t, err := lookupTable(id)
	if err != nil {
		return nil, err
	}
	out := make([]Section, len(t.sections))
	copy(out, t.sections)
	return out, nil
}

// Info returns the description of a single table
func Info(id TableID) (TableInfo, error) {
	t, err := lookupTable(id)
	if err != nil {
		return TableInfo{}, err
	}
	return t.info, nil
}

func lookupTable(id TableID) (*table, error) {
	i, ok := byID[id]
	if !ok {
		// Display names are accepted wherever an id is expected.
		resolved, err := Lookup(string(id))
		if err != nil {
			return nil, err
		}
		i = byID[resolved]
	}
	return &tables[i], nil
}
