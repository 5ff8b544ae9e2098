package batch

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gopurlin/internal/asd"
	"github.com/alexiusacademia/gopurlin/internal/catalog"
	"github.com/alexiusacademia/gopurlin/internal/purlin"
)

var ErrEmptySheet = errors.New("sheet has no design rows")

// Columns is the fixed column order of a design workbook
var Columns = []string{
	"sag_rod", "span_length", "purlin_spacing", "roof_slope", "tile_weight",
	"live_load", "wind_load", "self_weight", "elastic_modulus",
	"yield_strength", "deflection_ratio", "table", "row",
}

var resultColumns = []string{
	"section", "load_on_purlin", "wx", "wy", "mx", "my", "required_modulus",
	"actual_stress", "allowable_stress", "actual_deflection", "deflection_limit",
	"actual_modulus", "bending", "deflection", "modulus", "self_weight_check", "error",
}

const resultSheet = "Results"

// Row is one parsed worksheet row. Err is set when the row could not be parsed.
type Row struct {
	Line  int // 1-based worksheet row
	Input purlin.Input
	Err   error
}

// ReadWorkbook parses the first sheet of a design workbook. The first row
// is a header. Blank cells keep the values of purlin.DefaultInput.
func ReadWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var out []Row
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		in, err := parseRow(rows[i])
		out = append(out, Row{Line: i + 1, Input: in, Err: err})
	}
	if len(out) == 0 {
		return nil, ErrEmptySheet
	}
	return out, nil
}

func parseRow(row []string) (purlin.Input, error) {
	in := purlin.DefaultInput()

	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var errs []error
	float := func(i int, dst *float64) {
		if v := cell(i); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %q is not a number", Columns[i], v))
				return
			}
			*dst = f
		}
	}
	integer := func(i int, dst *int) {
		if v := cell(i); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %q is not an integer", Columns[i], v))
				return
			}
			*dst = n
		}
	}

	if v := cell(0); v != "" {
		rod, err := asd.ParseSagRod(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", Columns[0], err))
		} else {
			in.SagRod = rod
		}
	}
	float(1, &in.SpanLength)
	float(2, &in.PurlinSpacing)
	float(3, &in.RoofSlope)
	float(4, &in.TileWeight)
	float(5, &in.LiveLoad)
	float(6, &in.WindLoad)
	float(7, &in.SelfWeight)
	float(8, &in.ElasticModulus)
	float(9, &in.YieldStrength)
	integer(10, &in.DeflectionRatio)
	if v := cell(11); v != "" {
		in.Table = catalog.TableID(v)
	}
	integer(12, &in.Row)

	if len(errs) > 0 {
		return in, fmt.Errorf("%w: %w", purlin.ErrInvalidInput, errors.Join(errs...))
	}
	return in, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteWorkbook writes the inputs and outcomes of a batch as a workbook,
// one row per item in input order
func WriteWorkbook(w io.Writer, inputs []purlin.Input, res Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultSheet); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(Columns)+len(resultColumns))
	for _, c := range append(append([]string{}, Columns...), resultColumns...) {
		header = append(header, c)
	}
	if err := f.SetSheetRow(resultSheet, "A1", &header); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DCE6F1"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	passStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "006100"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C6EFCE"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	failStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "9C0006"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(resultSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, it := range res.Items {
		line := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, line)

		var in purlin.Input
		if it.Index < len(inputs) {
			in = inputs[it.Index]
		}
		values := inputValues(in)

		if it.Result == nil {
			values = append(values, make([]interface{}, len(resultColumns)-1)...)
			values = append(values, it.Error)
			if err := f.SetSheetRow(resultSheet, cell, &values); err != nil {
				return err
			}
			continue
		}

		r := it.Result
		values = append(values,
			fmt.Sprintf("%s %s", r.Section.Table, r.Section.Size),
			r.Loads.LoadOnPurlin, r.Loads.Wx, r.Loads.Wy, r.Loads.Mx, r.Loads.My,
			r.Loads.RequiredModulus,
			r.Check.ActualStress, r.Loads.AllowableStress,
			r.Check.ActualDeflection, r.Loads.DeflectionLimit,
			r.Check.ActualModulus,
			r.Check.Bending.Message, r.Check.Deflection.Message,
			r.Check.Modulus.Message, r.Check.SelfWeight.Message,
			"",
		)
		if err := f.SetSheetRow(resultSheet, cell, &values); err != nil {
			return err
		}

		verdicts := []purlin.Verdict{r.Check.Bending, r.Check.Deflection, r.Check.Modulus, r.Check.SelfWeight}
		// verdict columns end just before the error column
		first := len(Columns) + len(resultColumns) - len(verdicts)
		for j, v := range verdicts {
			vc, _ := excelize.CoordinatesToCellName(first+j, line)
			style := passStyle
			if !v.Pass {
				style = failStyle
			}
			if err := f.SetCellStyle(resultSheet, vc, vc, style); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(resultSheet, "A", lastCol, 14); err != nil {
		return err
	}
	return f.Write(w)
}

// WriteTemplate writes an empty design workbook with the header row and
// one example design
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		return err
	}

	example := purlin.DefaultInput()
	example.SpanLength = 6
	example.PurlinSpacing = 1.5
	example.RoofSlope = 20
	example.TileWeight = 10
	example.SelfWeight = 5
	values := inputValues(example)
	if err := f.SetSheetRow("Sheet1", "A2", &values); err != nil {
		return err
	}
	return f.Write(w)
}

func inputValues(in purlin.Input) []interface{} {
	return []interface{}{
		int(in.SagRod), in.SpanLength, in.PurlinSpacing, in.RoofSlope, in.TileWeight,
		in.LiveLoad, in.WindLoad, in.SelfWeight, in.ElasticModulus,
		in.YieldStrength, in.DeflectionRatio, string(in.Table), in.Row,
	}
}
