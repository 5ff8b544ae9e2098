package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gopurlin/internal/diagram"
	"github.com/alexiusacademia/gopurlin/internal/purlin"
)

// Meta describes the calculation sheet header
type Meta struct {
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Title   string    `json:"title"`
	Notes   string    `json:"notes"`
	Date    time.Time `json:"date"`

	// Diagram embeds the moment diagram
	Diagram bool `json:"diagram"`
}

const (
	labelWidth = 95.0
	valueWidth = 45.0
	unitWidth  = 30.0
	rowHeight  = 6.0
)

// WritePDF writes the purlin calculation sheet for res to w
func WritePDF(w io.Writer, res *purlin.DesignResult, meta Meta) error {
	if meta.Title == "" {
		meta.Title = "Purlin Design Calculation"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	in := res.Input
	l := res.Loads
	sec := res.Section
	c := res.Check

	heading := func(text string) {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 236, 245)
		pdf.CellFormat(labelWidth+valueWidth+unitWidth, 7, tr(text), "", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value, unit string) {
		pdf.CellFormat(labelWidth, rowHeight, tr(label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(valueWidth, rowHeight, tr(value), "B", 0, "R", false, 0, "")
		pdf.CellFormat(unitWidth, rowHeight, tr(unit), "B", 1, "L", false, 0, "")
	}
	verdict := func(label, value string, v purlin.Verdict) {
		pdf.CellFormat(labelWidth, rowHeight, tr(label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(valueWidth, rowHeight, tr(value), "B", 0, "R", false, 0, "")
		if v.Pass {
			pdf.SetTextColor(0, 128, 0)
		} else {
			pdf.SetTextColor(200, 0, 0)
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(unitWidth, rowHeight, tr(v.Message), "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
	}

	heading("Design Data")
	row("Sag rod", in.SagRod.Description(), "")
	row("Span length, L", num(in.SpanLength), "m")
	row("Purlin spacing", num(in.PurlinSpacing), "m")
	row("Roof slope", num(in.RoofSlope), "deg")
	row("Roofing weight", num(in.TileWeight), "kg/m²")
	row("Live load", num(in.LiveLoad), "kg/m²")
	row("Wind load", num(in.WindLoad), "kg/m²")
	row("Assumed self weight", num(in.SelfWeight), "kg/m")

	heading("Steel Properties")
	row("Grade", res.Grade.Name, "")
	row("Yield strength, Fy", num(res.Grade.Yield), "ksc")
	row("Ultimate strength, Fu", num(res.Grade.Ultimate), "ksc")
	row("Modulus of elasticity, E", num(in.ElasticModulus), "ksc")
	row("Allowable bending stress, Fb = 0.6Fy", num(l.AllowableStress), "ksc")
	row("Allowable deflection", fmt.Sprintf("L/%d", in.DeflectionRatio), "")

	heading("Loads and Moments")
	row("Load on purlin, W", num(l.LoadOnPurlin), "kg/m")
	row("Wx = W sin(slope)", num(l.Wx), "kg/m")
	row("Wind factor, r", num(l.WindFactor), "")
	row(fmt.Sprintf("Wy, governing %s", l.Combination.Description), num(l.Wy), "kg/m")
	row("Mx = L²Wy/8", num(l.Mx), "kg-m")
	row(fmt.Sprintf("My = kL²Wx, k = %g", l.SagRodCoeff), num(l.My), "kg-m")
	row("Required section modulus", num(l.RequiredModulus), "cm³")

	heading(fmt.Sprintf("Trial Section: %s %s (row %d)", sec.Table, sec.Size, sec.Index))
	row("Weight", num(sec.Weight), "kg/m")
	row("Area", num(sec.Area), "cm²")
	row("Ix / Iy", fmt.Sprintf("%s / %s", num(sec.Ix), num(sec.Iy)), "cm^4")
	row("Zx / Zy", fmt.Sprintf("%s / %s", num(sec.Zx), num(sec.Zy)), "cm³")
	row("rx / ry", fmt.Sprintf("%s / %s", num(sec.Rx), num(sec.Ry)), "cm")

	heading("Checks")
	verdict("Actual bending stress", num(c.ActualStress)+" ksc", c.Bending)
	verdict("Actual deflection", num(c.ActualDeflection)+" cm", c.Deflection)
	verdict("Actual section modulus", num(c.ActualModulus)+" cm³", c.Modulus)
	verdict("Section weight vs assumed", num(sec.Weight)+" kg/m", c.SelfWeight)

	if meta.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(meta.Notes), "", "L", false)
	}

	if meta.Diagram {
		var img bytes.Buffer
		if err := diagram.WriteMomentDiagram(&img, diagram.NewPurlinDiagramData(res), "png"); err != nil {
			return fmt.Errorf("render moment diagram: %w", err)
		}
		pdf.AddPage()
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("moments", opts, &img)
		pdf.ImageOptions("moments", 10, 20, 190, 0, false, opts, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}

func num(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
