// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/taibuivan/migrationboard/internal/platform/constants"
)

// Page geometry in millimetres.
const (
	pageMargin   = 15.0
	footerMargin = 18.0
	lineHeight   = 5.0
	cellPadding  = 1.5
)

type color struct{ r, g, b int }

var (
	colorBrand  = color{180, 83, 9}
	colorText   = color{15, 23, 42}
	colorBody   = color{71, 85, 105}
	colorMuted  = color{148, 163, 184}
	colorRule   = color{226, 232, 240}
	colorHeader = color{241, 245, 249}
	colorStripe = color{248, 250, 252}
	colorGreen  = color{5, 150, 105}
	colorAmber  = color{217, 119, 6}
	colorRed    = color{220, 38, 38}
)

// RenderPDF writes doc to w as an A4 portrait PDF with a "page / total"
// footer on every page.
func RenderPDF(doc *Document, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, footerMargin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetSubject(doc.Subject, true)
	pdf.SetCreator(constants.AppName, false)
	pdf.SetCreationDate(doc.Created)
	pdf.SetModificationDate(doc.Created)
	pdf.AliasNbPages("{nb}")

	r := &renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(r.footer(doc.Footer))

	r.cover(doc)
	r.executiveSummary(doc)
	r.categoryRestructuring(doc)
	r.urlStructure(doc)
	r.redirectSummary(doc)
	for _, table := range doc.URLTables {
		r.urlTable(table)
	}
	if len(doc.Samples) > 0 {
		r.multilingual(doc)
	}

	return pdf.Output(w)
}

// renderer draws with the core Helvetica font, which is cp1252 encoded.
// Every string goes through tr before it reaches the page.
type renderer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// # Pages

func (r *renderer) cover(doc *Document) {
	r.pdf.AddPage()
	r.pdf.SetY(95)

	r.font("B", 30, colorBrand)
	r.centered(14, doc.CoverTitle)
	r.font("", 18, colorText)
	r.centered(10, doc.CoverSubtitle)
	r.pdf.Ln(4)
	r.font("", 12, colorBody)
	r.centered(7, doc.CoverMigrates)
	r.centered(7, doc.CoverDomain)
	r.pdf.Ln(12)
	r.font("I", 10, colorMuted)
	r.centered(6, doc.CoverDate)
}

func (r *renderer) executiveSummary(doc *Document) {
	r.pdf.AddPage()
	r.title("Executive Summary")
	for _, paragraph := range doc.SummaryParagraphs {
		r.paragraph(paragraph)
	}
	r.subtitle("Key Figures")
	r.figures(doc.KeyFigures, 3)
}

func (r *renderer) categoryRestructuring(doc *Document) {
	r.pdf.AddPage()
	r.title("Category Restructuring")
	r.paragraph(doc.CategoryIntro)

	rows := make([]tableRow, 0, len(doc.CategoryRows))
	for _, row := range doc.CategoryRows {
		rows = append(rows, tableRow{
			cells:  []string{string(row.Status), strings.Join(row.Old, ", "), row.New, fmt.Sprint(row.Products), fmt.Sprint(row.Subcategories)},
			accent: statusColor(row.Status),
		})
	}
	r.table(
		[]string{"Status", "Old Category", "New Category", "Products", "Subcats"},
		[]float64{22, 64, 50, 22, 22},
		[]string{"L", "L", "L", "R", "R"},
		rows,
	)

	if len(doc.DroppedRows) == 0 {
		return
	}

	r.subtitle(fmt.Sprintf("Dropped Categories (%d)", len(doc.DroppedRows)))
	r.paragraph(doc.DroppedIntro)

	dropped := make([]tableRow, 0, len(doc.DroppedRows))
	for _, row := range doc.DroppedRows {
		dropped = append(dropped, tableRow{
			cells:  []string{string(row.Status), strings.Join(row.Old, ", "), "-> " + row.New, fmt.Sprintf("%d products", row.Products)},
			accent: statusColor(row.Status),
		})
	}
	r.table(
		[]string{"Status", "Category", "Redirect", "Products"},
		[]float64{27, 90, 36, 27},
		[]string{"L", "L", "L", "R"},
		dropped,
	)
}

func (r *renderer) urlStructure(doc *Document) {
	r.pdf.AddPage()
	r.title("URL Structure Changes")
	r.paragraph(doc.StructureIntro)

	for _, pattern := range doc.Patterns {
		r.ensureSpace(22)
		r.font("B", 10, colorText)
		r.pdf.CellFormat(28, 7, r.tr(pattern.Label), "", 0, "L", false, 0, "")
		r.font("", 9, colorBody)
		r.pdf.CellFormat(58, 7, r.tr(pattern.Old), "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(10, 7, "->", "", 0, "C", false, 0, "")
		if pattern.Removed {
			r.font("B", 9, colorBrand)
		} else {
			r.font("", 9, colorGreen)
		}
		r.pdf.CellFormat(0, 7, r.tr(pattern.New), "1", 1, "L", false, 0, "")

		r.pdf.SetX(pageMargin + 28)
		r.font("", 9, colorBody)
		r.pdf.MultiCell(0, 4.5, r.tr(pattern.Description), "", "L", false)
		r.pdf.Ln(5)
	}
}

func (r *renderer) redirectSummary(doc *Document) {
	r.pdf.AddPage()
	r.title("URL Redirect Mapping")
	r.paragraph(doc.RedirectIntro)
	r.subtitle("Summary by Type")
	r.figures(doc.RedirectsByType, 4)
}

func (r *renderer) urlTable(table URLTable) {
	r.pdf.AddPage()
	r.title(table.Title)
	if table.Intro != "" {
		r.paragraph(table.Intro)
	}

	rows := make([]tableRow, 0, len(table.Entries))
	for _, entry := range table.Entries {
		if table.ArticleColumn {
			article := entry.ArticleNumber
			if article == "" {
				article = Dash
			}
			rows = append(rows, tableRow{cells: []string{article, entry.OldURL, entry.NewURL}})
			continue
		}
		rows = append(rows, tableRow{cells: []string{entry.OldURL, entry.NewURL}})
	}

	if table.ArticleColumn {
		r.table([]string{"Article #", "Old URL", "New URL"}, []float64{25, 72, 83}, []string{"L", "L", "L"}, rows)
		return
	}
	r.table([]string{"Old URL", table.TargetHeading}, []float64{90, 90}, []string{"L", "L"}, rows)
}

func (r *renderer) multilingual(doc *Document) {
	r.pdf.AddPage()
	r.title("Multilingual Content")
	r.paragraph(doc.SamplesIntro)

	width := r.contentWidth()
	for _, sample := range doc.Samples {
		r.ensureSpace(62)
		top := r.pdf.GetY()

		r.pdf.SetX(pageMargin + 3)
		r.font("I", 8, colorMuted)
		r.pdf.CellFormat(width/2, 6, r.tr(sample.Caption), "", 0, "L", false, 0, "")
		r.font("B", 10, colorBrand)
		r.pdf.CellFormat(width/2-6, 6, r.tr(sample.Price), "", 1, "R", false, 0, "")

		for _, translation := range sample.Translations {
			r.pdf.SetX(pageMargin + 3)
			r.font("B", 7, colorBrand)
			r.pdf.CellFormat(0, 4, r.tr(strings.ToUpper(translation.Language)), "", 1, "L", false, 0, "")
			r.pdf.SetX(pageMargin + 3)
			r.font("B", 10, colorText)
			r.pdf.MultiCell(width-6, 5, r.tr(translation.Name), "", "L", false)
			r.pdf.SetX(pageMargin + 3)
			r.font("", 8.5, colorBody)
			r.pdf.MultiCell(width-6, 4, r.tr(translation.Description), "", "L", false)
			r.pdf.Ln(1.5)
		}

		r.draw(colorRule)
		r.pdf.Rect(pageMargin, top, width, r.pdf.GetY()-top+1, "D")
		r.pdf.Ln(5)
	}
}

// # Building Blocks

func (r *renderer) footer(text string) func() {
	return func() {
		r.pdf.SetY(-12)
		r.font("", 8, colorMuted)
		r.pdf.CellFormat(0, 4, r.tr(text), "", 0, "L", false, 0, "")
		r.pdf.SetX(pageMargin)
		r.pdf.CellFormat(0, 4, fmt.Sprintf("%d / {nb}", r.pdf.PageNo()), "", 0, "R", false, 0, "")
	}
}

func (r *renderer) title(text string) {
	r.font("B", 18, colorText)
	r.pdf.MultiCell(0, 9, r.tr(text), "", "L", false)
	r.draw(colorBrand)
	y := r.pdf.GetY() + 1
	r.pdf.Line(pageMargin, y, pageMargin+30, y)
	r.pdf.Ln(6)
}

func (r *renderer) subtitle(text string) {
	r.ensureSpace(20)
	r.pdf.Ln(2)
	r.font("B", 12, colorText)
	r.pdf.MultiCell(0, 7, r.tr(text), "", "L", false)
	r.pdf.Ln(2)
}

func (r *renderer) paragraph(text string) {
	r.font("", 10, colorBody)
	r.pdf.MultiCell(0, lineHeight, r.tr(text), "", "L", false)
	r.pdf.Ln(3)
}

func (r *renderer) centered(height float64, text string) {
	r.pdf.CellFormat(0, height, r.tr(text), "", 1, "C", false, 0, "")
}

// figures draws labelled value boxes, perRow to a line.
func (r *renderer) figures(figures []Figure, perRow int) {
	const gap, height = 4.0, 24.0
	width := (r.contentWidth() - gap*float64(perRow-1)) / float64(perRow)

	for i, figure := range figures {
		column := i % perRow
		if column == 0 {
			if i > 0 {
				r.pdf.SetY(r.pdf.GetY() + height + gap)
			}
			r.ensureSpace(height)
		}

		x := pageMargin + float64(column)*(width+gap)
		y := r.pdf.GetY()

		r.draw(colorRule)
		r.fill(colorStripe)
		r.pdf.Rect(x, y, width, height, "FD")

		r.pdf.SetXY(x+3, y+3)
		r.font("B", 7, colorMuted)
		r.pdf.CellFormat(width-6, 4, r.tr(strings.ToUpper(figure.Label)), "", 0, "L", false, 0, "")
		r.pdf.SetXY(x+3, y+8)
		r.font("B", 15, colorText)
		r.pdf.CellFormat(width-6, 8, r.tr(figure.Value), "", 0, "L", false, 0, "")
		r.pdf.SetXY(x+3, y+17)
		r.font("", 7.5, colorBody)
		r.pdf.CellFormat(width-6, 4, r.tr(figure.Detail), "", 0, "L", false, 0, "")
		r.pdf.SetXY(pageMargin, y)
	}

	if len(figures) > 0 {
		r.pdf.SetY(r.pdf.GetY() + height + gap + 2)
	}
}

type tableRow struct {
	cells  []string
	accent *color
}

// table draws rows with wrapped cells, repeating the header after each page
// break.
func (r *renderer) table(headers []string, widths []float64, aligns []string, rows []tableRow) {
	const fontSize = 8.0
	rowLine := 4.0

	header := func() {
		r.font("B", fontSize, colorBody)
		r.fill(colorHeader)
		for i, heading := range headers {
			r.pdf.CellFormat(widths[i], 7, r.tr(heading), "", 0, aligns[i], true, 0, "")
		}
		r.pdf.Ln(-1)
	}

	r.ensureSpace(14)
	header()

	r.font("", fontSize, colorText)
	for i, row := range rows {
		wrapped := make([][]string, len(row.cells))
		lines := 1
		for j, cell := range row.cells {
			wrapped[j] = r.lines(cell, widths[j])
			lines = max(lines, len(wrapped[j]))
		}
		height := float64(lines)*rowLine + 2*cellPadding

		if r.pdf.GetY()+height > r.pageBottom() {
			r.pdf.AddPage()
			header()
			r.font("", fontSize, colorText)
		}

		y := r.pdf.GetY()
		if i%2 == 1 {
			r.fill(colorStripe)
			r.pdf.Rect(pageMargin, y, sum(widths), height, "F")
		}

		x := pageMargin
		for j, cellLines := range wrapped {
			r.text(colorText)
			if j == 0 && row.accent != nil {
				r.font("B", fontSize, *row.accent)
			}
			for k, line := range cellLines {
				r.pdf.SetXY(x, y+cellPadding+float64(k)*rowLine)
				r.pdf.CellFormat(widths[j], rowLine, line, "", 0, aligns[j], false, 0, "")
			}
			if j == 0 && row.accent != nil {
				r.font("", fontSize, colorText)
			}
			x += widths[j]
		}
		r.pdf.SetXY(pageMargin, y+height)
	}
	r.pdf.Ln(4)
}

// lines wraps text to width in the current font. The result is already
// cp1252 encoded.
func (r *renderer) lines(text string, width float64) []string {
	encoded := r.tr(text)

	// SplitText indexes the font widths by rune, so each cp1252 byte is widened
	// to a rune below 256 and narrowed again afterwards.
	widened := make([]rune, len(encoded))
	for i := 0; i < len(encoded); i++ {
		widened[i] = rune(encoded[i])
	}

	split := r.pdf.SplitText(string(widened), width)
	if len(split) == 0 {
		return []string{""}
	}

	out := make([]string, len(split))
	for i, line := range split {
		narrow := make([]byte, 0, len(line))
		for _, c := range line {
			narrow = append(narrow, byte(c))
		}
		out[i] = string(narrow)
	}
	return out
}

func (r *renderer) ensureSpace(height float64) {
	if r.pdf.GetY()+height > r.pageBottom() {
		r.pdf.AddPage()
	}
}

func (r *renderer) pageBottom() float64 {
	_, pageHeight := r.pdf.GetPageSize()
	return pageHeight - footerMargin
}

func (r *renderer) contentWidth() float64 {
	pageWidth, _ := r.pdf.GetPageSize()
	return pageWidth - 2*pageMargin
}

func (r *renderer) font(style string, size float64, c color) {
	r.pdf.SetFont("Helvetica", style, size)
	r.text(c)
}

func (r *renderer) text(c color) { r.pdf.SetTextColor(c.r, c.g, c.b) }
func (r *renderer) fill(c color) { r.pdf.SetFillColor(c.r, c.g, c.b) }
func (r *renderer) draw(c color) { r.pdf.SetDrawColor(c.r, c.g, c.b) }

func statusColor(status Status) *color {
	switch status {
	case StatusMatch:
		return &colorGreen
	case StatusRenamed:
		return &colorAmber
	}
	return &colorRed
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
