// Package pdf renders a finished dashboard as a one-page PDF report: a
// header bar, the readout table when the profile has one, and the server's
// risk fragment laid out with fpdf's basic HTML writer.
package pdf

import (
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/net/html"

	"github.com/csg33k/palmwatch/internal/domain"
)

// GenerateReport writes the report for d to w. generatedAt is printed in the
// header.
func GenerateReport(d domain.Dashboard, generatedAt time.Time, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("{nb}")
	pdf.AddPage()

	// Core fonts are cp1252; "°" and friends need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawHeader(pdf, tr, d, generatedAt)
	if len(d.Readouts) > 0 {
		drawReadouts(pdf, tr, d.Readouts)
	}
	drawResult(pdf, tr, d)

	return pdf.Output(w)
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, d domain.Dashboard, at time.Time) {
	pageW, _ := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// ── Header bar ───────────────────────────────────────────────────────────
	pdf.SetFillColor(44, 110, 73)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW-4, 7, tr(strings.ToUpper(reportTitle(d.Profile))), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 8.5)
	pdf.SetXY(marginL, marginT+12)
	pdf.CellFormat(contentW, 5, "Generated "+at.UTC().Format("2006-01-02 15:04 MST"), "", 1, "R", false, 0, "")
	pdf.Ln(3)
}

func drawReadouts(pdf *fpdf.Fpdf, tr func(string) string, readouts []domain.Readout) {
	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetX(marginL)
	pdf.CellFormat(contentW, 5.5, "CURRENT CONDITIONS", "1", 1, "L", true, 0, "")

	labelW := contentW * 0.5
	rowH := 6.5
	for i, r := range readouts {
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetX(marginL)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(labelW, rowH, tr(r.Label), "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW-labelW, rowH, tr(r.Text), "1", 1, "R", true, 0, "")
	}
	pdf.Ln(5)
}

func drawResult(pdf *fpdf.Fpdf, tr func(string) string, d domain.Dashboard) {
	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetX(marginL)
	pdf.CellFormat(contentW, 5.5, "RISK REPORT", "1", 1, "L", true, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9.5)
	if !d.ResultVisible || strings.TrimSpace(d.ResultHTML) == "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 6, "No assessment has been rendered.", "", 1, "L", false, 0, "")
		return
	}
	hw := pdf.HTMLBasicNew()
	hw.Write(5, tr(FlattenFragment(d.ResultHTML)))
}

func reportTitle(profile string) string {
	if profile == domain.ProfileDashboard {
		return "Palm Risk Dashboard"
	}
	return "Palm Risk Assessment"
}

// fpdf's HTML writer only knows b, i, u and br.
var inlineTags = map[string]string{
	"b": "b", "strong": "b",
	"i": "i", "em": "i",
	"u": "u",
}

var blockTags = map[string]bool{
	"li": true, "div": true, "p": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// FlattenFragment maps the server's fragment onto the tags fpdf's HTML writer
// understands: strong/em become b/i, list items get a dash, block ends become
// line breaks, and every other tag (with all attributes) is dropped. Source
// whitespace is collapsed.
func FlattenFragment(fragment string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch {
			case tag == "br":
				b.WriteString("<br>")
			case inlineTags[tag] != "":
				if tt == html.EndTagToken {
					b.WriteString("</" + inlineTags[tag] + ">")
				} else {
					b.WriteString("<" + inlineTags[tag] + ">")
				}
			case tag == "li" && tt == html.StartTagToken:
				b.WriteString(" - ")
			case blockTags[tag] && tt == html.EndTagToken:
				b.WriteString("<br>")
			}
		}
	}
}
