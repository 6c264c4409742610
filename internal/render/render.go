// Package render lays out generated problems as printable PDF worksheets:
// a titled header with name/date lines, numbered problems with answer
// blanks, and an optional answer key. Problems are treated as opaque
// strings; all math happened upstream.
package render

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/mathsheets/internal/problemgen"
)

// Config controls page layout. Zero fields are filled from DefaultConfig.
type Config struct {
	PageSize   string
	MarginMM   float64
	FontFamily string

	TitleSize float64
	BodySize  float64

	// LineHeightMM is the height of one body line in millimeters.
	LineHeightMM float64

	// AnswerKey appends answer-key pages after the problem pages.
	AnswerKey bool
}

// DefaultConfig returns letter-size pages with generous margins.
func DefaultConfig() Config {
	return Config{
		PageSize:     "Letter",
		MarginMM:     18,
		FontFamily:   "Helvetica",
		TitleSize:    20,
		BodySize:     13,
		LineHeightMM: 9,
		AnswerKey:    true,
	}
}

// Renderer writes worksheets with a fixed layout configuration.
type Renderer struct {
	cfg   Config
	title cases.Caser
}

// New creates a Renderer, filling unset config fields with defaults.
func New(cfg Config) *Renderer {
	def := DefaultConfig()
	if cfg.PageSize == "" {
		cfg.PageSize = def.PageSize
	}
	if cfg.MarginMM == 0 {
		cfg.MarginMM = def.MarginMM
	}
	if cfg.FontFamily == "" {
		cfg.FontFamily = def.FontFamily
	}
	if cfg.TitleSize == 0 {
		cfg.TitleSize = def.TitleSize
	}
	if cfg.BodySize == 0 {
		cfg.BodySize = def.BodySize
	}
	if cfg.LineHeightMM == 0 {
		cfg.LineHeightMM = def.LineHeightMM
	}
	return &Renderer{cfg: cfg, title: cases.Title(language.English)}
}

// Title renders a worksheet heading from its raw parts, e.g.
// ("grade 5", "medium") → "Grade 5 Math Worksheet (Medium)".
func (r *Renderer) Title(gradeName, difficultyName string) string {
	return fmt.Sprintf("%s Math Worksheet (%s)",
		r.title.String(gradeName), r.title.String(difficultyName))
}

// WriteWorksheet renders one worksheet to path: header, numbered problems
// with answer blanks, and answer-key pages when configured.
func (r *Renderer) WriteWorksheet(title string, problems []problemgen.Problem, path string) error {
	pdf := r.newPDF(title)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	r.header(pdf, tr, title)

	pdf.SetFont(r.cfg.FontFamily, "", r.cfg.BodySize)
	for i, p := range problems {
		line := fmt.Sprintf("%d.  %s", i+1, p.Question)
		if isEquation(p) {
			line += "________"
		}
		pdf.MultiCell(0, r.cfg.LineHeightMM, tr(line), "", "L", false)
		if !isEquation(p) {
			pdf.MultiCell(0, r.cfg.LineHeightMM, "Answer: ____________", "", "L", false)
		}
		pdf.Ln(2)
	}

	if r.cfg.AnswerKey {
		r.answerPages(pdf, tr, title, problems)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write worksheet %s: %w", path, err)
	}
	return nil
}

// WriteAnswerKey renders a standalone answer-key document for one
// worksheet, used when keys are packaged as separate files.
func (r *Renderer) WriteAnswerKey(title string, problems []problemgen.Problem, path string) error {
	pdf := r.newPDF(title + " Answer Key")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	r.answerPages(pdf, tr, title, problems)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write answer key %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) newPDF(docTitle string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", r.cfg.PageSize, "")
	pdf.SetMargins(r.cfg.MarginMM, r.cfg.MarginMM, r.cfg.MarginMM)
	pdf.SetAutoPageBreak(true, r.cfg.MarginMM)
	pdf.SetTitle(docTitle, true)
	return pdf
}

func (r *Renderer) header(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont(r.cfg.FontFamily, "B", r.cfg.TitleSize)
	pdf.CellFormat(0, 14, tr(title), "", 1, "C", false, 0, "")

	pdf.SetFont(r.cfg.FontFamily, "", r.cfg.BodySize)
	pdf.CellFormat(0, 10, "Name: ______________________          Date: ______________", "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func (r *Renderer) answerPages(pdf *fpdf.Fpdf, tr func(string) string, title string, problems []problemgen.Problem) {
	pdf.AddPage()
	pdf.SetFont(r.cfg.FontFamily, "B", r.cfg.TitleSize)
	pdf.CellFormat(0, 14, tr(title+" - Answer Key"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(r.cfg.FontFamily, "", r.cfg.BodySize)
	for i, p := range problems {
		pdf.MultiCell(0, r.cfg.LineHeightMM, tr(fmt.Sprintf("%d.  %s", i+1, p.Answer)), "", "L", false)
	}
}

// isEquation reports whether the question carries its own trailing blank
// ("7 + 5 = "); word problems get an explicit answer line instead.
func isEquation(p problemgen.Problem) bool {
	q := p.Question
	return len(q) > 0 && q[len(q)-1] != '?'
}
