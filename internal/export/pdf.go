package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/menttor/menttor-cli/internal/domain"
)

// ErrNilRoadmap is returned when the PDF renderer receives no input. This is
// the one export path that reports missing input instead of degrading.
var ErrNilRoadmap = errors.New("roadmap is required")

// Page layout constants, in points.
const (
	pageMarginLeft  = 40.0
	pageMarginTop   = 60.0
	pageMarginRight = 40.0
	topicIndent     = 56.0
	subtopicIndent  = 72.0

	roomForHeader = 40.0
	roomForTopic  = 30.0
	roomForLine   = 20.0
)

// Accent and text colors (RGB).
var (
	accentColor = [3]int{79, 70, 229} // indigo, the platform accent
	bodyColor   = [3]int{55, 65, 81}
	dimColor    = [3]int{130, 130, 130}
)

// PDFRenderer produces the printable study timetable document. The brand
// logo comes from the injected AssetFetcher; any fetch failure degrades to
// the text wordmark and is only logged.
type PDFRenderer struct {
	assets AssetFetcher
	logger *slog.Logger
	now    func() time.Time
}

// NewPDFRenderer creates a renderer. A nil logger falls back to slog.Default.
func NewPDFRenderer(assets AssetFetcher, logger *slog.Logger) *PDFRenderer {
	if assets == nil {
		assets = NoAssetFetcher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFRenderer{assets: assets, logger: logger, now: time.Now}
}

// RenderFile renders the document and writes it to path.
func (p *PDFRenderer) RenderFile(ctx context.Context, r *domain.Roadmap, path string) error {
	if r == nil {
		return ErrNilRoadmap
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := p.Render(ctx, r, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Render writes the multi-page document to w. Every page carries the
// letterhead (logo or wordmark, diagonal watermark, tagline footer); the
// body walks the module/topic/subtopic tree independently of the schedule
// builder because pagination needs remaining-height checks, not dates.
func (p *PDFRenderer) Render(ctx context.Context, r *domain.Roadmap, w io.Writer) error {
	if r == nil {
		return ErrNilRoadmap
	}

	logo := p.fetchLogo(ctx)

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetTitle(r.DisplayTitle(), true)
	doc.SetMargins(pageMarginLeft, pageMarginTop, pageMarginRight)
	doc.SetAutoPageBreak(false, 0)

	logoName := ""
	if logo != nil {
		logoName = "brand-logo"
		doc.RegisterImageOptionsReader(logoName,
			fpdf.ImageOptions{ImageType: logo.Format},
			bytes.NewReader(logo.Data))
	}

	doc.SetHeaderFunc(func() { p.letterhead(doc, logoName) })
	doc.SetFooterFunc(func() { p.footer(doc) })
	doc.AddPage()

	p.renderIntro(doc, r)
	p.renderSchedule(doc, r)
	p.renderStudyTips(doc)

	if doc.Err() {
		return fmt.Errorf("rendering pdf: %w", doc.Error())
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func (p *PDFRenderer) fetchLogo(ctx context.Context) *Asset {
	logo, err := p.assets.FetchLogo(ctx)
	if err != nil {
		p.logger.Warn("brand logo unavailable, using text wordmark", "error", err)
		return nil
	}
	return logo
}

func (p *PDFRenderer) letterhead(doc *fpdf.Fpdf, logoName string) {
	pageW, pageH := doc.GetPageSize()

	if logoName != "" {
		doc.ImageOptions(logoName, pageMarginLeft, 18, 90, 0, false,
			fpdf.ImageOptions{}, 0, "")
	} else {
		doc.SetFont("Helvetica", "B", 18)
		doc.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
		doc.Text(pageMarginLeft, 38, BrandName)
	}

	// Diagonal low-opacity watermark across the page center.
	doc.SetAlpha(0.06, "Normal")
	doc.TransformBegin()
	doc.TransformRotate(45, pageW/2, pageH/2)
	doc.SetFont("Helvetica", "B", 64)
	doc.SetTextColor(60, 60, 60)
	doc.Text(pageW/2-160, pageH/2, WatermarkText)
	doc.TransformEnd()
	doc.SetAlpha(1, "Normal")

	doc.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	doc.SetY(pageMarginTop)
}

func (p *PDFRenderer) footer(doc *fpdf.Fpdf) {
	doc.SetY(-36)
	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(dimColor[0], dimColor[1], dimColor[2])
	line := fmt.Sprintf("%s  |  Generated %s", BrandTagline, p.now().Format("Jan 2, 2006"))
	doc.CellFormat(0, 10, line, "", 0, "C", false, 0, "")
}

func (p *PDFRenderer) renderIntro(doc *fpdf.Fpdf, r *domain.Roadmap) {
	pageW, _ := doc.GetPageSize()
	bodyW := pageW - pageMarginLeft - pageMarginRight

	doc.SetFont("Helvetica", "B", 20)
	doc.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
	doc.MultiCell(bodyW, 24, r.DisplayTitle(), "", "L", false)
	doc.Ln(4)

	if r.Description != "" {
		doc.SetFont("Helvetica", "", 11)
		doc.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
		doc.MultiCell(bodyW, 14, r.Description, "", "L", false)
		doc.Ln(4)
	}

	if r.TimeValue > 0 && r.TimeUnit != "" {
		doc.SetFont("Helvetica", "I", 10)
		doc.SetTextColor(dimColor[0], dimColor[1], dimColor[2])
		unit := string(r.TimeUnit)
		if r.TimeValue != 1 {
			unit += "s"
		}
		doc.MultiCell(bodyW, 13, fmt.Sprintf("Target duration: %d %s", r.TimeValue, unit), "", "L", false)
	}
	doc.Ln(8)
}

func (p *PDFRenderer) renderSchedule(doc *fpdf.Fpdf, r *domain.Roadmap) {
	pageW, _ := doc.GetPageSize()

	p.sectionHeader(doc, "Learning Schedule")

	if len(r.Modules) == 0 {
		doc.SetFont("Helvetica", "I", 11)
		doc.SetTextColor(dimColor[0], dimColor[1], dimColor[2])
		doc.MultiCell(pageW-pageMarginLeft-pageMarginRight, 14, "No modules found in this roadmap.", "", "L", false)
		return
	}

	for mi, mod := range r.Modules {
		p.ensureRoom(doc, roomForHeader)
		doc.SetFont("Helvetica", "B", 13)
		doc.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
		header := fmt.Sprintf("Module %d: %s", mi+1, mod.Title)
		if mod.Estimate != "" {
			header += fmt.Sprintf("  (%s)", mod.Estimate)
		}
		doc.MultiCell(pageW-pageMarginLeft-pageMarginRight, 17, header, "", "L", false)

		if mod.Description != "" {
			p.ensureRoom(doc, roomForLine)
			doc.SetFont("Helvetica", "", 10)
			doc.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
			doc.SetX(topicIndent)
			doc.MultiCell(pageW-topicIndent-pageMarginRight, 13, mod.Description, "", "L", false)
		}

		for _, topic := range mod.Topics {
			p.ensureRoom(doc, roomForTopic)
			doc.SetFont("Helvetica", "B", 11)
			doc.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
			doc.SetX(topicIndent)
			line := topic.Title
			if topic.Estimate != "" {
				line += fmt.Sprintf("  (%s)", topic.Estimate)
			}
			doc.MultiCell(pageW-topicIndent-pageMarginRight, 14, line, "", "L", false)

			for _, sub := range topic.Subtopics {
				p.ensureRoom(doc, roomForLine)
				doc.SetFont("Helvetica", "", 10)
				doc.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
				doc.SetX(subtopicIndent)
				bullet := "- " + sub.Title
				if sub.Estimate != "" {
					bullet += fmt.Sprintf("  (%s)", sub.Estimate)
				}
				doc.MultiCell(pageW-subtopicIndent-pageMarginRight, 13, bullet, "", "L", false)
			}
		}
		doc.Ln(6)
	}
}

func (p *PDFRenderer) renderStudyTips(doc *fpdf.Fpdf) {
	pageW, _ := doc.GetPageSize()

	p.ensureRoom(doc, roomForHeader*2)
	p.sectionHeader(doc, "Study Tips")

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	for _, tip := range StudyTips {
		p.ensureRoom(doc, roomForLine)
		doc.SetX(topicIndent)
		doc.MultiCell(pageW-topicIndent-pageMarginRight, 14, "- "+tip, "", "L", false)
	}
}

func (p *PDFRenderer) sectionHeader(doc *fpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
	doc.CellFormat(0, 18, title, "", 1, "L", false, 0, "")
	doc.Ln(2)
}

// ensureRoom starts a new page (re-rendering the letterhead via the header
// func) when fewer than margin points remain below the cursor.
func (p *PDFRenderer) ensureRoom(doc *fpdf.Fpdf, margin float64) {
	_, pageH := doc.GetPageSize()
	if doc.GetY() > pageH-margin {
		doc.AddPage()
	}
}
