// Package pdf reads page counts and stamps viewer watermarks onto PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

//go:generate mockgen -source=pdf.go -destination=../mocks/pdf_mocks.go -package=mocks

// Processor is the PDF toolkit used by document uploads and downloads
type Processor interface {
	PageCount(r io.ReadSeeker) (int, error)
	Watermark(r io.ReadSeeker, w io.Writer, text string) error
}

// watermarkDesc renders the text diagonally in light grey on every page
const watermarkDesc = "font:Helvetica, points:28, scale:0.7 rel, rotation:45, opacity:0.2, fillcolor:#808080"

// PdfcpuProcessor implements Processor with pdfcpu
type PdfcpuProcessor struct {
	conf *model.Configuration
}

// Ensure PdfcpuProcessor implements Processor
var _ Processor = (*PdfcpuProcessor)(nil)

// NewProcessor creates a processor with relaxed validation, since uploads come from arbitrary tools
func NewProcessor() *PdfcpuProcessor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PdfcpuProcessor{conf: conf}
}

// PageCount returns the number of pages of a PDF
func (p *PdfcpuProcessor) PageCount(r io.ReadSeeker) (int, error) {
	ctx, err := pdfcpu.Read(r, p.conf)
	if err != nil {
		return 0, fmt.Errorf("failed to read pdf: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	if ctx.PageCount == 0 {
		return 0, fmt.Errorf("page count is zero")
	}
	return ctx.PageCount, nil
}

// Watermark writes a copy of the PDF with text stamped on every page
func (p *PdfcpuProcessor) Watermark(r io.ReadSeeker, w io.Writer, text string) error {
	wm, err := api.TextWatermark(text, watermarkDesc, true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to build watermark: %w", err)
	}
	if err := api.AddWatermarks(r, w, nil, wm, p.conf); err != nil {
		return fmt.Errorf("failed to add watermark: %w", err)
	}
	return nil
}

// WatermarkVars are the values a custom watermark template may reference
type WatermarkVars struct {
	Email     string
	Date      string
	IPAddress string
	Link      string
}

// RenderWatermark fills the {{email}}, {{date}}, {{ipAddress}} and {{link}} placeholders.
// An empty template yields "email · date · ip" with empty parts left out.
func RenderWatermark(template string, vars WatermarkVars) string {
	if strings.TrimSpace(template) == "" {
		parts := make([]string, 0, 3)
		for _, v := range []string{vars.Email, vars.Date, vars.IPAddress} {
			if v != "" {
				parts = append(parts, v)
			}
		}
		return strings.Join(parts, " · ")
	}
	return strings.NewReplacer(
		"{{email}}", vars.Email,
		"{{date}}", vars.Date,
		"{{ipAddress}}", vars.IPAddress,
		"{{link}}", vars.Link,
	).Replace(template)
}

// IsPDF sniffs the PDF magic header
func IsPDF(head []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(head, "\x00\t\r\n "), []byte("%PDF-"))
}
