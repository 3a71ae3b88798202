package lsp

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/colorwheel/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an RGB color (uint8 channels) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.RGB) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

// colorFromLSP converts a protocol.Color back to RGB, rounding each channel.
func colorFromLSP(c protocol.Color) color.RGB {
	return color.NewRGB(
		math.Round(float64(c.Red)*255),
		math.Round(float64(c.Green)*255),
		math.Round(float64(c.Blue)*255),
	)
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color.RGB),
		})
	}
	return infos
}

// colorPresentation offers the picked color as a hex string, an rgb() call
// and an hsl() call. The notation already used at the range comes first so
// that editors applying the first presentation keep the author's style.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	snap := color.FromRGB(colorFromLSP(params.Color))
	hsl := snap.HSL.Round(2)

	hexText := snap.Hex
	rgbText := fmt.Sprintf("rgb(%d, %d, %d)", snap.RGB.R, snap.RGB.G, snap.RGB.B)
	hslText := fmt.Sprintf("hsl(%s, %s, %s)",
		color.FormatNumber(hsl.H), color.FormatNumber(hsl.S), color.FormatNumber(hsl.L))

	presentation := func(label, newText string) protocol.ColorPresentation {
		return protocol.ColorPresentation{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: newText,
			},
		}
	}

	hexP := presentation(hexText, `"`+hexText+`"`)
	rgbP := presentation(rgbText, rgbText)
	hslP := presentation(hslText, hslText)

	text := strings.TrimPrefix(extractText(content, params.Range), `"`)
	switch {
	case strings.HasPrefix(strings.ToLower(text), "rgb("):
		return []protocol.ColorPresentation{rgbP, hslP, hexP}
	case strings.HasPrefix(strings.ToLower(text), "hsl("):
		return []protocol.ColorPresentation{hslP, rgbP, hexP}
	default:
		return []protocol.ColorPresentation{hexP, rgbP, hslP}
	}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	return documentColors(s.docs.Analysis(uri)), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
