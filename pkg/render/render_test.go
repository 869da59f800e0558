package render

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"image/png"
	"math"
	"os/exec"
	"strings"
	"testing"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/errors"
	"github.com/matzehuels/shadowboard/pkg/shadow"
)

func testHeatmap(t *testing.T) Heatmap {
	t.Helper()
	blocks := []board.Point{{X: 0, Y: 0}}
	angles := []int{0, 90}
	g, err := shadow.ComputeShadowScore(blocks, angles)
	if err != nil {
		t.Fatalf("ComputeShadowScore: %v", err)
	}
	d, err := shadow.Detect(g, 0.8)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	return Heatmap{
		Scores:    g,
		Detected:  d,
		Threshold: 0.8,
		Angles:    angles,
		Blocks:    blocks,
		Colormap:  Grayscale(),
	}
}

func TestColormapScale(t *testing.T) {
	s, err := Grayscale().Scale()
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}

	tests := []struct {
		v    float64
		want string
	}{
		{0, "#eeeeee"},
		{1, "#000000"},
		{-3, "#eeeeee"},
		{7, "#000000"},
	}
	for _, tt := range tests {
		if got := s.Hex(tt.v); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}

	if s.IsDark(0) {
		t.Error("score 0 should be light")
	}
	if !s.IsDark(1) {
		t.Error("score 1 should be dark")
	}
}

func TestColormapMonotonic(t *testing.T) {
	s, _ := Grayscale().Scale()
	prev := 256.0
	for v := 0.0; v <= 1.0; v += 0.1 {
		r, _, _ := s.At(v).RGB255()
		if float64(r) > prev {
			t.Fatalf("grayscale should darken as score rises; v=%v r=%d prev=%v", v, r, prev)
		}
		prev = float64(r)
	}
}

func TestColormapValidate(t *testing.T) {
	tests := []struct {
		name    string
		cm      Colormap
		wantArg string
	}{
		{"valid", Colormap{Low: "#ffffff", High: "#112233"}, ""},
		{"bad low", Colormap{Low: "white", High: "#000000"}, "colormap.low"},
		{"bad high", Colormap{Low: "#ffffff", High: "#12"}, "colormap.high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cm.Validate()
			if tt.wantArg == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if errors.Arg(err) != tt.wantArg {
				t.Errorf("Validate() = %v, want arg %q", err, tt.wantArg)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	h := testHeatmap(t)
	data, err := RenderSVG(h, WithScores())
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	svg := string(data)

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output is not a complete SVG document")
	}
	if n := strings.Count(svg, `class="cell"`); n != 25 {
		t.Errorf("cell count = %d, want 25", n)
	}
	// 6 horizontal + 6 vertical grid lines
	if n := strings.Count(svg, "<line"); n != 12 {
		t.Errorf("grid line count = %d, want 12", n)
	}
	if n := strings.Count(svg, `class="marker"`); n != 1 {
		t.Errorf("marker count = %d, want 1", n)
	}
	if !strings.Contains(svg, `id="marker-C3"`) {
		t.Error("C3 should carry a marker")
	}
	if !strings.Contains(svg, `id="cell-C3"`) || !strings.Contains(svg, `fill="#000000" data-score="1.0000"`) {
		t.Error("C3 should be filled with the high color")
	}
	for _, label := range []string{">A<", ">E<", ">1<", ">5<"} {
		if !strings.Contains(svg, label) {
			t.Errorf("missing axis label %s", label)
		}
	}
	if !strings.Contains(svg, html.EscapeString(DefaultTitle)) {
		t.Error("missing default title")
	}
}

func TestRenderSVGSize(t *testing.T) {
	h := testHeatmap(t)
	data, err := RenderSVG(h, WithSize(250))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	// 40 + 250 + 20 wide, 50 + 250 + 40 high
	if !strings.Contains(string(data), `viewBox="0 0 310.0 340.0"`) {
		t.Errorf("unexpected viewBox in %s", string(data)[:120])
	}
}

func TestRenderSVGEscapesTitle(t *testing.T) {
	h := testHeatmap(t)
	h.Title = "<b>&"
	data, _ := RenderSVG(h)
	if !strings.Contains(string(data), "&lt;b&gt;&amp;") {
		t.Error("title should be escaped")
	}
}

func TestRenderSVGBadColormap(t *testing.T) {
	h := testHeatmap(t)
	h.Colormap = Colormap{Low: "nope", High: "#000000"}
	if _, err := RenderSVG(h); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderSVG() = %v, want INVALID_INPUT", err)
	}
}

func TestRenderRejectsBadSize(t *testing.T) {
	h := testHeatmap(t)
	for _, size := range []float64{-1, math.NaN(), math.Inf(1), 1e7} {
		if _, err := RenderPNG(h, WithPNGSize(size)); errors.Arg(err) != "size" {
			t.Errorf("RenderPNG(size=%v) = %v, want size error", size, err)
		}
		if _, err := RenderSVG(h, WithSize(size)); errors.Arg(err) != "size" {
			t.Errorf("RenderSVG(size=%v) = %v, want size error", size, err)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	h := testHeatmap(t)
	data, err := RenderPNG(h, WithPNGSize(200))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 260 || b.Dy() != 290 {
		t.Errorf("size = %dx%d, want 260x290", b.Dx(), b.Dy())
	}

	// Cell A5 (score 0) is light gray away from its grid lines.
	r, g, bl, _ := img.At(int(marginLeft)+10, int(marginTop)+10).RGBA()
	if r>>8 != 0xee || g>>8 != 0xee || bl>>8 != 0xee {
		t.Errorf("A5 pixel = (%d,%d,%d), want #eeeeee", r>>8, g>>8, bl>>8)
	}

	// C3 center carries the red marker.
	r, _, _, _ = img.At(int(marginLeft)+100, int(marginTop)+100).RGBA()
	if r>>8 < 0xc0 {
		t.Errorf("C3 center red = %d, want marker color", r>>8)
	}
}

func TestRenderJSON(t *testing.T) {
	h := testHeatmap(t)
	data, err := RenderJSON(h)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(out.Scores) != 5 || len(out.Scores[0]) != 5 {
		t.Fatalf("scores shape = %dx%d, want 5x5", len(out.Scores), len(out.Scores[0]))
	}
	if out.Scores[2][2] != 1 || out.Scores[0][2] != 0.5 || out.Scores[0][0] != 0 {
		t.Errorf("unexpected scores %v", out.Scores)
	}
	if len(out.Detected) != 1 || out.Detected[0] != "C3" {
		t.Errorf("detected = %v, want [C3]", out.Detected)
	}
	if len(out.Cells) != 25 {
		t.Fatalf("cells = %d, want 25", len(out.Cells))
	}
	first := out.Cells[0]
	if first.Label != "A5" || first.X != -10 || first.Y != 10 {
		t.Errorf("first cell = %+v, want A5 at (-10, 10)", first)
	}
	if out.Colormap != Grayscale() {
		t.Errorf("colormap = %+v, want grayscale", out.Colormap)
	}
}

func TestRenderTerminal(t *testing.T) {
	h := testHeatmap(t)
	out, err := RenderTerminal(h)
	if err != nil {
		t.Fatalf("RenderTerminal: %v", err)
	}

	if n := strings.Count(out, terminalMarker); n != 1 {
		t.Errorf("marker count = %d, want 1", n)
	}
	if !strings.Contains(out, "1.00 "+terminalMarker) {
		t.Error("C3 should show its score with a marker")
	}
	for _, s := range []string{"A", "E", "5", "0.50"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q", s)
		}
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(context.Background(), testHeatmap(t), WithSize(200))
	if _, lookErr := exec.LookPath("rsvg-convert"); lookErr != nil {
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("without rsvg-convert: err = %v, want UNSUPPORTED", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a PDF")
	}
}

func TestRenderPDFCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RenderPDF(ctx, testHeatmap(t)); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if _, err := ToPDF(ctx, []byte("<svg/>")); err != context.Canceled {
		t.Errorf("ToPDF err = %v, want context.Canceled", err)
	}
}
