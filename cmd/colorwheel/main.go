// Command colorwheel replays a drag gesture on a color wheel and renders
// the result, with the selected color's swatch and hex label, to a PNG.
//
// Example:
//
//	colorwheel -size 300 -initial '#336699' -drag '150,150;280,90;300,150' -out wheel.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/colorwheel"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	swatchHeight = 48
	labelHeight  = 32
	gap          = 12
)

// stepClock is a frame clock advanced explicitly, so the rendered frame
// shows the settled state.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time          { return c.now }
func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func main() {
	var (
		size    = flag.Int("size", 300, "wheel diameter in pixels")
		initial = flag.String("initial", colorwheel.DefaultColor, "initial color (#rrggbb)")
		drag    = flag.String("drag", "", "gesture samples in wheel coordinates, 'x,y;x,y;...'")
		output  = flag.String("out", "wheel.png", "output file")
		verbose = flag.Bool("v", false, "log gesture handling to stderr")
	)
	flag.Parse()

	if *verbose {
		colorwheel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	points, err := parsePoints(*drag)
	if err != nil {
		log.Fatalf("Invalid -drag: %v", err)
	}

	clock := &stepClock{now: time.Now()}
	queue := colorwheel.NewQueue()

	wheel := colorwheel.New(
		colorwheel.WithSize(float64(*size)),
		colorwheel.WithInitialColor(*initial),
		colorwheel.WithClock(clock.Now),
		colorwheel.WithDispatcher(queue),
		colorwheel.WithOnColorChange(func(hex string) { printColor("change", hex) }),
		colorwheel.WithOnColorConfirm(func(hex string) { printColor("confirm", hex) }),
	)
	defer wheel.Close()

	style := colorwheel.DefaultStyle()
	style.CornerRadius = 8
	swatch := colorwheel.NewSwatch(wheel.ColorState(),
		colorwheel.WithGestureFlag(wheel.GestureFlag()),
		colorwheel.WithClock(clock.Now),
		colorwheel.WithStyle(style),
	)
	defer swatch.Close()

	replay(wheel, points)
	queue.Drain()
	clock.Advance(2 * time.Second)

	dc, err := render(wheel, swatch)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	defer func() { _ = dc.Close() }()

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Wheel saved to %s (%s)\n", *output, wheel.Hex())
}

// replay feeds points to the wheel as one gesture session.
func replay(w *colorwheel.Wheel, points []colorwheel.Vector) {
	if len(points) == 0 {
		return
	}
	last := len(points) - 1
	w.GestureStart(points[0])
	for i := 1; i < last; i++ {
		w.GestureMove(points[i])
	}
	w.GestureEnd(points[last])
}

func render(w *colorwheel.Wheel, s *colorwheel.Swatch) (*gg.Context, error) {
	size := w.Size()
	width := int(size)
	height := width + gap + swatchHeight + labelHeight

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.RGB(0.12, 0.12, 0.14))

	if err := w.Draw(dc); err != nil {
		return nil, err
	}
	top := size + gap
	if err := s.Draw(dc, 0, top, size, swatchHeight); err != nil {
		return nil, err
	}

	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	defer func() { _ = src.Close() }()

	dc.SetFont(src.Face(16))
	dc.SetRGB(0.9, 0.9, 0.9)
	dc.DrawStringAnchored(w.Hex(), size/2, top+swatchHeight+labelHeight/2, 0.5, 0.5)
	return dc, nil
}

func printColor(kind, hex string) {
	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render("      ")
	label := lipgloss.NewStyle().Bold(kind == "confirm").Render(kind)
	fmt.Printf("%-9s %s %s\n", label, chip, hex)
}
