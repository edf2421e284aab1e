package colorwheel

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG wheel assets
	_ "image/png"  // register PNG wheel assets
	"io"
	"math"
	"runtime"
	"strconv"

	"github.com/gogpu/gg"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/remeh/sizedwaitgroup"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/singleflight"
)

// wheelCacheSize bounds the number of generated backgrounds kept alive.
const wheelCacheSize = 8

var (
	wheelImages, _ = lru.New[int, *gg.Pixmap](wheelCacheSize)
	wheelRenders   singleflight.Group
)

// WheelImage returns the generated wheel background for a wheel of the
// given pixel size: hue follows the angle (0° at three o'clock, growing
// counter-clockwise), saturation grows with the distance from the center,
// value is 100, and the rim is antialiased over one pixel.
//
// Results are cached per size and shared; callers must not modify them.
// Concurrent requests for the same size render it once.
func WheelImage(size int) *gg.Pixmap {
	if size <= 0 {
		size = 1
	}
	if pm, ok := wheelImages.Get(size); ok {
		return pm
	}
	v, _, _ := wheelRenders.Do(strconv.Itoa(size), func() (any, error) {
		if pm, ok := wheelImages.Get(size); ok {
			return pm, nil
		}
		pm := renderWheel(size)
		wheelImages.Add(size, pm)
		Logger().Debug("colorwheel: rendered wheel image", "size", size)
		return pm, nil
	})
	return v.(*gg.Pixmap)
}

// rowsPerBand is the number of rows one render worker fills.
const rowsPerBand = 32

func renderWheel(size int) *gg.Pixmap {
	pm := gg.NewPixmap(size, size)
	r := float64(size) / 2
	center := Vector{X: r, Y: r}

	// Bands touch disjoint rows of the pixmap.
	swg := sizedwaitgroup.New(runtime.GOMAXPROCS(0))
	for y0 := 0; y0 < size; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, size)
		swg.Add()
		go func() {
			defer swg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < size; x++ {
					p := CanvasToPolar(Vector{X: float64(x) + 0.5, Y: float64(y) + 0.5}, center)
					cover := clamp(r-p.Radius+0.5, 0, 1)
					if cover == 0 {
						continue
					}
					c := HSVToRGB(ToDegree(p.Theta), math.Min(p.Radius, r)/r*svMax, svMax)
					pm.SetPixel(x, y, gg.RGBA{
						R: c.R / rgbMax,
						G: c.G / rgbMax,
						B: c.B / rgbMax,
						A: cover,
					})
				}
			}
		}()
	}
	swg.Wait()
	return pm
}

// LoadWheelImage decodes a PNG or JPEG wheel asset and fits it into a
// size × size square, preserving its aspect ratio and centering it.
func LoadWheelImage(r io.Reader, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return fitImage(src, size), nil
}

// fitImage scales src to fit a size × size square with Catmull-Rom
// resampling.
func fitImage(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	sb := src.Bounds()
	if sb.Dx() <= 0 || sb.Dy() <= 0 {
		return dst
	}

	scale := math.Min(float64(size)/float64(sb.Dx()), float64(size)/float64(sb.Dy()))
	w := int(math.Round(float64(sb.Dx()) * scale))
	h := int(math.Round(float64(sb.Dy()) * scale))
	x0 := (size - w) / 2
	y0 := (size - h) / 2

	xdraw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), src, sb, xdraw.Over, nil)
	return dst
}

// backgroundLocked returns the wheel background as a gg image buffer,
// building it on first use after creation or Resize. w.mu must be held.
func (w *Wheel) backgroundLocked() *gg.ImageBuf {
	if w.background != nil {
		return w.background
	}
	px := int(math.Round(w.size))
	var img image.Image
	if src := w.cfg.wheelImage; src != nil {
		if b := src.Bounds(); b.Dx() == px && b.Dy() == px {
			img = src
		} else {
			img = fitImage(src, px)
		}
	} else {
		// ToImage takes the direct copy path into the buffer.
		img = WheelImage(px).ToImage()
	}
	buf := gg.ImageBufFromImage(img)
	w.background = buf
	return buf
}

// Draw renders the wheel into dc with its top-left corner at the origin:
// the optional container background, the wheel image, and the thumb with
// its border ring.
func (w *Wheel) Draw(dc *gg.Context) error {
	w.mu.Lock()
	size := w.size
	style := w.cfg.style
	bg := w.backgroundLocked()
	w.mu.Unlock()

	th := w.Thumb()

	if style.Background != nil {
		dc.SetColor(*style.Background)
		dc.DrawRectangle(0, 0, size, size)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	dc.DrawImage(bg, 0, 0)

	r := th.Size / 2
	dc.SetColor(th.Color)
	dc.DrawCircle(th.Position.X, th.Position.Y, r)
	if err := dc.Fill(); err != nil {
		return err
	}

	if style.ThumbBorderWidth <= 0 {
		return nil
	}
	dc.SetColor(style.ThumbBorderColor)
	dc.SetLineWidth(style.ThumbBorderWidth)
	dc.DrawCircle(th.Position.X, th.Position.Y, r)
	return dc.Stroke()
}
