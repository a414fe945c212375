package display

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	on  = color.Gray{Y: 255}
	off = color.Gray{Y: 0}
)

// Renderer draws into a grayscale image that is thresholded to 1 bit on
// export
type Renderer struct {
	img  *image.Gray
	face font.Face
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		img:  image.NewGray(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
}

func (r *Renderer) Width() int  { return r.img.Bounds().Dx() }
func (r *Renderer) Height() int { return r.img.Bounds().Dy() }

// LineHeight is the font's line advance in pixels
func (r *Renderer) LineHeight() int {
	return r.face.Metrics().Height.Ceil()
}

func (r *Renderer) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(off), image.Point{}, draw.Src)
}

// DrawText draws text with its baseline at y
func (r *Renderer) DrawText(x, y int, text string) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(on),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// TextWidth measures text in pixels
func (r *Renderer) TextWidth(text string) int {
	return font.MeasureString(r.face, text).Ceil()
}

// DrawTextWrapped word-wraps text to maxWidth and returns the height used
func (r *Renderer) DrawTextWrapped(x, y, maxWidth int, text string) int {
	lineHeight := r.LineHeight()
	top := y

	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && r.TextWidth(candidate) > maxWidth {
			r.DrawText(x, y, line)
			y += lineHeight
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		r.DrawText(x, y, line)
		y += lineHeight
	}

	return y - top
}

func (r *Renderer) DrawRect(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.FillRect(x, y, width, 1)
	r.FillRect(x, y+height-1, width, 1)
	r.FillRect(x, y, 1, height)
	r.FillRect(x+width-1, y, 1, height)
}

// FillRect fills a rectangle, clipped to the display
func (r *Renderer) FillRect(x, y, width, height int) {
	rect := image.Rect(x, y, x+width, y+height).Intersect(r.img.Bounds())
	draw.Draw(r.img, rect, image.NewUniform(on), image.Point{}, draw.Src)
}

// DrawBar draws an outlined bar filled to fraction, clamped to [0, 1]
func (r *Renderer) DrawBar(x, y, width, height int, fraction float64) {
	r.DrawRect(x, y, width, height)
	fraction = max(0, min(1, fraction))
	fill := int(fraction * float64(width-2))
	if fill > 0 {
		r.FillRect(x+1, y+1, fill, height-2)
	}
}

func (r *Renderer) SetPixel(x, y int, lit bool) {
	if lit {
		r.img.SetGray(x, y, on)
	} else {
		r.img.SetGray(x, y, off)
	}
}

// FrameBuffer packs the image row-major, 8 pixels per byte, MSB first
func (r *Renderer) FrameBuffer() []byte {
	width, height := r.Width(), r.Height()
	stride := (width + 7) / 8
	data := make([]byte, stride*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if r.img.GrayAt(x, y).Y > 127 {
				data[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return data
}
