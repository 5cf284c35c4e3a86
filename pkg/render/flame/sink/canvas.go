package sink

import (
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/render/flame/layout"
	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
)

// unitMM is the size of one layout unit in millimeters (one CSS pixel).
const unitMM = 25.4 / 96

// mmToPt converts millimeters to typographic points.
const mmToPt = 72 / 25.4

var background = color.RGBA{R: 238, G: 238, B: 238, A: 255}

var (
	fontOnce   sync.Once
	fontFamily *canvas.FontFamily
	fontErr    error
)

func loadFont() (*canvas.FontFamily, error) {
	fontOnce.Do(func() {
		family := canvas.NewFontFamily("flamegraph")
		if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
			fontErr = errors.Wrap(errors.ErrCodeInternal, err, "load embedded font")
			return
		}
		fontFamily = family
	})
	return fontFamily, fontErr
}

// face returns a font face whose em size is size layout units.
func face(family *canvas.FontFamily, size float64, col color.Color) *canvas.FontFace {
	return family.Face(size*unitMM*mmToPt, col, canvas.FontRegular, canvas.FontNormal)
}

// drawLayout paints l onto a new canvas measured in millimeters, with the
// origin at the top left like the layout itself.
func drawLayout(l *layout.Layout) (*canvas.Canvas, error) {
	family, err := loadFont()
	if err != nil {
		return nil, err
	}

	c := canvas.New(l.Width*unitMM, l.Height*unitMM)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})

	ctx.SetFillColor(background)
	ctx.DrawPath(0, 0, canvas.Rectangle(l.Width*unitMM, l.Height*unitMM))

	if l.Title != "" {
		title := face(family, 16, styles.TitleColor)
		ctx.DrawText(l.Width/2*unitMM, 20*unitMM, canvas.NewTextLine(title, l.Title, canvas.Center))
	}

	label := face(family, styles.FontSize, styles.TextColor)
	measure := func(s string) float64 { return label.TextWidth(s) / unitMM }

	for _, r := range l.Rects {
		ctx.SetFillColor(fill(r.Color))
		ctx.DrawPath(r.X*unitMM, r.Y*unitMM, canvas.RoundedRectangle(r.Width*unitMM, r.Height*unitMM, unitMM))

		text := styles.FitMeasured(r.Label, r.Width-layout.TextMargin, measure)
		if text == "" {
			continue
		}
		ctx.DrawText((r.X+layout.TextMargin)*unitMM, l.TextY(r.Depth)*unitMM, canvas.NewTextLine(label, text, canvas.Left))
	}
	return c, nil
}

func fill(c color.Color) color.Color {
	if c == nil {
		return styles.DarkOrange
	}
	return c
}
