package preprocess

import (
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"sort"

	xdraw "golang.org/x/image/draw"

	"go-jobpost-verifier/internal/logger"
)

// MinOCRWidth is the width below which screenshots are upscaled before OCR.
// Phone screenshots of postings are commonly 720-1080px wide; tesseract
// accuracy drops sharply under that.
const MinOCRWidth = 1200

// Strategy is one thresholding attempt over an upscaled grayscale image.
// Apply must be a pure function: same input, same output, no shared state.
type Strategy struct {
	Name  string
	Apply func(src *image.Gray) (*image.Gray, error)
}

// Strategies returns the ordered thresholding chain. The first strategy
// whose Apply succeeds wins; failures are skipped, never fatal. The plain
// strategy always succeeds and acts as the final fallback.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "adaptive", Apply: func(g *image.Gray) (*image.Gray, error) {
			return adaptiveThreshold(medianBlur(g), 11, 2)
		}},
		{Name: "otsu", Apply: func(g *image.Gray) (*image.Gray, error) {
			return otsuThreshold(medianBlur(g))
		}},
		{Name: "enhanced", Apply: func(g *image.Gray) (*image.Gray, error) {
			return otsuThreshold(equalizeContrast(g, 2.0))
		}},
		{Name: "plain", Apply: func(g *image.Gray) (*image.Gray, error) {
			return g, nil
		}},
	}
}

// ForOCR normalizes an image into its best OCR-friendly form: grayscale,
// upscaled to MinOCRWidth when narrower, then run through the threshold
// strategy chain. Returns the winning image and the strategy name. If every
// strategy fails the upscaled grayscale itself is returned.
func ForOCR(img image.Image) (*image.Gray, string) {
	gray := ToGray(img)
	gray = UpscaleToMinWidth(gray)

	for _, s := range Strategies() {
		out, err := s.Apply(gray)
		if err != nil {
			logger.WithComponent("preprocess").WithError(err).
				WithField("strategy", s.Name).Debug("threshold strategy skipped")
			continue
		}
		return out, s.Name
	}
	return gray, "grayscale"
}

// ToGray converts any image to single-channel grayscale
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	stddraw.Draw(gray, bounds, img, bounds.Min, stddraw.Src)
	return gray
}

// UpscaleToMinWidth scales gray up to MinOCRWidth with cubic interpolation,
// preserving aspect ratio. Images already wide enough pass through untouched.
func UpscaleToMinWidth(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 || width >= MinOCRWidth {
		return gray
	}

	scale := float64(MinOCRWidth) / float64(width)
	newHeight := int(float64(height) * scale)
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewGray(image.Rect(0, 0, MinOCRWidth, newHeight))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), gray, bounds, xdraw.Over, nil)
	return dst
}

// medianBlur applies a 3x3 median filter, the usual denoise pass before
// thresholding screenshot text. Border pixels are copied unchanged.
func medianBlur(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	out := image.NewGray(bounds)
	copy(out.Pix, gray.Pix)

	window := make([]int, 0, 9)
	for y := bounds.Min.Y + 1; y < bounds.Max.Y-1; y++ {
		for x := bounds.Min.X + 1; x < bounds.Max.X-1; x++ {
			window = window[:0]
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					window = append(window, int(gray.GrayAt(x+dx, y+dy).Y))
				}
			}
			sort.Ints(window)
			out.SetGray(x, y, gray8(window[4]))
		}
	}
	return out
}

// adaptiveThreshold binarizes against the local mean over a block x block
// window minus constant c, matching local adaptive thresholding behavior.
// Uses an integral image so the window scan stays O(1) per pixel.
func adaptiveThreshold(gray *image.Gray, block, c int) (*image.Gray, error) {
	if block < 3 || block%2 == 0 {
		return nil, fmt.Errorf("adaptive threshold block must be odd and >= 3, got %d", block)
	}
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < block || height < block {
		return nil, fmt.Errorf("image %dx%d smaller than threshold block %d", width, height, block)
	}

	integral := make([]int64, (width+1)*(height+1))
	stride := width + 1
	for y := 0; y < height; y++ {
		var rowSum int64
		for x := 0; x < width; x++ {
			rowSum += int64(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			integral[(y+1)*stride+x+1] = integral[y*stride+x+1] + rowSum
		}
	}

	half := block / 2
	out := image.NewGray(bounds)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			x0, y0 := max(0, x-half), max(0, y-half)
			x1, y1 := min(width-1, x+half), min(height-1, y+half)
			area := int64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[(y1+1)*stride+x1+1] - integral[y0*stride+x1+1] -
				integral[(y1+1)*stride+x0] + integral[y0*stride+x0]
			mean := sum / area
			v := int64(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			if v > mean-int64(c) {
				out.SetGray(bounds.Min.X+x, bounds.Min.Y+y, gray8(255))
			} else {
				out.SetGray(bounds.Min.X+x, bounds.Min.Y+y, gray8(0))
			}
		}
	}
	return out, nil
}

// otsuThreshold binarizes with the global OTSU threshold
func otsuThreshold(gray *image.Gray) (*image.Gray, error) {
	bounds := gray.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return nil, fmt.Errorf("empty image")
	}

	var hist [256]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[gray.GrayAt(x, y).Y]++
		}
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var sumB, wB float64
	var maxVariance float64
	threshold := 0
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		variance := wB * wF * (mB - mF) * (mB - mF)
		if variance > maxVariance {
			maxVariance = variance
			threshold = t
		}
	}

	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if int(gray.GrayAt(x, y).Y) > threshold {
				out.SetGray(x, y, gray8(255))
			} else {
				out.SetGray(x, y, gray8(0))
			}
		}
	}
	return out, nil
}

// equalizeContrast applies clip-limited histogram equalization. clipLimit is
// expressed as a multiple of the uniform bin height; excess mass above the
// clip is redistributed evenly, which keeps flat backgrounds from blowing out.
func equalizeContrast(gray *image.Gray, clipLimit float64) *image.Gray {
	bounds := gray.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return gray
	}

	var hist [256]float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[gray.GrayAt(x, y).Y]++
		}
	}

	clip := clipLimit * float64(total) / 256.0
	var excess float64
	for i := range hist {
		if hist[i] > clip {
			excess += hist[i] - clip
			hist[i] = clip
		}
	}
	redistribute := excess / 256.0
	for i := range hist {
		hist[i] += redistribute
	}

	var lut [256]uint8
	var cum float64
	for i := range hist {
		cum += hist[i]
		v := cum * 255.0 / float64(total)
		if v > 255 {
			v = 255
		}
		lut[i] = uint8(v)
	}

	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetGray(x, y, gray8(int(lut[gray.GrayAt(x, y).Y])))
		}
	}
	return out
}

func gray8(v int) color.Gray {
	return color.Gray{Y: uint8(v)}
}
