package preprocess

import (
	"image"
	"image/color"
	"testing"
)

func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x * 255) / w)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// textLike builds a dark-on-light block pattern resembling screenshot text
func textLike(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 230
	}
	for y := 4; y < h-4; y += 6 {
		for x := 4; x < w-4; x++ {
			if (x/3)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 20})
				img.SetGray(x, y+1, color.Gray{Y: 20})
			}
		}
	}
	return img
}

func TestToGray(t *testing.T) {
	gray := ToGray(gradientImage(30, 20))
	if gray.Bounds() != image.Rect(0, 0, 30, 20) {
		t.Errorf("bounds = %v", gray.Bounds())
	}
	if gray.GrayAt(0, 0).Y >= gray.GrayAt(29, 0).Y {
		t.Error("gradient lost in conversion")
	}
}

func TestToGrayPassthrough(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 10, 10))
	if ToGray(src) != src {
		t.Error("grayscale input should pass through without copying")
	}
}

func TestUpscaleToMinWidth(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantW      int
		wantH      int
		passthough bool
	}{
		{"narrow upscaled", 600, 300, MinOCRWidth, 600, false},
		{"phone width upscaled", 720, 1280, MinOCRWidth, 2133, false},
		{"wide untouched", 1600, 900, 1600, 900, true},
		{"exact min untouched", MinOCRWidth, 500, MinOCRWidth, 500, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewGray(image.Rect(0, 0, tt.w, tt.h))
			dst := UpscaleToMinWidth(src)
			if tt.passthough && dst != src {
				t.Fatal("expected passthrough")
			}
			if got := dst.Bounds().Dx(); got != tt.wantW {
				t.Errorf("width = %d, want %d", got, tt.wantW)
			}
			if got := dst.Bounds().Dy(); got != tt.wantH {
				t.Errorf("height = %d, want %d", got, tt.wantH)
			}
		})
	}
}

func TestStrategiesOrderAndFallback(t *testing.T) {
	strategies := Strategies()
	want := []string{"adaptive", "otsu", "enhanced", "plain"}
	if len(strategies) != len(want) {
		t.Fatalf("strategy count = %d, want %d", len(strategies), len(want))
	}
	for i, name := range want {
		if strategies[i].Name != name {
			t.Errorf("strategy[%d] = %s, want %s", i, strategies[i].Name, name)
		}
	}

	// the final strategy must accept anything, including a tiny image that
	// the adaptive window rejects
	tiny := image.NewGray(image.Rect(0, 0, 2, 2))
	out, err := strategies[len(strategies)-1].Apply(tiny)
	if err != nil || out == nil {
		t.Errorf("plain strategy failed: %v", err)
	}
}

func TestAdaptiveThresholdRejectsSmallImages(t *testing.T) {
	tiny := image.NewGray(image.Rect(0, 0, 5, 5))
	if _, err := adaptiveThreshold(tiny, 11, 2); err == nil {
		t.Error("expected error for image smaller than block")
	}
	if _, err := adaptiveThreshold(textLike(64, 64), 4, 2); err == nil {
		t.Error("expected error for even block size")
	}
}

func binaryOnly(t *testing.T, img *image.Gray) {
	t.Helper()
	for _, p := range img.Pix {
		if p != 0 && p != 255 {
			t.Fatalf("non-binary pixel value %d", p)
		}
	}
}

func TestOtsuThresholdBinarizes(t *testing.T) {
	out, err := otsuThreshold(textLike(64, 64))
	if err != nil {
		t.Fatal(err)
	}
	binaryOnly(t, out)

	var dark int
	for _, p := range out.Pix {
		if p == 0 {
			dark++
		}
	}
	if dark == 0 || dark == len(out.Pix) {
		t.Error("threshold collapsed image to a single class")
	}
}

func TestAdaptiveThresholdBinarizes(t *testing.T) {
	out, err := adaptiveThreshold(textLike(64, 64), 11, 2)
	if err != nil {
		t.Fatal(err)
	}
	binaryOnly(t, out)
}

func TestForOCRNeverFails(t *testing.T) {
	inputs := []image.Image{
		gradientImage(30, 20),
		textLike(64, 64),
		image.NewGray(image.Rect(0, 0, 1, 1)),
		image.NewNRGBA(image.Rect(0, 0, 2, 2)),
	}
	for _, in := range inputs {
		out, strategy := ForOCR(in)
		if out == nil {
			t.Fatalf("nil output for %v", in.Bounds())
		}
		if strategy == "" {
			t.Error("empty strategy name")
		}
		if out.Bounds().Dx() < MinOCRWidth && in.Bounds().Dx() < MinOCRWidth {
			t.Errorf("narrow input not upscaled: %d", out.Bounds().Dx())
		}
	}
}

func TestEqualizeContrastSpreadsHistogram(t *testing.T) {
	// low-contrast input clustered around mid gray
	src := image.NewGray(image.Rect(0, 0, 32, 32))
	for i := range src.Pix {
		src.Pix[i] = uint8(120 + i%16)
	}
	out := equalizeContrast(src, 2.0)

	var loIn, hiIn, loOut, hiOut uint8 = 255, 0, 255, 0
	for i := range src.Pix {
		if src.Pix[i] < loIn {
			loIn = src.Pix[i]
		}
		if src.Pix[i] > hiIn {
			hiIn = src.Pix[i]
		}
		if out.Pix[i] < loOut {
			loOut = out.Pix[i]
		}
		if out.Pix[i] > hiOut {
			hiOut = out.Pix[i]
		}
	}
	if int(hiOut)-int(loOut) <= int(hiIn)-int(loIn) {
		t.Errorf("dynamic range not widened: in [%d,%d] out [%d,%d]", loIn, hiIn, loOut, hiOut)
	}
}
