package bitmap

// Method selects a grayscale-to-binary conversion algorithm.
type Method int

const (
	Threshold Method = iota
	Bayer
	FloydSteinberg
	Atkinson
)

// bayerMatrix is the standard 4x4 ordered-dither matrix, values in [0,15].
var bayerMatrix = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// quantize applies the threshold rule spec.md §4.3 gives for every method:
// pixel < T => 255 (ink), else 0.
func quantize(value float64, t float64) byte {
	if value < t {
		return 255
	}
	return 0
}

// Dither converts a grayscale image to a binary {0,255} image using
// method. threshold is only consulted by Threshold (default 128 if <= 0).
func Dither(img *Gray, method Method, threshold int) *Binary {
	switch method {
	case Bayer:
		return ditherBayer(img)
	case FloydSteinberg:
		return ditherErrorDiffusion(img, fsWeights)
	case Atkinson:
		return ditherErrorDiffusion(img, atkinsonWeights)
	default:
		return ditherThreshold(img, threshold)
	}
}

func ditherThreshold(img *Gray, threshold int) *Binary {
	t := float64(threshold)
	if threshold <= 0 {
		t = 128
	}
	out := &Binary{Width: img.Width, Height: img.Height, Pix: make([]byte, img.Width*img.Height)}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.Pix[y*img.Width+x] = quantize(float64(img.at(x, y)), t)
		}
	}
	return out
}

func ditherBayer(img *Gray) *Binary {
	out := &Binary{Width: img.Width, Height: img.Height, Pix: make([]byte, img.Width*img.Height)}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			m := bayerMatrix[y%4][x%4]
			t := float64(m) / 16.0 * 255.0
			out.Pix[y*img.Width+x] = quantize(float64(img.at(x, y)), t)
		}
	}
	return out
}

// errDiffusionTap is one weighted neighbor an error-diffusion kernel
// propagates a quantization error to, relative to the current pixel.
type errDiffusionTap struct {
	dx, dy int
	weight float64
}

// fsWeights implements the classic Floyd-Steinberg kernel: 7/16 right,
// 3/16 down-left, 5/16 down, 1/16 down-right.
var fsWeights = []errDiffusionTap{
	{1, 0, 7.0 / 16},
	{-1, 1, 3.0 / 16},
	{0, 1, 5.0 / 16},
	{1, 1, 1.0 / 16},
}

// atkinsonWeights diffuses error/8 to six neighbors (right, right+1,
// down-left, down, down-right, down+2); 2/8 of the error is discarded,
// which is what gives Atkinson dithering its higher contrast.
var atkinsonWeights = []errDiffusionTap{
	{1, 0, 1.0 / 8},
	{2, 0, 1.0 / 8},
	{-1, 1, 1.0 / 8},
	{0, 1, 1.0 / 8},
	{1, 1, 1.0 / 8},
	{0, 2, 1.0 / 8},
}

// ditherErrorDiffusion runs a generic error-diffusion kernel in row-major,
// left-to-right, top-to-bottom pixel order, per spec.md §4.3.
func ditherErrorDiffusion(img *Gray, weights []errDiffusionTap) *Binary {
	w, h := img.Width, img.Height
	work := make([]float64, w*h)
	for i, v := range img.Pix {
		work[i] = float64(v)
	}

	out := &Binary{Width: w, Height: h, Pix: make([]byte, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			value := work[idx]
			output := quantize(value, 128)
			reconstructed := 255.0 - float64(output)
			errv := value - reconstructed

			for _, tap := range weights {
				nx, ny := x+tap.dx, y+tap.dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				work[ny*w+nx] += errv * tap.weight
			}
			out.Pix[idx] = output
		}
	}
	return out
}
