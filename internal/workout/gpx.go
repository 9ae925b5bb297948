package workout

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tkrajina/gpxgo/gpx"
)

type GPXOptions struct {
	WeightKg float64
	// HeightCm turns the track into a walking package when set.
	HeightCm float64
}

// PackageFromGPX converts a recorded track into step counts the calculator understands.
func PackageFromGPX(data []byte, opts GPXOptions) (Package, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return Package{}, fmt.Errorf("error parsing gpx: %w", err)
	}

	hours := g.Duration() / 3600
	if hours <= 0 {
		return Package{}, fmt.Errorf("%w: gpx track has no duration", ErrInvalidMeasurement)
	}

	// distance = action * lenStep / mInKm, so the metres covered map back to steps
	action := math.Round(g.Length2D() / lenStep)

	if opts.HeightCm > 0 {
		return Package{Type: "WLK", Data: []float64{action, hours, opts.WeightKg, opts.HeightCm}}, nil
	}
	return Package{Type: "RUN", Data: []float64{action, hours, opts.WeightKg}}, nil
}

func readGPXFile(gpxFile string) ([]byte, error) {
	info, err := os.Stat(gpxFile)
	if err != nil {
		return nil, fmt.Errorf("error reading gpx file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("gpx file is a directory")
	}

	file, err := os.Open(gpxFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return contents, nil
}
