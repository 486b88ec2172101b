// Command morphogrid runs watershed segmentation or a chamfer distance
// transform over a grayscale image and writes the result as a PNG.
//
// Typical invocations:
//
//	morphogrid -input cells.png -markers seeds.png -output labels.png
//	morphogrid -input blobs.png -mode distance -preset "Borgefors (3,4)" -output dist.png
//
// Image containers and file formats are deliberately kept out of the
// library packages; this command is the adaptation layer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/morphogrid/morphogrid/chamfer"
	"github.com/morphogrid/morphogrid/voxel"
	"github.com/morphogrid/morphogrid/watershed"
)

func main() {
	inputPath := flag.String("input", "", "Grayscale input image (PNG/JPEG)")
	markerPath := flag.String("markers", "", "Optional marker image; gray value is the seed id")
	maskPath := flag.String("mask", "", "Optional mask image; non-zero pixels are processed")
	outputPath := flag.String("output", "labels.png", "Output PNG filename")
	mode := flag.String("mode", "watershed", "Transform to run: watershed or distance")
	preset := flag.String("preset", "", "Chamfer weight preset label (distance mode)")
	connectivity := flag.Int("connectivity", 0, "Pixel connectivity: 4 or 8")
	strategy := flag.String("strategy", "", "Flooding strategy: priority-queue or sorted-list")
	configPath := flag.String("config", "morphogrid.yaml", "Optional YAML config with defaults")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "morphogrid: %v\n", err)
		os.Exit(1)
	}
	if *preset != "" {
		cfg.Preset = *preset
	}
	if *connectivity != 0 {
		cfg.Connectivity = *connectivity
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}
	if *verbose {
		cfg.Verbose = true
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	grid, err := loadGrid(*inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *inputPath).Msg("loading input failed")
	}
	log.Info().
		Int("width", grid.Dims.W).
		Int("height", grid.Dims.H).
		Msg("input loaded")

	switch *mode {
	case "distance":
		err = runDistance(log, cfg, grid, *outputPath)
	case "watershed":
		err = runWatershed(log, cfg, grid, *markerPath, *maskPath, *outputPath)
	default:
		err = fmt.Errorf("unknown mode %q (want watershed or distance)", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("transform failed")
	}
}

// runDistance treats non-zero input pixels as foreground and writes the
// chamfer distance field scaled into an 8-bit PNG.
func runDistance(log zerolog.Logger, cfg *Config, grid *voxel.Grid, outputPath string) error {
	w, err := chamfer.FromLabel(cfg.Preset)
	if err != nil {
		return fmt.Errorf("preset %q: %w (known: %v)", cfg.Preset, err, chamfer.AllLabels())
	}

	bin, err := voxel.NewMask(grid.Dims)
	if err != nil {
		return err
	}
	for i, v := range grid.Data {
		bin.Data[i] = v > 0
	}

	start := time.Now()
	dist, err := chamfer.DistanceMapFloat(bin, w)
	if err != nil {
		return err
	}
	log.Info().
		Str("preset", w.Label()).
		Dur("elapsed", time.Since(start)).
		Msg("distance map computed")

	return saveDistance(dist, outputPath)
}

// runWatershed dispatches to the unmarked or marker-controlled engine
// depending on whether a marker image was supplied.
func runWatershed(log zerolog.Logger, cfg *Config, grid *voxel.Grid, markerPath, maskPath, outputPath string) error {
	opts := []watershed.Option{
		watershed.WithConnectivity(voxel.Connectivity(cfg.Connectivity)),
	}
	if maskPath != "" {
		mask, err := loadMask(maskPath, grid.Dims)
		if err != nil {
			return fmt.Errorf("loading mask: %w", err)
		}
		opts = append(opts, watershed.WithMask(mask))
	}

	var (
		labels *voxel.Labels
		err    error
		start  = time.Now()
	)
	if markerPath == "" {
		labels, err = watershed.Compute(grid, opts...)
	} else {
		var strat watershed.Strategy
		switch cfg.Strategy {
		case "priority-queue":
			strat = watershed.PriorityQueue
		case "sorted-list":
			strat = watershed.SortedList
		default:
			return fmt.Errorf("unknown strategy %q", cfg.Strategy)
		}
		var markers *voxel.Labels
		markers, err = loadMarkers(markerPath, grid.Dims)
		if err != nil {
			return fmt.Errorf("loading markers: %w", err)
		}
		labels, err = watershed.ComputeWithMarkers(grid, markers,
			append(opts, watershed.WithStrategy(strat))...)
		if errors.Is(err, watershed.ErrEmptyMarkerSet) {
			log.Warn().Msg("no marker pixels inside mask; output is unlabeled")
			err = nil
		}
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logRegionStats(log, labels, elapsed)

	return saveLabels(labels, outputPath)
}

// logRegionStats summarizes basin count and size distribution.
func logRegionStats(log zerolog.Logger, labels *voxel.Labels, elapsed time.Duration) {
	sizes := map[int32]float64{}
	dams := 0
	for _, v := range labels.Data {
		switch {
		case v > 0:
			sizes[v]++
		case v == voxel.WatershedLine:
			dams++
		}
	}
	flat := make([]float64, 0, len(sizes))
	for _, n := range sizes {
		flat = append(flat, n)
	}
	mean, std := stat.MeanStdDev(flat, nil)
	log.Info().
		Int("basins", len(sizes)).
		Int("dam_pixels", dams).
		Float64("mean_basin_size", mean).
		Float64("stddev_basin_size", std).
		Dur("elapsed", elapsed).
		Msg("watershed computed")
}

// loadGrid opens an image and converts it to an intensity grid using the
// 8-bit grayscale value of each pixel.
func loadGrid(path string) (*voxel.Grid, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	grid, err := voxel.NewGrid(voxel.Dims{W: b.Dx(), H: b.Dy(), D: 1})
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := gray.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			grid.Data[grid.Dims.Index(x, y, 0)] = float64(c.R)
		}
	}

	return grid, nil
}

// loadMarkers reads a marker image; the grayscale value of each non-zero
// pixel is used directly as its seed id.
func loadMarkers(path string, d voxel.Dims) (*voxel.Labels, error) {
	g, err := loadGrid(path)
	if err != nil {
		return nil, err
	}
	if !g.Dims.Equal(d) {
		return nil, voxel.ErrDimensionMismatch
	}
	mk, err := voxel.NewLabels(d)
	if err != nil {
		return nil, err
	}
	for i, v := range g.Data {
		mk.Data[i] = int32(v)
	}

	return mk, nil
}

// loadMask reads a mask image; non-zero pixels are in the region of interest.
func loadMask(path string, d voxel.Dims) (*voxel.Mask, error) {
	g, err := loadGrid(path)
	if err != nil {
		return nil, err
	}
	if !g.Dims.Equal(d) {
		return nil, voxel.ErrDimensionMismatch
	}
	m, err := voxel.NewMask(d)
	if err != nil {
		return nil, err
	}
	for i, v := range g.Data {
		m.Data[i] = v > 0
	}

	return m, nil
}

// saveLabels renders basins over the 8-bit range, dams and unlabeled
// pixels black, and writes a PNG.
func saveLabels(labels *voxel.Labels, path string) error {
	var maxID int32
	for _, v := range labels.Data {
		if v > maxID {
			maxID = v
		}
	}
	d := labels.Dims
	img := image.NewGray(image.Rect(0, 0, d.W, d.H))
	for y := 0; y < d.H; y++ {
		for x := 0; x < d.W; x++ {
			v := labels.Data[d.Index(x, y, 0)]
			if v > 0 {
				// Spread ids over 64..255 so adjacent basins stay distinguishable.
				img.SetGray(x, y, color.Gray{Y: uint8(64 + int64(v)*191/int64(maxID))})
			}
		}
	}

	return imaging.Save(img, path)
}

// saveDistance normalizes the finite range of the distance field to 8-bit
// and writes a PNG.
func saveDistance(dist *voxel.Grid, path string) error {
	var maxV float64
	for _, v := range dist.Data {
		if v > maxV && v < 1e18 {
			maxV = v
		}
	}
	if maxV == 0 {
		maxV = 1
	}
	d := dist.Dims
	img := image.NewGray(image.Rect(0, 0, d.W, d.H))
	for y := 0; y < d.H; y++ {
		for x := 0; x < d.W; x++ {
			v := dist.Data[d.Index(x, y, 0)]
			if v > maxV {
				v = maxV
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v / maxV * 255)})
		}
	}

	return imaging.Save(img, path)
}
