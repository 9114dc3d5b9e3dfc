package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/warpsampler/pkg/imagearray"
	_ "github.com/xaionaro-go/warpsampler/pkg/interpolation/nearest"
	_ "github.com/xaionaro-go/warpsampler/pkg/interpolation/quadspline"
	"github.com/xaionaro-go/warpsampler/pkg/interpolation/registry"
	"github.com/xaionaro-go/warpsampler/pkg/sampler"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	kernelName := pflag.String("kernel", "", fmt.Sprintf("interpolation kernel, one of: %v (default: the highest priority one)", registry.Names()))
	height := pflag.Int("height", 64, "height of the synthetic source image")
	width := pflag.Int("width", 64, "width of the synthetic source image")
	shiftI := pflag.Float64("shift-i", 0.5, "warp displacement along rows")
	shiftJ := pflag.Float64("shift-j", 0, "warp displacement along columns")
	dumpFlag := pflag.Bool("dump", false, "dump the sampled values to stdout")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func() { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	kernel, err := registry.NewKernel(*kernelName)
	assertNoError(err)

	source := imagearray.FromImage(gradientImage(*width, *height))
	if source == nil {
		panic(fmt.Errorf("the source image is empty: %dx%d", *width, *height))
	}

	grid, err := sampler.NewRegularCoordinateGrid(*height, *width)
	assertNoError(err)

	s, err := sampler.New(grid, kernel)
	assertNoError(err)
	logger.Debugf(ctx, "%s", s)

	warp := sampler.ConstantWarpField(*height, *width, *shiftI, *shiftJ)
	values, err := s.Sample(ctx, source, warp)
	assertNoError(err)

	minV, maxV, sum := math.Inf(1), math.Inf(-1), 0.0
	for _, v := range values {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
		sum += v
	}
	logger.Infof(ctx, "sampled %d points with %q: min %f, max %f, mean %f",
		len(values), s.Method(), minV, maxV, sum/float64(len(values)))

	if *dumpFlag {
		spew.Fdump(os.Stdout, values)
	}
}

// gradientImage is a diagonal ramp with a bright square in the middle.
func gradientImage(width, height int) image.Image {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := float64(x+y) / float64(width+height) * 128
			if x > width/4 && x < 3*width/4 && y > height/4 && y < 3*height/4 {
				v += 127
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return img
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
