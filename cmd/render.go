package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := createScene(ctx)
	if err != nil {
		return err
	}

	config, err := integratorConfig(ctx)
	if err != nil {
		return err
	}

	window, err := parseColumns(ctx.String("columns"))
	if err != nil {
		return err
	}

	logSceneSummary(sc)

	rt := renderer.NewRaytracer(sc, integrator.NewWhitted(config), logger)
	rt.SetWindow(window)

	fb, stats := rt.Render()

	out, err := outputPath(ctx.String("out"), sceneLabel(ctx), time.Now())
	if err != nil {
		return err
	}
	if err = fb.SavePNG(out); err != nil {
		return err
	}
	logger.Noticef("wrote %dx%d frame to %s", fb.Width, fb.Height, out)

	displayFrameStats(stats)
	return nil
}

// sceneLabel names the rendered scene for output paths
func sceneLabel(ctx flagValues) string {
	if path := ctx.String("config"); path != "" {
		return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ctx.String("scene")
}

// outputPath returns out, or output/<label>/render_<timestamp>.png when out is
// empty, creating the parent directory either way
func outputPath(out, label string, now time.Time) (string, error) {
	if out == "" {
		out = filepath.Join("output", label, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return out, nil
}

func logSceneSummary(sc *scene.Scene) {
	if !log.Enabled(log.Info) {
		return
	}

	cam := sc.Camera.Config()
	logger.Infof("scene: %d objects, %d primitives, %d lights, %d bounces",
		len(sc.Objects), sc.PrimitiveCount(), len(sc.Lights), sc.Bounces)
	logger.Infof("camera: %s at %v, %dx%d", cam.Projection, cam.Position, cam.Width, cam.Height)

	for _, mesh := range sc.Meshes() {
		if !mesh.Accelerated() {
			logger.Infof("mesh: %d triangles, brute force", mesh.TriangleCount())
			continue
		}
		bvhStats := mesh.BVH().Stats()
		logger.Infof("mesh: %d triangles, %s split, %d nodes, depth %d",
			mesh.TriangleCount(), mesh.BVH().Policy(), bvhStats.Nodes, bvhStats.MaxDepth)
	}
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Bounces", "Pixels", "Coverage", "Avg luminance", "Pixels/sec"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Bounces),
		fmt.Sprintf("%d", stats.PixelsShaded),
		fmt.Sprintf("%02.1f %%", 100*stats.Coverage()),
		fmt.Sprintf("%.4f", stats.AvgLuminance),
		fmt.Sprintf("%.0f", stats.PixelsPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", stats.Duration.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
