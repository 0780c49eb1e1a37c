package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// flagValues is the subset of cli.Context the option parsers read
type flagValues interface {
	String(name string) string
	Int(name string) int
	Float64(name string) float64
	Bool(name string) bool
	IsSet(name string) bool
}

// meshOptions reads the BVH flags shared by render and bvh
func meshOptions(ctx flagValues) (geometry.MeshOptions, error) {
	split, err := geometry.ParseSplitPolicy(ctx.String("split"))
	if err != nil {
		return geometry.MeshOptions{}, err
	}
	return geometry.MeshOptions{
		Split:      split,
		BruteForce: ctx.Bool("brute-force"),
	}, nil
}

// sceneOptions converts flags into built-in scene options. Zero camera
// fields leave the scene defaults in place.
func sceneOptions(ctx flagValues) (scene.Options, error) {
	meshOpts, err := meshOptions(ctx)
	if err != nil {
		return scene.Options{}, err
	}

	projection, err := geometry.ParseProjection(ctx.String("projection"))
	if err != nil {
		return scene.Options{}, err
	}

	width, height := ctx.Int("width"), ctx.Int("height")
	if width < 0 || height < 0 {
		return scene.Options{}, fmt.Errorf("frame size must be positive, got %dx%d", width, height)
	}

	return scene.Options{
		Camera: geometry.CameraConfig{
			Width:      width,
			Height:     height,
			Projection: projection,
		},
		MeshPath: ctx.String("mesh"),
		Mesh:     meshOpts,
	}, nil
}

// createScene builds the scene named by --scene, or the one described by --config
func createScene(ctx flagValues) (*scene.Scene, error) {
	opts, err := sceneOptions(ctx)
	if err != nil {
		return nil, err
	}

	var s *scene.Scene
	if path := ctx.String("config"); path != "" {
		cfg, err := scene.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		if s, err = cfg.Build(opts); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		if s, err = scene.New(ctx.String("scene"), opts); err != nil {
			return nil, err
		}
	}

	if ctx.IsSet("bounces") {
		if ctx.Int("bounces") < 0 {
			return nil, fmt.Errorf("bounces must be >= 0, got %d", ctx.Int("bounces"))
		}
		s.Bounces = ctx.Int("bounces")
	}

	return s, nil
}

// integratorConfig reads the self-intersection thresholds
func integratorConfig(ctx flagValues) (integrator.Config, error) {
	config := integrator.DefaultConfig()
	if ctx.IsSet("epsilon") {
		config.Epsilon = ctx.Float64("epsilon")
	}
	if ctx.IsSet("reflection-offset") {
		config.ReflectionOffset = ctx.Float64("reflection-offset")
	}
	if config.Epsilon < 0 || config.ReflectionOffset < 0 {
		return config, fmt.Errorf("epsilon and reflection offset must be >= 0")
	}
	return config, nil
}

// parseColumns parses a "from:to" column range; empty means the full image
func parseColumns(value string) (renderer.Window, error) {
	if value == "" {
		return renderer.Window{}, nil
	}

	from, to, ok := strings.Cut(value, ":")
	if !ok {
		return renderer.Window{}, fmt.Errorf("invalid column range %q (expected from:to)", value)
	}

	fromCol, err1 := strconv.Atoi(from)
	toCol, err2 := strconv.Atoi(to)
	if err1 != nil || err2 != nil || fromCol < 0 || toCol <= fromCol {
		return renderer.Window{}, fmt.Errorf("invalid column range %q (expected from:to)", value)
	}

	return renderer.ColumnWindow(fromCol, toCol), nil
}

// Flags shared by the render and bvh commands
var meshFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "mesh, m",
		Usage: "OFF or PLY mesh for the mesh scene (default: tessellated sphere)",
	},
	cli.StringFlag{
		Name:  "split",
		Value: "insertion",
		Usage: "BVH split policy: insertion or median",
	},
	cli.BoolFlag{
		Name:  "brute-force",
		Usage: "skip the BVH and test every triangle",
	},
}

// RenderFlags are the flags of the render command
var RenderFlags = append([]cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene name (see the scenes command)",
	},
	cli.StringFlag{
		Name:  "config, c",
		Usage: "JSON scene description; overrides --scene",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width (default: scene camera)",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height (default: scene camera)",
	},
	cli.StringFlag{
		Name:  "projection",
		Usage: "camera projection: perspective or orthographic",
	},
	cli.IntFlag{
		Name:  "bounces",
		Usage: "reflection bounce budget (default: scene value)",
	},
	cli.Float64Flag{
		Name:  "epsilon",
		Value: integrator.DefaultConfig().Epsilon,
		Usage: "minimum accepted hit distance",
	},
	cli.Float64Flag{
		Name:  "reflection-offset",
		Value: integrator.DefaultConfig().ReflectionOffset,
		Usage: "distance reflected rays start from their surface",
	},
	cli.StringFlag{
		Name:  "columns",
		Usage: "render only the column range from:to",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "image filename (default: output/<scene>/render_<timestamp>.png)",
	},
}, meshFlags...)
