package main

import (
	"fmt"
	"os"

	"github.com/df07/go-whitted-raytracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-whitted-raytracer"
	app.Usage = "render scenes with a BVH accelerated Whitted ray tracer"
	app.Version = "0.1.0"
	app.Flags = cmd.LoggingFlags
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene or a JSON scene description to a PNG image.

Each pixel is shaded with the Whitted model: ambient light, Blinn-Phong
contributions from every unoccluded point light and recursive mirror
reflections up to the scene's bounce budget.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderFrame,
		},
		{
			Name:  "bvh",
			Usage: "print bounding volume hierarchy statistics for a mesh",
			Description: `
Build a BVH over a mesh with every split policy and report its shape. With
--rays the trees are checked against a linear scan over random rays.`,
			Flags:  cmd.BVHFlags,
			Action: cmd.BVHInfo,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}
