package cmd

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"gonum.org/v1/gonum/stat"
)

// BVHFlags are the flags of the bvh command
var BVHFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:  "rays",
		Usage: "trace this many random rays through each tree and a linear scan",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "random seed for --rays",
	},
	cli.StringFlag{
		Name:  "dump",
		Usage: "write the --split tree to stdout: inorder or bfs",
	},
}, meshFlags...)

var splitPolicies = []geometry.SplitPolicy{geometry.SplitInsertionOrder, geometry.SplitCentroidMedian}

// treeReport summarizes one hierarchy built over the mesh
type treeReport struct {
	policy     geometry.SplitPolicy
	stats      geometry.BVHStats
	depthMean  float64
	depthSD    float64
	buildTime  time.Duration
	traversal  traversalReport
	tracedRays int
}

// traversalReport compares BVH queries against a linear scan
type traversalReport struct {
	hits       int
	mismatches int
	bvhTime    time.Duration
	linearTime time.Duration
}

// Print BVH statistics for a mesh.
func BVHInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	triangles, err := loadTriangles(ctx.String("mesh"))
	if err != nil {
		return err
	}
	logger.Infof("loaded %d triangles", len(triangles))

	rays := generateRays(meshBounds(triangles), ctx.Int("rays"), ctx.Int64("seed"))

	reports := make([]treeReport, 0, len(splitPolicies))
	for _, policy := range splitPolicies {
		report, err := analyzeTree(triangles, policy, rays)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}
	displayTreeStats(len(triangles), reports)

	if mode := ctx.String("dump"); mode != "" {
		opts, err := meshOptions(ctx)
		if err != nil {
			return err
		}
		bvh, err := geometry.NewBVH(triangles, opts.Split)
		if err != nil {
			return err
		}
		return dumpTree(bvh, mode)
	}
	return nil
}

// loadTriangles loads a mesh file, or tessellates the mesh scene sphere
func loadTriangles(path string) ([]geometry.Triangle, error) {
	if path == "" {
		return scene.TessellateSphere(core.NewVec3(0, 0, -2), 1, 24, 48), nil
	}
	return loaders.LoadMesh(path)
}

func meshBounds(triangles []geometry.Triangle) core.AABB {
	box := core.EmptyAABB()
	for _, tri := range triangles {
		box = box.Union(tri.BoundingBox())
	}
	return box
}

// generateRays aims count rays from a sphere around box at random points inside it
func generateRays(box core.AABB, count int, seed int64) []core.Ray {
	if count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	center := box.Center()
	radius := math.Max(box.Size().Length(), 1)

	inside := func() core.Vec3 {
		size := box.Size()
		return box.Min.Add(core.NewVec3(size.X*rng.Float64(), size.Y*rng.Float64(), size.Z*rng.Float64()))
	}

	rays := make([]core.Ray, count)
	for i := range rays {
		z := 2*rng.Float64() - 1
		phi := 2 * math.Pi * rng.Float64()
		r := math.Sqrt(1 - z*z)
		origin := center.Add(core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z).Multiply(radius))
		rays[i] = core.NewRay(origin, inside().Subtract(origin).Normalize())
	}
	return rays
}

// analyzeTree builds a tree with policy and traces rays through it
func analyzeTree(triangles []geometry.Triangle, policy geometry.SplitPolicy, rays []core.Ray) (treeReport, error) {
	start := time.Now()
	bvh, err := geometry.NewBVH(triangles, policy)
	if err != nil {
		return treeReport{}, err
	}
	report := treeReport{
		policy:     policy,
		buildTime:  time.Since(start),
		stats:      bvh.Stats(),
		tracedRays: len(rays),
	}

	leafDepths := bvh.LeafDepths()
	depths := make([]float64, len(leafDepths))
	for i, d := range leafDepths {
		depths[i] = float64(d)
	}
	report.depthMean, report.depthSD = stat.MeanStdDev(depths, nil)
	if len(depths) < 2 {
		report.depthSD = 0
	}

	report.traversal = compareTraversal(bvh, rays)
	logger.Debugf("%s split: %d nodes built in %s", policy, report.stats.Nodes, report.buildTime)
	return report, nil
}

// compareTraversal traces every ray through the tree and a linear scan.
// A mismatch is a ray where the two disagree on hitting or on the distance.
func compareTraversal(bvh *geometry.BVH[geometry.Triangle], rays []core.Ray) traversalReport {
	var report traversalReport
	if len(rays) == 0 {
		return report
	}

	bvhHits := make([]core.HitPoint, len(rays))
	bvhOK := make([]bool, len(rays))

	start := time.Now()
	for i, ray := range rays {
		bvhHits[i], bvhOK[i] = bvh.NearestHit(ray, core.DefaultEpsilon)
	}
	report.bvhTime = time.Since(start)

	primitives := bvh.Primitives()
	start = time.Now()
	for i, ray := range rays {
		hit, _, ok := geometry.LinearNearestHit(primitives, ray, core.DefaultEpsilon)
		if ok {
			report.hits++
		}
		if ok != bvhOK[i] || (ok && hit.T != bvhHits[i].T) {
			report.mismatches++
		}
	}
	report.linearTime = time.Since(start)

	return report
}

func displayTreeStats(triangleCount int, reports []treeReport) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Split", "Nodes", "Leaves", "Max depth", "Leaf depth", "Leaf/root area", "Build time", "Rays", "Hits", "Mismatches", "BVH time", "Linear time"})
	for _, r := range reports {
		ratio := 0.0
		if r.stats.RootSurface > 0 {
			ratio = r.stats.LeafSurface / r.stats.RootSurface
		}
		table.Append([]string{
			r.policy.String(),
			fmt.Sprintf("%d", r.stats.Nodes),
			fmt.Sprintf("%d", r.stats.Leaves),
			fmt.Sprintf("%d", r.stats.MaxDepth),
			fmt.Sprintf("%.2f ± %.2f", r.depthMean, r.depthSD),
			fmt.Sprintf("%.2f", ratio),
			r.buildTime.String(),
			fmt.Sprintf("%d", r.tracedRays),
			fmt.Sprintf("%d", r.traversal.hits),
			fmt.Sprintf("%d", r.traversal.mismatches),
			r.traversal.bvhTime.String(),
			r.traversal.linearTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "", "", "", "", "TRIANGLES", fmt.Sprintf("%d", triangleCount)})

	table.Render()
	logger.Noticef("bvh statistics\n%s", buf.String())
}

func dumpTree(bvh *geometry.BVH[geometry.Triangle], mode string) error {
	switch mode {
	case "inorder":
		if err := bvh.WriteInOrder(os.Stdout); err != nil {
			return err
		}
		_, err := fmt.Fprintln(os.Stdout)
		return err
	case "bfs":
		return bvh.WriteBoxes(os.Stdout)
	default:
		return fmt.Errorf("unknown dump mode %q (expected inorder or bfs)", mode)
	}
}
