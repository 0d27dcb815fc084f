package scene

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/c3d/engine/core"
	"github.com/spaghettifunk/c3d/engine/math"
)

// Result is the evaluated state of a 3D node.
type Result struct {
	ID    uuid.UUID
	Name  string
	World *math.Mat4
	// Inverse is nil when the world matrix is singular.
	Inverse *math.Mat4
	// Origin is the node's origin in world space.
	Origin *math.Vec3
	// Projected is the origin after the camera projection, nil without a camera.
	Projected *math.Vec3
	CSS       string
}

type Result2D struct {
	ID      uuid.UUID
	Name    string
	Local   *math.Mat3
	Inverse *math.Mat3
	CSS     string
}

type Output struct {
	Projection *math.Mat4
	Nodes      []Result
	Nodes2D    []Result2D
}

// Evaluate resolves every node against its parent chain. Parents always precede
// their children in Scene.Nodes, so a single forward pass is enough.
func (s *Scene) Evaluate() *Output {
	out := &Output{
		Nodes:   make([]Result, len(s.Nodes)),
		Nodes2D: make([]Result2D, len(s.Nodes2D)),
	}
	if s.Camera != nil {
		out.Projection = math.NewMat4().Perspective(s.Camera.Aspect, s.Camera.Fov, s.Camera.Near, s.Camera.Far)
	}

	for i, n := range s.Nodes {
		world := n.Local.Clone()
		if n.Parent >= 0 {
			world.MultiplyAffineInto(out.Nodes[n.Parent].World, n.Local)
		}

		r := Result{
			ID:     n.ID,
			Name:   n.Name,
			World:  world,
			Origin: world.Position(),
			CSS:    world.CSSString(),
		}
		if r.Inverse = world.Clone().Invert(); r.Inverse == nil {
			core.LogWarn("node %q: %s, no inverse available", n.Name, core.ErrSingularMatrix)
		}
		if out.Projection != nil {
			clip := math.NewMat4().MultiplyInto(out.Projection, world)
			r.Projected = math.NewVec3Zero().Project(clip, math.NewVec3Zero())
		}
		out.Nodes[i] = r
	}

	for i, n := range s.Nodes2D {
		r := Result2D{
			ID:    n.ID,
			Name:  n.Name,
			Local: n.Local.Clone(),
			CSS:   n.Local.CSSString(),
		}
		if r.Inverse = inverse2D(n.Local); r.Inverse == nil {
			core.LogWarn("node2d %q: %s, no inverse available", n.Name, core.ErrSingularMatrix)
		}
		out.Nodes2D[i] = r
	}

	core.LogDebug("scene evaluated: %d nodes, %d 2d nodes", len(out.Nodes), len(out.Nodes2D))
	return out
}

// inverse2D inverts a 2D transform in the layout Vec2.Transform reads: the linear
// block in CSS order and the translation in M13/M23. Returns nil when singular.
func inverse2D(local *math.Mat3) *math.Mat3 {
	block := math.NewMat2().FromArray([4]float64{local.M11, local.M12, local.M21, local.M22})
	if block.Invert() == nil {
		return nil
	}

	inv := math.NewMat3()
	inv.M11, inv.M12 = block.M11, block.M12
	inv.M21, inv.M22 = block.M21, block.M22
	t := math.NewVec2(0, 0).TransformLinear(inv, math.NewVec2(local.M13, local.M23)).Negate()
	return inv.MoveToVector(t)
}
