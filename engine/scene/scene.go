package scene

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/c3d/engine/core"
	"github.com/spaghettifunk/c3d/engine/math"
)

// Camera describes the perspective projection applied to every 3D node.
type Camera struct {
	Aspect float64 `toml:"aspect"`
	// Fov is the vertical field of view in degrees.
	Fov  float64 `toml:"fov"`
	Near float64 `toml:"near"`
	Far  float64 `toml:"far"`
}

// NodeConfig is a [[node]] table: a 3D node, optionally attached to an earlier node.
type NodeConfig struct {
	Name        string    `toml:"name"`
	Parent      string    `toml:"parent"`
	Translate   []float64 `toml:"translate"`
	Scale       []float64 `toml:"scale"`
	RotateAxis  []float64 `toml:"rotate_axis"`
	RotateAngle float64   `toml:"rotate_angle"`
}

// Node2DConfig is a [[node2d]] table: a flat element placed with a CSS matrix().
type Node2DConfig struct {
	Name      string    `toml:"name"`
	Translate []float64 `toml:"translate"`
	Scale     []float64 `toml:"scale"`
	Rotate    float64   `toml:"rotate"`
}

type File struct {
	Camera  *Camera        `toml:"camera"`
	Nodes   []NodeConfig   `toml:"node"`
	Nodes2D []Node2DConfig `toml:"node2d"`
}

// Node is a validated 3D node. Parent indexes Scene.Nodes, or is -1 for roots.
type Node struct {
	ID     uuid.UUID
	Name   string
	Parent int
	Local  *math.Mat4
}

type Node2D struct {
	ID    uuid.UUID
	Name  string
	Local *math.Mat3
}

type Scene struct {
	Camera  *Camera
	Nodes   []*Node
	Nodes2D []*Node2D
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a TOML scene description and builds the local matrix of every node.
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidScene, err)
	}

	s := &Scene{}
	if f.Camera != nil {
		if err := validateCamera(f.Camera); err != nil {
			return nil, err
		}
		s.Camera = f.Camera
	}

	byName := make(map[string]int, len(f.Nodes))
	for i, nc := range f.Nodes {
		n, err := buildNode(nc)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		n.Parent = -1
		if nc.Parent != "" {
			p, ok := byName[nc.Parent]
			if !ok {
				return nil, fmt.Errorf("node %q: parent %q: %w", n.Name, nc.Parent, core.ErrUnknownNode)
			}
			n.Parent = p
		}
		if _, dup := byName[n.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate node name %q", core.ErrInvalidScene, n.Name)
		}
		byName[n.Name] = len(s.Nodes)
		s.Nodes = append(s.Nodes, n)
	}

	for i, nc := range f.Nodes2D {
		n, err := buildNode2D(nc)
		if err != nil {
			return nil, fmt.Errorf("node2d %d: %w", i, err)
		}
		s.Nodes2D = append(s.Nodes2D, n)
	}

	core.LogDebug("scene parsed: %d nodes, %d 2d nodes", len(s.Nodes), len(s.Nodes2D))
	return s, nil
}

func validateCamera(c *Camera) error {
	if c.Aspect <= 0 {
		return fmt.Errorf("%w: camera aspect must be positive, got %v", core.ErrInvalidScene, c.Aspect)
	}
	if c.Fov <= 0 || c.Fov >= 180 {
		return fmt.Errorf("%w: camera fov must be in (0, 180), got %v", core.ErrInvalidScene, c.Fov)
	}
	if c.Near == c.Far {
		return fmt.Errorf("%w: camera near and far planes coincide", core.ErrInvalidScene)
	}
	return nil
}

func vec3Of(field string, values []float64, def float64) (*math.Vec3, error) {
	switch len(values) {
	case 0:
		return math.NewVec3(def, def, def), nil
	case 3:
		return math.NewVec3(values[0], values[1], values[2]), nil
	default:
		return nil, fmt.Errorf("%w: %s needs 3 components, got %d", core.ErrInvalidScene, field, len(values))
	}
}

func vec2Of(field string, values []float64, def float64) (*math.Vec2, error) {
	switch len(values) {
	case 0:
		return math.NewVec2(def, def), nil
	case 2:
		return math.NewVec2(values[0], values[1]), nil
	default:
		return nil, fmt.Errorf("%w: %s needs 2 components, got %d", core.ErrInvalidScene, field, len(values))
	}
}

func identify(name string) (uuid.UUID, string) {
	id := uuid.New()
	if name == "" {
		name = id.String()
	}
	return id, name
}

// buildNode composes translate * rotate * scale.
func buildNode(nc NodeConfig) (*Node, error) {
	t, err := vec3Of("translate", nc.Translate, 0.0)
	if err != nil {
		return nil, err
	}
	sc, err := vec3Of("scale", nc.Scale, 1.0)
	if err != nil {
		return nil, err
	}

	rot := math.NewQuaternion()
	if nc.RotateAngle != 0 {
		axis, err := vec3Of("rotate_axis", nc.RotateAxis, 0.0)
		if err != nil {
			return nil, err
		}
		if axis.LengthSquared() == 0 {
			return nil, fmt.Errorf("%w: rotate_axis must be non-zero when rotate_angle is set", core.ErrInvalidScene)
		}
		rot.FromRotationAxis(axis.Normalize(), math.DegToRad(nc.RotateAngle))
	}

	local := math.NewMat4().MultiplyAffineInto(rot.ToMat4(), math.NewMat4().ScaleByVector(sc))
	local.MoveToVector(t)

	id, name := identify(nc.Name)
	return &Node{ID: id, Name: name, Local: local}, nil
}

// buildNode2D composes translate * rotate * scale in CSS matrix() order.
func buildNode2D(nc Node2DConfig) (*Node2D, error) {
	t, err := vec2Of("translate", nc.Translate, 0.0)
	if err != nil {
		return nil, err
	}
	sc, err := vec2Of("scale", nc.Scale, 1.0)
	if err != nil {
		return nil, err
	}

	linear := math.NewMat2().FromRotation(math.DegToRad(nc.Rotate)).ScaleXY(sc.X, sc.Y)

	block := math.NewMat3()
	block.M11, block.M12 = linear.M11, linear.M12
	block.M21, block.M22 = linear.M21, linear.M22

	local := math.NewMat3().MoveToVector(t).Multiply2x2(block)

	id, name := identify(nc.Name)
	return &Node2D{ID: id, Name: name, Local: local}, nil
}
