package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spaghettifunk/c3d/engine/core"
	"github.com/spaghettifunk/c3d/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScene = `
[camera]
aspect = 1.0
fov = 90.0
near = 1.0
far = 100.0

[[node]]
name = "stage"
translate = [0.0, 0.0, 10.0]

[[node]]
name = "card"
parent = "stage"
translate = [2.0, 0.0, 0.0]
rotate_axis = [0.0, 0.0, 5.0]
rotate_angle = 90.0

[[node]]
parent = "card"
translate = [1.0, 0.0, 0.0]
scale = [2.0, 2.0, 2.0]

[[node2d]]
name = "label"
translate = [16.0, 8.0]
scale = [2.0, 1.0]
rotate = 90.0
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	require.NotNil(t, s.Camera)
	assert.Equal(t, 90.0, s.Camera.Fov)
	require.Len(t, s.Nodes, 3)
	require.Len(t, s.Nodes2D, 1)

	assert.Equal(t, -1, s.Nodes[0].Parent)
	assert.Equal(t, 0, s.Nodes[1].Parent)
	assert.Equal(t, 1, s.Nodes[2].Parent)

	// unnamed nodes are named after their id
	assert.Equal(t, s.Nodes[2].ID.String(), s.Nodes[2].Name)
	assert.NotEqual(t, uuid.Nil, s.Nodes[0].ID)
	assert.NotEqual(t, s.Nodes[0].ID, s.Nodes[1].ID)
}

func TestEvaluate(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	out := s.Evaluate()
	require.NotNil(t, out.Projection)
	require.Len(t, out.Nodes, 3)

	stage, card, leaf := out.Nodes[0], out.Nodes[1], out.Nodes[2]
	assert.True(t, stage.Origin.Compare(math.NewVec3(0, 0, 10), 1e-9))
	assert.True(t, card.Origin.Compare(math.NewVec3(2, 0, 10), 1e-9))
	// the card is turned a quarter about Z, so its local +X points along world +Y
	assert.True(t, leaf.Origin.Compare(math.NewVec3(2, 1, 10), 1e-9), leaf.Origin.String())
	assert.InDelta(t, 2.0, leaf.World.ScaleX(), 1e-9)

	for _, r := range out.Nodes {
		require.NotNil(t, r.Inverse)
		back := math.NewVec3Zero().Transform(r.Inverse, r.Origin)
		assert.True(t, back.Compare(math.NewVec3Zero(), 1e-9))
		assert.True(t, strings.HasPrefix(r.CSS, "matrix3d("))
		require.NotNil(t, r.Projected)
	}
	// x / z with a 90 degree fov
	assert.InDelta(t, 0.2, card.Projected.X, 1e-9)
	assert.InDelta(t, 0.0, card.Projected.Y, 1e-9)

	require.Len(t, out.Nodes2D, 1)
	label := out.Nodes2D[0]
	assert.Equal(t,
		"matrix(0.000000000000,2.000000000000,-1.000000000000,0.000000000000,16.000000000000,8.000000000000)",
		label.CSS)
	require.NotNil(t, label.Inverse)
	p := math.NewVec2(0, 0).Transform(label.Local, math.NewVec2(1, 0))
	assert.True(t, p.Compare(math.NewVec2(16, 10), 1e-9), p.String())
	back := math.NewVec2(0, 0).Transform(label.Inverse, p)
	assert.True(t, back.Compare(math.NewVec2(1, 0), 1e-9), back.String())
}

func TestEvaluate2DInverseRoundTrip(t *testing.T) {
	s, err := Parse([]byte(`
[[node2d]]
name = "turned"
translate = [16.0, 8.0]
rotate = 90.0

[[node2d]]
name = "skewed"
translate = [-3.5, 12.0]
scale = [0.5, 3.0]
rotate = 37.0

[[node2d]]
name = "shifted"
translate = [4.0, -2.0]
`))
	require.NoError(t, err)

	points := []*math.Vec2{math.NewVec2(3, 5), math.NewVec2(0, 0), math.NewVec2(-7, 2.5)}
	for _, r := range s.Evaluate().Nodes2D {
		t.Run(r.Name, func(t *testing.T) {
			require.NotNil(t, r.Inverse)
			for _, p := range points {
				moved := math.NewVec2(0, 0).Transform(r.Local, p)
				back := math.NewVec2(0, 0).Transform(r.Inverse, moved)
				assert.True(t, back.Compare(p, 1e-9), "%s -> %s -> %s", p, moved, back)
			}
		})
	}

	turned := s.Evaluate().Nodes2D[0]
	moved := math.NewVec2(0, 0).Transform(turned.Local, math.NewVec2(3, 5))
	assert.True(t, moved.Compare(math.NewVec2(11, 11), 1e-9), moved.String())
}

func TestEvaluateSingularNode(t *testing.T) {
	s, err := Parse([]byte(`
[[node]]
name = "flat"
scale = [1.0, 0.0, 1.0]

[[node2d]]
name = "gone"
scale = [0.0, 0.0]
`))
	require.NoError(t, err)

	out := s.Evaluate()
	assert.Nil(t, out.Projection)
	assert.Nil(t, out.Nodes[0].Inverse)
	assert.Nil(t, out.Nodes[0].Projected)
	assert.Nil(t, out.Nodes2D[0].Inverse)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		scene string
		err   error
	}{
		{name: "bad toml", scene: `[[node]`, err: core.ErrInvalidScene},
		{name: "unknown parent", scene: "[[node]]\nname = \"a\"\nparent = \"b\"\n", err: core.ErrUnknownNode},
		{name: "parent declared later", scene: "[[node]]\nname = \"a\"\nparent = \"b\"\n[[node]]\nname = \"b\"\n", err: core.ErrUnknownNode},
		{name: "duplicate name", scene: "[[node]]\nname = \"a\"\n[[node]]\nname = \"a\"\n", err: core.ErrInvalidScene},
		{name: "short translate", scene: "[[node]]\ntranslate = [1.0, 2.0]\n", err: core.ErrInvalidScene},
		{name: "zero axis", scene: "[[node]]\nrotate_angle = 10.0\n", err: core.ErrInvalidScene},
		{name: "2d scale", scene: "[[node2d]]\nscale = [1.0, 2.0, 3.0]\n", err: core.ErrInvalidScene},
		{name: "camera fov", scene: "[camera]\naspect = 1.0\nfov = 180.0\nnear = 1.0\nfar = 2.0\n", err: core.ErrInvalidScene},
		{name: "camera aspect", scene: "[camera]\naspect = 0.0\nfov = 60.0\nnear = 1.0\nfar = 2.0\n", err: core.ErrInvalidScene},
		{name: "camera planes", scene: "[camera]\naspect = 1.0\nfov = 60.0\nnear = 2.0\nfar = 2.0\n", err: core.ErrInvalidScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.scene))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Nodes, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
