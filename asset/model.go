// Package asset describes the aircraft model the simulation attaches hitboxes
// and animation clips to. Mesh data itself stays with the renderer.
package asset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyraid/geom"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoParts is returned for a manifest describing a model without any part.
	ErrNoParts = errors.New("model has no parts")
	// ErrBadPart is returned for a part with a non-positive size.
	ErrBadPart = errors.New("invalid model part")
)

// Part is one mesh fragment of the model, boxed in model space.
type Part struct {
	Name   string     `yaml:"name"`
	Center mgl64.Vec3 `yaml:"center"`
	Size   mgl64.Vec3 `yaml:"size"`
}

// Box returns the part's local bounding box.
func (p Part) Box() geom.Box {
	return geom.NewBox(p.Center, p.Size)
}

// Clip is an animation clip. The simulation only needs its identity and length.
type Clip struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
}

// Model is a loaded aircraft: its parts and its clips keyed by lowercase name.
type Model struct {
	Name  string `yaml:"name"`
	Parts []Part `yaml:"parts"`
	Clips []Clip `yaml:"clips"`

	clips map[string]Clip
}

// Provider supplies the loaded model and clip lookup.
type Provider interface {
	Model() *Model
	Clip(name string) (Clip, bool)
}

// Loader produces a Provider, typically by reading files.
type Loader interface {
	Load(ctx context.Context) (Provider, error)
}

// Model implements Provider.
func (m *Model) Model() *Model {
	return m
}

// Clip looks a clip up by name, ignoring case.
func (m *Model) Clip(name string) (Clip, bool) {
	clip, ok := m.clips[strings.ToLower(name)]
	return clip, ok
}

// ClipNames returns the lowercase names of every clip.
func (m *Model) ClipNames() []string {
	names := make([]string, 0, len(m.Clips))
	for _, c := range m.Clips {
		names = append(names, strings.ToLower(c.Name))
	}
	return names
}

func (m *Model) index() error {
	if len(m.Parts) == 0 {
		return ErrNoParts
	}
	for _, p := range m.Parts {
		if p.Size[0] <= 0 || p.Size[1] <= 0 || p.Size[2] <= 0 {
			return fmt.Errorf("%w: %q size %v", ErrBadPart, p.Name, p.Size)
		}
	}

	m.clips = make(map[string]Clip, len(m.Clips))
	for _, c := range m.Clips {
		m.clips[strings.ToLower(c.Name)] = c
	}
	return nil
}

// Builtin returns the stock drone: nose along +X, wings along Z.
func Builtin() *Model {
	m := &Model{
		Name: "shahed-131",
		Parts: []Part{
			{Name: "fuselage", Center: mgl64.Vec3{0, 0, 0}, Size: mgl64.Vec3{4, 0.6, 0.6}},
			{Name: "wings", Center: mgl64.Vec3{-0.6, 0, 0}, Size: mgl64.Vec3{1.4, 0.1, 4}},
			{Name: "tail", Center: mgl64.Vec3{-1.8, 0.4, 0}, Size: mgl64.Vec3{0.4, 0.8, 0.1}},
		},
		Clips: []Clip{
			{Name: "Fuselage", Duration: 1},
		},
	}
	if err := m.index(); err != nil {
		panic(err)
	}
	return m
}

// Decode parses a YAML model manifest.
func Decode(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding model manifest: %w", err)
	}
	if err := m.index(); err != nil {
		return nil, err
	}
	return &m, nil
}

// BuiltinLoader loads the stock model. It never fails.
type BuiltinLoader struct{}

func (BuiltinLoader) Load(context.Context) (Provider, error) {
	return Builtin(), nil
}

// FileLoader reads a YAML manifest from Path.
type FileLoader struct {
	Path string
}

func (l FileLoader) Load(ctx context.Context) (Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", l.Path, err)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading model %s: %w", l.Path, err)
	}
	return m, nil
}
