package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// document is the on-disk catalog layout.
type document struct {
	Version   string     `yaml:"version"`
	Workouts  []Workout  `yaml:"workouts"`
	Schemes   []Scheme   `yaml:"schemes"`
	Tempos    []string   `yaml:"tempos"`
	Exercises []Exercise `yaml:"exercises"`
}

// Catalog is the read-only exercise database. It is immutable after
// construction and safe for concurrent use.
type Catalog struct {
	doc       document
	workouts  map[WorkoutType]*Workout
	schemes   map[Goal]*Scheme
	exercises map[string]*Exercise
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// DefaultBytes returns the raw embedded catalog document.
func DefaultBytes() []byte {
	return slices.Clone(defaultCatalog)
}

// LoadFile reads and validates a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadOrDefault loads the catalog at path, or the default catalog when no
// file exists there. It reports whether the file was used.
func LoadOrDefault(path string) (*Catalog, bool, error) {
	if path != "" {
		c, err := LoadFile(path)
		if err == nil {
			return c, true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, err
		}
	}
	c, err := Default()
	return c, false, err
}

// Load reads and validates a catalog document.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates data against the catalog schema and the reference rules
// and builds the lookup indices.
func Parse(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	return build(doc), nil
}

func build(doc document) *Catalog {
	c := &Catalog{
		doc:       doc,
		workouts:  make(map[WorkoutType]*Workout, len(doc.Workouts)),
		schemes:   make(map[Goal]*Scheme, len(doc.Schemes)),
		exercises: make(map[string]*Exercise, len(doc.Exercises)),
	}
	for i := range c.doc.Workouts {
		c.workouts[c.doc.Workouts[i].Type] = &c.doc.Workouts[i]
	}
	for i := range c.doc.Schemes {
		c.schemes[c.doc.Schemes[i].Goal] = &c.doc.Schemes[i]
	}
	for i := range c.doc.Exercises {
		c.exercises[c.doc.Exercises[i].Name] = &c.doc.Exercises[i]
	}
	return c
}

// Version returns the catalog's semantic version (e.g. "v1.0.0").
func (c *Catalog) Version() string {
	return c.doc.Version
}

// WorkoutTypes returns every workout type in catalog order.
func (c *Catalog) WorkoutTypes() []WorkoutType {
	out := make([]WorkoutType, len(c.doc.Workouts))
	for i, w := range c.doc.Workouts {
		out[i] = w.Type
	}
	return out
}

// HasWorkoutType reports whether t is defined.
func (c *Catalog) HasWorkoutType(t WorkoutType) bool {
	_, ok := c.workouts[t]
	return ok
}

// Goals returns every goal in catalog order.
func (c *Catalog) Goals() []Goal {
	out := make([]Goal, len(c.doc.Schemes))
	for i, s := range c.doc.Schemes {
		out[i] = s.Goal
	}
	return out
}

// Scheme returns the scheme for goal.
func (c *Catalog) Scheme(goal Goal) (Scheme, error) {
	s, ok := c.schemes[goal]
	if !ok {
		return Scheme{}, fmt.Errorf("unknown goal %q", goal)
	}
	return *s, nil
}

// MuscleOptions returns the selectable muscle group names for t, in display order.
func (c *Catalog) MuscleOptions(t WorkoutType) []string {
	w, ok := c.workouts[t]
	if !ok {
		return nil
	}
	out := make([]string, len(w.Groups))
	for i, g := range w.Groups {
		out[i] = g.Name
	}
	return out
}

// TargetMuscles expands selected group names into the distinct muscles they
// train, preserving first-seen order.
func (c *Catalog) TargetMuscles(t WorkoutType, groups []string) ([]string, error) {
	w, ok := c.workouts[t]
	if !ok {
		return nil, fmt.Errorf("unknown workout type %q", t)
	}
	var out []string
	seen := make(map[string]bool)
	for _, name := range groups {
		idx := slices.IndexFunc(w.Groups, func(g MuscleGroup) bool { return g.Name == name })
		if idx < 0 {
			return nil, fmt.Errorf("workout type %q has no muscle group %q", t, name)
		}
		for _, m := range w.Groups[idx].Targets() {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// Exercise returns the exercise named name.
func (c *Catalog) Exercise(name string) (Exercise, bool) {
	e, ok := c.exercises[name]
	if !ok {
		return Exercise{}, false
	}
	return *e, true
}

// Exercises returns all exercises in catalog order.
func (c *Catalog) Exercises() []Exercise {
	return slices.Clone(c.doc.Exercises)
}

// LookupExercises returns, in catalog order, every exercise that trains at
// least one muscle targeted by the given groups of t.
func (c *Catalog) LookupExercises(t WorkoutType, groups []string) ([]Exercise, error) {
	muscles, err := c.TargetMuscles(t, groups)
	if err != nil {
		return nil, err
	}
	var out []Exercise
	for _, e := range c.doc.Exercises {
		if slices.ContainsFunc(muscles, e.Targets) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Tempos returns the tempo table.
func (c *Catalog) Tempos() []string {
	return slices.Clone(c.doc.Tempos)
}
