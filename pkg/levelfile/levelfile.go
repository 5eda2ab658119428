// Package levelfile reads and writes box-level description files.
//
// A level file is a YAML document describing one box level: a format
// version, the refinement ratio, the periodic shift table, and the real
// boxes. Periodic images are never stored; they are derived from the
// shift table on load.
package levelfile

import (
	stderrors "errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-mesh/mesh/pkg/errors"
	"github.com/go-mesh/mesh/pkg/geom"
	"github.com/go-mesh/mesh/pkg/hier"
)

// SupportedFormat is the level file format major version this package
// reads and writes.
const SupportedFormat = "v1"

// File is the YAML schema of a level description.
type File struct {
	Format         string    `yaml:"format"`
	Name           string    `yaml:"name,omitempty"`
	RefineRatio    [2]int    `yaml:"refine_ratio"`
	PeriodicShifts [][2]int  `yaml:"periodic_shifts,omitempty"`
	Boxes          []BoxSpec `yaml:"boxes"`
}

// BoxSpec is the YAML schema of one real box.
type BoxSpec struct {
	Owner int    `yaml:"owner"`
	Local int    `yaml:"local"`
	Lower [2]int `yaml:"lower"`
	Upper [2]int `yaml:"upper"`
}

// Load reads a level file and builds the level it describes, periodic
// images included.
func Load(path string) (*hier.BoxLevel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.MeshError{
			Op:   "levelfile.Load",
			Kind: errors.KindIO,
			Path: path,
			Err:  err,
		}
	}
	level, err := Parse(data)
	if err != nil {
		var merr *errors.MeshError
		if stderrors.As(err, &merr) && merr.Path == "" {
			merr.Path = path
		}
		return nil, err
	}
	return level, nil
}

// Parse decodes a level description and builds the level it describes.
func Parse(data []byte) (*hier.BoxLevel, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &errors.MeshError{
			Op:   "levelfile.Parse",
			Kind: errors.KindFormat,
			Err:  err,
		}
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file.Build(), nil
}

// Validate checks the decoded file for format and geometry problems.
func (f *File) Validate() error {
	if !semver.IsValid(f.Format) {
		return formatErr("invalid format version %q", f.Format)
	}
	if semver.Major(f.Format) != SupportedFormat {
		return formatErr("unsupported format version %s (supported: %s)", f.Format, SupportedFormat)
	}
	if f.RefineRatio[0] < 1 || f.RefineRatio[1] < 1 {
		return configErr("refine_ratio components must be positive, got [%d, %d]",
			f.RefineRatio[0], f.RefineRatio[1])
	}
	for i, s := range f.PeriodicShifts {
		if s[0] == 0 && s[1] == 0 {
			return configErr("periodic_shifts[%d] is the zero shift", i)
		}
	}
	seen := make(map[geom.BoxID]int, len(f.Boxes))
	for i, spec := range f.Boxes {
		id := geom.BoxID{Owner: spec.Owner, Local: spec.Local}
		if prev, dup := seen[id]; dup {
			return geometryErr("boxes[%d] duplicates ID %s of boxes[%d]", i, id, prev)
		}
		seen[id] = i
		if spec.Upper[0] < spec.Lower[0] || spec.Upper[1] < spec.Lower[1] {
			return geometryErr("boxes[%d] (%s) has inverted bounds", i, id)
		}
	}
	return nil
}

// Build constructs the level from a validated file.
func (f *File) Build() *hier.BoxLevel {
	ratio := geom.Index{X: f.RefineRatio[0], Y: f.RefineRatio[1]}
	shifts := make([]geom.Index, len(f.PeriodicShifts))
	for i, s := range f.PeriodicShifts {
		shifts[i] = geom.Index{X: s[0], Y: s[1]}
	}
	level := hier.NewBoxLevel(ratio, shifts)
	for _, spec := range f.Boxes {
		level.AddBox(geom.NewBox(spec.Owner, spec.Local,
			geom.Index{X: spec.Lower[0], Y: spec.Lower[1]},
			geom.Index{X: spec.Upper[0], Y: spec.Upper[1]}))
	}
	level.AddPeriodicImages()
	return level
}

// Marshal encodes a level as a level description. Only real boxes are
// written; periodic images are reconstructed from the shift table on the
// next load.
func Marshal(level *hier.BoxLevel, name string) ([]byte, error) {
	ratio := level.RefineRatio()
	file := File{
		Format:      SupportedFormat + ".0.0",
		Name:        name,
		RefineRatio: [2]int{ratio.X, ratio.Y},
	}
	for _, s := range level.ShiftTable() {
		file.PeriodicShifts = append(file.PeriodicShifts, [2]int{s.X, s.Y})
	}
	for it := hier.NewRealBoxIterator(level.Boxes()); it.IsValid(); it.Next() {
		b := it.Box()
		file.Boxes = append(file.Boxes, BoxSpec{
			Owner: b.ID.Owner,
			Local: b.ID.Local,
			Lower: [2]int{b.Lower.X, b.Lower.Y},
			Upper: [2]int{b.Upper.X, b.Upper.Y},
		})
	}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return nil, &errors.MeshError{
			Op:   "levelfile.Marshal",
			Kind: errors.KindFormat,
			Err:  err,
		}
	}
	return data, nil
}

// Save writes a level description to path.
func Save(path string, level *hier.BoxLevel, name string) error {
	data, err := Marshal(level, name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &errors.MeshError{
			Op:   "levelfile.Save",
			Kind: errors.KindIO,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func formatErr(format string, args ...any) error {
	return &errors.MeshError{
		Op:   "levelfile.Validate",
		Kind: errors.KindFormat,
		Err:  fmt.Errorf(format, args...),
	}
}

func configErr(format string, args ...any) error {
	return &errors.MeshError{
		Op:   "levelfile.Validate",
		Kind: errors.KindConfig,
		Err:  fmt.Errorf(format, args...),
	}
}

func geometryErr(format string, args ...any) error {
	return &errors.MeshError{
		Op:   "levelfile.Validate",
		Kind: errors.KindGeometry,
		Err:  fmt.Errorf(format, args...),
	}
}
