package solid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"shape-generator/internal/shape"
	"shape-generator/internal/version"

	"gonum.org/v1/gonum/spatial/r3"
)

// Extension is the file extension of rendered models.
const Extension = ".scad"

// RenderOptions controls OpenSCAD output.
type RenderOptions struct {
	// Segments sets $fn for curved surfaces; 0 leaves OpenSCAD's default.
	Segments int
	// OmitHeader drops the leading generator comment.
	OmitHeader bool
}

// FileName returns the output file name for a primitive, e.g. "cone_model.scad".
func FileName(name shape.Name) string {
	return name.Slug() + "_model" + Extension
}

// Render writes g as an OpenSCAD program.
func Render(w io.Writer, g Geometry, opts RenderOptions) error {
	stmt, err := statement(g)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if !opts.OmitHeader {
		fmt.Fprintf(bw, "// Generated by shapegen %s\n\n", version.Version)
	}
	if opts.Segments > 0 {
		fmt.Fprintf(bw, "$fn = %d;\n\n", opts.Segments)
	}
	fmt.Fprintf(bw, "%s;\n", stmt)
	return bw.Flush()
}

// RenderToFile writes g to path, replacing any existing file.
func RenderToFile(path string, g Geometry, opts RenderOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	if err := Render(f, g, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to write model: %w", err)
	}
	return f.Close()
}

func statement(g Geometry) (string, error) {
	switch s := g.(type) {
	case Box:
		return fmt.Sprintf("cube(size = %s)", vec(s.Size)), nil
	case Cylinder:
		if s.R1 == s.R2 {
			return fmt.Sprintf("cylinder(h = %s, r = %s)", num(s.Height), num(s.R1)), nil
		}
		return fmt.Sprintf("cylinder(h = %s, r1 = %s, r2 = %s)", num(s.Height), num(s.R1), num(s.R2)), nil
	case Polyhedron:
		if err := s.Validate(); err != nil {
			return "", fmt.Errorf("invalid polyhedron: %w", err)
		}
		faces := make([]string, len(s.Faces))
		for i, f := range s.Faces {
			idx := make([]string, len(f))
			for j, v := range f {
				idx[j] = strconv.Itoa(v)
			}
			faces[i] = "[" + strings.Join(idx, ", ") + "]"
		}
		points := make([]string, len(s.Points))
		for i, p := range s.Points {
			points[i] = vec(p)
		}
		return fmt.Sprintf("polyhedron(faces = [%s], points = [%s])",
			strings.Join(faces, ", "), strings.Join(points, ", ")), nil
	case nil:
		return "", fmt.Errorf("nil geometry")
	default:
		return "", fmt.Errorf("cannot render %s geometry", g.Kind())
	}
}

func vec(v r3.Vec) string {
	return "[" + num(v.X) + ", " + num(v.Y) + ", " + num(v.Z) + "]"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
