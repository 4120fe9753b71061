// Package fixture reads rendering-tree scenes from YAML files.
//
// A fixture looks like:
//
//	scene:
//	  kind: children
//	  children:
//	    - kind: path
//	      rect: [0, 0, 100, 100]
//	    - kind: translate
//	      x: 50
//	      y: 50
//	      child:
//	        kind: path
//	        circle: [0, 0, 20]
//	        paint: {style: stroke, width: 2}
//	points:
//	  - [75, 75]
//	fonts:
//	  Serif: fonts/serif.ttf
package fixture

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/rtree"
	"github.com/gogpu/rtree/geom"
	"github.com/gogpu/rtree/text"
)

var (
	// ErrUnknownKind is returned for a scene node with an unrecognized kind.
	ErrUnknownKind = errors.New("fixture: unknown node kind")

	// ErrInvalid is returned for a node whose fields are malformed.
	ErrInvalid = errors.New("fixture: invalid node")
)

// Fixture is a decoded scene file.
type Fixture struct {
	// Scene is the rendering tree.
	Scene rtree.Tree
	// Points are sample points in root coordinates.
	Points []geom.Point
	// Fonts maps font families to font files. Load resolves relative
	// paths against the fixture's directory.
	Fonts map[string]string
}

// Load reads and decodes the fixture at path.
func Load(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()

	fx, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}

	dir := filepath.Dir(path)
	for family, file := range fx.Fonts {
		if !filepath.IsAbs(file) {
			fx.Fonts[family] = filepath.Join(dir, file)
		}
	}
	return fx, nil
}

// Decode reads a fixture document from r.
func Decode(r io.Reader) (*Fixture, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("fixture: yaml: %w", err)
	}

	var doc documentDTO
	if err := decodeStrict(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: document: %w", ErrInvalid, err)
	}
	if doc.Scene == nil {
		return nil, fmt.Errorf("%w: document has no scene", ErrInvalid)
	}

	scene, err := decodeNode(doc.Scene, "scene")
	if err != nil {
		return nil, err
	}

	points := make([]geom.Point, 0, len(doc.Points))
	for i, p := range doc.Points {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: points[%d]: want [x, y], got %d values", ErrInvalid, i, len(p))
		}
		points = append(points, geom.Pt(p[0], p[1]))
	}

	fonts := doc.Fonts
	if fonts == nil {
		fonts = map[string]string{}
	}
	return &Fixture{Scene: scene, Points: points, Fonts: fonts}, nil
}

// RegisterFonts loads the fixture's fonts into lib.
func (f *Fixture) RegisterFonts(lib *text.Library) error {
	for family, file := range f.Fonts {
		if err := lib.RegisterFile(family, file); err != nil {
			return fmt.Errorf("fixture: font %q: %w", family, err)
		}
	}
	return nil
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("fixture: point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("fixture: point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("fixture: point %q: %w", s, err)
	}
	return geom.Pt(x, y), nil
}

func decodeStrict(input, result any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      result,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// decodeNode turns one scene mapping into a tree. at names the node's
// position in the document for error messages.
func decodeNode(raw map[string]any, at string) (rtree.Tree, error) {
	var head nodeDTO
	if err := mapstructure.Decode(raw, &head); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, at, err)
	}

	invalid := func(err error) error {
		return fmt.Errorf("%w: %s (%s): %w", ErrInvalid, at, head.Kind, err)
	}

	switch head.Kind {
	case "path":
		var dto pathDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		path, err := dto.Shape.path()
		if err != nil {
			return nil, invalid(err)
		}
		paint, err := dto.Paint.paint()
		if err != nil {
			return nil, invalid(err)
		}
		return rtree.Path(path, paint), nil

	case "text":
		var dto textDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		cmd, err := dto.command()
		if err != nil {
			return nil, invalid(err)
		}
		return rtree.Text(cmd), nil

	case "image":
		var dto imageDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		img, err := dto.command()
		if err != nil {
			return nil, invalid(err)
		}
		return rtree.Image(img.Rect, img.Source, img.Fit, img.Paint), nil

	case "children":
		var dto childrenDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		trees := make([]rtree.Tree, 0, len(dto.Children))
		for i, c := range dto.Children {
			t, err := decodeNode(c, fmt.Sprintf("%s.children[%d]", at, i))
			if err != nil {
				return nil, err
			}
			trees = append(trees, t)
		}
		return rtree.Wrap(trees...), nil

	case "translate", "scale", "absolute":
		var dto offsetDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		child, err := decodeChild(dto.Child, at)
		if err != nil {
			return nil, err
		}
		switch head.Kind {
		case "translate":
			return rtree.Translate(dto.X, dto.Y, child), nil
		case "scale":
			return rtree.Scale(dto.X, dto.Y, child), nil
		default:
			return rtree.Absolute(dto.X, dto.Y, child), nil
		}

	case "rotate":
		var dto rotateDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		child, err := decodeChild(dto.Child, at)
		if err != nil {
			return nil, err
		}
		return rtree.Rotate(dto.Degrees*math.Pi/180, child), nil

	case "transform":
		var dto transformDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		if len(dto.Matrix) != 6 {
			return nil, invalid(fmt.Errorf("matrix: want [a, b, c, d, e, f], got %d values", len(dto.Matrix)))
		}
		child, err := decodeChild(dto.Child, at)
		if err != nil {
			return nil, err
		}
		m := dto.Matrix
		return rtree.Transform(geom.Matrix{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}, child), nil

	case "clip":
		var dto clipDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		op, err := parseClipOp(dto.Op)
		if err != nil {
			return nil, invalid(err)
		}
		path, err := dto.Shape.path()
		if err != nil {
			return nil, invalid(err)
		}
		child, err := decodeChild(dto.Child, at)
		if err != nil {
			return nil, err
		}
		return rtree.Clip(path, op, child), nil

	case "on_top":
		var dto wrapperDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		child, err := decodeChild(dto.Child, at)
		if err != nil {
			return nil, err
		}
		return rtree.OnTop(child), nil

	case "cursor":
		var dto cursorDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		cursor, ok := rtree.ParseCursor(dto.Cursor)
		if !ok {
			return nil, invalid(fmt.Errorf("unknown cursor %q", dto.Cursor))
		}
		child, err := decodeChild(dto.Child, at)
		if err != nil {
			return nil, err
		}
		return rtree.MouseCursor(cursor, child), nil

	case "id":
		var dto idDTO
		if err := decodeStrict(raw, &dto); err != nil {
			return nil, invalid(err)
		}
		id, err := uuid.Parse(dto.ID)
		if err != nil {
			return nil, invalid(err)
		}
		child, err := decodeChild(dto.Child, at)
		if err != nil {
			return nil, err
		}
		return rtree.WithID(id, child), nil

	case "empty":
		return rtree.Empty{}, nil
	}

	return nil, fmt.Errorf("%w %q at %s", ErrUnknownKind, head.Kind, at)
}

// decodeChild decodes the child of a special node. A missing child is
// Empty.
func decodeChild(raw map[string]any, at string) (rtree.Tree, error) {
	if raw == nil {
		return rtree.Empty{}, nil
	}
	return decodeNode(raw, at+".child")
}
