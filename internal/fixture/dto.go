package fixture

// Node DTOs. Every scene node is a mapping with a kind; the remaining keys
// depend on the kind.

type nodeDTO struct {
	Kind string `mapstructure:"kind"`
}

// Shape lists the ways a fixture describes a path. Exactly one key is set.
type Shape struct {
	Rect        []float64   `mapstructure:"rect"`
	Circle      []float64   `mapstructure:"circle"`
	Ellipse     []float64   `mapstructure:"ellipse"`
	RoundedRect []float64   `mapstructure:"rounded_rect"`
	Points      [][]float64 `mapstructure:"points"`
}

type paintDTO struct {
	Color    string   `mapstructure:"color"`
	Style    string   `mapstructure:"style"`
	Width    *float64 `mapstructure:"width"`
	Cap      string   `mapstructure:"cap"`
	Join     string   `mapstructure:"join"`
	Miter    float64  `mapstructure:"miter"`
	FillRule string   `mapstructure:"fill_rule"`
	Blur     float64  `mapstructure:"blur"`
}

type pathDTO struct {
	Kind     string `mapstructure:"kind"`
	Shape    `mapstructure:",squash"`
	Paint    *paintDTO `mapstructure:"paint"`
}

type fontDTO struct {
	Family string  `mapstructure:"family"`
	Size   float64 `mapstructure:"size"`
}

type textDTO struct {
	Kind       string    `mapstructure:"kind"`
	Text       string    `mapstructure:"text"`
	Font       fontDTO   `mapstructure:"font"`
	X          float64   `mapstructure:"x"`
	Y          float64   `mapstructure:"y"`
	Align      string    `mapstructure:"align"`
	Baseline   string    `mapstructure:"baseline"`
	MaxWidth   float64   `mapstructure:"max_width"`
	LineHeight float64   `mapstructure:"line_height"`
	Paint      *paintDTO `mapstructure:"paint"`
}

type imageDTO struct {
	Kind   string    `mapstructure:"kind"`
	Rect   []float64 `mapstructure:"rect"`
	Source string    `mapstructure:"source"`
	Fit    string    `mapstructure:"fit"`
	Paint  *paintDTO `mapstructure:"paint"`
}

type childrenDTO struct {
	Kind     string           `mapstructure:"kind"`
	Children []map[string]any `mapstructure:"children"`
}

type offsetDTO struct {
	Kind  string         `mapstructure:"kind"`
	X     float64        `mapstructure:"x"`
	Y     float64        `mapstructure:"y"`
	Child map[string]any `mapstructure:"child"`
}

type rotateDTO struct {
	Kind    string         `mapstructure:"kind"`
	Degrees float64        `mapstructure:"degrees"`
	Child   map[string]any `mapstructure:"child"`
}

type transformDTO struct {
	Kind   string         `mapstructure:"kind"`
	Matrix []float64      `mapstructure:"matrix"`
	Child  map[string]any `mapstructure:"child"`
}

type clipDTO struct {
	Kind     string `mapstructure:"kind"`
	Op       string `mapstructure:"op"`
	Shape    `mapstructure:",squash"`
	Child    map[string]any `mapstructure:"child"`
}

type wrapperDTO struct {
	Kind  string         `mapstructure:"kind"`
	Child map[string]any `mapstructure:"child"`
}

type cursorDTO struct {
	Kind   string         `mapstructure:"kind"`
	Cursor string         `mapstructure:"cursor"`
	Child  map[string]any `mapstructure:"child"`
}

type idDTO struct {
	Kind  string         `mapstructure:"kind"`
	ID    string         `mapstructure:"id"`
	Child map[string]any `mapstructure:"child"`
}

type documentDTO struct {
	Scene  map[string]any    `mapstructure:"scene"`
	Points [][]float64       `mapstructure:"points"`
	Fonts  map[string]string `mapstructure:"fonts"`
}
