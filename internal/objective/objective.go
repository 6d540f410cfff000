package objective

// Func is a bare objective in physical coordinates; higher is better.
type Func func(x []float64) float64

// Objective is a named maximization problem with box bounds. Evaluate is
// called with a point inside the bounds and must be deterministic.
type Objective interface {
	Name() string
	Description() string
	Bounds() (lower, upper []float64)
	Evaluate(x []float64) float64
}

// funcObjective adapts a plain Func into an Objective.
type funcObjective struct {
	name        string
	description string
	lower       []float64
	upper       []float64
	fn          Func
}

func (o *funcObjective) Name() string        { return o.name }
func (o *funcObjective) Description() string { return o.description }
func (o *funcObjective) Bounds() ([]float64, []float64) {
	return append([]float64(nil), o.lower...), append([]float64(nil), o.upper...)
}
func (o *funcObjective) Evaluate(x []float64) float64 { return o.fn(x) }

// New wraps fn as an Objective over the given box.
func New(name, description string, lower, upper []float64, fn Func) Objective {
	return &funcObjective{
		name:        name,
		description: description,
		lower:       append([]float64(nil), lower...),
		upper:       append([]float64(nil), upper...),
		fn:          fn,
	}
}
