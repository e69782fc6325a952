// Package modelconfig loads a model.Model and a set of named CTL
// queries from a YAML document, the data-driven counterpart to
// building both by hand in Go.
package modelconfig

import (
	"fmt"
	"strings"

	"github.com/rfielding/ctlcheck/ctl"
	"github.com/rfielding/ctlcheck/model"
	"gopkg.in/yaml.v3"
)

// Document is the top-level YAML shape: a named model plus a list of
// named CTL queries to run against it.
type Document struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	States      []StateDoc  `yaml:"states"`
	Edges       map[string][]string `yaml:"edges"`
	Queries     []QueryDoc  `yaml:"queries"`
}

// StateDoc is one state entry: a name plus the propositions it's
// labeled with.
type StateDoc struct {
	Name  string   `yaml:"name"`
	Props []string `yaml:"props"`
}

// QueryDoc names a CTL formula to evaluate against the document's
// model.
type QueryDoc struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Formula     FormulaDoc `yaml:"formula"`
}

// FormulaDoc is a CTL formula written as a YAML tree instead of CTL
// concrete syntax -- this module doesn't carry a CTL text parser, so
// structured data is the supported on-disk representation.
//
// One of Prop (atomic proposition), or Op with the right number of
// Children, must be set:
//
//	op: "top" | "bot"                          (no children)
//	op: "neg" | "ex" | "ax" | "ef" | "af" | "eg" | "ag"   (one child)
//	op: "and" | "or" | "impliesR" | "impliesL" | "biImplies" | "eu" | "au"  (two children)
type FormulaDoc struct {
	Prop     string       `yaml:"prop,omitempty"`
	Op       string       `yaml:"op,omitempty"`
	Children []FormulaDoc `yaml:"children,omitempty"`
}

// Parse decodes a YAML document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("modelconfig: %w", err)
	}
	return &doc, nil
}

// BuildModel constructs a model.Model from the document's states and
// edges.
func (d *Document) BuildModel() (*model.Model, error) {
	states := make([]model.State, len(d.States))
	for i, s := range d.States {
		states[i] = model.NewState(s.Name, s.Props...)
	}
	return model.New(states, d.Edges)
}

// Build converts a FormulaDoc into a ctl.Formula.
func (f FormulaDoc) Build() (ctl.Formula, error) {
	if f.Prop != "" {
		return ctl.NewAtomic(f.Prop), nil
	}

	op := strings.ToLower(f.Op)
	switch op {
	case "top":
		return ctl.Top, nil
	case "bot":
		return ctl.Bot, nil
	}

	unary := map[string]func(ctl.Formula) ctl.Formula{
		"neg": ctl.Neg, "ex": ctl.EX, "ax": ctl.AX,
		"ef": ctl.EF, "af": ctl.AF, "eg": ctl.EG, "ag": ctl.AG,
	}
	if build, ok := unary[op]; ok {
		if len(f.Children) != 1 {
			return nil, fmt.Errorf("modelconfig: operator %q needs exactly one child", f.Op)
		}
		inner, err := f.Children[0].Build()
		if err != nil {
			return nil, err
		}
		return build(inner), nil
	}

	binary := map[string]func(ctl.Formula, ctl.Formula) ctl.Formula{
		"and": ctl.And, "or": ctl.Or, "impliesr": ctl.ImpliesR, "impliesl": ctl.ImpliesL,
		"biimplies": ctl.BiImplies, "eu": ctl.EU, "au": ctl.AU,
	}
	if build, ok := binary[op]; ok {
		if len(f.Children) != 2 {
			return nil, fmt.Errorf("modelconfig: operator %q needs exactly two children", f.Op)
		}
		left, err := f.Children[0].Build()
		if err != nil {
			return nil, err
		}
		right, err := f.Children[1].Build()
		if err != nil {
			return nil, err
		}
		return build(left, right), nil
	}

	return nil, fmt.Errorf("modelconfig: unknown formula op %q", f.Op)
}

// Evaluated is the result of running one named query.
type Evaluated struct {
	Name        string
	Description string
	Satisfying  map[string]struct{}
}

// RunQueries builds m's solver once and evaluates every query in d
// against it.
func (d *Document) RunQueries(m *model.Model) ([]Evaluated, error) {
	s := ctl.NewSolver(m)
	out := make([]Evaluated, 0, len(d.Queries))
	for _, q := range d.Queries {
		f, err := q.Formula.Build()
		if err != nil {
			return nil, fmt.Errorf("modelconfig: query %q: %w", q.Name, err)
		}
		out = append(out, Evaluated{
			Name:        q.Name,
			Description: q.Description,
			Satisfying:  s.Satisfies(f),
		})
	}
	return out, nil
}
