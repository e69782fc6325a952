// Package diagram renders a model.Model as Graphviz DOT or Mermaid
// state-diagram source, for visualizing the structures ctl.Solver
// reasons about.
package diagram

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rfielding/ctlcheck/model"
)

// DOT renders m as a Graphviz digraph. Node labels include the state
// name and its propositions; there is one invisible "start" node
// pointing at every state with no predecessors, mirroring how a
// Kripke structure's initial states are usually drawn.
func DOT(m *model.Model) string {
	var sb strings.Builder
	sb.WriteString("digraph Model {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  __start [shape=point];\n")

	hasPred := make([]bool, m.Len())
	for i := 0; i < m.Len(); i++ {
		for _, j := range m.Succ(i) {
			hasPred[j] = true
		}
	}

	for i := 0; i < m.Len(); i++ {
		st := m.State(i)
		id := nodeID(st.Name)
		sb.WriteString(fmt.Sprintf("  %s [label=%s];\n", id, quote(stateLabel(st))))
		if !hasPred[i] {
			sb.WriteString(fmt.Sprintf("  __start -> %s;\n", id))
		}
	}

	for i := 0; i < m.Len(); i++ {
		from := nodeID(m.State(i).Name)
		for _, j := range m.Succ(i) {
			to := nodeID(m.State(j).Name)
			sb.WriteString(fmt.Sprintf("  %s -> %s;\n", from, to))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func stateLabel(st model.State) string {
	props := make([]string, 0, len(st.Label))
	for p := range st.Label {
		props = append(props, p)
	}
	sort.Strings(props)
	if len(props) == 0 {
		return st.Name
	}
	return st.Name + "\n" + strings.Join(props, ", ")
}

// nodeID produces a Graphviz-safe node identifier from a state name:
// state names may contain characters DOT can't use bare (spaces,
// punctuation), so every node is emitted as a double-quoted DOT
// string literal instead of a bare identifier.
func nodeID(name string) string {
	return strconv.Quote(name)
}

func quote(s string) string {
	return strconv.Quote(s)
}

// Mermaid renders m as a Mermaid stateDiagram-v2. Transitions are
// deduplicated since Mermaid renders repeated edges as visual clutter
// rather than collapsing them itself.
func Mermaid(m *model.Model, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "stateDiagram-v2"); err != nil {
		return err
	}

	for i := 0; i < m.Len(); i++ {
		if len(m.Pred(i)) == 0 {
			if _, err := fmt.Fprintf(w, "  [*] --> %s\n", mermaidID(m.State(i).Name)); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for i := 0; i < m.Len(); i++ {
		from := m.State(i).Name
		for _, j := range m.Succ(i) {
			to := m.State(j).Name
			key := from + "->" + to
			if seen[key] {
				continue
			}
			seen[key] = true
			if _, err := fmt.Fprintf(w, "  %s --> %s\n", mermaidID(from), mermaidID(to)); err != nil {
				return err
			}
		}
	}
	return nil
}

func mermaidID(name string) string {
	r := strings.NewReplacer(" ", "_", "\n", "_")
	return r.Replace(name)
}
