package histfsm

import "github.com/enetx/g"

// ToDOT generates a DOT language representation of the configuration for visualization.
func (c *Config) ToDOT() g.String { return c.dot("", false) }

// ToDOT generates a DOT language representation of the machine, highlighting the current state.
func (f *FSM) ToDOT() g.String { return f.config.dot(f.Current(), true) }

func (c *Config) dot(current State, highlight bool) g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", c.initial))

	var edges g.Slice[g.Pair[State, State]]
	labels := g.NewMap[g.Pair[State, State], g.Slice[g.String]]()
	undeclared := g.NewSet[State]()

	var extra g.Slice[State]

	for from := range c.order.Iter() {
		for event := range c.Events(from).Iter() {
			to := c.states[from][event]
			key := g.Pair[State, State]{Key: from, Value: to}

			if !labels.Contains(key) {
				edges.Push(key)
			}

			labels.Entry(key).
				AndModify(func(s *g.Slice[g.String]) { s.Push(g.String(event)) }).
				OrInsert(g.SliceOf(g.String(event)))

			if !c.Has(to) && !undeclared.Contains(to) {
				undeclared.Insert(to)
				extra.Push(to)
			}
		}
	}

	states := c.order.Clone()
	states.Push(extra...)

	for state := range states.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		switch {
		case highlight && state == current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case undeclared.Contains(state):
			attrs.Push("style=dashed", "color=\"#999999\"")
		case c.Events(state).Empty():
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for pair := range edges.Iter() {
		label := labels.Get(pair).Some().Join("\\n")

		edge := g.SliceOf(g.Format("label=\" {} \"", label))
		if undeclared.Contains(pair.Value) {
			edge.Push("style=dashed", "color=\"#999999\"")
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", pair.Key, pair.Value, edge.Join(", ")))
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right">●</td><td>Regular state</td></tr>
        <tr><td align="right"><font color="green">◎</font></td><td>Current state</td></tr>
        <tr><td align="right"><font color="gray">◎</font></td><td>Final state</td></tr>
        <tr><td align="right"><font color="gray">○</font></td><td>Undeclared target</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}
