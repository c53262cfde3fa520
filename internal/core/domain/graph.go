// Package domain contains the core domain models and business logic for the build dependency graph.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph is a verified dependency graph of nodes and the rules that
// produce them. A Graph returned by NewGraph is structurally sound: every
// rule target is unique, every static node exists, every dynamic node has
// a rule and no dependency chain loops back on itself.
type Graph struct {
	rules      map[string]Rule
	nodes      map[string]Node
	order      []string
	requesters map[string][]string
}

// NewGraph builds a graph from the given rules and verifies it. Nodes are
// collected from rule targets and dependencies; when several rules refer
// to the same id, the node object seen first wins. The returned graph
// keeps nodes in first-seen order so that walks are deterministic.
func NewGraph(rules []Rule) (*Graph, error) {
	g, err := NewUnverifiedGraph(rules)
	if err != nil {
		return nil, err
	}
	if err := g.verify(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewUnverifiedGraph builds a graph from the given rules without the
// structural checks. Duplicate rule targets are still rejected because the
// rule index cannot hold them. The result may reference missing static
// nodes or contain cycles; Traverse reports a cycle when it runs into one.
func NewUnverifiedGraph(rules []Rule) (*Graph, error) {
	g := &Graph{
		rules:      make(map[string]Rule, len(rules)),
		nodes:      make(map[string]Node),
		requesters: make(map[string][]string),
	}

	for _, r := range rules {
		id := r.Target().ID()
		if _, exists := g.rules[id]; exists {
			return nil, zerr.With(ErrDuplicateRuleTarget, "target", id)
		}
		g.rules[id] = r
		g.register(r.Target())
		for _, dep := range r.DependsOn() {
			g.register(dep)
		}
	}

	// The reverse index is filled in a second pass so that every node is
	// already known under its canonical id.
	for _, r := range rules {
		target := r.Target().ID()
		for _, dep := range r.DependsOn() {
			id := dep.ID()
			g.requesters[id] = append(g.requesters[id], target)
		}
	}

	return g, nil
}

// register records a node under its id unless the id is already taken.
func (g *Graph) register(n Node) {
	id := n.ID()
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = n
	g.order = append(g.order, id)
}

// verify checks the three structural properties of the graph: static
// nodes exist, dynamic nodes have a producing rule, and there is no
// dependency cycle.
func (g *Graph) verify() error {
	for _, id := range g.order {
		switch n := g.nodes[id].(type) {
		case StaticNode:
			if err := n.CheckExists(); err != nil {
				return zerr.With(zerr.Wrap(err, ErrStaticNodeMissing.Error()), "node", id)
			}
		case DynamicNode:
			if _, ok := g.rules[id]; !ok {
				return zerr.With(ErrNoRuleForTarget, "node", id)
			}
		}
	}

	// Walking from every node covers disconnected components; the shared
	// traversal memo keeps this linear in nodes plus edges.
	_, err := g.Traverse(g.AllNodes(), nil, nil)
	return err
}

// Node returns the node registered under id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Rule returns the rule producing the node with the given id.
func (g *Graph) Rule(id string) (Rule, bool) {
	r, ok := g.rules[id]
	return r, ok
}

// Requesters returns the ids of all rule targets that depend on the node
// with the given id, in rule registration order. A target depending on
// the node several times appears once per dependency edge.
func (g *Graph) Requesters(id string) []string {
	return g.requesters[id]
}

// Len returns the number of distinct nodes in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// Nodes returns an iterator over all nodes in first-seen order.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, id := range g.order {
			if !yield(g.nodes[id]) {
				return
			}
		}
	}
}

// AllNodes returns all nodes in first-seen order as a slice.
func (g *Graph) AllNodes() []Node {
	nodes := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}
