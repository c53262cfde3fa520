package domain

import "go.trai.ch/zerr"

// VisitFunc is called for a node during a traversal. depth is the number
// of dependency edges between the node and the start node it was first
// reached from. Returning an error aborts the traversal.
type VisitFunc func(n Node, depth int) error

// Traverse walks the dependency graph depth-first from each start node in
// turn. enter is called before a node's dependencies are visited, exit
// after; either may be nil. A node is visited at most once per call even
// when it is reachable from several starts, so callbacks never fire twice
// for the same id.
//
// Traverse returns the set of visited node ids. When it runs into a
// dependency that is already on the active path, including a node that
// depends on itself, it stops with ErrCycleDetected carrying the cycle
// chain as metadata.
func (g *Graph) Traverse(starts []Node, enter, exit VisitFunc) (map[string]bool, error) {
	visited := make(map[string]bool, len(g.order))
	active := make(map[string]bool)
	var path []string

	var visit func(n Node, depth int) error
	visit = func(n Node, depth int) error {
		id := n.ID()
		if visited[id] {
			return nil
		}
		if active[id] {
			return cycleError(path, id)
		}
		// Callbacks always see the canonical node object, not whichever
		// duplicate a rule happened to hold.
		if canonical, ok := g.nodes[id]; ok {
			n = canonical
		}

		active[id] = true
		path = append(path, id)

		if enter != nil {
			if err := enter(n, depth); err != nil {
				return err
			}
		}
		if r, ok := g.rules[id]; ok {
			for _, dep := range r.DependsOn() {
				if err := visit(dep, depth+1); err != nil {
					return err
				}
			}
		}
		if exit != nil {
			if err := exit(n, depth); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		active[id] = false
		visited[id] = true
		return nil
	}

	for _, n := range starts {
		if err := visit(n, 0); err != nil {
			return visited, err
		}
	}
	return visited, nil
}

// cycleError constructs an error carrying the cycle chain, from the first
// occurrence of the repeated id on the active path back around to itself.
func cycleError(path []string, id string) error {
	start := 0
	for i, node := range path {
		if node == id {
			start = i
			break
		}
	}
	chain := ""
	for _, node := range path[start:] {
		chain += node + " -> "
	}
	chain += id
	return zerr.With(ErrCycleDetected, "cycle", chain)
}
