package rc

import "sort"

// startOrderTypes are the relations that order a start, strongest first.
// beforeme carries the other side's ibefore declarations.
var startOrderTypes = []string{DepIneed, DepIuse, DepIwant, DepIafter, DepBeforeme}

// stopOrderTypes are the reverse relations that order a stop: a service
// stops only after everything that needs or uses it has stopped.
var stopOrderTypes = []string{DepNeedsme, DepUsesme, DepWantsme}

// OrderServices returns the full sequence of services to action for a
// change to the given runlevel: every service to stop, in reverse
// dependency order, followed by every service to start, in forward order.
//
// Services to start are the members of sysinit, boot and the target
// runlevel plus anything coldplugged. Services to stop are the currently
// started ones not in that set; with DepStop, currently inactive services
// join them. A cycle made only of ineed edges is fatal; any other cycle is
// broken at its weakest edge and reported through the configured
// CycleReporter.
func (r *RC) OrderServices(tree *Deptree, runlevel string, opts DepOptions) ([]string, error) {
	startSet := make(map[string]bool)
	var toStart []string
	for _, level := range []string{LevelSysinit, LevelBoot, runlevel} {
		for _, s := range r.ServicesInRunlevel(level) {
			if !startSet[s] {
				startSet[s] = true
				toStart = append(toStart, s)
			}
		}
	}
	for _, s := range r.ServicesInState(StateColdplugged) {
		if !startSet[s] {
			startSet[s] = true
			toStart = append(toStart, s)
		}
	}

	stopSet := make(map[string]bool)
	var toStop []string
	for _, s := range r.ServicesInState(StateStarted) {
		if !startSet[s] && !stopSet[s] {
			stopSet[s] = true
			toStop = append(toStop, s)
		}
	}
	if opts&DepStop != 0 {
		for _, s := range r.ServicesInState(StateInactive) {
			if !startSet[s] && !stopSet[s] {
				stopSet[s] = true
				toStop = append(toStop, s)
			}
		}
	}

	sort.Strings(toStart)
	sort.Strings(toStop)

	stopList := topoStop(tree, toStop, stopSet)
	startList, err := r.topoStart(tree, toStart, startSet)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(stopList)+len(startList))
	out = append(out, stopList...)
	out = append(out, startList...)
	return out, nil
}

// topoStop orders the stop set so every service precedes the services it
// depends on. Cycles among stopping services are cut where encountered;
// stopping order within a cycle is arbitrary anyway.
func topoStop(tree *Deptree, services []string, set map[string]bool) []string {
	state := make(map[string]int, len(services))
	var out []string

	var visit func(service string)
	visit = func(service string) {
		state[service] = 1
		di := tree.Depinfo(service)
		for _, t := range stopOrderTypes {
			dt := di.Deptype(t)
			if dt == nil {
				continue
			}
			for _, dependent := range sortedCopy(dt.Services) {
				if set[dependent] && state[dependent] == 0 {
					visit(dependent)
				}
			}
		}
		state[service] = 2
		out = append(out, service)
	}

	for _, s := range services {
		if state[s] == 0 {
			visit(s)
		}
	}
	return out
}

// edgeKey identifies one dependency edge for cycle breaking.
type edgeKey struct {
	from, to, relation string
}

// cycleInfo captures a detected cycle: its nodes in path order and the
// edges joining them, closing edge included.
type cycleInfo struct {
	nodes []string
	edges []edgeKey
}

// topoStart orders the start set so every service follows its
// dependencies. On a cycle the weakest participating edge (iafter, then
// iwant, then iuse) is dropped and the sort restarts; a cycle held
// together by ineed alone is fatal.
func (r *RC) topoStart(tree *Deptree, services []string, set map[string]bool) ([]string, error) {
	dropped := make(map[edgeKey]bool)

	for {
		order, cycle := tryTopoStart(tree, services, set, dropped)
		if cycle == nil {
			return order, nil
		}
		weakest := weakestEdge(cycle.edges)
		if weakest == nil {
			return nil, &CycleError{Relation: DepIneed, Services: cycle.nodes}
		}
		dropped[*weakest] = true
		if r.OnCycle != nil {
			r.OnCycle(&CycleError{Relation: weakest.relation, Services: cycle.nodes})
		}
	}
}

func tryTopoStart(tree *Deptree, services []string, set map[string]bool, dropped map[edgeKey]bool) ([]string, *cycleInfo) {
	state := make(map[string]int, len(services))
	var stack []string
	var stackEdges []edgeKey
	var out []string
	var cycle *cycleInfo

	var visit func(service string) bool
	visit = func(service string) bool {
		state[service] = 1
		stack = append(stack, service)
		di := tree.Depinfo(service)
		for _, t := range startOrderTypes {
			dt := di.Deptype(t)
			if dt == nil {
				continue
			}
			for _, dep := range sortedCopy(dt.Services) {
				if !set[dep] || dep == service {
					continue
				}
				edge := edgeKey{from: service, to: dep, relation: t}
				if dropped[edge] {
					continue
				}
				switch state[dep] {
				case 0:
					stackEdges = append(stackEdges, edge)
					if !visit(dep) {
						return false
					}
					stackEdges = stackEdges[:len(stackEdges)-1]
				case 1:
					cycle = extractCycle(stack, stackEdges, edge)
					return false
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[service] = 2
		out = append(out, service)
		return true
	}

	for _, s := range services {
		if state[s] == 0 {
			if !visit(s) {
				return nil, cycle
			}
		}
	}
	return out, nil
}

// extractCycle slices the DFS stack from the revisited node to the top and
// appends the closing edge.
func extractCycle(stack []string, stackEdges []edgeKey, closing edgeKey) *cycleInfo {
	start := 0
	for i, s := range stack {
		if s == closing.to {
			start = i
			break
		}
	}
	nodes := make([]string, len(stack)-start)
	copy(nodes, stack[start:])

	var edges []edgeKey
	if len(stackEdges) >= len(nodes)-1 {
		edges = append(edges, stackEdges[len(stackEdges)-(len(nodes)-1):]...)
	}
	edges = append(edges, closing)
	return &cycleInfo{nodes: nodes, edges: edges}
}

// weakestEdge picks the edge to drop: pure ordering edges first, then
// iwant, then iuse. Nil when every edge is ineed.
func weakestEdge(edges []edgeKey) *edgeKey {
	for _, relation := range []string{DepIafter, DepBeforeme, DepIwant, DepIuse} {
		for i := range edges {
			if edges[i].relation == relation {
				return &edges[i]
			}
		}
	}
	return nil
}
