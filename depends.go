package rc

// DepOptions change the services found by GetDepends and OrderServices.
type DepOptions int

const (
	// DepTrace expands dependencies transitively
	DepTrace DepOptions = 1 << iota
	// DepStrict only enumerates services added to runlevels
	DepStrict
	// DepStart computes the closure for a runlevel start
	DepStart
	// DepStop computes the closure for a runlevel stop; reverse relations
	// are walked in addition to the requested ones
	DepStop
)

// GetDepends returns the closure of the seed services under the given
// relation set. Without DepTrace only direct neighbors are returned. The
// result preserves visitation order, ties broken lexicographically, each
// service at most once, seeds excluded.
func (r *RC) GetDepends(tree *Deptree, types, services []string, runlevel string, opts DepOptions) []string {
	expand := make([]string, 0, len(types)*2)
	expand = append(expand, types...)
	if opts&DepStop != 0 {
		for _, t := range types {
			if rev, ok := reverseDeptypes[t]; ok {
				expand = append(expand, rev)
			}
		}
	}

	seeds := make(map[string]bool, len(services))
	for _, s := range services {
		seeds[s] = true
	}

	seen := make(map[string]bool)
	var out []string

	var visit func(service string)
	visit = func(service string) {
		di := tree.Depinfo(service)
		if di == nil {
			return
		}
		for _, t := range expand {
			dt := di.Deptype(t)
			if dt == nil {
				continue
			}
			for _, m := range sortedCopy(dt.Services) {
				if seeds[m] || seen[m] {
					continue
				}
				if !r.depIncluded(tree, m, t, runlevel, opts) {
					continue
				}
				seen[m] = true
				out = append(out, m)
				if opts&DepTrace != 0 {
					visit(m)
				}
			}
		}
	}

	for _, s := range services {
		visit(s)
	}
	return out
}

// depIncluded applies the option filters to one candidate service.
func (r *RC) depIncluded(tree *Deptree, service, relation string, runlevel string, opts DepOptions) bool {
	if opts&DepStart != 0 && (relation == DepIuse || relation == DepIwant) {
		// Optional services only join a start closure when they exist and
		// are part of what is coming up.
		if !tree.Has(service) || !r.inStartSet(service, runlevel) {
			return false
		}
	}
	if opts&DepStrict != 0 {
		if r.ServiceInRunlevel(service, runlevel) {
			return true
		}
		if opts&DepStart != 0 &&
			(r.ServiceInRunlevel(service, LevelSysinit) || r.ServiceInRunlevel(service, LevelBoot)) {
			return true
		}
		return false
	}
	return true
}

// inStartSet reports whether the service will be up after a change to the
// runlevel: a member of it, of sysinit or boot, or coldplugged.
func (r *RC) inStartSet(service, runlevel string) bool {
	return r.ServiceInRunlevel(service, runlevel) ||
		r.ServiceInRunlevel(service, LevelSysinit) ||
		r.ServiceInRunlevel(service, LevelBoot) ||
		r.ServiceState(service, StateColdplugged)
}
