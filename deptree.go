package rc

import (
	"sort"
)

// Dependency relation names emitted by init scripts
const (
	// DepIneed services are required; missing or failed ones are fatal
	DepIneed = "ineed"

	// DepIuse services are used when present but not required
	DepIuse = "iuse"

	// DepIwant services should be started but failures are tolerated
	DepIwant = "iwant"

	// DepIafter services are ordered before this one without being needed
	DepIafter = "iafter"

	// DepIbefore orders this service before the listed ones
	DepIbefore = "ibefore"

	// DepIprovide declares aliases other services may depend on
	DepIprovide = "iprovide"
)

// Reverse relations materialized while building the tree
const (
	// DepNeedsme lists the services that ineed this one
	DepNeedsme = "needsme"

	// DepUsesme lists the services that iuse this one
	DepUsesme = "usesme"

	// DepWantsme lists the services that iwant this one
	DepWantsme = "wantsme"

	// DepBeforeme lists the services that declared ibefore this one
	DepBeforeme = "beforeme"

	// DepAfterme lists the services that declared iafter this one
	DepAfterme = "afterme"
)

// forwardDeptypes are the relations accepted from init scripts; anything
// else is ignored.
var forwardDeptypes = []string{
	DepIneed, DepIuse, DepIwant, DepIafter, DepIbefore, DepIprovide,
}

// reverseDeptypes maps a forward relation to the bucket created on its
// target.
var reverseDeptypes = map[string]string{
	DepIneed:   DepNeedsme,
	DepIuse:    DepUsesme,
	DepIwant:   DepWantsme,
	DepIbefore: DepBeforeme,
	DepIafter:  DepAfterme,
}

// Deptype is one dependency bucket: a relation and the services it names.
type Deptype struct {
	// Type is the relation, e.g. ineed
	Type string `yaml:"type"`
	// Services are canonical service names
	Services []string `yaml:"services"`
}

// Depinfo is one service's dependency record.
type Depinfo struct {
	// Service is the canonical service name
	Service string `yaml:"service"`
	// Depends holds the service's dependency buckets in declaration order
	Depends []*Deptype `yaml:"depends,omitempty"`
}

// Deptype returns the bucket for the relation, or nil.
func (di *Depinfo) Deptype(relation string) *Deptype {
	if di == nil {
		return nil
	}
	for _, dt := range di.Depends {
		if dt.Type == relation {
			return dt
		}
	}
	return nil
}

// add appends a service to the relation's bucket, creating the bucket on
// first use and keeping members unique.
func (di *Depinfo) add(relation, service string) {
	dt := di.Deptype(relation)
	if dt == nil {
		dt = &Deptype{Type: relation}
		di.Depends = append(di.Depends, dt)
	}
	for _, existing := range dt.Services {
		if existing == service {
			return
		}
	}
	dt.Services = append(dt.Services, service)
}

// Deptree is the parsed and rewritten dependency graph, keyed by service
// name. Cross-references are names, never pointers, so provide rewrites
// and serialization stay trivial.
type Deptree struct {
	order []string
	infos map[string]*Depinfo
}

// NewDeptree returns an empty tree.
func NewDeptree() *Deptree {
	return &Deptree{infos: make(map[string]*Depinfo)}
}

// Depinfo returns the service's dependency record, or nil.
func (t *Deptree) Depinfo(service string) *Depinfo {
	if t == nil {
		return nil
	}
	return t.infos[service]
}

// Services returns the tree's service names in insertion order.
func (t *Deptree) Services() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Has reports whether the tree knows the service.
func (t *Deptree) Has(service string) bool {
	return t != nil && t.infos[service] != nil
}

// ensure returns the service's record, creating it on first use.
func (t *Deptree) ensure(service string) *Depinfo {
	if di := t.infos[service]; di != nil {
		return di
	}
	di := &Depinfo{Service: service}
	t.infos[service] = di
	t.order = append(t.order, service)
	return di
}

// Equal reports structural equality: the same services with the same
// buckets holding the same members, order included.
func (t *Deptree) Equal(other *Deptree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.order) != len(other.order) {
		return false
	}
	for i, name := range t.order {
		if other.order[i] != name {
			return false
		}
		a, b := t.infos[name], other.infos[name]
		if len(a.Depends) != len(b.Depends) {
			return false
		}
		for j, dt := range a.Depends {
			bt := b.Depends[j]
			if dt.Type != bt.Type || len(dt.Services) != len(bt.Services) {
				return false
			}
			for k, svc := range dt.Services {
				if bt.Services[k] != svc {
					return false
				}
			}
		}
	}
	return true
}

// sortedCopy returns the strings in lexicographic order without touching
// the input.
func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
