package rc

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// BuildDeptree runs every init script with the depend verb and assembles
// the dependency graph: forward buckets as declared, provide aliases
// rewritten to their winning provider, and reverse buckets materialized.
//
// Scripts that do not resolve or whose depend action fails are skipped;
// those failures are aggregated into the returned error as parse warnings.
// A script that emits no dependency lines is recorded with no buckets and
// raises no warning. The tree is valid even when the error is non-nil.
func (r *RC) BuildDeptree() (*Deptree, error) {
	warnings := &MultiError{}
	tree := NewDeptree()

	for _, service := range r.listServices() {
		di := tree.ensure(service)
		script, err := r.ResolveService(service)
		if err != nil {
			warnings.Add(err)
			continue
		}
		out, err := r.runDepend(script, service)
		if err != nil {
			warnings.Add(&OpError{Op: OpDeptree, Path: script, Err: err})
			continue
		}
		parseDependLines(di, out)
	}

	r.resolveProvides(tree)
	addReverseDeps(tree)

	return tree, warnings.Err()
}

// listServices returns the sorted union of executable scripts in the
// system and user-local init directories.
func (r *RC) listServices() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(dir string) {
		if dir == "" {
			return
		}
		for _, name := range lsDir(dir) {
			if seen[name] || !isExec(filepath.Join(dir, name)) {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	add(r.LocalInitDir)
	add(r.InitDir)
	sort.Strings(names)
	return names
}

// runDepend executes the script in its non-side-effecting dependency mode.
func (r *RC) runDepend(script, service string) ([]byte, error) {
	cmd := exec.Command(script, VerbDepend)
	cmd.Env = append(os.Environ(), "RC_SVCNAME="+service)
	return cmd.Output()
}

// parseDependLines feeds "<relation> <names...>" lines into the record.
// Unknown relations and malformed lines are ignored.
func parseDependLines(di *Depinfo, out []byte) {
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		relation := fields[0]
		if !knownForward(relation) {
			continue
		}
		for _, name := range fields[1:] {
			di.add(relation, name)
		}
	}
}

func knownForward(relation string) bool {
	for _, t := range forwardDeptypes {
		if t == relation {
			return true
		}
	}
	return false
}

// resolveProvides rewrites every occurrence of a provided alias to the
// providing service. A provider in the active runlevel wins; otherwise the
// lexicographically first provider does.
func (r *RC) resolveProvides(tree *Deptree) {
	providers := make(map[string][]string)
	for _, service := range tree.Services() {
		if dt := tree.Depinfo(service).Deptype(DepIprovide); dt != nil {
			for _, alias := range dt.Services {
				providers[alias] = append(providers[alias], service)
			}
		}
	}
	if len(providers) == 0 {
		return
	}

	level := r.Runlevel()
	winner := make(map[string]string, len(providers))
	for alias, candidates := range providers {
		sort.Strings(candidates)
		chosen := candidates[0]
		for _, c := range candidates {
			if r.ServiceInRunlevel(c, level) {
				chosen = c
				break
			}
		}
		winner[alias] = chosen
	}

	for _, service := range tree.Services() {
		for _, dt := range tree.Depinfo(service).Depends {
			if dt.Type == DepIprovide {
				continue
			}
			rewriteAliases(dt, tree, winner)
		}
	}
}

// rewriteAliases replaces alias members in place, deduplicating when the
// provider was already listed. A name that is itself a known service is
// never treated as an alias.
func rewriteAliases(dt *Deptype, tree *Deptree, winner map[string]string) {
	out := dt.Services[:0]
	seen := make(map[string]bool)
	for _, name := range dt.Services {
		if provider, isAlias := winner[name]; isAlias && !tree.Has(name) {
			name = provider
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	dt.Services = out
}

// addReverseDeps walks the forward edges once and materializes the
// reverse buckets on their targets. Edges to unknown services carry no
// reverse.
func addReverseDeps(tree *Deptree) {
	for _, service := range tree.Services() {
		for _, dt := range tree.Depinfo(service).Depends {
			reverse, ok := reverseDeptypes[dt.Type]
			if !ok {
				continue
			}
			for _, target := range dt.Services {
				if target == service || !tree.Has(target) {
					continue
				}
				tree.Depinfo(target).add(reverse, service)
			}
		}
	}
}
