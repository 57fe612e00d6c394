package rc

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// SaveDeptree serializes the tree to the cache file. The write is atomic;
// concurrent readers load the old tree or the new one.
func (r *RC) SaveDeptree(tree *Deptree) error {
	infos := make([]*Depinfo, 0, len(tree.order))
	for _, name := range tree.order {
		infos = append(infos, tree.infos[name])
	}
	data, err := yaml.Marshal(infos)
	if err != nil {
		return &OpError{Op: OpDeptree, Path: r.deptreePath(), Err: err}
	}
	if err := renameio.WriteFile(r.deptreePath(), data, FileMode); err != nil {
		return &OpError{Op: OpDeptree, Path: r.deptreePath(), Err: err}
	}
	return nil
}

// LoadDeptree reads the cached dependency tree. The caller owns the
// returned tree; it does not change when the cache is rewritten.
func (r *RC) LoadDeptree() (*Deptree, error) {
	data, err := os.ReadFile(r.deptreePath())
	if err != nil {
		return nil, &OpError{Op: OpDeptree, Path: r.deptreePath(), Err: err}
	}
	var infos []*Depinfo
	if err := yaml.Unmarshal(data, &infos); err != nil {
		return nil, &OpError{Op: OpDeptree, Path: r.deptreePath(), Err: err}
	}
	tree := NewDeptree()
	for _, di := range infos {
		entry := tree.ensure(di.Service)
		entry.Depends = di.Depends
	}
	return tree, nil
}

// UpdateDeptree rebuilds the cache when forced or when any init script or
// configuration file is newer than it. Returns whether a rebuild happened;
// the error may carry parse warnings even on success.
func (r *RC) UpdateDeptree(force bool) (bool, error) {
	if !force && !r.deptreeStale() {
		return false, nil
	}
	tree, warnings := r.BuildDeptree()
	if err := r.SaveDeptree(tree); err != nil {
		return false, err
	}
	return true, warnings
}

// deptreeStale reports whether anything the tree derives from is newer
// than the cache. A missing cache is always stale.
func (r *RC) deptreeStale() bool {
	cache, err := os.Stat(r.deptreePath())
	if err != nil {
		return true
	}
	cutoff := cache.ModTime()

	newer := func(path string) bool {
		fi, err := os.Stat(path)
		return err == nil && fi.ModTime().After(cutoff)
	}
	dirNewer := func(dir string) bool {
		if dir == "" {
			return false
		}
		if newer(dir) {
			return true
		}
		for _, name := range lsDir(dir) {
			if newer(filepath.Join(dir, name)) {
				return true
			}
		}
		return false
	}

	if dirNewer(r.InitDir) || dirNewer(r.LocalInitDir) || dirNewer(r.ConfDir) {
		return true
	}
	return newer(filepath.Join(r.Root, RCConfFile))
}

// DeptreeAge returns how old the cache is, or zero when absent.
func (r *RC) DeptreeAge() time.Duration {
	fi, err := os.Stat(r.deptreePath())
	if err != nil {
		return 0
	}
	return time.Since(fi.ModTime())
}
