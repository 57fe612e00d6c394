package rc

import (
	"os"
	"path/filepath"
	"sort"
)

// exists reports whether the path exists at all, without following symlinks.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// isFile reports whether the path is a regular file.
func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// isLink reports whether the path is a symbolic link.
func isLink(path string) bool {
	fi, err := os.Lstat(path)
	return err == nil && fi.Mode()&os.ModeSymlink != 0
}

// isDir reports whether the path is a directory.
func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// isExec reports whether the path is a regular file with an execute bit.
func isExec(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular() && fi.Mode().Perm()&0o111 != 0
}

// lsDir returns the sorted entry names of dir. A missing or unreadable
// directory yields an empty list; absence is not an error on read paths.
func lsDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// rmDir removes the contents of a directory, and the directory itself when
// top is true.
func rmDir(dir string, top bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	if top {
		return os.Remove(dir)
	}
	return nil
}

func mkdirAll(dir string) error {
	return os.MkdirAll(dir, DirMode)
}
