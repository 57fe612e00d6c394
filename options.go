package rc

import (
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// ServiceOption returns the saved value of a persistent service option.
// An unset option reads as the empty string with ok false.
func (r *RC) ServiceOption(service, option string) (value string, ok bool) {
	if !validName(service) || !validName(option) {
		return "", false
	}
	data, err := os.ReadFile(filepath.Join(r.optionsDir(service), option))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// SetServiceOption saves a persistent value for the service. The write is
// atomic; readers see the old value or the new one.
func (r *RC) SetServiceOption(service, option, value string) error {
	if !validName(service) || !validName(option) {
		return &OpError{Op: OpOption, Path: service + "/" + option, Err: ErrBadName}
	}
	dir := r.optionsDir(service)
	if err := mkdirAll(dir); err != nil {
		return &OpError{Op: OpOption, Path: dir, Err: err}
	}
	path := filepath.Join(dir, option)
	if err := renameio.WriteFile(path, []byte(value), FileMode); err != nil {
		return &OpError{Op: OpOption, Path: path, Err: err}
	}
	return nil
}

// ServiceOptions returns the sorted names of the options saved for the
// service.
func (r *RC) ServiceOptions(service string) []string {
	if !validName(service) {
		return nil
	}
	return lsDir(r.optionsDir(service))
}
