package config

import (
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	qerrors "github.com/arthur-debert/quickref/pkg/errors"
)

// Seed writes the default configuration to path. An existing file is
// never overwritten.
func Seed(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0755); err != nil {
			return qerrors.Wrapf(err, qerrors.ErrDirCreate,
				"could not create config directory").WithDetail("path", dir)
		}
	case err != nil:
		return qerrors.Wrapf(err, qerrors.ErrFileAccess,
			"could not access config directory").WithDetail("path", dir)
	case !info.IsDir():
		return qerrors.Newf(qerrors.ErrConfigValid,
			"config directory path exists but is not a directory: %s", dir)
	}

	if _, err := os.Stat(path); err == nil {
		return qerrors.Newf(qerrors.ErrConfigValid,
			"a configuration file already exists at %s, no action was taken", path)
	}

	data, err := gotoml.Marshal(Default())
	if err != nil {
		return qerrors.Wrap(err, qerrors.ErrInternal,
			"failed to serialize default config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return qerrors.Wrapf(err, qerrors.ErrFileAccess,
			"could not write config file").WithDetail("path", path)
	}
	return nil
}
