package compiler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/joshuapare/entitytrie/trie/fixture"
	"github.com/joshuapare/entitytrie/trie/source"
)

// CompileFiles loads cfg.Source, compiles it and writes cfg.Output and, when
// set, cfg.Fixture. Outputs are rendered in memory first and each file is
// replaced atomically, so a failure leaves existing outputs untouched.
func CompileFiles(cfg Config) (*Result, error) {
	opts := cfg.Options
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log
	}

	table, err := source.Load(cfg.Source)
	if err != nil {
		return nil, err
	}
	res, err := Compile(table, opts)
	if err != nil {
		return nil, err
	}

	var fix bytes.Buffer
	if cfg.Fixture != "" {
		blob, err := relativeTo(cfg.Fixture, cfg.Output)
		if err != nil {
			return nil, err
		}
		pkg := cfg.FixturePackage
		if pkg == "" {
			pkg = DefaultFixturePackage
		}
		if err := fixture.Write(&fix, table, fixture.Options{Package: pkg, Blob: blob}); err != nil {
			return nil, err
		}
	}

	if err := writeFileAtomic(cfg.Output, res.Data); err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{"path": cfg.Output, "bytes": len(res.Data)}).Info("wrote trie")

	if cfg.Fixture != "" {
		if err := writeFileAtomic(cfg.Fixture, fix.Bytes()); err != nil {
			return nil, err
		}
		logger.WithFields(logrus.Fields{"path": cfg.Fixture, "cases": len(table)}).Info("wrote fixture")
	}
	return res, nil
}

// relativeTo returns the slash-separated path of target as seen from the
// directory holding file, which is what //go:embed expects.
func relativeTo(file, target string) (string, error) {
	rel, err := filepath.Rel(filepath.Dir(file), target)
	if err != nil {
		return "", fmt.Errorf("fixture embed path: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
