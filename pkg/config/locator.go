package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/my-go-utils/nogging/pkg/diag"
	"github.com/my-go-utils/nogging/pkg/errors"
)

// Defaults for the config file search.
const (
	DefaultFilename = "nogging.yaml"
	DefaultKey      = "nogging"
)

// Locator finds the nearest config file walking parent directories from a
// starting path and extracts the logger document under its top-level key.
type Locator struct {
	// Filename is the config file name looked for in each directory.
	Filename string
	// Key is the top-level mapping key holding the logger document.
	Key string
	// Diag receives discovery diagnostics.
	Diag *diag.Logger
}

// NewLocator creates a locator with the default filename, key and
// diagnostic channel.
func NewLocator() *Locator {
	return &Locator{
		Filename: DefaultFilename,
		Key:      DefaultKey,
		Diag:     diag.New("nogging"),
	}
}

// Resolve walks upward from startPath until the config file is found or
// the filesystem root is reached, then parses the file and returns the
// document under the top-level key. A missing file, a malformed document
// or an absent key all degrade to a nil document after a diagnostic line;
// nothing is raised to the caller.
func (l *Locator) Resolve(startPath string) Document {
	dir, err := filepath.Abs(startPath)
	if err != nil {
		l.Diag.Errorf("cannot resolve start path %q: %v", startPath, err)
		return nil
	}

	found := false
	for filepath.Dir(dir) != dir {
		if _, err := os.Stat(filepath.Join(dir, l.Filename)); err == nil {
			found = true
			l.Diag.Infof("using config file %q", filepath.ToSlash(filepath.Join(dir, l.Filename)))
			break
		}
		dir = filepath.Dir(dir)
	}
	if !found {
		l.Diag.Warnf("%q not found!", l.Filename)
	}

	// One final open attempt happens at the root boundary even when the
	// walk found nothing; a missing file there is swallowed silently.
	doc, err := l.load(filepath.Join(dir, l.Filename))
	if err != nil {
		switch {
		case errors.IsNotFound(err):
		case errors.IsKeyMissing(err):
			l.Diag.Errorf("format error! Key %q not found.", l.Key)
		default:
			l.Diag.Errorf("format error! %v", err)
		}
		return nil
	}
	return doc
}

func (l *Locator) load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.CodeNotFound, "config file not found")
		}
		return nil, errors.Wrap(err, errors.CodeParse, "cannot read config file")
	}

	var root map[string]yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, errors.CodeParse, "invalid config")
	}

	node, ok := root[l.Key]
	if !ok {
		return nil, errors.ErrKeyMissing
	}

	var doc Document
	if err := node.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeParse, "invalid config")
	}
	return doc, nil
}
