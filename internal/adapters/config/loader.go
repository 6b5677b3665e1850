// Package config validates swap configuration documents and loads them from disk.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML and JSON files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a Loader that reports progress through log.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads every file, validates each document and merges them in argument order.
// A file may hold several YAML documents; they are merged in the order they appear.
func (l *Loader) Load(paths []string) (*domain.Config, error) {
	if len(paths) == 0 {
		return nil, zerr.Wrap(domain.ErrNoConfigFiles, "failed to load configuration")
	}

	perFile := make([][]*document, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			docs, err := readFile(path)
			if err != nil {
				return zerr.With(err, "source", path)
			}
			perFile[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []*document
	for _, d := range perFile {
		docs = append(docs, d...)
	}

	cfg, err := finalize(docs)
	if err != nil {
		return nil, err
	}

	if l.logger != nil {
		l.logger.Info("loaded configuration from " + strings.Join(paths, ", "))
	}
	return cfg, nil
}

func readFile(path string) ([]*document, error) {
	data, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []*document
	for {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, zerr.Wrap(err, "failed to parse config file")
		}
		doc, err := decodeDocument(&root)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
