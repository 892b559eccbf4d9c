package model

import (
	"errors"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Provider lazily loads the artifact at a fixed path and caches it for the
// life of the process.
type Provider struct {
	path   string
	cached atomic.Pointer[FittedModel]
	group  singleflight.Group
}

func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Path is the artifact location this provider reads.
func (p *Provider) Path() string {
	return p.path
}

// Load returns the cached model, reading it from disk on first use.
// Concurrent first callers share a single read. Failures are not cached.
func (p *Provider) Load() (*FittedModel, error) {
	if m := p.cached.Load(); m != nil {
		return m, nil
	}
	v, err, _ := p.group.Do("load", func() (interface{}, error) {
		if m := p.cached.Load(); m != nil {
			return m, nil
		}
		m, err := p.read()
		if err != nil {
			return nil, err
		}
		p.cached.Store(m)
		zap.L().Info("model artifact loaded",
			zap.String("path", p.path),
			zap.Float64("accuracy", m.Metrics.Accuracy),
			zap.Float64("roc_auc", m.Metrics.ROCAUC),
		)
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*FittedModel), nil
}

func (p *Provider) read() (*FittedModel, error) {
	f, err := os.Open(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, eris.Wrapf(ErrArtifactMissing, "no artifact at %s, run the train command first", p.path)
		}
		return nil, eris.Wrapf(ErrArtifactCorrupt, "open %s: %v", p.path, err)
	}
	defer f.Close()
	return Decode(f)
}

// IsAvailable reports whether the artifact file exists. It neither decodes
// nor populates the cache.
func (p *Provider) IsAvailable() bool {
	info, err := os.Stat(p.path)
	return err == nil && !info.IsDir()
}
