package data

import (
	"math/rand"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/vmath"
)

// LoadedModel is a model whose bounds are known and whose placement has been
// resolved. Size is the scaled bounding-box extent.
type LoadedModel struct {
	Path     string
	Position vmath.Vec3
	Size     vmath.Vec3
}

// Loader reads model files off the game goroutine. Each finished model is
// handed to the deliver callback, which must be safe to call from any
// goroutine. Failures are logged and dropped.
type Loader struct {
	root string
	rng  *rand.Rand
	log  *zap.Logger
	wg   sync.WaitGroup
}

func NewLoader(root string, rng *rand.Rand, log *zap.Logger) *Loader {
	return &Loader{root: root, rng: rng, log: log}
}

// LoadAll starts one load per entry and returns immediately. Random
// placements are drawn here, in entry order, so rng stays single-threaded.
func (l *Loader) LoadAll(entries []ModelEntry, deliver func(LoadedModel)) {
	for _, e := range entries {
		pos := e.Position.Resolve(l.rng)
		l.wg.Add(1)
		go func(e ModelEntry, pos vmath.Vec3) {
			defer l.wg.Done()
			m, err := l.load(e, pos)
			if err != nil {
				l.log.Error("model load failed", zap.String("path", e.Path), zap.Error(err))
				return
			}
			l.log.Debug("model loaded",
				zap.String("path", m.Path),
				zap.Float64("x", m.Position.X),
				zap.Float64("z", m.Position.Z))
			deliver(m)
		}(e, pos)
	}
}

// Wait blocks until every started load has finished.
func (l *Loader) Wait() { l.wg.Wait() }

func (l *Loader) load(e ModelEntry, pos vmath.Vec3) (LoadedModel, error) {
	path := e.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}
	lo, hi, err := ModelBounds(path)
	if err != nil {
		return LoadedModel{}, err
	}
	return LoadedModel{
		Path:     e.Path,
		Position: pos,
		Size:     hi.Sub(lo).Scale(e.scale()),
	}, nil
}
