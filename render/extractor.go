package render

import (
	"github.com/soypat/isovis/volume"
	"go.uber.org/zap"
)

// extractKey identifies an extraction result.
type extractKey struct {
	id, version uint64
	iso         float64
}

// Extractor caches the last mesh extracted so repeated requests for an
// unchanged volume and iso value are served without recomputation.
// Volumes that do not implement volume.Versioned are never cached.
// An Extractor is not safe for concurrent use.
type Extractor struct {
	log    *zap.Logger
	key    extractKey
	mesh   *Mesh
	cached bool
}

// NewExtractor returns an Extractor logging to log. A nil log discards output.
func NewExtractor(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{log: log.Named("extractor")}
}

// Extract returns the isosurface of v at iso. The returned mesh is shared
// with the cache and must not be modified.
func (e *Extractor) Extract(v volume.Volume, iso float64) *Mesh {
	vv, ok := v.(volume.Versioned)
	if !ok {
		e.log.Debug("extracting uncached volume", zap.Float64("iso", iso))
		return e.extract(v, iso)
	}
	id, version := vv.Identity()
	key := extractKey{id: id, version: version, iso: iso}
	if e.cached && e.key == key {
		e.log.Debug("cache hit",
			zap.Uint64("volume", id),
			zap.Uint64("version", version),
			zap.Float64("iso", iso),
		)
		return e.mesh
	}
	e.log.Debug("cache miss",
		zap.Uint64("volume", id),
		zap.Uint64("version", version),
		zap.Float64("iso", iso),
	)
	mesh := e.extract(v, iso)
	e.key, e.mesh, e.cached = key, mesh, true
	return mesh
}

func (e *Extractor) extract(v volume.Volume, iso float64) *Mesh {
	mesh := MarchingTetrahedra(v, iso)
	e.log.Info("extracted isosurface",
		zap.Float64("iso", iso),
		zap.Ints("dims", dimsSlice(v.Dims())),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return mesh
}

// Invalidate drops the cached mesh.
func (e *Extractor) Invalidate() {
	e.key, e.mesh, e.cached = extractKey{}, nil, false
}

func dimsSlice(d [3]int) []int { return d[:] }
