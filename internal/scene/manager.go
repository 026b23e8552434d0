// Package scene owns the render-side view of the world: the map from
// sector index to live sector, fed by the generation controller and
// read by the renderer. Everything here runs on the main thread.
package scene

import (
	"log"

	"sandbox/internal/gen"
	"sandbox/internal/meshing"
	"sandbox/internal/profiling"
	"sandbox/internal/world"
)

// Geometry is a render-ready mesh handle. The concrete type lives with
// the graphics context; the scene only needs to draw and release it.
type Geometry interface {
	Draw()
	Release()
}

// Uploader converts CPU-side pre-geometry into render-ready geometry.
// This is the single step that needs the graphics context, which is
// why it stays behind an interface handed in by the main thread.
type Uploader interface {
	Upload(geo *meshing.PreGeometry) (Geometry, error)
}

// Sector is one live chunk of the world: its block data and, when it
// has any visible surface, the uploaded geometry.
type Sector struct {
	Data     *world.SectorData
	Geometry Geometry // nil when the sector meshed to nothing
}

// Manager bridges the generation controller's result channel and the
// world map. Not safe for concurrent use; FinalizeSectors and all
// iteration must happen on the same (main) thread.
type Manager struct {
	sectors  map[world.SectorIndex]*Sector
	results  <-chan gen.Result
	uploader Uploader
}

// NewManager creates a manager that drains results and finalizes
// geometry through up.
func NewManager(results <-chan gen.Result, up Uploader) *Manager {
	return &Manager{
		sectors:  make(map[world.SectorIndex]*Sector),
		results:  results,
		uploader: up,
	}
}

// FinalizeSectors drains every result currently buffered on the
// channel, uploads pending geometry and installs the sectors. It never
// blocks: with nothing pending it returns immediately, keeping the
// frame loop responsive. Returns the number of sectors installed.
func (m *Manager) FinalizeSectors() int {
	defer profiling.Track("scene.FinalizeSectors")()

	installed := 0
	for {
		select {
		case res, ok := <-m.results:
			if !ok {
				return installed
			}
			m.install(res)
			installed++
		default:
			return installed
		}
	}
}

func (m *Manager) install(res gen.Result) {
	var geo Geometry
	if res.Geo != nil {
		g, err := m.uploader.Upload(res.Geo)
		if err != nil {
			// The sector stays live with its block data; only the
			// render geometry is missing.
			log.Printf("sector %v: geometry upload failed: %v", res.Index, err)
		} else {
			geo = g
		}
	}

	if old := m.sectors[res.Index]; old != nil && old.Geometry != nil {
		old.Geometry.Release()
	}
	m.sectors[res.Index] = &Sector{Data: res.Data, Geometry: geo}
}

// Sector returns the live sector at idx, or nil when not yet
// generated. A loaded sector without geometry is a valid state
// distinct from "not yet generated".
func (m *Manager) Sector(idx world.SectorIndex) *Sector {
	return m.sectors[idx]
}

// Len returns the number of live sectors.
func (m *Manager) Len() int {
	return len(m.sectors)
}

// Each calls fn for every live sector. Safe to interleave with
// FinalizeSectors only from the same thread.
func (m *Manager) Each(fn func(world.SectorIndex, *Sector)) {
	for idx, sec := range m.sectors {
		fn(idx, sec)
	}
}

// Release drops every sector and frees its geometry. Called once at
// session teardown.
func (m *Manager) Release() {
	for idx, sec := range m.sectors {
		if sec.Geometry != nil {
			sec.Geometry.Release()
		}
		delete(m.sectors, idx)
	}
}
