package scene

import (
	"errors"
	"testing"

	"sandbox/internal/gen"
	"sandbox/internal/meshing"
	"sandbox/internal/world"
)

type fakeGeometry struct {
	released bool
}

func (g *fakeGeometry) Draw()    {}
func (g *fakeGeometry) Release() { g.released = true }

type fakeUploader struct {
	uploads int
	fail    bool
	last    *fakeGeometry
}

func (u *fakeUploader) Upload(geo *meshing.PreGeometry) (Geometry, error) {
	u.uploads++
	if u.fail {
		return nil, errors.New("no graphics context")
	}
	u.last = &fakeGeometry{}
	return u.last, nil
}

func someGeo() *meshing.PreGeometry {
	return &meshing.PreGeometry{
		Vertices: make([]meshing.Vertex, 4),
		Indices:  []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestFinalizeSectorsEmptyChannel(t *testing.T) {
	results := make(chan gen.Result, 4)
	m := NewManager(results, &fakeUploader{})

	// Must return immediately with nothing pending.
	if n := m.FinalizeSectors(); n != 0 {
		t.Fatalf("empty channel: installed %d, want 0", n)
	}
	if m.Len() != 0 {
		t.Fatalf("empty channel: %d live sectors, want 0", m.Len())
	}
}

func TestFinalizeSectorsInstalls(t *testing.T) {
	results := make(chan gen.Result, 4)
	up := &fakeUploader{}
	m := NewManager(results, up)

	withGeo := world.SectorIndex{X: 1, Y: -1, Z: 0}
	noGeo := world.SectorIndex{X: 1, Y: 0, Z: 0}
	results <- gen.Result{Index: withGeo, Data: world.NewSectorData(), Geo: someGeo()}
	results <- gen.Result{Index: noGeo, Data: world.NewSectorData(), Geo: nil}

	if n := m.FinalizeSectors(); n != 2 {
		t.Fatalf("installed %d, want 2", n)
	}
	if up.uploads != 1 {
		t.Fatalf("uploader called %d times, want 1", up.uploads)
	}

	sec := m.Sector(withGeo)
	if sec == nil || sec.Geometry == nil {
		t.Fatal("sector with pre-geometry has no uploaded geometry")
	}
	sec = m.Sector(noGeo)
	if sec == nil {
		t.Fatal("sector without pre-geometry was not installed")
	}
	if sec.Geometry != nil {
		t.Fatal("sector without pre-geometry has geometry")
	}
	if m.Sector(world.SectorIndex{X: 9, Y: 9, Z: 9}) != nil {
		t.Fatal("unknown index returned a sector")
	}
}

func TestReplacementReleasesOldGeometry(t *testing.T) {
	results := make(chan gen.Result, 4)
	up := &fakeUploader{}
	m := NewManager(results, up)

	idx := world.SectorIndex{X: 0, Y: -1, Z: 0}
	results <- gen.Result{Index: idx, Data: world.NewSectorData(), Geo: someGeo()}
	m.FinalizeSectors()
	old := up.last

	results <- gen.Result{Index: idx, Data: world.NewSectorData(), Geo: someGeo()}
	m.FinalizeSectors()

	if !old.released {
		t.Fatal("replaced sector's geometry was not released")
	}
	if m.Len() != 1 {
		t.Fatalf("%d live sectors after replacement, want 1", m.Len())
	}
}

func TestUploadFailureKeepsSectorLive(t *testing.T) {
	results := make(chan gen.Result, 4)
	m := NewManager(results, &fakeUploader{fail: true})

	idx := world.SectorIndex{X: 0, Y: -1, Z: 0}
	results <- gen.Result{Index: idx, Data: world.NewSectorData(), Geo: someGeo()}
	m.FinalizeSectors()

	sec := m.Sector(idx)
	if sec == nil {
		t.Fatal("sector dropped after upload failure")
	}
	if sec.Geometry != nil {
		t.Fatal("failed upload produced geometry")
	}
}

func TestEachVisitsEverySector(t *testing.T) {
	results := make(chan gen.Result, 8)
	m := NewManager(results, &fakeUploader{})

	want := map[world.SectorIndex]bool{}
	for x := 0; x < 3; x++ {
		idx := world.SectorIndex{X: x, Y: -1, Z: 0}
		want[idx] = true
		results <- gen.Result{Index: idx, Data: world.NewSectorData()}
	}
	m.FinalizeSectors()

	got := map[world.SectorIndex]bool{}
	m.Each(func(idx world.SectorIndex, sec *Sector) {
		if sec == nil {
			t.Fatalf("nil sector at %v", idx)
		}
		got[idx] = true
	})
	if len(got) != len(want) {
		t.Fatalf("iterated %d sectors, want %d", len(got), len(want))
	}
}

func TestReleaseFreesEverything(t *testing.T) {
	results := make(chan gen.Result, 4)
	up := &fakeUploader{}
	m := NewManager(results, up)

	results <- gen.Result{Index: world.SectorIndex{X: 0, Y: -1, Z: 0}, Data: world.NewSectorData(), Geo: someGeo()}
	m.FinalizeSectors()
	geo := up.last

	m.Release()
	if m.Len() != 0 {
		t.Fatalf("%d live sectors after release, want 0", m.Len())
	}
	if !geo.released {
		t.Fatal("geometry not released")
	}
}
