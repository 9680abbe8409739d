package storage

import (
	"path/filepath"
	"testing"

	"strategos-server/pkg/gamedata"
)

func openStore(t *testing.T) *TypeStore {
	t.Helper()
	s, err := NewTypeStore(filepath.Join(t.TempDir(), "types.db"))
	if err != nil {
		t.Fatalf("NewTypeStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTypeStore_PutGet(t *testing.T) {
	s := openStore(t)

	in := gamedata.UnitTypeTemplate{
		Name:  "Militia",
		Class: "SOLDIER",
		MaxHP: 40,
		Cost:  map[string]float64{"FOOD": 60, "GOLD": 20},
		Armor: map[int]int{gamedata.DamageMelee: 1},
	}
	if err := s.Put(in); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	out, err := s.Get("Militia")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if out.MaxHP != 40 || out.Class != "SOLDIER" {
		t.Errorf("got %+v, want the stored template back", out)
	}
	if out.Cost["GOLD"] != 20 {
		t.Errorf("gold cost = %v, want 20", out.Cost["GOLD"])
	}
	if out.Armor[gamedata.DamageMelee] != 1 {
		t.Error("armor map did not survive the round trip")
	}
}

func TestTypeStore_GetMissing(t *testing.T) {
	s := openStore(t)

	if _, err := s.Get("Dragon"); err == nil {
		t.Error("Get should fail for an absent template")
	}
}

func TestTypeStore_RejectsUnnamedTemplate(t *testing.T) {
	s := openStore(t)

	if err := s.Put(gamedata.UnitTypeTemplate{Class: "SOLDIER"}); err == nil {
		t.Error("Put should reject a template without a name")
	}
}

func TestTypeStore_ListAndDelete(t *testing.T) {
	s := openStore(t)

	if n, err := s.Seed(gamedata.DefaultTemplates); err != nil {
		t.Fatalf("Seed failed: %v", err)
	} else if n != len(gamedata.DefaultTemplates) {
		t.Errorf("seeded %d templates, want %d", n, len(gamedata.DefaultTemplates))
	}

	// Повторный Seed не перезаписывает
	if n, err := s.Seed(gamedata.DefaultTemplates); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	} else if n != 0 {
		t.Errorf("second seed wrote %d templates, want 0", n)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != len(gamedata.DefaultTemplates) {
		t.Fatalf("List returned %d templates, want %d", len(all), len(gamedata.DefaultTemplates))
	}

	if err := s.Delete("Tree"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get("Tree"); err == nil {
		t.Error("deleted template should not be readable")
	}
}

// Сохраненного набора должно хватать для загрузки реестра.
func TestTypeStore_RoundTripIntoRegistry(t *testing.T) {
	s := openStore(t)

	if _, err := s.Seed(gamedata.DefaultTemplates); err != nil {
		t.Fatal(err)
	}
	stored, err := s.List()
	if err != nil {
		t.Fatal(err)
	}

	r := gamedata.NewRegistry()
	if err := r.Load(stored); err != nil {
		t.Fatalf("registry rejected stored templates: %v", err)
	}
	if _, ok := r.Get("Archer"); !ok {
		t.Error("Archer should be loadable from the stored set")
	}
}
