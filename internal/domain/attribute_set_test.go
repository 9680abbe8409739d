package domain

import "testing"

func TestAttributeSet_AddHasGet(t *testing.T) {
	set := NewAttributeSet()

	if set.Has(AttrSpeed) {
		t.Error("empty set should not contain SPEED")
	}

	set.Add(&SpeedAttribute{Speed: 1.5})

	if !set.Has(AttrSpeed) {
		t.Error("set should contain SPEED after Add")
	}

	v, ok := set.Get(AttrSpeed)
	if !ok {
		t.Fatal("Get returned no value for present attribute")
	}
	if got := v.(*SpeedAttribute).Speed; got != 1.5 {
		t.Errorf("stored speed = %v, want 1.5", got)
	}
}

func TestAttributeSet_AddReplacesSameType(t *testing.T) {
	set := NewAttributeSet()

	set.Add(&CurrentHitpointsAttribute{HP: 100})
	set.Add(&CurrentHitpointsAttribute{HP: 40})

	if set.Len() != 1 {
		t.Errorf("set should keep one entry per type, got %d", set.Len())
	}

	hp := GetAttribute[CurrentHitpointsAttribute](set, AttrCurrentHitpoints)
	if hp.HP != 40 {
		t.Errorf("Get should return the replacing value: got %d, want 40", hp.HP)
	}
}

func TestAttributeSet_Remove(t *testing.T) {
	set := NewAttributeSet()
	set.Add(&SpeedAttribute{Speed: 2})

	// Removing an absent type is not an error and changes nothing
	if set.Remove(AttrArmor) {
		t.Error("Remove of absent type should return false")
	}
	if set.Len() != 1 {
		t.Errorf("Remove of absent type should not change the set, len = %d", set.Len())
	}

	if !set.Remove(AttrSpeed) {
		t.Error("Remove of present type should return true")
	}
	if set.Has(AttrSpeed) {
		t.Error("SPEED should be gone after Remove")
	}

	// Idempotent
	if set.Remove(AttrSpeed) {
		t.Error("second Remove should return false")
	}
}

func TestAttributeSet_ZeroValueUsable(t *testing.T) {
	var set AttributeSet

	if set.Has(AttrOwner) {
		t.Error("zero-value set should be empty")
	}
	if set.Remove(AttrOwner) {
		t.Error("Remove on zero-value set should return false")
	}

	set.Add(&SpeedAttribute{Speed: 1})
	if !set.Has(AttrSpeed) {
		t.Error("Add on zero-value set should work")
	}
}

func TestAttributeSet_AddCopiesFilter(t *testing.T) {
	src := NewAttributeSet()
	src.Add(&SpeedAttribute{Speed: 3})          // shared
	src.Add(&CurrentHitpointsAttribute{HP: 50}) // unshared

	sharedOnly := NewAttributeSet()
	sharedOnly.AddCopiesFiltered(src, true, false)
	if !sharedOnly.Has(AttrSpeed) || sharedOnly.Has(AttrCurrentHitpoints) {
		t.Error("shared-only copy took the wrong entries")
	}

	unsharedOnly := NewAttributeSet()
	unsharedOnly.AddCopiesFiltered(src, false, true)
	if unsharedOnly.Has(AttrSpeed) || !unsharedOnly.Has(AttrCurrentHitpoints) {
		t.Error("unshared-only copy took the wrong entries")
	}

	nothing := NewAttributeSet()
	nothing.AddCopiesFiltered(src, false, false)
	if nothing.Len() != 0 {
		t.Errorf("copy with both filters off should be a no-op, len = %d", nothing.Len())
	}
}

func TestAttributeSet_AddCopiesDeepCopy(t *testing.T) {
	src := NewAttributeSet()
	src.Add(&ResourceCarrierAttribute{Amount: 10})
	src.Add(&ArmorAttribute{Armor: map[int]int{1: 2}})

	dst := NewAttributeSet()
	dst.AddCopies(src)

	// Mutating the source must not leak into the copy
	GetAttribute[ResourceCarrierAttribute](src, AttrResourceCarrier).Amount = 99
	GetAttribute[ArmorAttribute](src, AttrArmor).Armor[1] = 99

	if got := GetAttribute[ResourceCarrierAttribute](dst, AttrResourceCarrier).Amount; got != 10 {
		t.Errorf("carrier amount aliased with source: got %v, want 10", got)
	}
	if got := GetAttribute[ArmorAttribute](dst, AttrArmor).Armor[1]; got != 2 {
		t.Errorf("armor map aliased with source: got %v, want 2", got)
	}
}

// Spawning an entity from a template must clone, not alias:
// damaging the spawned unit leaves the template untouched.
func TestAttributeSet_TemplateSpawnScenario(t *testing.T) {
	template := NewAttributeSet()
	template.Add(&MaxHitpointsAttribute{HP: 100})
	template.Add(&CurrentHitpointsAttribute{HP: 100})

	entity := NewAttributeSet()
	entity.AddCopiesFiltered(template, true, true)

	if !entity.Has(AttrMaxHitpoints) || !entity.Has(AttrCurrentHitpoints) {
		t.Fatal("spawned set is missing hitpoint attributes")
	}
	if got := GetAttribute[MaxHitpointsAttribute](entity, AttrMaxHitpoints).HP; got != 100 {
		t.Errorf("max hp = %d, want 100", got)
	}
	if got := GetAttribute[CurrentHitpointsAttribute](entity, AttrCurrentHitpoints).HP; got != 100 {
		t.Errorf("current hp = %d, want 100", got)
	}

	GetAttribute[CurrentHitpointsAttribute](entity, AttrCurrentHitpoints).HP = 40

	if got := GetAttribute[CurrentHitpointsAttribute](template, AttrCurrentHitpoints).HP; got != 100 {
		t.Errorf("template hp changed to %d after damaging the spawned unit", got)
	}
}

func TestAttributeSet_AddCopiesFromItself(t *testing.T) {
	set := NewAttributeSet()
	set.Add(&SpeedAttribute{Speed: 4})
	set.Add(&CurrentHitpointsAttribute{HP: 10})

	set.AddCopies(set)

	if set.Len() != 2 {
		t.Errorf("self-copy should keep one entry per type, len = %d", set.Len())
	}
}

func TestGetAttribute_PanicsOnMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GetAttribute on a missing type should panic")
		}
	}()

	set := NewAttributeSet()
	GetAttribute[SpeedAttribute](set, AttrSpeed)
}

func TestGetAttribute_PanicsOnVariantMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GetAttribute with a mismatched variant should panic")
		}
	}()

	set := NewAttributeSet()
	set.Add(&SpeedAttribute{Speed: 1})

	// SPEED is present, but stored as SpeedAttribute
	GetAttribute[ArmorAttribute](set, AttrSpeed)
}

func TestAttributeSet_Types(t *testing.T) {
	set := NewAttributeSet()
	set.Add(&GarrisonAttribute{})
	set.Add(&OwnerAttribute{})
	set.Add(&SpeedAttribute{Speed: 1})

	got := set.Types()
	want := []AttributeType{AttrOwner, AttrSpeed, AttrGarrison}

	if len(got) != len(want) {
		t.Fatalf("Types() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Types()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
