package domain

import (
	"testing"

	"strategos-server/internal/core/types/enums"
)

// Every attribute must report the type and classification from the
// design table, and Copy must preserve both.
func TestAttributes_TypeAndClassification(t *testing.T) {
	tests := []struct {
		attr   AttributeValue
		want   AttributeType
		shared bool
	}{
		{&OwnerAttribute{}, AttrOwner, true},
		{&MaxHitpointsAttribute{}, AttrMaxHitpoints, true},
		{&CurrentHitpointsAttribute{}, AttrCurrentHitpoints, false},
		{&ArmorAttribute{}, AttrArmor, true},
		{&AttackAttribute{}, AttrAttack, false},
		{&HealAttribute{}, AttrHeal, true},
		{&SpeedAttribute{}, AttrSpeed, true},
		{&DirectionAttribute{}, AttrDirection, false},
		{&ProjectileAttribute{}, AttrProjectile, false},
		{&BuildingAttribute{}, AttrBuilding, false},
		{&DropsiteAttribute{}, AttrDropsite, true},
		{&ResourceCarrierAttribute{}, AttrResourceCarrier, false},
		{&WorkerAttribute{}, AttrWorker, true},
		{&MultitypeAttribute{}, AttrMultitype, true},
		{&GarrisonAttribute{}, AttrGarrison, false},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := tt.attr.Type(); got != tt.want {
				t.Errorf("Type() = %v, want %v", got, tt.want)
			}
			if got := tt.attr.Shared(); got != tt.shared {
				t.Errorf("Shared() = %v, want %v", got, tt.shared)
			}

			clone := tt.attr.Copy()
			if clone.Type() != tt.want {
				t.Errorf("clone Type() = %v, want %v", clone.Type(), tt.want)
			}
			if clone.Shared() != tt.shared {
				t.Errorf("clone Shared() = %v, want %v", clone.Shared(), tt.shared)
			}
		})
	}
}

func TestArmorAttribute_CopyIsDeep(t *testing.T) {
	original := &ArmorAttribute{Armor: map[int]int{1: 3, 2: 1}}

	clone := original.Copy().(*ArmorAttribute)
	clone.Armor[1] = 100

	if original.Armor[1] != 3 {
		t.Errorf("mutating the clone changed the original: %d", original.Armor[1])
	}
}

func TestAttackAttribute_CopyIsDeep(t *testing.T) {
	archer := &UnitType{ID: 1, Name: "Archer"}
	original := &AttackAttribute{
		ProjectileType: archer,
		Range:          4,
		Damage:         map[int]int{4: 6},
		Stance:         enums.StanceAggressive,
	}

	clone := original.Copy().(*AttackAttribute)
	clone.Damage[4] = 50
	clone.Stance = enums.StanceDoNothing

	if original.Damage[4] != 6 {
		t.Errorf("damage map aliased: %d", original.Damage[4])
	}
	if original.Stance != enums.StanceAggressive {
		t.Errorf("stance aliased: %v", original.Stance)
	}
	// Type references are copied as references, not duplicated
	if clone.ProjectileType != archer {
		t.Error("projectile type reference should be shared, not cloned")
	}
}

func TestDropsiteAttribute_CopyIsDeep(t *testing.T) {
	original := &DropsiteAttribute{
		Resources: []enums.GameResource{enums.ResourceWood, enums.ResourceFood},
	}

	clone := original.Copy().(*DropsiteAttribute)
	clone.Resources[0] = enums.ResourceGold

	if original.Resources[0] != enums.ResourceWood {
		t.Errorf("resource slice aliased: %v", original.Resources[0])
	}
}

func TestDropsiteAttribute_AcceptingResource(t *testing.T) {
	drop := &DropsiteAttribute{
		Resources: []enums.GameResource{enums.ResourceWood, enums.ResourceGold},
	}

	if !drop.AcceptingResource(enums.ResourceWood) {
		t.Error("WOOD should be accepted")
	}
	if drop.AcceptingResource(enums.ResourceFood) {
		t.Error("FOOD should not be accepted")
	}

	empty := &DropsiteAttribute{}
	if empty.AcceptingResource(enums.ResourceWood) {
		t.Error("empty dropsite should accept nothing")
	}
}

func TestGarrisonAttribute_CopyIsDeep(t *testing.T) {
	c := NewUnitContainer(0)
	militia := &UnitType{ID: 2, Name: "Militia", Defaults: NewAttributeSet()}
	u := c.NewUnit(militia, nil)

	original := &GarrisonAttribute{Content: []UnitReference{c.Reference(u.ID)}}

	clone := original.Copy().(*GarrisonAttribute)
	clone.Content = append(clone.Content[:0], UnitReference{})

	if len(original.Content) != 1 || !original.Content[0].IsValid() {
		t.Error("garrison slice aliased with the clone")
	}
}

func TestMultitypeAttribute_SwitchType(t *testing.T) {
	villager := &UnitType{ID: 10, Name: "VillagerMale", Defaults: NewAttributeSet()}
	militia := &UnitType{ID: 11, Name: "Militia", Defaults: NewAttributeSet()}
	scoutless := &MultitypeAttribute{
		Types: map[enums.UnitClass]*UnitType{
			enums.ClassWorker:  villager,
			enums.ClassSoldier: militia,
		},
	}

	c := NewUnitContainer(0)
	base := &UnitType{ID: 12, Name: "Base", Defaults: NewAttributeSet()}
	unit := c.NewUnit(base, nil)

	scoutless.SwitchType(enums.ClassWorker, unit)
	if unit.UnitType != villager {
		t.Errorf("active type = %v, want VillagerMale", unit.UnitType.Name)
	}

	// A class outside the map is a documented no-op, not an error
	scoutless.SwitchType(enums.ClassScout, unit)
	if unit.UnitType != villager {
		t.Errorf("missing class should leave the type unchanged, got %v", unit.UnitType.Name)
	}

	scoutless.SwitchType(enums.ClassSoldier, unit)
	if unit.UnitType != militia {
		t.Errorf("active type = %v, want Militia", unit.UnitType.Name)
	}
}

// Switching a type refreshes the template-level stats but keeps the
// per-instance state of the unit.
func TestUnit_ChangeTypeKeepsUnsharedState(t *testing.T) {
	slowType := &UnitType{ID: 1, Name: "Loaded", Defaults: NewAttributeSet()}
	slowType.Defaults.Add(&SpeedAttribute{Speed: 0.8})
	slowType.Defaults.Add(&CurrentHitpointsAttribute{HP: 25})

	fastType := &UnitType{ID: 2, Name: "Unloaded", Defaults: NewAttributeSet()}
	fastType.Defaults.Add(&SpeedAttribute{Speed: 1.6})
	fastType.Defaults.Add(&CurrentHitpointsAttribute{HP: 25})

	c := NewUnitContainer(0)
	u := c.NewUnit(slowType, nil)

	// The unit takes damage, then switches form
	GetAttribute[CurrentHitpointsAttribute](u.Attributes, AttrCurrentHitpoints).HP = 7
	u.ChangeType(fastType)

	if got := GetAttribute[SpeedAttribute](u.Attributes, AttrSpeed).Speed; got != 1.6 {
		t.Errorf("speed after type switch = %v, want 1.6", got)
	}
	if got := GetAttribute[CurrentHitpointsAttribute](u.Attributes, AttrCurrentHitpoints).HP; got != 7 {
		t.Errorf("current hp must survive the type switch, got %d", got)
	}
}
