package domain

import "strategos-server/internal/core/types/enums"

// --- РЕАЛИЗАЦИИ АТРИБУТОВ ---
//
// Каждый атрибут — обычная структура с указательным receiver.
// Copy() дублирует владеемые карты и срезы; ссылки на UnitType,
// Player и слабые UnitReference копируются как ссылки.

// OwnerAttribute - принадлежность юнита игроку (фракции).
// Сам объект Player живёт вне атрибута; мы его не создаём и не удаляем.
type OwnerAttribute struct {
	Player *Player
}

func (a *OwnerAttribute) Type() AttributeType { return AttrOwner }
func (a *OwnerAttribute) Shared() bool        { return true }

func (a *OwnerAttribute) Copy() AttributeValue {
	clone := *a
	return &clone
}

// MaxHitpointsAttribute - максимум здоровья и высота полоски HP над юнитом.
type MaxHitpointsAttribute struct {
	HP        int
	BarHeight float64
}

func (a *MaxHitpointsAttribute) Type() AttributeType { return AttrMaxHitpoints }
func (a *MaxHitpointsAttribute) Shared() bool        { return true }

func (a *MaxHitpointsAttribute) Copy() AttributeValue {
	clone := *a
	return &clone
}

// CurrentHitpointsAttribute - текущее здоровье юнита.
type CurrentHitpointsAttribute struct {
	HP int
}

func (a *CurrentHitpointsAttribute) Type() AttributeType { return AttrCurrentHitpoints }
func (a *CurrentHitpointsAttribute) Shared() bool        { return false }

func (a *CurrentHitpointsAttribute) Copy() AttributeValue {
	clone := *a
	return &clone
}

// ArmorAttribute - снижение урона по классам урона.
// Ключ карты — ID класса урона (рубящий, колющий, осадный...).
type ArmorAttribute struct {
	Armor map[int]int
}

func (a *ArmorAttribute) Type() AttributeType { return AttrArmor }
func (a *ArmorAttribute) Shared() bool        { return true }

func (a *ArmorAttribute) Copy() AttributeValue {
	clone := &ArmorAttribute{
		Armor: make(map[int]int, len(a.Armor)),
	}
	for class, amount := range a.Armor {
		clone.Armor[class] = amount
	}
	return clone
}

// AttackAttribute - атакующие характеристики.
// Damage устроен как таблица брони: класс урона -> величина.
type AttackAttribute struct {
	// ProjectileType - тип снаряда, если атака дистанционная. nil для ближнего боя.
	ProjectileType *UnitType
	Range          float64
	InitHeight     float64
	Damage         map[int]int
	Stance         enums.AttackStance
}

func (a *AttackAttribute) Type() AttributeType { return AttrAttack }
func (a *AttackAttribute) Shared() bool        { return false }

func (a *AttackAttribute) Copy() AttributeValue {
	clone := &AttackAttribute{
		ProjectileType: a.ProjectileType,
		Range:          a.Range,
		InitHeight:     a.InitHeight,
		Damage:         make(map[int]int, len(a.Damage)),
		Stance:         a.Stance,
	}
	for class, amount := range a.Damage {
		clone.Damage[class] = amount
	}
	return clone
}

// HealAttribute - способность лечить.
type HealAttribute struct {
	Range float64

	// Life - сколько здоровья восстанавливается за цикл.
	Life int

	// Rate - длительность одного цикла лечения, в секундах.
	Rate float64
}

func (a *HealAttribute) Type() AttributeType { return AttrHeal }
func (a *HealAttribute) Shared() bool        { return true }

func (a *HealAttribute) Copy() AttributeValue {
	clone := *a
	return &clone
}

// SpeedAttribute - базовая скорость перемещения.
type SpeedAttribute struct {
	Speed float64
}

func (a *SpeedAttribute) Type() AttributeType { return AttrSpeed }
func (a *SpeedAttribute) Shared() bool        { return true }

func (a *SpeedAttribute) Copy() AttributeValue {
	clone := *a
	return &clone
}

// DirectionAttribute - текущая дельта перемещения юнита.
type DirectionAttribute struct {
	Dir Phys3
}

func (a *DirectionAttribute) Type() AttributeType { return AttrDirection }
func (a *DirectionAttribute) Shared() bool        { return false }

func (a *DirectionAttribute) Copy() AttributeValue {
	clone := *a
	return &clone
}

// ProjectileAttribute - состояние летящего снаряда.
type ProjectileAttribute struct {
	// Arc - угол дуги полёта, в радианах.
	Arc float64

	// Launcher - слабая ссылка на юнит, выпустивший снаряд.
	// Юнит мог уже погибнуть; ссылка это переживает.
	Launcher UnitReference

	Launched bool
}

func (a *ProjectileAttribute) Type() AttributeType { return AttrProjectile }
func (a *ProjectileAttribute) Shared() bool        { return false }

func (a *ProjectileAttribute) Copy() AttributeValue {
	clone := *a
	return &clone
}

// BuildingAttribute - состояние строящегося / построенного здания.
type BuildingAttribute struct {
	// Completed - доля готовности, от 0 до 1.
	Completed float64

	// FoundationTerrain - ID террейна, на котором заложен фундамент.
	FoundationTerrain int

	// CompletionState - состояние объекта после завершения стройки.
	CompletionState ObjectState

	// ProducerType - тип юнита, который это здание производит.
	ProducerType *UnitType

	// GatherPoint - точка, в которую идёт свежепроизведённый юнит.
	GatherPoint Phys3
}

func (a *BuildingAttribute) Type() AttributeType { return AttrBuilding }
func (a *BuildingAttribute) Shared() bool        { return false }

func (a *BuildingAttribute) Copy() AttributeValue {
	clone := *a
	return &clone
}

// DropsiteAttribute - какие ресурсы здесь можно сдать.
type DropsiteAttribute struct {
	Resources []enums.GameResource
}

func (a *DropsiteAttribute) Type() AttributeType { return AttrDropsite }
func (a *DropsiteAttribute) Shared() bool        { return true }

func (a *DropsiteAttribute) Copy() AttributeValue {
	clone := &DropsiteAttribute{
		Resources: make([]enums.GameResource, len(a.Resources)),
	}
	copy(clone.Resources, a.Resources)
	return clone
}

// AcceptingResource проверяет, принимается ли ресурс res.
func (a *DropsiteAttribute) AcceptingResource(res enums.GameResource) bool {
	for _, r := range a.Resources {
		if r == res {
			return true
		}
	}
	return false
}

// ResourceCarrierAttribute - запас ресурса, который несёт юнит
// (рабочий) или содержит объект (дерево, залежь, туша).
type ResourceCarrierAttribute struct {
	ResourceType enums.GameResource

	// Amount - текущее количество. Не зажимается: транзиентно может
	// быть и отрицательным, это забота вызывающей логики.
	Amount float64
}

func (a *ResourceCarrierAttribute) Type() AttributeType { return AttrResourceCarrier }
func (a *ResourceCarrierAttribute) Shared() bool        { return false }

func (a *ResourceCarrierAttribute) Copy() AttributeValue {
	clone := *a
	return &clone
}

// WorkerAttribute - ёмкость и скорости добычи рабочего.
type WorkerAttribute struct {
	// Capacity - сколько ресурсов рабочий может нести.
	Capacity float64

	// GatherRate - скорость добычи каждого ресурса.
	// ResourceBundle здесь хранит не количества, а единицы в секунду.
	GatherRate ResourceBundle
}

func (a *WorkerAttribute) Type() AttributeType { return AttrWorker }
func (a *WorkerAttribute) Shared() bool        { return true }

func (a *WorkerAttribute) Copy() AttributeValue {
	clone := *a
	return &clone
}

// MultitypeAttribute - набор конкретных типов юнита по классам.
// Используется для юнитов с несколькими обличьями
// (рабочий-лесоруб / рабочий-фермер, требушет собранный / в походе).
type MultitypeAttribute struct {
	Types map[enums.UnitClass]*UnitType
}

func (a *MultitypeAttribute) Type() AttributeType { return AttrMultitype }
func (a *MultitypeAttribute) Shared() bool        { return true }

func (a *MultitypeAttribute) Copy() AttributeValue {
	clone := &MultitypeAttribute{
		Types: make(map[enums.UnitClass]*UnitType, len(a.Types)),
	}
	for class, ut := range a.Types {
		clone.Types[class] = ut
	}
	return clone
}

// SwitchType переключает активный тип юнита на тип, закреплённый
// за классом cls. Если класс не входит в набор — no-op: вызывающие
// имеют право пробовать классы наугад, это не ошибка.
func (a *MultitypeAttribute) SwitchType(cls enums.UnitClass, unit *Unit) {
	next, ok := a.Types[cls]
	if !ok {
		return
	}
	unit.ChangeType(next)
}

// GarrisonAttribute - юниты, посаженные внутрь здания.
type GarrisonAttribute struct {
	// Content - слабые ссылки на сидящих внутри.
	// Гарнизон не владеет юнитами: их жизненный цикл независим.
	Content []UnitReference
}

func (a *GarrisonAttribute) Type() AttributeType { return AttrGarrison }
func (a *GarrisonAttribute) Shared() bool        { return false }

func (a *GarrisonAttribute) Copy() AttributeValue {
	clone := &GarrisonAttribute{
		Content: make([]UnitReference, len(a.Content)),
	}
	copy(clone.Content, a.Content)
	return clone
}
