package gamedata

import (
	"fmt"

	"strategos-server/internal/core/types/enums"
	"strategos-server/internal/domain"
)

// Registry - реестр типов юнитов, построенный из шаблонов.
type Registry struct {
	types  map[string]*domain.UnitType
	nextID int
}

// NewRegistry создает пустой реестр.
func NewRegistry() *Registry {
	return &Registry{
		types:  make(map[string]*domain.UnitType),
		nextID: 1,
	}
}

// Load загружает пачку шаблонов в реестр.
//
// Работает в два прохода: сначала создаются все типы с их
// самостоятельными атрибутами, затем разрешаются ссылки между
// типами (снаряд атаки, производимый юнит, обличья Multitype).
// Поэтому шаблоны могут ссылаться друг на друга в любом порядке.
func (r *Registry) Load(templates []UnitTypeTemplate) error {
	for i := range templates {
		if err := r.register(&templates[i]); err != nil {
			return fmt.Errorf("failed to register %q: %w", templates[i].Name, err)
		}
	}
	for i := range templates {
		if err := r.link(&templates[i]); err != nil {
			return fmt.Errorf("failed to link %q: %w", templates[i].Name, err)
		}
	}
	return nil
}

// Get возвращает тип по имени.
func (r *Registry) Get(name string) (*domain.UnitType, bool) {
	t, ok := r.types[name]
	return t, ok
}

// All возвращает все зарегистрированные типы.
func (r *Registry) All() []*domain.UnitType {
	out := make([]*domain.UnitType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	return out
}

// register создает тип и его самостоятельные атрибуты (первый проход).
func (r *Registry) register(t *UnitTypeTemplate) error {
	if t.Name == "" {
		return fmt.Errorf("template has no name")
	}

	ut := &domain.UnitType{
		ID:       r.nextID,
		Name:     t.Name,
		Class:    enums.ParseUnitClass(t.Class),
		Defaults: domain.NewAttributeSet(),
	}
	r.nextID++

	for res, amount := range t.Cost {
		kind, ok := enums.ParseGameResource(res)
		if !ok {
			return fmt.Errorf("unknown cost resource %q", res)
		}
		ut.Cost.Set(kind, amount)
	}

	// Здоровье добавляем только живым типам:
	// у снаряда и залежи золота здоровья нет вовсе
	if t.MaxHP > 0 {
		ut.Defaults.Add(&domain.MaxHitpointsAttribute{
			HP:        t.MaxHP,
			BarHeight: t.HPBarHeight,
		})

		startHP := t.StartHP
		if startHP == 0 {
			startHP = t.MaxHP
		}
		ut.Defaults.Add(&domain.CurrentHitpointsAttribute{HP: startHP})
	}

	if len(t.Armor) > 0 {
		armor := make(map[int]int, len(t.Armor))
		for class, amount := range t.Armor {
			armor[class] = amount
		}
		ut.Defaults.Add(&domain.ArmorAttribute{Armor: armor})
	}

	if t.Heal != nil {
		ut.Defaults.Add(&domain.HealAttribute{
			Range: t.Heal.Range,
			Life:  t.Heal.Life,
			Rate:  t.Heal.Rate,
		})
	}

	if t.Speed > 0 {
		ut.Defaults.Add(&domain.SpeedAttribute{Speed: t.Speed})
		// Подвижному юниту нужно текущее направление
		ut.Defaults.Add(&domain.DirectionAttribute{})
	}

	if t.Projectile != nil {
		ut.Defaults.Add(&domain.ProjectileAttribute{Arc: t.Projectile.Arc})
	}

	if len(t.Dropsite) > 0 {
		accepted := make([]enums.GameResource, 0, len(t.Dropsite))
		for _, res := range t.Dropsite {
			kind, ok := enums.ParseGameResource(res)
			if !ok {
				return fmt.Errorf("unknown dropsite resource %q", res)
			}
			accepted = append(accepted, kind)
		}
		ut.Defaults.Add(&domain.DropsiteAttribute{Resources: accepted})
	}

	if t.Carrier != nil {
		kind, ok := enums.ParseGameResource(t.Carrier.Resource)
		if !ok {
			return fmt.Errorf("unknown carrier resource %q", t.Carrier.Resource)
		}
		ut.Defaults.Add(&domain.ResourceCarrierAttribute{
			ResourceType: kind,
			Amount:       t.Carrier.Amount,
		})
	}

	if t.Worker != nil {
		var rates domain.ResourceBundle
		for res, rate := range t.Worker.GatherRates {
			kind, ok := enums.ParseGameResource(res)
			if !ok {
				return fmt.Errorf("unknown gather resource %q", res)
			}
			rates.Set(kind, rate)
		}
		ut.Defaults.Add(&domain.WorkerAttribute{
			Capacity:   t.Worker.Capacity,
			GatherRate: rates,
		})
	}

	if t.Garrison {
		ut.Defaults.Add(&domain.GarrisonAttribute{})
	}

	r.types[t.Name] = ut
	return nil
}

// link разрешает ссылки шаблона на другие типы (второй проход).
func (r *Registry) link(t *UnitTypeTemplate) error {
	ut := r.types[t.Name]

	if t.Attack != nil {
		attack := &domain.AttackAttribute{
			Range:      t.Attack.Range,
			InitHeight: t.Attack.InitHeight,
			Damage:     make(map[int]int, len(t.Attack.Damage)),
			Stance:     enums.StanceDoNothing,
		}
		for class, amount := range t.Attack.Damage {
			attack.Damage[class] = amount
		}
		if t.Attack.Projectile != "" {
			proj, ok := r.types[t.Attack.Projectile]
			if !ok {
				return fmt.Errorf("unknown projectile type %q", t.Attack.Projectile)
			}
			attack.ProjectileType = proj
		}
		ut.Defaults.Add(attack)
	}

	if t.Building != nil {
		building := &domain.BuildingAttribute{
			FoundationTerrain: t.Building.FoundationTerrain,
		}
		if t.Building.Produces != "" {
			producer, ok := r.types[t.Building.Produces]
			if !ok {
				return fmt.Errorf("unknown produced type %q", t.Building.Produces)
			}
			building.ProducerType = producer
		}
		ut.Defaults.Add(building)
	}

	if len(t.Multitype) > 0 {
		multi := &domain.MultitypeAttribute{
			Types: make(map[enums.UnitClass]*domain.UnitType, len(t.Multitype)),
		}
		for clsName, typeName := range t.Multitype {
			cls := enums.ParseUnitClass(clsName)
			if cls == enums.ClassUnknown {
				return fmt.Errorf("unknown unit class %q", clsName)
			}
			target, ok := r.types[typeName]
			if !ok {
				return fmt.Errorf("unknown multitype target %q", typeName)
			}
			multi.Types[cls] = target
		}
		ut.Defaults.Add(multi)
	}

	return nil
}

// SpawnUnit создает юнит типа typeName для игрока owner,
// списывая стоимость из его запаса.
func SpawnUnit(c *domain.UnitContainer, r *Registry, typeName string, owner *domain.Player) (*domain.Unit, error) {
	ut, ok := r.Get(typeName)
	if !ok {
		return nil, fmt.Errorf("unknown unit type %q", typeName)
	}

	if owner != nil && !owner.Pay(ut.Cost) {
		return nil, fmt.Errorf("player %s cannot afford %s", owner.Name, typeName)
	}

	return c.NewUnit(ut, owner), nil
}

// SpawnStartingBase создает стартовую базу игрока:
// городской центр и трёх рабочих рядом с ним.
func SpawnStartingBase(c *domain.UnitContainer, r *Registry, owner *domain.Player, at domain.Phys3) ([]*domain.Unit, error) {
	tc, ok := r.Get("TownCenter")
	if !ok {
		return nil, fmt.Errorf("registry has no TownCenter type")
	}
	villager, ok := r.Get("VillagerMale")
	if !ok {
		return nil, fmt.Errorf("registry has no VillagerMale type")
	}

	units := make([]*domain.Unit, 0, 4)

	base := c.NewUnit(tc, owner)
	base.Pos = at
	// Стартовый городской центр уже достроен
	building := domain.GetAttribute[domain.BuildingAttribute](base.Attributes, domain.AttrBuilding)
	building.Completed = 1
	building.CompletionState = domain.ObjectStatePlaced
	hp := domain.GetAttribute[domain.CurrentHitpointsAttribute](base.Attributes, domain.AttrCurrentHitpoints)
	hp.HP = domain.GetAttribute[domain.MaxHitpointsAttribute](base.Attributes, domain.AttrMaxHitpoints).HP
	units = append(units, base)

	for i := 0; i < 3; i++ {
		u := c.NewUnit(villager, owner)
		u.Pos = at.Add(domain.Phys3{NE: float64(i + 1), SE: 1})
		units = append(units, u)
	}

	return units, nil
}
