package gamedata

// UnitTypeTemplate определяет шаблон для создания типа юнита.
//
// Это декларативная форма: строки вместо ссылок на другие типы,
// чтобы шаблон можно было хранить в JSON (см. infrastructure/storage).
// Ссылки разрешаются при загрузке в Registry.
type UnitTypeTemplate struct {
	Name  string             `json:"name"`
	Class string             `json:"class"`
	Cost  map[string]float64 `json:"cost,omitempty"`

	// MaxHP - максимум здоровья. 0 означает, что у типа нет здоровья
	// (снаряды, точки сбора).
	MaxHP       int     `json:"maxHp,omitempty"`
	HPBarHeight float64 `json:"hpBarHeight,omitempty"`

	// StartHP - стартовое текущее здоровье. 0 означает "равно MaxHP".
	// Недостроенные здания начинают с 1.
	StartHP int `json:"startHp,omitempty"`

	// Armor - снижение урона по классам урона.
	Armor map[int]int `json:"armor,omitempty"`

	Attack *AttackTemplate `json:"attack,omitempty"`
	Heal   *HealTemplate   `json:"heal,omitempty"`

	// Speed - скорость перемещения. 0 означает неподвижный тип.
	// Подвижные типы получают также атрибут направления.
	Speed float64 `json:"speed,omitempty"`

	Projectile *ProjectileTemplate `json:"projectile,omitempty"`
	Building   *BuildingTemplate   `json:"building,omitempty"`

	// Dropsite - принимаемые на склад ресурсы.
	Dropsite []string `json:"dropsite,omitempty"`

	Carrier *CarrierTemplate `json:"carrier,omitempty"`
	Worker  *WorkerTemplate  `json:"worker,omitempty"`

	// Multitype - обличья юнита: класс -> имя типа.
	Multitype map[string]string `json:"multitype,omitempty"`

	// Garrison - может ли тип вмещать гарнизон.
	Garrison bool `json:"garrison,omitempty"`
}

// AttackTemplate описывает атаку типа.
type AttackTemplate struct {
	// Projectile - имя типа снаряда. Пусто для ближнего боя.
	Projectile string      `json:"projectile,omitempty"`
	Range      float64     `json:"range"`
	InitHeight float64     `json:"initHeight,omitempty"`
	Damage     map[int]int `json:"damage"`
}

// HealTemplate описывает способность лечить.
type HealTemplate struct {
	Range float64 `json:"range"`
	Life  int     `json:"life"`
	Rate  float64 `json:"rate"`
}

// ProjectileTemplate описывает снаряд.
type ProjectileTemplate struct {
	Arc float64 `json:"arc"`
}

// BuildingTemplate описывает здание.
type BuildingTemplate struct {
	FoundationTerrain int `json:"foundationTerrain,omitempty"`

	// Produces - имя типа юнита, которого здание производит.
	Produces string `json:"produces,omitempty"`
}

// CarrierTemplate описывает запас ресурса.
type CarrierTemplate struct {
	Resource string  `json:"resource"`
	Amount   float64 `json:"amount,omitempty"`
}

// WorkerTemplate описывает рабочего.
type WorkerTemplate struct {
	Capacity    float64            `json:"capacity"`
	GatherRates map[string]float64 `json:"gatherRates,omitempty"`
}

// Классы урона. Пока используются только два, но ID совместимы
// с таблицами брони из данных оригинальной игры.
const (
	DamagePierce = 3
	DamageMelee  = 4
)

// --- ЗДАНИЯ ---

var TownCenter = UnitTypeTemplate{
	Name:        "TownCenter",
	Class:       "BUILDING",
	Cost:        map[string]float64{"WOOD": 275},
	MaxHP:       2400,
	HPBarHeight: 4,
	StartHP:     1,
	Armor:       map[int]int{DamageMelee: 3, DamagePierce: 5},
	Building:    &BuildingTemplate{Produces: "VillagerMale"},
	Dropsite:    []string{"WOOD", "FOOD", "GOLD", "STONE"},
	Garrison:    true,
}

var LumberCamp = UnitTypeTemplate{
	Name:        "LumberCamp",
	Class:       "BUILDING",
	Cost:        map[string]float64{"WOOD": 100},
	MaxHP:       1000,
	HPBarHeight: 2,
	StartHP:     1,
	Building:    &BuildingTemplate{},
	Dropsite:    []string{"WOOD"},
}

var WatchTower = UnitTypeTemplate{
	Name:        "WatchTower",
	Class:       "BUILDING",
	Cost:        map[string]float64{"STONE": 125},
	MaxHP:       1020,
	HPBarHeight: 3,
	StartHP:     1,
	Armor:       map[int]int{DamageMelee: 8, DamagePierce: 8},
	Attack: &AttackTemplate{
		Projectile: "Arrow",
		Range:      8,
		InitHeight: 2.5,
		Damage:     map[int]int{DamagePierce: 5},
	},
	Building: &BuildingTemplate{},
	Garrison: true,
}

// --- ЮНИТЫ ---

var VillagerMale = UnitTypeTemplate{
	Name:        "VillagerMale",
	Class:       "WORKER",
	Cost:        map[string]float64{"FOOD": 50},
	MaxHP:       25,
	HPBarHeight: 1,
	Speed:       0.8,
	Attack: &AttackTemplate{
		Range:  0.5,
		Damage: map[int]int{DamageMelee: 3},
	},
	Carrier: &CarrierTemplate{Resource: "FOOD"},
	Worker: &WorkerTemplate{
		Capacity: 10,
		GatherRates: map[string]float64{
			"WOOD":  0.39,
			"FOOD":  0.33,
			"GOLD":  0.38,
			"STONE": 0.36,
		},
	},
	Multitype: map[string]string{
		"WORKER":  "VillagerMale",
		"SOLDIER": "Militia",
	},
}

var Militia = UnitTypeTemplate{
	Name:        "Militia",
	Class:       "SOLDIER",
	Cost:        map[string]float64{"FOOD": 60, "GOLD": 20},
	MaxHP:       40,
	HPBarHeight: 1,
	Speed:       0.9,
	Armor:       map[int]int{DamageMelee: 1},
	Attack: &AttackTemplate{
		Range:  0.5,
		Damage: map[int]int{DamageMelee: 4},
	},
}

var Archer = UnitTypeTemplate{
	Name:        "Archer",
	Class:       "SOLDIER",
	Cost:        map[string]float64{"WOOD": 25, "GOLD": 45},
	MaxHP:       30,
	HPBarHeight: 1,
	Speed:       0.96,
	Attack: &AttackTemplate{
		Projectile: "Arrow",
		Range:      4,
		InitHeight: 1.2,
		Damage:     map[int]int{DamagePierce: 4},
	},
}

var Monk = UnitTypeTemplate{
	Name:        "Monk",
	Class:       "SOLDIER",
	Cost:        map[string]float64{"GOLD": 100},
	MaxHP:       30,
	HPBarHeight: 1,
	Speed:       0.7,
	Heal:        &HealTemplate{Range: 4, Life: 1, Rate: 0.5},
}

// --- СНАРЯДЫ ---

var Arrow = UnitTypeTemplate{
	Name:       "Arrow",
	Class:      "PROJECTILE",
	Speed:      6,
	Projectile: &ProjectileTemplate{Arc: 0.4},
}

// --- ПРИРОДА ---

var Tree = UnitTypeTemplate{
	Name:    "Tree",
	Class:   "AMBIENT",
	MaxHP:   20,
	Carrier: &CarrierTemplate{Resource: "WOOD", Amount: 100},
}

var GoldMine = UnitTypeTemplate{
	Name:    "GoldMine",
	Class:   "AMBIENT",
	Carrier: &CarrierTemplate{Resource: "GOLD", Amount: 800},
}

var BerryBush = UnitTypeTemplate{
	Name:    "BerryBush",
	Class:   "AMBIENT",
	Carrier: &CarrierTemplate{Resource: "FOOD", Amount: 125},
}

// DefaultTemplates - все встроенные шаблоны типов.
// Порядок не важен: ссылки между типами разрешаются после загрузки.
var DefaultTemplates = []UnitTypeTemplate{
	TownCenter,
	LumberCamp,
	WatchTower,
	VillagerMale,
	Militia,
	Archer,
	Monk,
	Arrow,
	Tree,
	GoldMine,
	BerryBush,
}
