package enums

import "strings"

// UnitClass — грубая категория юнита.
// Используется, в частности, Multitype-атрибутом для выбора
// конкретного типа юнита под класс (рабочий, солдат и т.д.).
type UnitClass uint8

const (
	ClassUnknown UnitClass = iota
	ClassWorker
	ClassSoldier
	ClassScout
	ClassSiege
	ClassBuilding
	ClassProjectile
	ClassAmbient // деревья, кусты, залежи — то, из чего добывают
)

var unitClassToString = map[UnitClass]string{
	ClassWorker:     "WORKER",
	ClassSoldier:    "SOLDIER",
	ClassScout:      "SCOUT",
	ClassSiege:      "SIEGE",
	ClassBuilding:   "BUILDING",
	ClassProjectile: "PROJECTILE",
	ClassAmbient:    "AMBIENT",
}

var unitClassStringToType = map[string]UnitClass{
	"WORKER":     ClassWorker,
	"SOLDIER":    ClassSoldier,
	"SCOUT":      ClassScout,
	"SIEGE":      ClassSiege,
	"BUILDING":   ClassBuilding,
	"PROJECTILE": ClassProjectile,
	"AMBIENT":    ClassAmbient,
}

// String возвращает строковое представление (для логов и дебага)
func (c UnitClass) String() string {
	if val, ok := unitClassToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseUnitClass конвертирует строку в Enum (нужно для загрузки шаблонов/конфигов)
func ParseUnitClass(s string) UnitClass {
	upper := strings.ToUpper(s)
	if val, ok := unitClassStringToType[upper]; ok {
		return val
	}
	return ClassUnknown
}
