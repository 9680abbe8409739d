package domain

import (
	"strategos-server/internal/core/types"
)

// Unit - одна сущность игрового мира: рабочий, здание, снаряд, куст.
//
// Юнит владеет ровно одним AttributeSet. Всё содержательное
// состояние (здоровье, груз, гарнизон) живёт в атрибутах;
// сам Unit хранит только идентичность, активный тип и позицию.
type Unit struct {
	ID types.UnitID

	// UnitType - активный тип юнита. Может меняться в рантайме
	// через Multitype-атрибут (рабочий-лесоруб <-> рабочий-фермер).
	UnitType *UnitType

	Pos Phys3

	Attributes *AttributeSet
}

// Has - шорткат для проверки наличия атрибута.
func (u *Unit) Has(t AttributeType) bool {
	return u.Attributes.Has(t)
}

// ChangeType переключает активный тип юнита.
//
// Шаблонные атрибуты нового типа копируются поверх старых
// (скорость, броня, максимум здоровья меняются вместе с обличьем),
// а инстансовое состояние — текущее здоровье, груз ресурсов,
// гарнизон — сохраняется как есть.
func (u *Unit) ChangeType(next *UnitType) {
	if next == nil || next == u.UnitType {
		return
	}
	u.UnitType = next
	u.Attributes.AddCopiesFiltered(next.Defaults, true, false)
}

// IsDead проверяет, опустилось ли текущее здоровье до нуля.
// Юниты без здоровья (снаряды, точки сбора) бессмертны.
func (u *Unit) IsDead() bool {
	v, ok := u.Attributes.Get(AttrCurrentHitpoints)
	if !ok {
		return false
	}
	return v.(*CurrentHitpointsAttribute).HP <= 0
}

// Owner возвращает игрока-владельца юнита, если он есть.
func (u *Unit) Owner() (*Player, bool) {
	v, ok := u.Attributes.Get(AttrOwner)
	if !ok {
		return nil, false
	}
	return v.(*OwnerAttribute).Player, true
}
