package domain

import "strategos-server/internal/core/types/enums"

// ObjectState - состояние размещённого на террейне объекта.
// Здание после достройки переводится из "призрачного" фундамента
// в полноценное размещение.
type ObjectState uint8

const (
	ObjectStateFloating ObjectState = iota
	ObjectStatePlaced
	ObjectStatePlacedNoCollision
)

// UnitType - шаблон вида юнита ("Ополченец", "Городской центр").
//
// Defaults - эталонный набор атрибутов шаблона. Его шаблонные
// записи задают общие для всех юнитов этого типа характеристики,
// инстансовые - стартовые значения per-instance состояния.
// При спавне юнит получает клоны, а не ссылки: шаблонный набор
// никогда не мутирует из-за живых юнитов.
type UnitType struct {
	ID    int
	Name  string
	Class enums.UnitClass

	// Cost - стоимость создания юнита этого типа.
	Cost ResourceBundle

	Defaults *AttributeSet
}

// Initialise засевает юниту полный стартовый набор атрибутов:
// и шаблонные характеристики, и инстансовые значения по умолчанию.
func (t *UnitType) Initialise(u *Unit) {
	u.Attributes.AddCopies(t.Defaults)
}
