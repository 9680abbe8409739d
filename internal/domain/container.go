package domain

import (
	"strategos-server/internal/core/types"
)

// UnitContainer - реестр всех живых юнитов одного шарда.
//
// Контейнер владеет юнитами и выдаёт наружу только слабые
// UnitReference. Слоты переиспользуются: при уничтожении юнита
// поколение слота увеличивается, и все старые ссылки на этот
// слот перестают резолвиться.
type UnitContainer struct {
	shardID uint8

	units map[uint32]*Unit

	// gens хранит текущее поколение каждого когда-либо занятого слота.
	gens map[uint32]uint16

	// freeIndexes - освободившиеся слоты для переиспользования.
	freeIndexes []uint32

	nextIndex uint32
}

// NewUnitContainer создает пустой контейнер для шарда shardID.
func NewUnitContainer(shardID uint8) *UnitContainer {
	return &UnitContainer{
		shardID: shardID,
		units:   make(map[uint32]*Unit),
		gens:    make(map[uint32]uint16),
		// Индекс 0 не используется: иначе первый же ID совпал бы
		// с NilUnitID при нулевых shard/class/gen.
		nextIndex: 1,
	}
}

// NewUnit создает юнит типа t, засевает его атрибуты из шаблона
// и регистрирует в контейнере. Если owner не nil, юниту также
// назначается атрибут принадлежности.
func (c *UnitContainer) NewUnit(t *UnitType, owner *Player) *Unit {
	var index uint32
	if n := len(c.freeIndexes); n > 0 {
		index = c.freeIndexes[n-1]
		c.freeIndexes = c.freeIndexes[:n-1]
	} else {
		index = c.nextIndex
		c.nextIndex++
	}

	id := types.PackUnitID(c.shardID, uint8(t.Class), c.gens[index], index)

	unit := &Unit{
		ID:         id,
		UnitType:   t,
		Attributes: NewAttributeSet(),
	}
	t.Initialise(unit)

	if owner != nil {
		unit.Attributes.Add(&OwnerAttribute{Player: owner})
	}

	c.units[index] = unit
	return unit
}

// Get возвращает юнит по идентификатору.
// Устаревший ID (слот переиспользован под другой юнит) не резолвится.
func (c *UnitContainer) Get(id types.UnitID) (*Unit, bool) {
	if id.IsNil() {
		return nil, false
	}
	u, ok := c.units[id.Index()]
	if !ok || u.ID != id {
		return nil, false
	}
	return u, true
}

// Destroy уничтожает юнит и освобождает его слот.
// Возвращает false, если юнита с таким ID уже нет.
// Уничтожение освобождает все атрибуты юнита вместе с набором.
func (c *UnitContainer) Destroy(id types.UnitID) bool {
	if _, ok := c.Get(id); !ok {
		return false
	}

	index := id.Index()
	delete(c.units, index)
	c.gens[index]++
	c.freeIndexes = append(c.freeIndexes, index)
	return true
}

// Reference возвращает слабую ссылку на юнит с данным ID.
// Ссылку можно создать и на несуществующий ID: она просто
// не будет резолвиться.
func (c *UnitContainer) Reference(id types.UnitID) UnitReference {
	return UnitReference{container: c, id: id}
}

// Len возвращает количество живых юнитов.
func (c *UnitContainer) Len() int {
	return len(c.units)
}

// All возвращает срез всех живых юнитов.
// Порядок недетерминирован.
func (c *UnitContainer) All() []*Unit {
	out := make([]*Unit, 0, len(c.units))
	for _, u := range c.units {
		out = append(out, u)
	}
	return out
}

// UnitReference - слабая ссылка на юнит.
//
// Не владеет юнитом и не продлевает его жизнь. После уничтожения
// цели резолвится в "отсутствует", а не в мусор - этим занимается
// проверка поколения в UnitContainer.Get.
type UnitReference struct {
	container *UnitContainer
	id        types.UnitID
}

// ID возвращает идентификатор, на который указывает ссылка.
func (r UnitReference) ID() types.UnitID {
	return r.id
}

// Get резолвит ссылку. Второй результат false, если юнит уже
// уничтожен или ссылка не была инициализирована.
func (r UnitReference) Get() (*Unit, bool) {
	if r.container == nil {
		return nil, false
	}
	return r.container.Get(r.id)
}

// IsValid проверяет, жив ли ещё юнит, на который указывает ссылка.
func (r UnitReference) IsValid() bool {
	_, ok := r.Get()
	return ok
}
