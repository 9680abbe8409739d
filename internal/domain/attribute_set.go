package domain

import (
	"fmt"
	"sort"
)

// AttributeSet - набор атрибутов одного юнита.
//
// Хранит не более одного атрибута каждого типа (карта обеспечивает
// это структурно). Набор эксклюзивно владеет своими значениями:
// атрибут не существует вне набора.
//
// Нулевое значение AttributeSet готово к использованию.
type AttributeSet struct {
	attrs map[AttributeType]AttributeValue
}

// NewAttributeSet создает пустой набор атрибутов.
func NewAttributeSet() *AttributeSet {
	return &AttributeSet{
		attrs: make(map[AttributeType]AttributeValue),
	}
}

// Add вставляет атрибут под его собственным типом.
// Если атрибут такого типа уже был — он заменяется (last-write-wins,
// без слияния). Операция всегда успешна.
func (s *AttributeSet) Add(v AttributeValue) {
	if s.attrs == nil {
		s.attrs = make(map[AttributeType]AttributeValue)
	}
	s.attrs[v.Type()] = v
}

// AddCopies добавляет глубокие копии всех атрибутов из src.
// Эквивалентно AddCopiesFiltered(src, true, true).
func (s *AttributeSet) AddCopies(src *AttributeSet) {
	s.AddCopiesFiltered(src, true, true)
}

// AddCopiesFiltered добавляет глубокие копии атрибутов из src,
// отфильтрованные по классификации:
//   - shared=true пропускает шаблонные атрибуты,
//   - unshared=true пропускает инстансовые.
//
// Так новый юнит засевается из шаблона: при спавне берутся обе
// категории, при смене типа — только шаблонная (инстансовое
// состояние сохраняется). Оба флага false — документированный no-op.
func (s *AttributeSet) AddCopiesFiltered(src *AttributeSet, shared, unshared bool) {
	if src == nil || src.attrs == nil {
		return
	}

	// Сначала собираем копии, потом вставляем: src может оказаться
	// тем же набором, что и s, а менять карту во время обхода нельзя.
	copies := make([]AttributeValue, 0, len(src.attrs))
	for _, v := range src.attrs {
		if (v.Shared() && shared) || (!v.Shared() && unshared) {
			copies = append(copies, v.Copy())
		}
	}

	for _, c := range copies {
		s.Add(c)
	}
}

// Remove удаляет атрибут типа t, если он есть.
// Возвращает true, если атрибут действительно был удален.
// Удаление отсутствующего типа — не ошибка.
func (s *AttributeSet) Remove(t AttributeType) bool {
	if s.attrs == nil {
		return false
	}
	if _, ok := s.attrs[t]; !ok {
		return false
	}
	delete(s.attrs, t)
	return true
}

// Has проверяет наличие атрибута типа t.
func (s *AttributeSet) Has(t AttributeType) bool {
	_, ok := s.attrs[t]
	return ok
}

// Get возвращает атрибут типа t. Отсутствие — ожидаемое,
// проверяемое состояние, а не ошибка.
func (s *AttributeSet) Get(t AttributeType) (AttributeValue, bool) {
	v, ok := s.attrs[t]
	return v, ok
}

// Len возвращает количество атрибутов в наборе.
func (s *AttributeSet) Len() int {
	return len(s.attrs)
}

// Types возвращает отсортированный список типов атрибутов набора.
// Порядок хранения в карте недетерминирован, а снапшотам и логам
// нужен стабильный вывод.
func (s *AttributeSet) Types() []AttributeType {
	out := make([]AttributeType, 0, len(s.attrs))
	for t := range s.attrs {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GetAttribute возвращает атрибут типа t как конкретный *T.
//
// Вызывающий обязан заранее убедиться через Has, что атрибут есть
// и что он хранится именно как T: отсутствие или несовпадение
// конкретного типа — ошибка программиста, поэтому здесь panic
// с диагностикой, а не тихий возврат мусора.
func GetAttribute[T any](s *AttributeSet, t AttributeType) *T {
	v, ok := s.attrs[t]
	if !ok {
		panic(fmt.Sprintf("attribute %s is not present in the set", t))
	}
	typed, ok := any(v).(*T)
	if !ok {
		panic(fmt.Sprintf("attribute %s is stored as %T, not as the requested variant", t, v))
	}
	return typed
}
