package domain

import "strategos-server/internal/core/types/enums"

// ResourceBundle — набор количеств по каждому виду ресурса.
//
// Используется двояко: как запас игрока (сколько ресурсов накоплено)
// и как набор скоростей добычи рабочего (сколько ресурса в секунду).
// Является value-type: присваивание копирует весь набор.
type ResourceBundle [enums.ResourceCount]float64

// Get возвращает количество ресурса r.
func (b ResourceBundle) Get(r enums.GameResource) float64 {
	if r >= enums.ResourceCount {
		return 0
	}
	return b[r]
}

// Set устанавливает количество ресурса r.
func (b *ResourceBundle) Set(r enums.GameResource, amount float64) {
	if r >= enums.ResourceCount {
		return
	}
	b[r] = amount
}

// Add прибавляет все ресурсы из other.
func (b *ResourceBundle) Add(other ResourceBundle) {
	for i := range b {
		b[i] += other[i]
	}
}

// Has проверяет, хватает ли ресурсов на покрытие other.
func (b ResourceBundle) Has(other ResourceBundle) bool {
	for i := range b {
		if b[i] < other[i] {
			return false
		}
	}
	return true
}

// Deduct списывает other из набора. Возвращает false, если не хватило
// (в этом случае набор не меняется).
func (b *ResourceBundle) Deduct(other ResourceBundle) bool {
	if !b.Has(other) {
		return false
	}
	for i := range b {
		b[i] -= other[i]
	}
	return true
}

// Scale возвращает набор, умноженный на скаляр.
// Нужен для пересчёта скоростей добычи за тик: rates.Scale(dt).
func (b ResourceBundle) Scale(k float64) ResourceBundle {
	var out ResourceBundle
	for i := range b {
		out[i] = b[i] * k
	}
	return out
}

// Sum возвращает суммарное количество всех ресурсов.
func (b ResourceBundle) Sum() float64 {
	total := 0.0
	for i := range b {
		total += b[i]
	}
	return total
}
