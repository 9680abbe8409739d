package types

import (
	"fmt"
	"strconv"
)

// UnitID — 64-битный идентификатор юнита.
//
// UnitID является value-type и предназначен для дешёвого копирования,
// сериализации и сравнения.
//
// Формат битов (от старших к младшим):
//
//	[ Shard (8) | Class (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Shard — идентификатор мира / сервера
//   - Class — класс юнита (Worker, Soldier и т.д.)
//   - Generation — версия слота юнита (защита от устаревших ссылок)
//   - Index — индекс слота юнита в контейнере
//
// Такой формат позволяет:
//   - быстро адресовать юниты в контейнере
//   - определять принадлежность юнита миру
//   - безопасно обнаруживать stale references (снаряд помнит, кто его
//     выпустил; гарнизон помнит, кто внутри — и оба переживают смерть цели)
type UnitID uint64

// NilUnitID — нулевой идентификатор юнита.
//
// Используется как аналог nil для случаев, когда юнит отсутствует
// или ссылка ещё не инициализирована.
const NilUnitID UnitID = 0

// Конфигурация битов UnitID.
//
// Общее количество бит — 64.
const (
	// bitsIndex — количество бит, выделенных под индекс слота.
	// Позволяет адресовать до ~4.29 миллиарда юнитов в рамках одного шарда.
	bitsIndex = 32

	// bitsGen — количество бит для поколения слота.
	// Используется для защиты от использования устаревших ссылок.
	bitsGen = 16

	// bitsClass — количество бит для класса юнита.
	bitsClass = 8

	// bitsShard — количество бит для идентификатора шарда (мира).
	bitsShard = 8

	// Сдвиги битов
	shiftGen   = bitsIndex
	shiftClass = bitsIndex + bitsGen
	shiftShard = bitsIndex + bitsGen + bitsClass

	// Маски для извлечения значений
	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskClass = (1 << bitsClass) - 1
	maskShard = (1 << bitsShard) - 1
)

// PackUnitID собирает UnitID из составных частей.
//
// Параметры:
//   - shardID — идентификатор текущего мира / сервера
//   - classID — класс юнита
//   - gen — поколение слота юнита
//   - index — индекс слота в контейнере
//
// Функция не выполняет проверок диапазонов значений и предполагает,
// что входные данные валидны.
func PackUnitID(
	shardID uint8,
	classID uint8,
	gen uint16,
	index uint32,
) UnitID {
	return UnitID(
		(uint64(shardID) << shiftShard) |
			(uint64(classID) << shiftClass) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает индекс слота юнита в контейнере.
func (id UnitID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота юнита.
//
// Используется для обнаружения устаревших ссылок на уничтоженные юниты.
func (id UnitID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Class возвращает класс юнита.
func (id UnitID) Class() uint8 {
	return uint8((id >> shiftClass) & maskClass)
}

// Shard возвращает идентификатор шарда, которому принадлежит юнит.
func (id UnitID) Shard() uint8 {
	return uint8((id >> shiftShard) & maskShard)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id UnitID) IsNil() bool {
	return id == NilUnitID
}

// IsLocal проверяет, принадлежит ли юнит текущему шарду.
func (id UnitID) IsLocal(currentShard uint8) bool {
	return id.Shard() == currentShard
}

// String возвращает человекочитаемое строковое представление UnitID.
//
// Предназначено для логирования и отладки.
func (id UnitID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf(
		"[shard=%d class=%d gen=%d idx=%d]",
		id.Shard(),
		id.Class(),
		id.Generation(),
		id.Index(),
	)
}

// Key возвращает десятичную форму идентификатора.
//
// Используется в протоколе и в качестве ключей, где нужна
// компактная однозначная строка вместо отладочного String().
func (id UnitID) Key() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseUnitID разбирает десятичную форму, полученную от клиента.
func ParseUnitID(s string) (UnitID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NilUnitID, fmt.Errorf("malformed unit id %q: %w", s, err)
	}
	return UnitID(v), nil
}

// MarshalJSON сериализует UnitID в JSON как строку.
//
// Это необходимо для предотвращения потери точности при работе с
// JavaScript и другими средами, не поддерживающими uint64.
func (id UnitID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON десериализует UnitID из JSON.
//
// Поддерживаются как строковое, так и числовое представление.
func (id *UnitID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilUnitID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = UnitID(v)
	return nil
}
