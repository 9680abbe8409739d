package enums

import "strings"

type GameResource uint8

const (
	ResourceWood GameResource = iota
	ResourceFood
	ResourceGold
	ResourceStone

	// ResourceCount — количество видов ресурсов.
	// Должен оставаться последним элементом enum.
	ResourceCount
)

var resourceToString = map[GameResource]string{
	ResourceWood:  "WOOD",
	ResourceFood:  "FOOD",
	ResourceGold:  "GOLD",
	ResourceStone: "STONE",
}

var resourceStringToType = map[string]GameResource{
	"WOOD":  ResourceWood,
	"FOOD":  ResourceFood,
	"GOLD":  ResourceGold,
	"STONE": ResourceStone,
}

// String возвращает строковое представление (для логов и дебага)
func (r GameResource) String() string {
	if val, ok := resourceToString[r]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseGameResource конвертирует строку в Enum (нужно для загрузки шаблонов/конфигов)
func ParseGameResource(s string) (GameResource, bool) {
	upper := strings.ToUpper(s)
	val, ok := resourceStringToType[upper]
	return val, ok
}
