package domain

import "strings"

// AttributeType — закрытый набор видов атрибутов юнита.
// Используется как ключ в AttributeSet: у юнита не может быть
// двух атрибутов одного типа.
type AttributeType uint8

const (
	AttrUnknown AttributeType = iota
	AttrOwner
	AttrMaxHitpoints
	AttrCurrentHitpoints
	AttrArmor
	AttrAttack
	AttrHeal
	AttrSpeed
	AttrDirection
	AttrProjectile
	AttrBuilding
	AttrDropsite
	AttrResourceCarrier
	AttrWorker
	AttrMultitype
	AttrGarrison
)

var attributeTypeToString = map[AttributeType]string{
	AttrOwner:            "OWNER",
	AttrMaxHitpoints:     "MAX_HITPOINTS",
	AttrCurrentHitpoints: "CURRENT_HITPOINTS",
	AttrArmor:            "ARMOR",
	AttrAttack:           "ATTACK",
	AttrHeal:             "HEAL",
	AttrSpeed:            "SPEED",
	AttrDirection:        "DIRECTION",
	AttrProjectile:       "PROJECTILE",
	AttrBuilding:         "BUILDING",
	AttrDropsite:         "DROPSITE",
	AttrResourceCarrier:  "RESOURCE_CARRIER",
	AttrWorker:           "WORKER",
	AttrMultitype:        "MULTITYPE",
	AttrGarrison:         "GARRISON",
}

var attributeTypeStringToType = map[string]AttributeType{
	"OWNER":             AttrOwner,
	"MAX_HITPOINTS":     AttrMaxHitpoints,
	"CURRENT_HITPOINTS": AttrCurrentHitpoints,
	"ARMOR":             AttrArmor,
	"ATTACK":            AttrAttack,
	"HEAL":              AttrHeal,
	"SPEED":             AttrSpeed,
	"DIRECTION":         AttrDirection,
	"PROJECTILE":        AttrProjectile,
	"BUILDING":          AttrBuilding,
	"DROPSITE":          AttrDropsite,
	"RESOURCE_CARRIER":  AttrResourceCarrier,
	"WORKER":            AttrWorker,
	"MULTITYPE":         AttrMultitype,
	"GARRISON":          AttrGarrison,
}

// String возвращает строковое представление (для логов и дебага)
func (t AttributeType) String() string {
	if val, ok := attributeTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseAttributeType конвертирует строку в Enum (нужно для загрузки шаблонов/конфигов)
func ParseAttributeType(s string) AttributeType {
	upper := strings.ToUpper(s)
	if val, ok := attributeTypeStringToType[upper]; ok {
		return val
	}
	return AttrUnknown
}

// AttributeValue — полиморфный атрибут юнита.
//
// Каждая конкретная реализация хранит данные одной формы
// (текущее здоровье, таблица брони, содержимое гарнизона и т.д.)
// и сама знает, как себя глубоко скопировать.
type AttributeValue interface {
	// Type возвращает вид атрибута. Фиксируется при создании
	// и никогда не меняется.
	Type() AttributeType

	// Shared сообщает, является ли атрибут шаблонным.
	//
	// Шаблонные (shared) атрибуты общие для всех юнитов одного типа:
	// максимум здоровья, броня, скорость, ёмкость рабочего.
	// Нешаблонные (unshared) — строго per-instance: текущее здоровье,
	// сколько ресурсов несёт рабочий, кто сидит в гарнизоне.
	//
	// Свойство статическое: оно определяется конкретным типом атрибута
	// и не переключается в рантайме.
	Shared() bool

	// Copy возвращает независимую глубокую копию атрибута.
	//
	// Владеемые данные (карты, срезы) дублируются; слабые ссылки на
	// другие юниты и ссылки на типы/игроков копируются как ссылки.
	// Это единственный способ, которым AttributeSet размножает
	// атрибуты, не зная их конкретного типа.
	Copy() AttributeValue
}
