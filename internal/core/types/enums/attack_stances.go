package enums

import "strings"

// AttackStance — боевая стойка юнита.
type AttackStance uint8

const (
	StanceDoNothing AttackStance = iota
	StanceAggressive
	StanceDefensive
	StanceStandGround
)

var attackStanceToString = map[AttackStance]string{
	StanceDoNothing:   "DO_NOTHING",
	StanceAggressive:  "AGGRESSIVE",
	StanceDefensive:   "DEFENSIVE",
	StanceStandGround: "STAND_GROUND",
}

var attackStanceStringToType = map[string]AttackStance{
	"DO_NOTHING":   StanceDoNothing,
	"AGGRESSIVE":   StanceAggressive,
	"DEFENSIVE":    StanceDefensive,
	"STAND_GROUND": StanceStandGround,
}

// String возвращает строковое представление (для логов и дебага)
func (s AttackStance) String() string {
	if val, ok := attackStanceToString[s]; ok {
		return val
	}
	return "DO_NOTHING"
}

// ParseAttackStance конвертирует строку в Enum
func ParseAttackStance(str string) AttackStance {
	upper := strings.ToUpper(str)
	if val, ok := attackStanceStringToType[upper]; ok {
		return val
	}
	return StanceDoNothing
}
