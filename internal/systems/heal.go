package systems

import (
	"strategos-server/internal/domain"
	"strategos-server/pkg/logger"
)

// TickHeal выполняет лечение target лекарем healer за отрезок dt секунд.
// Возвращает количество восстановленного здоровья.
func TickHeal(healer, target *domain.Unit, dt float64) int {
	if !healer.Has(domain.AttrHeal) {
		return 0
	}
	if !target.Has(domain.AttrCurrentHitpoints) || !target.Has(domain.AttrMaxHitpoints) {
		return 0
	}
	if target.IsDead() {
		// Трупы не лечим
		return 0
	}

	heal := domain.GetAttribute[domain.HealAttribute](healer.Attributes, domain.AttrHeal)
	if heal.Rate <= 0 {
		return 0
	}

	hp := domain.GetAttribute[domain.CurrentHitpointsAttribute](target.Attributes, domain.AttrCurrentHitpoints)
	maxHP := domain.GetAttribute[domain.MaxHitpointsAttribute](target.Attributes, domain.AttrMaxHitpoints)

	// Сколько полных циклов лечения укладывается в dt
	cycles := int(dt / heal.Rate)
	if cycles <= 0 {
		return 0
	}

	restored := heal.Life * cycles
	if hp.HP+restored > maxHP.HP {
		restored = maxHP.HP - hp.HP
	}
	hp.HP += restored

	if restored > 0 {
		logger.Log.WithField("component", "heal_system").
			Debugf("Healed %s for %d hp", target.ID, restored)
	}

	return restored
}
