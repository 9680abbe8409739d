package systems

import (
	"strategos-server/internal/domain"
	"strategos-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ApplyAttack наносит один удар attacker по target.
// Возвращает true, если цель погибла от этого удара.
func ApplyAttack(attacker, target *domain.Unit) bool {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_type": attacker.UnitType.Name,
		"target_id":     target.ID,
		"target_type":   target.UnitType.Name,
	})

	// --- Проверка граничных условий ---

	if !attacker.Has(domain.AttrAttack) {
		combatLogger.Warn("Attack failed: attacker has no attack attribute.")
		return false
	}
	if !target.Has(domain.AttrCurrentHitpoints) {
		combatLogger.Warn("Attack failed: target has no hitpoints.")
		return false
	}
	if target.IsDead() {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return false
	}

	attack := domain.GetAttribute[domain.AttackAttribute](attacker.Attributes, domain.AttrAttack)
	hp := domain.GetAttribute[domain.CurrentHitpointsAttribute](target.Attributes, domain.AttrCurrentHitpoints)

	// --- Расчёт урона ---

	// Броня вычитается по каждому классу урона отдельно.
	// Отсутствующий класс в таблице брони даёт нулевое снижение.
	var armor map[int]int
	if target.Has(domain.AttrArmor) {
		armor = domain.GetAttribute[domain.ArmorAttribute](target.Attributes, domain.AttrArmor).Armor
	}

	totalDamage := 0
	for class, amount := range attack.Damage {
		classDamage := amount - armor[class]
		if classDamage > 0 {
			totalDamage += classDamage
		}
	}

	// Финальный урон (минимум 1)
	if totalDamage < 1 {
		totalDamage = 1
	}

	hpBefore := hp.HP
	hp.HP -= totalDamage
	died := hp.HP <= 0

	combatLogger.WithFields(logrus.Fields{
		"damage":      totalDamage,
		"hp_before":   hpBefore,
		"hp_after":    hp.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	return died
}

// LaunchProjectile создает снаряд типа attack.ProjectileType,
// запоминая в нём, кто стрелял. Возвращает nil для атак ближнего боя.
func LaunchProjectile(container *domain.UnitContainer, shooter *domain.Unit) *domain.Unit {
	if !shooter.Has(domain.AttrAttack) {
		return nil
	}
	attack := domain.GetAttribute[domain.AttackAttribute](shooter.Attributes, domain.AttrAttack)
	if attack.ProjectileType == nil {
		return nil
	}

	owner, _ := shooter.Owner()
	arrow := container.NewUnit(attack.ProjectileType, owner)
	arrow.Pos = shooter.Pos
	arrow.Pos.Up += attack.InitHeight

	if arrow.Has(domain.AttrProjectile) {
		proj := domain.GetAttribute[domain.ProjectileAttribute](arrow.Attributes, domain.AttrProjectile)
		proj.Launcher = container.Reference(shooter.ID)
		proj.Launched = true
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "combat_system",
		"shooter_id": shooter.ID,
		"arrow_id":   arrow.ID,
	}).Debug("Projectile launched.")

	return arrow
}
