package systems

import (
	"strategos-server/internal/domain"
	"strategos-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// BuildRate - прирост готовности здания одним строителем в секунду.
const BuildRate = 0.05

// TickConstruct продвигает стройку site силами builder за dt секунд.
// Возвращает true, если здание достроилось на этом тике.
func TickConstruct(builder, site *domain.Unit, dt float64) bool {
	if !builder.Has(domain.AttrWorker) || !site.Has(domain.AttrBuilding) {
		return false
	}

	building := domain.GetAttribute[domain.BuildingAttribute](site.Attributes, domain.AttrBuilding)
	if building.Completed >= 1 {
		return false
	}

	building.Completed += BuildRate * dt
	if building.Completed < 1 {
		return false
	}
	building.Completed = 1

	// Достроенное здание встаёт на террейн окончательно
	building.CompletionState = domain.ObjectStatePlaced

	// Здоровье достроенного здания доводится до максимума
	if site.Has(domain.AttrMaxHitpoints) && site.Has(domain.AttrCurrentHitpoints) {
		maxHP := domain.GetAttribute[domain.MaxHitpointsAttribute](site.Attributes, domain.AttrMaxHitpoints)
		hp := domain.GetAttribute[domain.CurrentHitpointsAttribute](site.Attributes, domain.AttrCurrentHitpoints)
		hp.HP = maxHP.HP
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "build_system",
		"builder_id": builder.ID,
		"site_id":    site.ID,
		"site_type":  site.UnitType.Name,
	}).Info("Construction completed.")

	return true
}
