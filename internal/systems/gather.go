package systems

import (
	"strategos-server/internal/domain"
	"strategos-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TickGather выполняет добычу ресурса рабочим worker из узла node
// за отрезок dt секунд. Возвращает фактически добытое количество.
//
// Узел — любой юнит с запасом ресурса: дерево, залежь золота, туша.
func TickGather(worker, node *domain.Unit, dt float64) float64 {
	if !worker.Has(domain.AttrWorker) || !worker.Has(domain.AttrResourceCarrier) {
		return 0
	}
	if !node.Has(domain.AttrResourceCarrier) {
		return 0
	}

	wk := domain.GetAttribute[domain.WorkerAttribute](worker.Attributes, domain.AttrWorker)
	carry := domain.GetAttribute[domain.ResourceCarrierAttribute](worker.Attributes, domain.AttrResourceCarrier)
	source := domain.GetAttribute[domain.ResourceCarrierAttribute](node.Attributes, domain.AttrResourceCarrier)

	// Начиная добывать другой ресурс, рабочий бросает прежний груз
	if carry.ResourceType != source.ResourceType {
		carry.ResourceType = source.ResourceType
		carry.Amount = 0
	}

	gathered := wk.GatherRate.Get(source.ResourceType) * dt

	// Ограничения: ёмкость рабочего и остаток в узле
	if free := wk.Capacity - carry.Amount; gathered > free {
		gathered = free
	}
	if gathered > source.Amount {
		gathered = source.Amount
	}
	if gathered <= 0 {
		return 0
	}

	source.Amount -= gathered
	carry.Amount += gathered

	logger.Log.WithFields(logrus.Fields{
		"component": "gather_system",
		"worker_id": worker.ID,
		"node_id":   node.ID,
		"resource":  source.ResourceType.String(),
		"gathered":  gathered,
		"carrying":  carry.Amount,
	}).Debug("Resources gathered.")

	return gathered
}

// DropOff сдает груз рабочего на склад dropsite.
// Ресурс зачисляется владельцу рабочего. Возвращает false, если
// склад не принимает этот ресурс или сдавать нечего.
func DropOff(worker, dropsite *domain.Unit) bool {
	if !worker.Has(domain.AttrResourceCarrier) || !dropsite.Has(domain.AttrDropsite) {
		return false
	}

	carry := domain.GetAttribute[domain.ResourceCarrierAttribute](worker.Attributes, domain.AttrResourceCarrier)
	drop := domain.GetAttribute[domain.DropsiteAttribute](dropsite.Attributes, domain.AttrDropsite)

	if carry.Amount <= 0 {
		return false
	}
	if !drop.AcceptingResource(carry.ResourceType) {
		logger.Log.WithFields(logrus.Fields{
			"component": "gather_system",
			"worker_id": worker.ID,
			"resource":  carry.ResourceType.String(),
		}).Debug("Dropsite does not accept this resource.")
		return false
	}

	owner, ok := worker.Owner()
	if !ok {
		return false
	}

	var income domain.ResourceBundle
	income.Set(carry.ResourceType, carry.Amount)
	owner.Receive(income)

	logger.Log.WithFields(logrus.Fields{
		"component": "gather_system",
		"worker_id": worker.ID,
		"player":    owner.Name,
		"resource":  carry.ResourceType.String(),
		"amount":    carry.Amount,
	}).Info("Resources dropped off.")

	carry.Amount = 0
	return true
}
