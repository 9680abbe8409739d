package engine

import (
	"sort"

	"strategos-server/internal/core/types/enums"
	"strategos-server/internal/domain"
	"strategos-server/pkg/api"
)

// BuildSnapshot создает полный слепок мира для отправки клиентам.
// Должен вызываться только из горутины цикла симуляции.
func (s *GameService) BuildSnapshot() api.ServerSnapshot {
	snapshot := api.ServerSnapshot{
		Type: "UPDATE",
		Tick: s.Tick,
		Logs: s.Logs,
	}

	for _, p := range s.Players {
		snapshot.Players = append(snapshot.Players, buildPlayerView(p))
	}
	// Карта не гарантирует порядок, клиенту удобнее стабильный список
	sort.Slice(snapshot.Players, func(i, j int) bool {
		return snapshot.Players[i].ID < snapshot.Players[j].ID
	})

	for _, u := range s.Units.All() {
		snapshot.Units = append(snapshot.Units, buildUnitView(u))
	}
	sort.Slice(snapshot.Units, func(i, j int) bool {
		return snapshot.Units[i].ID < snapshot.Units[j].ID
	})

	return snapshot
}

func buildPlayerView(p *domain.Player) api.PlayerView {
	view := api.PlayerView{
		ID:        p.ID,
		Name:      p.Name,
		Color:     p.Color,
		Stockpile: make(map[string]float64),
	}
	for res := enums.GameResource(0); res < enums.ResourceCount; res++ {
		view.Stockpile[res.String()] = p.Stockpile.Get(res)
	}
	return view
}

func buildUnitView(u *domain.Unit) api.UnitView {
	view := api.UnitView{
		ID:    u.ID.Key(),
		Type:  u.UnitType.Name,
		Owner: -1,
	}
	view.Pos.NE = u.Pos.NE
	view.Pos.SE = u.Pos.SE
	view.Pos.Up = u.Pos.Up

	if owner, ok := u.Owner(); ok {
		view.Owner = owner.ID
	}

	if attr, ok := u.Attributes.Get(domain.AttrCurrentHitpoints); ok {
		view.HP = attr.(*domain.CurrentHitpointsAttribute).HP
		view.IsDead = u.IsDead()
	}
	if attr, ok := u.Attributes.Get(domain.AttrMaxHitpoints); ok {
		view.MaxHP = attr.(*domain.MaxHitpointsAttribute).HP
	}

	if attr, ok := u.Attributes.Get(domain.AttrResourceCarrier); ok {
		carrier := attr.(*domain.ResourceCarrierAttribute)
		if carrier.Amount > 0 {
			view.Carrying = &api.CarryView{
				Resource: carrier.ResourceType.String(),
				Amount:   carrier.Amount,
			}
		}
	}

	if attr, ok := u.Attributes.Get(domain.AttrBuilding); ok {
		completed := attr.(*domain.BuildingAttribute).Completed
		view.Completed = &completed
	}

	return view
}
