package domain

// Player - игрок (фракция).
//
// Юниты ссылаются на игрока через OwnerAttribute, но не владеют им:
// игрок создаётся и уничтожается игровым сервисом.
type Player struct {
	ID    int
	Name  string
	Color int

	// Stockpile - накопленные ресурсы игрока.
	Stockpile ResourceBundle
}

// CanAfford проверяет, хватает ли ресурсов на стоимость cost.
func (p *Player) CanAfford(cost ResourceBundle) bool {
	return p.Stockpile.Has(cost)
}

// Pay списывает стоимость cost. Возвращает false, если не хватило.
func (p *Player) Pay(cost ResourceBundle) bool {
	return p.Stockpile.Deduct(cost)
}

// Receive зачисляет ресурсы игроку.
func (p *Player) Receive(income ResourceBundle) {
	p.Stockpile.Add(income)
}
