package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerSnapshot это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" мира на момент тика симуляции.
type ServerSnapshot struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Tick номер тика симуляции, к которому относится снимок.
	Tick int64 `json:"tick"`

	// Players состояние всех игроков (запасы ресурсов).
	Players []PlayerView `json:"players,omitempty"`

	// Units срез всех юнитов мира.
	Units []UnitView `json:"units,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого тика.
	Logs []LogEntry `json:"logs,omitempty"`
}

// PlayerView это DTO для игрока.
type PlayerView struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Color     int                `json:"color"`
	Stockpile map[string]float64 `json:"stockpile"`
}

// UnitView это DTO для юнита мира.
type UnitView struct {
	// ID юнита в строковой форме, совпадает с тем, что печатает сервер в логах.
	ID   string `json:"id"`
	Type string `json:"type"`

	// Owner ID игрока-владельца. -1 для бесхозных объектов (деревья, залежи).
	Owner int `json:"owner"`

	Pos struct {
		NE float64 `json:"ne"`
		SE float64 `json:"se"`
		Up float64 `json:"up"`
	} `json:"pos"`

	// HP и MaxHP отсутствуют у объектов без здоровья (снаряды, залежи).
	HP    int `json:"hp,omitempty"`
	MaxHP int `json:"maxHp,omitempty"`

	IsDead bool `json:"isDead,omitempty"`

	// Carrying груз рабочего, если он что-то несет.
	Carrying *CarryView `json:"carrying,omitempty"`

	// Completed готовность здания от 0 до 1. Поле присутствует только у зданий.
	Completed *float64 `json:"completed,omitempty"`
}

// CarryView груз ресурса на руках у рабочего.
type CarryView struct {
	Resource string  `json:"resource"`
	Amount   float64 `json:"amount"`
}

// LogEntry представляет одну запись в журнале событий партии.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ECONOMY, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token идентификатор сессии клиента. Выдается сервером при подключении.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// SpawnPayload используется для действия SPAWN: создать юнит типа TypeName.
type SpawnPayload struct {
	TypeName string  `json:"typeName"`
	PlayerID int     `json:"playerId"`
	NE       float64 `json:"ne"`
	SE       float64 `json:"se"`
}

// TargetPayload используется для действий, нацеленных на другой юнит
// (ATTACK, HEAL, GATHER, DROPOFF, BUILD).
type TargetPayload struct {
	UnitID   string `json:"unitId"`
	TargetID string `json:"targetId"`
}

// MovePayload используется для действия MOVE.
type MovePayload struct {
	UnitID string  `json:"unitId"`
	NE     float64 `json:"ne"`
	SE     float64 `json:"se"`
}

// DestroyPayload используется для действия DESTROY.
type DestroyPayload struct {
	UnitID string `json:"unitId"`
}
