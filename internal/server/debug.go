package server

import (
	"encoding/json"
	"net/http"

	"strategos-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/types", h.handleListTypes)
	mux.HandleFunc("/debug/stats", h.handleStats)
}

// /debug/types - список зарегистрированных типов юнитов
func (h *DebugHandler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	type TypeSummary struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		Class      string `json:"class"`
		Attributes int    `json:"attributes"`
	}

	var summary []TypeSummary
	for _, ut := range h.Service.Registry.All() {
		summary = append(summary, TypeSummary{
			ID:         ut.ID,
			Name:       ut.Name,
			Class:      ut.Class.String(),
			Attributes: ut.Defaults.Len(),
		})
	}

	writeJSON(w, summary)
}

// /debug/stats - размеры внутренних структур движка.
// Чтение без блокировок: значения могут быть слегка устаревшими, для дебага ок.
func (h *DebugHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := map[string]int{
		"units":       h.Service.Units.Len(),
		"players":     len(h.Service.Players),
		"subscribers": h.Service.Hub.Count(),
	}
	writeJSON(w, stats)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой результат возвращаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
