package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/engine"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
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
	mux.HandleFunc("/debug/sessions", h.handleListSessions)
	mux.HandleFunc("/debug/visibility", h.handleVisibility)
	mux.HandleFunc("/debug/compare", h.handleCompare)
}

// /debug/sessions - список сессий: уровень, ход, размеры видимого множества и тумана
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.SessionInfos())
}

// /debug/visibility?session=ID - видимые и запомненные гексы плюс ASCII-карта тумана
func (h *DebugHandler) handleVisibility(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.VisibilityReport(r.URL.Query().Get("session"))
	if err != nil {
		writeError(w, err)
		return
	}

	// ?format=text отдает только карту, ее удобнее читать в терминале
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(report.FogMap + "\n"))
		return
	}
	writeJSON(w, report)
}

// /debug/compare?session=ID - shadowcast против flood fill из текущей позиции игрока
func (h *DebugHandler) handleCompare(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.CompareReport(r.URL.Query().Get("session"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, report)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, engine.ErrUnknownSession) {
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Warn("failed to encode debug response")
	}
}
