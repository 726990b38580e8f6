package dispatch_stats_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.DispatchStatsResponse{
		TotalOrders:      stats.TotalOrders,
		OrdersByStatus:   make(map[string]int64, len(stats.OrdersByStatus)),
		TotalCouriers:    stats.TotalCouriers,
		CouriersByStatus: make(map[string]int64, len(stats.CouriersByStatus)),
		TotalAssignments: stats.TotalAssignments,
		QueuedOrders:     stats.QueuedOrders,
	}
	for status, count := range stats.OrdersByStatus {
		response.OrdersByStatus[status.String()] = count
	}
	for status, count := range stats.CouriersByStatus {
		response.CouriersByStatus[status.String()] = count
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
