package couriers_free_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/entities"
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
	couriers, err := h.service.GetFreeCouriers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Courier, 0, len(couriers))
	for _, courierEntity := range couriers {
		response = append(response, toCourierDTO(courierEntity))
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

func toCourierDTO(courierEntity *entities.Courier) dto.Courier {
	return dto.Courier{
		ID:                   courierEntity.ID.String(),
		Location:             dto.Point{X: courierEntity.Location.X, Y: courierEntity.Location.Y},
		TransportType:        courierEntity.TransportType.String(),
		Status:               courierEntity.Status.String(),
		CompletedOrdersToday: courierEntity.CompletedOrdersToday,
	}
}
