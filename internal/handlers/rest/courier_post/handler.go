package courier_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/courier"
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
	var courierCreateDTO dto.CourierCreate
	err := json.NewDecoder(r.Body).Decode(&courierCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierCreateEntity := entities.CourierCreate{
		X:             courierCreateDTO.Location.X,
		Y:             courierCreateDTO.Location.Y,
		TransportType: entities.CourierTransportType(courierCreateDTO.TransportType),
	}

	courierEntity, err := h.service.RegisterCourier(r.Context(), courierCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidTransport),
			errors.Is(err, entities.ErrCoordinateOutOfRange):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toCourierDTO(courierEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
