package courier_location_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.UpdateLocationRequest
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModify := entities.CourierModify{
		ID: pointer.To(id),
		X:  pointer.To(updateDTO.Location.X),
		Y:  pointer.To(updateDTO.Location.Y),
	}
	if updateDTO.Status != nil {
		courierModify.Status = pointer.To(entities.CourierStatusType(*updateDTO.Status))
	}

	courierEntity, err := h.service.UpdateCourier(r.Context(), courierModify)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, entities.ErrCoordinateOutOfRange),
			errors.Is(err, courier.ErrInvalidStatus),
			errors.Is(err, courier.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toCourierDTO(courierEntity)

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
