package order_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/order"
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

	orderEntity, err := h.service.CompleteOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrInvalidOrderState):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	orderDTO := dto.Order{
		ID:               orderEntity.ID.String(),
		PickupLocation:   dto.Point{X: orderEntity.PickupLocation.X, Y: orderEntity.PickupLocation.Y},
		DeliveryLocation: dto.Point{X: orderEntity.DeliveryLocation.X, Y: orderEntity.DeliveryLocation.Y},
		Status:           orderEntity.Status.String(),
		Priority:         orderEntity.Priority,
		WeightKg:         orderEntity.WeightKg,
		CreatedAt:        orderEntity.CreatedAt,
	}
	if orderEntity.AssignedCourierID != nil {
		orderDTO.AssignedCourierID = pointer.To(orderEntity.AssignedCourierID.String())
	}
	return orderDTO
}
