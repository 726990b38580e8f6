package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/pkg/logger"
	"github.com/AlekSi/pointer"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderCreateEntity := entities.OrderCreate{
		PickupX:   orderCreateDTO.PickupLocation.X,
		PickupY:   orderCreateDTO.PickupLocation.Y,
		DeliveryX: orderCreateDTO.DeliveryLocation.X,
		DeliveryY: orderCreateDTO.DeliveryLocation.Y,
		Priority:  orderCreateDTO.Priority,
		WeightKg:  orderCreateDTO.WeightKg,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrCoordinateOutOfRange),
			errors.Is(err, entities.ErrPriorityOutOfRange),
			errors.Is(err, entities.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
