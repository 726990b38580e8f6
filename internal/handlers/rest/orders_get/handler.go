package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/order"
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
	status := entities.OrderStatusType(r.URL.Query().Get("status"))

	orders, err := h.service.GetOrdersByStatus(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Order, 0, len(orders))
	for _, orderEntity := range orders {
		response = append(response, toOrderDTO(orderEntity))
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

func toOrderDTO(orderEntity entities.Order) dto.Order {
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
