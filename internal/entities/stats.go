package entities

type DispatchStats struct {
	TotalOrders      int64
	OrdersByStatus   map[OrderStatusType]int64
	TotalCouriers    int64
	CouriersByStatus map[CourierStatusType]int64
	TotalAssignments int64
	QueuedOrders     int64
}
