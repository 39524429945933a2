// Package orderrepo persists order aggregates with GORM.
package orderrepo

import (
	"grubdash/internal/core/domain/model/order"
)

// OrderDTO is the "orders" row. Seq keeps insertion order and the order lines are
// stored as a JSON array.
type OrderDTO struct {
	Seq          uint64         `gorm:"primaryKey;autoIncrement"`
	ID           string         `gorm:"uniqueIndex;not null"`
	DeliverTo    string         `gorm:"not null"`
	MobileNumber string         `gorm:"not null"`
	Status       int            `gorm:"not null;index"`
	Items        []OrderLineDTO `gorm:"serializer:json;type:jsonb;not null"`
}

// OrderLineDTO is one element of the items column.
type OrderLineDTO struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	lines := make([]OrderLineDTO, len(items))
	for i, item := range items {
		lines[i] = OrderLineDTO{DishID: item.DishID(), Quantity: item.Quantity()}
	}

	return OrderDTO{
		ID:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       int(o.Status()),
		Items:        lines,
	}
}

// toDomain rebuilds the aggregate in its stored status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		item, err := order.NewItem(line.DishID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, dto.DeliverTo, dto.MobileNumber, order.Status(dto.Status), items)
}
