package http

import (
	"encoding/json"
	"io"

	"grubdash/internal/core/application/request"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// envelope is the {"data": ...} wrapper used by every request and success response.
type envelope struct {
	Data any `json:"data"`
}

type DishResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

type OrderLineResponse struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	DeliverTo    string              `json:"deliverTo"`
	MobileNumber string              `json:"mobileNumber"`
	Status       string              `json:"status"`
	Dishes       []OrderLineResponse `json:"dishes"`
}

func toDishResponse(d *dish.Dish) DishResponse {
	return DishResponse{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	lines := make([]OrderLineResponse, len(items))
	for i, item := range items {
		lines[i] = OrderLineResponse{DishID: item.DishID(), Quantity: item.Quantity()}
	}

	return OrderResponse{
		ID:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       lines,
	}
}

// readData decodes the request body envelope without a schema. A missing, unreadable
// or malformed body yields an absent payload, which the pipeline reports as missing data.
func readData(c echo.Context) request.Payload {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || len(body) == 0 {
		return request.Payload{}
	}

	var in envelope
	if err = json.Unmarshal(body, &in); err != nil {
		return request.Payload{}
	}
	return request.NewPayload(in.Data)
}
