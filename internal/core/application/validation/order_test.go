package validation_test

import (
	"testing"

	"grubdash/internal/core/application/request"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem("d1", 2)
	require.NoError(t, err)
	o, err := order.RestoreOrder("o1", "1600 Pennsylvania Avenue NW", "(202) 456-1111", status, []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestRequireOrderField(t *testing.T) {
	full := payload(t, `{"deliverTo":"123 Main","mobileNumber":"555-0100","dishes":[]}`)
	for _, field := range validation.OrderFields {
		require.NoError(t, validation.RequireOrderField(field)(t.Context(), &request.OrderScope{Data: full}), field)
	}

	testCases := []struct {
		field   string
		doc     string
		message string
	}{
		{"deliverTo", `{}`, "Order must include a deliverTo."},
		{"deliverTo", `{"deliverTo":""}`, "Order must include a deliverTo."},
		{"mobileNumber", `{"mobileNumber":5550100}`, "Order must include a mobileNumber."},
		{"dishes", `{"dishes":null}`, "Order must include a dishes."},
	}
	for _, tc := range testCases {
		t.Run(tc.message+" "+tc.doc, func(t *testing.T) {
			err := validation.RequireOrderField(tc.field)(t.Context(), &request.OrderScope{Data: payload(t, tc.doc)})
			requireValidation(t, err, tc.message)
		})
	}
}

func TestDishesNonEmpty(t *testing.T) {
	stage := validation.DishesNonEmpty()

	require.NoError(t, stage(t.Context(), &request.OrderScope{Data: payload(t, `{"dishes":[{"dishId":"d1","quantity":1}]}`)}))

	for _, doc := range []string{`{"dishes":[]}`, `{"dishes":"d1"}`, `{"dishes":{"0":1}}`} {
		err := stage(t.Context(), &request.OrderScope{Data: payload(t, doc)})
		requireValidation(t, err, "Order must include at least one dish.")
	}
}

func TestQuantitiesValid(t *testing.T) {
	stage := validation.QuantitiesValid()

	require.NoError(t, stage(t.Context(), &request.OrderScope{
		Data: payload(t, `{"dishes":[{"dishId":"d1","quantity":1},{"dishId":"d2","quantity":3}]}`),
	}))

	testCases := []struct {
		name    string
		doc     string
		message string
	}{
		{"zero", `{"dishes":[{"quantity":0}]}`, "Dish 0 must have a quantity that is an integer greater than 0."},
		{"missing on second", `{"dishes":[{"quantity":1},{"dishId":"d2"}]}`, "Dish 1 must have a quantity that is an integer greater than 0."},
		{"string", `{"dishes":[{"quantity":1},{"quantity":1},{"quantity":"2"}]}`, "Dish 2 must have a quantity that is an integer greater than 0."},
		{"fraction", `{"dishes":[{"quantity":1.5}]}`, "Dish 0 must have a quantity that is an integer greater than 0."},
		{"negative", `{"dishes":[{"quantity":-2}]}`, "Dish 0 must have a quantity that is an integer greater than 0."},
		{"non-object line", `{"dishes":["d1"]}`, "Dish 0 must have a quantity that is an integer greater than 0."},
		{"first failure wins", `{"dishes":[{"quantity":0},{"quantity":0}]}`, "Dish 0 must have a quantity that is an integer greater than 0."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := stage(t.Context(), &request.OrderScope{Data: payload(t, tc.doc)})
			requireValidation(t, err, tc.message)
		})
	}
}

func TestStatusTransition(t *testing.T) {
	stage := validation.StatusTransition()
	const invalidStatus = "Order must have a status of pending, preparing, out-for-delivery, or delivered."

	t.Run("requires a resolved order", func(t *testing.T) {
		err := stage(t.Context(), &request.OrderScope{Data: payload(t, `{"status":"pending"}`)})
		require.ErrorIs(t, err, validation.ErrOrderNotResolved)
	})

	t.Run("accepts every state from a non-final order", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Preparing, order.OutForDelivery} {
			for _, to := range []string{"pending", "preparing", "out-for-delivery", "delivered"} {
				scope := &request.OrderScope{Order: storedOrder(t, from), Data: payload(t, `{"status":"`+to+`"}`)}
				assert.NoError(t, stage(t.Context(), scope), "%s -> %s", from, to)
			}
		}
	})

	for _, doc := range []string{`{}`, `{"status":""}`, `{"status":"invalid"}`, `{"status":"cancelled"}`, `{"status":3}`} {
		t.Run("rejects "+doc, func(t *testing.T) {
			scope := &request.OrderScope{Order: storedOrder(t, order.Pending), Data: payload(t, doc)}
			requireValidation(t, stage(t.Context(), scope), invalidStatus)
		})
	}

	t.Run("delivered order is frozen", func(t *testing.T) {
		for _, to := range []string{"pending", "delivered"} {
			scope := &request.OrderScope{Order: storedOrder(t, order.Delivered), Data: payload(t, `{"status":"`+to+`"}`)}
			requireValidation(t, stage(t.Context(), scope), "A delivered order cannot be changed.")
		}
	})
}

func TestOrderIDMatchesPath(t *testing.T) {
	stage := validation.OrderIDMatchesPath()

	require.NoError(t, stage(t.Context(), &request.OrderScope{OrderID: "o1", Data: payload(t, `{"id":"o1"}`)}))
	require.NoError(t, stage(t.Context(), &request.OrderScope{OrderID: "o1", Data: payload(t, `{}`)}))

	err := stage(t.Context(), &request.OrderScope{OrderID: "o1", Data: payload(t, `{"id":"o2"}`)})
	requireValidation(t, err, "Order id does not match route id. Order: o2, Route: o1.")
}

func TestOrderIsPending(t *testing.T) {
	stage := validation.OrderIsPending()

	require.NoError(t, stage(t.Context(), &request.OrderScope{Order: storedOrder(t, order.Pending)}))

	for _, status := range []order.Status{order.Preparing, order.OutForDelivery, order.Delivered} {
		err := stage(t.Context(), &request.OrderScope{Order: storedOrder(t, status)})
		requireValidation(t, err, "An order cannot be deleted unless it is pending.")
	}

	require.ErrorIs(t, stage(t.Context(), &request.OrderScope{}), validation.ErrOrderNotResolved)
}
