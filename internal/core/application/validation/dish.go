package validation

import (
	"context"
	"fmt"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/pkg/errs"
)

// DishFields lists the mutable dish fields in the order they are checked.
var DishFields = []string{"name", "description", "price", "image_url"}

// RequireDishField fails unless the named field is present and truthy. String fields
// holding any other type count as absent.
//
// For "price" a second check follows presence: the value must be a non-negative
// whole number. Zero never gets that far since it is falsy.
func RequireDishField(name string) pipeline.Stage[*request.DishScope] {
	return func(_ context.Context, scope *request.DishScope) error {
		value := scope.Data.Field(name)
		if !present(name, value) {
			return errs.NewValidationError(fmt.Sprintf("Dish must include a %s.", name))
		}
		if name == "price" {
			if n, ok := request.WholeNumber(value); !ok || n < 0 {
				return errs.NewValidationError("Dish must include a valid price.")
			}
		}
		return nil
	}
}

// DishIDMatchesPath fails when the payload carries an id other than the route id.
func DishIDMatchesPath() pipeline.Stage[*request.DishScope] {
	return func(_ context.Context, scope *request.DishScope) error {
		submitted := scope.Data.Field("id")
		if idMismatch(submitted, scope.DishID) {
			return errs.NewValidationError(fmt.Sprintf(
				"Dish id does not match route id. Dish: %v, Route: %s", submitted, scope.DishID))
		}
		return nil
	}
}

func present(name string, value any) bool {
	if !request.Truthy(value) {
		return false
	}
	switch name {
	case "price", "dishes":
		return true
	default:
		_, ok := value.(string)
		return ok
	}
}
