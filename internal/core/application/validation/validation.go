// Package validation provides the payload and domain-rule stages that gate dish and
// order mutations.
//
// Every stage reads the request scope and either returns nil or an *errs.RequestError
// whose message is rendered to the client as-is. Stages never touch the store.
package validation

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/pkg/errs"
)

const msgMissingData = "Please include a data object in your request body."

// RequireData fails unless the request carries a truthy data envelope.
func RequireData[S request.Carrier]() pipeline.Stage[S] {
	return func(_ context.Context, scope S) error {
		if !scope.Payload().Present() {
			return errs.NewValidationError(msgMissingData)
		}
		return nil
	}
}

// idMismatch reports whether the submitted id is set and differs from the route id.
// A submitted id of any type counts when it is truthy.
func idMismatch(submitted any, routeID string) bool {
	if !request.Truthy(submitted) {
		return false
	}
	s, ok := submitted.(string)
	return !ok || s != routeID
}
