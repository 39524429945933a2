// Package order contains the Order aggregate and its lifecycle.
//
// An order is placed as pending and moves freely between pending, preparing and
// out-for-delivery. Delivered is terminal: once reached, the order can no longer be
// changed. Only pending orders can be deleted.
//
//	pending <──> preparing <──> out-for-delivery
//	   │             │                 │
//	   └─────────────┴────────┬────────┘
//	                          v
//	                      delivered (final)
//
// Every line of an order references a dish by id and carries a quantity of at least one.
package order
