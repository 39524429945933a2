// Package dish contains the Dish aggregate: a menu entry with a name, description,
// price and image. Dishes are created and fully replaced, never deleted, since
// historical orders keep referring to them by id.
package dish
