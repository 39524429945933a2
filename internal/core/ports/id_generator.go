package ports

// IDGenerator produces identifiers for new dishes and orders.
// NextID is called exactly once per create and must not return an id already
// present in the target collection.
type IDGenerator interface {
	NextID() string
}
