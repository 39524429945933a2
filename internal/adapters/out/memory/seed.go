package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
)

// Seed is the on-disk form of the initial collections:
//
//	{"dishes": [{"id": "...", "name": "...", ...}], "orders": [{"id": "...", "status": "pending", ...}]}
type Seed struct {
	Dishes []SeedDish  `json:"dishes"`
	Orders []SeedOrder `json:"orders"`
}

type SeedDish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

type SeedOrder struct {
	ID           string         `json:"id"`
	DeliverTo    string         `json:"deliverTo"`
	MobileNumber string         `json:"mobileNumber"`
	Status       string         `json:"status"`
	Dishes       []SeedLineItem `json:"dishes"`
}

type SeedLineItem struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

// ReadSeed decodes a seed document.
func ReadSeed(r io.Reader) (Seed, error) {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return seed, nil
}

// ReadSeedFile decodes the seed document at path.
func ReadSeedFile(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	return ReadSeed(f)
}

// Load replaces the store contents with the seed. Entries keep the order they have
// in the document. An order without a status is loaded as pending.
func (s *Store) Load(seed Seed) error {
	dishes := make([]*dish.Dish, 0, len(seed.Dishes))
	for i, sd := range seed.Dishes {
		d, err := dish.NewDish(sd.ID, sd.Name, sd.Description, sd.Price, sd.ImageURL)
		if err != nil {
			return fmt.Errorf("seed dish %d: %w", i, err)
		}
		dishes = append(dishes, d)
	}

	orders := make([]*order.Order, 0, len(seed.Orders))
	for i, so := range seed.Orders {
		o, err := so.toDomain()
		if err != nil {
			return fmt.Errorf("seed order %d: %w", i, err)
		}
		orders = append(orders, o)
	}

	if err := errors.Join(uniqueIDs(dishes, (*dish.Dish).ID), uniqueIDs(orders, (*order.Order).ID)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dishes = dishes
	s.orders = orders
	return nil
}

func (so SeedOrder) toDomain() (*order.Order, error) {
	status := order.Pending
	if so.Status != "" {
		parsed, err := order.ParseStatus(so.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	items := make([]order.Item, 0, len(so.Dishes))
	for _, line := range so.Dishes {
		item, err := order.NewItem(line.DishID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(so.ID, so.DeliverTo, so.MobileNumber, status, items)
}

func uniqueIDs[T any](entries []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[id(e)]; ok {
			return fmt.Errorf("duplicate id %s", id(e))
		}
		seen[id(e)] = struct{}{}
	}
	return nil
}
