package dish_test

import (
	"testing"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDish(t *testing.T) {
	t.Run("creates dish with valid fields", func(t *testing.T) {
		d, err := dish.NewDish("d1", "Dolcelatte and chickpea spaghetti", "Spaghetti topped with blue cheese", 19, "https://images.example.com/spaghetti.jpg")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "d1", d.ID())
		assert.Equal(t, "Dolcelatte and chickpea spaghetti", d.Name())
		assert.Equal(t, "Spaghetti topped with blue cheese", d.Description())
		assert.Equal(t, 19, d.Price())
		assert.Equal(t, "https://images.example.com/spaghetti.jpg", d.ImageURL())
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		d, err := dish.NewDish("", "", "", 0, "")

		require.Error(t, err)
		assert.Nil(t, d)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		for _, field := range []string{"id", "name", "description", "price", "image_url"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := dish.NewDish("d1", "name", "description", -1, "url")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is not greater than 0")
	})
}

func TestDish_Validate(t *testing.T) {
	var d dish.Dish
	require.ErrorIs(t, d.Validate(), dish.ErrDishIsNotConstructed)

	var nilDish *dish.Dish
	require.ErrorIs(t, nilDish.Validate(), dish.ErrDishIsNotConstructed)
}

func TestDish_Replace(t *testing.T) {
	t.Run("overwrites all mutable fields and keeps id", func(t *testing.T) {
		d, err := dish.NewDish("d1", "old", "old description", 5, "old.jpg")
		require.NoError(t, err)

		require.NoError(t, d.Replace("new", "new description", 7, "new.jpg"))

		assert.Equal(t, "d1", d.ID())
		assert.Equal(t, "new", d.Name())
		assert.Equal(t, "new description", d.Description())
		assert.Equal(t, 7, d.Price())
		assert.Equal(t, "new.jpg", d.ImageURL())
	})

	t.Run("leaves dish untouched when a field is invalid", func(t *testing.T) {
		d, err := dish.NewDish("d1", "old", "old description", 5, "old.jpg")
		require.NoError(t, err)

		require.Error(t, d.Replace("new", "", 7, "new.jpg"))

		assert.Equal(t, "old", d.Name())
		assert.Equal(t, 5, d.Price())
	})
}

func TestDish_Clone(t *testing.T) {
	d, err := dish.NewDish("d1", "name", "description", 5, "url")
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Replace("other", "other", 9, "other"))

	assert.Equal(t, "name", d.Name())
	assert.Equal(t, "other", c.Name())
	require.NoError(t, c.Validate())
}
