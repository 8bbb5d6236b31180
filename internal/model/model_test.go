package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	for _, raw := range []string{"", " repair ", "repair\n", "Repair", "gardening"} {
		_, err := ParseCategory(raw)
		assert.Error(t, err, "category %q must be rejected", raw)
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusCompleted.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus(" pending").Valid())
}

func TestUserView_OmitsPassword(t *testing.T) {
	u := User{ID: "u1", Name: "Ali", Phone: "+998", Email: "ali@example.com", Password: "secret"}
	assert.Equal(t, UserView{ID: "u1", Name: "Ali", Phone: "+998", Email: "ali@example.com"}, u.View())
}
