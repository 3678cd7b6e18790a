package services_test

import (
	"testing"

	"agromarket/internal/models"
	"agromarket/internal/repositories"
	"agromarket/internal/services"
	"agromarket/internal/session"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) (*services.CartService, session.Session) {
	t.Helper()
	repo := repositories.NewMockProductRepository()
	for _, p := range []models.Product{
		{ID: "p1", Name: "Tomatoes", Price: 3.50, MaxQuantity: 20},
		{ID: "p2", Name: "Honey", Price: 12.00, MaxQuantity: 5},
		{ID: "p3", Name: "Old Cheese", Price: 8.00, MaxQuantity: 3, ExpirationDate: "2000-01-01"},
	} {
		p := p
		assert.NoError(t, repo.Create(&p))
	}
	return services.NewCartService(repo), session.Session{UserID: "user-1", Name: "Nikos"}
}

func TestCartService_AddItem(t *testing.T) {
	service, sess := newCartFixture(t)

	cart, err := service.AddItem(sess, "p1", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, cart.Count())

	// Same product merges into one line.
	cart, err = service.AddItem(sess, "p1", 3)
	assert.NoError(t, err)
	assert.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
}

func TestCartService_AddItem_ExpiredRejected(t *testing.T) {
	service, sess := newCartFixture(t)

	_, err := service.AddItem(sess, "p3", 1)
	assert.ErrorIs(t, err, services.ErrProductExpired)
	assert.Empty(t, service.Get(sess))
}

func TestCartService_AddItem_QuantityBounds(t *testing.T) {
	service, sess := newCartFixture(t)

	_, err := service.AddItem(sess, "p2", 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = service.AddItem(sess, "p2", 6)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = service.AddItem(sess, "p2", 5)
	assert.NoError(t, err)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	service, sess := newCartFixture(t)

	_, err := service.AddItem(sess, "p99", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCartService_AdjustAndRemove(t *testing.T) {
	service, sess := newCartFixture(t)

	_, err := service.AddItem(sess, "p1", 1)
	assert.NoError(t, err)

	// Delta adjustments clamp at 1.
	cart := service.AdjustItem(sess, "p1", -1)
	assert.Equal(t, 1, cart[0].Quantity)

	cart = service.AdjustItem(sess, "p1", 4)
	assert.Equal(t, 5, cart[0].Quantity)

	cart = service.RemoveItem(sess, "p1")
	assert.Empty(t, cart)
}

func TestCartService_CartsAreSeparatedByUser(t *testing.T) {
	service, sess := newCartFixture(t)
	other := session.Session{UserID: "user-2"}

	_, err := service.AddItem(sess, "p1", 2)
	assert.NoError(t, err)

	assert.Empty(t, service.Get(other))
	assert.Equal(t, 2, service.Get(sess).Count())
}

func TestCartService_Clear(t *testing.T) {
	service, sess := newCartFixture(t)

	_, err := service.AddItem(sess, "p1", 2)
	assert.NoError(t, err)

	service.Clear(sess)
	assert.Empty(t, service.Get(sess))
}
