package services_test

import (
	"testing"

	"agromarket/internal/models"
	"agromarket/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock implementation of repositories.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByProductID(productID string) ([]models.Review, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func TestReviewService_AddReview_RecomputesMean(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewReviewService(mockReviews, mockProducts)

	product := &models.Product{ID: "p1", Name: "Thyme Honey", Rating: 5.0, ReviewCount: 2}
	review := &models.Review{ProductID: "p1", Author: "Nikos", Rating: 2, Comment: "Crystallized on arrival"}

	mockProducts.On("GetByID", "p1").Return(product, nil)
	mockReviews.On("Create", review).Return(nil)
	// All three reviews, the new one included
	mockReviews.On("GetByProductID", "p1").Return([]models.Review{
		{ProductID: "p1", Rating: 5},
		{ProductID: "p1", Rating: 5},
		{ProductID: "p1", Rating: 2},
	}, nil)
	mockProducts.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "p1" && p.ReviewCount == 3
	})).Return(nil)

	err := service.AddReview(review)

	assert.NoError(t, err)
	assert.False(t, review.CreatedAt.IsZero())
	assert.InDelta(t, 4.0, product.Rating, 1e-9) // (5+5+2)/3
	assert.Equal(t, 3, product.ReviewCount)
	mockReviews.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestReviewService_AddReview_RatingOutOfRange(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewReviewService(mockReviews, mockProducts)

	for _, rating := range []int{0, 6, -1} {
		err := service.AddReview(&models.Review{ProductID: "p1", Author: "Nikos", Rating: rating})
		assert.ErrorIs(t, err, services.ErrInvalidRating)
	}
	mockReviews.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewService_AddReview_ProductMissing(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewReviewService(mockReviews, mockProducts)

	mockProducts.On("GetByID", "ghost").Return(nil, assert.AnError)

	err := service.AddReview(&models.Review{ProductID: "ghost", Author: "Nikos", Rating: 4})

	assert.Error(t, err)
	mockReviews.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewService_ListProductReviews(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewReviewService(mockReviews, mockProducts)

	expected := []models.Review{
		{ID: "r1", ProductID: "p1", Author: "Eleni", Rating: 5},
		{ID: "r2", ProductID: "p1", Author: "Petros", Rating: 3},
	}
	mockReviews.On("GetByProductID", "p1").Return(expected, nil)

	reviews, err := service.ListProductReviews("p1")

	assert.NoError(t, err)
	assert.Equal(t, expected, reviews)
}
