package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"agromarket/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestEnhanceService_UnconfiguredFallsBack(t *testing.T) {
	service := services.NewEnhanceService("", "")

	got := service.EnhanceDescription(context.Background(), "Tomatoes", "Vegetables", "ripe tomatoes")
	assert.Equal(t, "ripe tomatoes", got)

	recipe := service.SuggestRecipe(context.Background(), "Tomatoes")
	assert.Contains(t, recipe, "API key missing")
}

func TestEnhanceService_EnhanceDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Sun-ripened tomatoes from Kalamata.  "}]}}]}`))
	}))
	defer server.Close()

	service := services.NewEnhanceService("test-key", server.URL)
	got := service.EnhanceDescription(context.Background(), "Tomatoes", "Vegetables", "ripe tomatoes")
	assert.Equal(t, "Sun-ripened tomatoes from Kalamata.", got)
}

func TestEnhanceService_ServerErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	service := services.NewEnhanceService("test-key", server.URL)

	got := service.EnhanceDescription(context.Background(), "Tomatoes", "Vegetables", "ripe tomatoes")
	assert.Equal(t, "ripe tomatoes", got)

	recipe := service.SuggestRecipe(context.Background(), "Tomatoes")
	assert.Equal(t, "Could not generate recipe at this time.", recipe)
}

func TestEnhanceService_EmptyCandidatesFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	service := services.NewEnhanceService("test-key", server.URL)
	got := service.EnhanceDescription(context.Background(), "Tomatoes", "Vegetables", "ripe tomatoes")
	assert.Equal(t, "ripe tomatoes", got)
}
