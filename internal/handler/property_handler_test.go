package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePropertyAndGetByID(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/create_property", propertyPayload())
	mustStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	assert.Equal(t, "Seaside Villa", body["title"])
	assert.Equal(t, "Property created successfully", body["message"])
	id := uint(body["id"].(float64))

	w = performRequest(router, http.MethodGet, fmt.Sprintf("/get_property_by_id/%d", id), nil)
	mustStatus(t, w, http.StatusOK)

	property := decodeBody(t, w)["property"].(map[string]any)
	assert.Equal(t, "Seaside Villa", property["title"])
	assert.Equal(t, "Three bedroom villa with ocean view", property["description"])
	assert.Equal(t, float64(450000), property["price"])
	assert.Equal(t, float64(3), property["bedrooms"])
	assert.Equal(t, float64(2), property["bathrooms"])
	assert.Equal(t, "Lisbon", property["location"])
	assert.Equal(t, "https://img.example.com/villa.jpg", property["image_link"])
}

func TestCreatePropertyMissingField(t *testing.T) {
	router, _ := setupRouter(t)

	payload := propertyPayload()
	delete(payload, "bedrooms")

	w := performRequest(router, http.MethodPost, "/create_property", payload)
	mustStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Missing or empty bedrooms", body["message"])
}

func TestGetPropertyByIDNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodGet, "/get_property_by_id/42", nil)
	mustStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "Property not found", decodeBody(t, w)["message"])
}

func TestGetAllPropertiesSummaryProjection(t *testing.T) {
	router, _ := setupRouter(t)

	createProperty(t, router, propertyPayload())

	w := performRequest(router, http.MethodGet, "/get_all_properties", nil)
	mustStatus(t, w, http.StatusOK)

	properties, ok := decodeBody(t, w)["properties"].([]any)
	require.True(t, ok)
	require.Len(t, properties, 1)

	summary := properties[0].(map[string]any)
	assert.Equal(t, "Seaside Villa", summary["title"])
	assert.Equal(t, float64(450000), summary["price"])
	assert.Equal(t, "Lisbon", summary["location"])
	assert.Equal(t, "https://img.example.com/villa.jpg", summary["image_link"])
	assert.NotContains(t, summary, "description")
	assert.NotContains(t, summary, "bedrooms")
	assert.NotContains(t, summary, "bathrooms")
}

func TestUpdateProperty(t *testing.T) {
	router, _ := setupRouter(t)

	id := createProperty(t, router, propertyPayload())

	w := performRequest(router, http.MethodPatch, fmt.Sprintf("/update_property/%d", id), map[string]any{
		"price": 399000,
	})
	mustStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Equal(t, "Seaside Villa", body["title"])
	assert.Equal(t, "Property updated successfully", body["message"])

	w = performRequest(router, http.MethodGet, fmt.Sprintf("/get_property_by_id/%d", id), nil)
	property := decodeBody(t, w)["property"].(map[string]any)
	assert.Equal(t, float64(399000), property["price"])
	assert.Equal(t, "Lisbon", property["location"])
}

func TestUpdatePropertyInvalidBody(t *testing.T) {
	router, _ := setupRouter(t)

	id := createProperty(t, router, propertyPayload())

	w := performRequest(router, http.MethodPatch, fmt.Sprintf("/update_property/%d", id), []int{1, 2, 3})
	mustStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Invalid JSON data in request", decodeBody(t, w)["message"])
}

func TestDeletePropertyNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodDelete, "/delete_property/42", nil)
	mustStatus(t, w, http.StatusNotFound)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Property not found", body["message"])
}

func TestDeleteProperty(t *testing.T) {
	router, _ := setupRouter(t)

	id := createProperty(t, router, propertyPayload())

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/delete_property/%d", id), nil)
	mustStatus(t, w, http.StatusOK)
	assert.Equal(t, "Property deleted successfully", decodeBody(t, w)["message"])

	w = performRequest(router, http.MethodGet, fmt.Sprintf("/get_property_by_id/%d", id), nil)
	mustStatus(t, w, http.StatusNotFound)
}
