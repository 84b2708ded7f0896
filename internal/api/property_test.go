package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"estate_market/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePropertyRoundTrip(t *testing.T) {
	r, db, _ := newTestRouter(t)
	seedUser(t, db, "agent@example.com", domain.RoleAgent)
	ck := sessionCookie(t, "agent@example.com")

	body := map[string]any{
		"title":       "Lakeside Duplex",
		"description": "Two floors, lake view",
		"image":       "https://img.example/duplex.jpg",
		"location":    "Gulshan",
		"price":       420000.0,
		"quantity":    2,
		"agent":       map[string]string{"name": "Agent A", "image": "https://img.example/a.png"},
	}
	w := doRequest(r, http.MethodPost, "/plants", body, ck)
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	// Ownership comes from the session, not the body
	assert.Equal(t, "agent@example.com", created.Agent.Email)

	// Reading the id back yields the stored record
	w = doRequest(r, http.MethodGet, fmt.Sprintf("/plants/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched domain.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	// The legacy alias path serves the same record
	w = doRequest(r, http.MethodGet, fmt.Sprintf("/all-quires/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePropertyRequiresAgentRole(t *testing.T) {
	r, db, _ := newTestRouter(t)
	seedUser(t, db, "cust@example.com", domain.RoleCustomer)

	body := map[string]any{"title": "X", "price": 1.0, "quantity": 1}
	w := doRequest(r, http.MethodPost, "/plants", body, sessionCookie(t, "cust@example.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Agent Only Actions!")
}

func TestDeletePropertyScopedToOwner(t *testing.T) {
	r, db, _ := newTestRouter(t)
	seedUser(t, db, "owner@example.com", domain.RoleAgent)
	seedUser(t, db, "other@example.com", domain.RoleAgent)
	property := seedProperty(t, db, "Owned", "owner@example.com")

	// A role-valid agent who does not own the row gets not found
	w := doRequest(r, http.MethodDelete, fmt.Sprintf("/plants/%d", property.ID), nil, sessionCookie(t, "other@example.com"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	var count int64
	require.NoError(t, db.Model(&domain.Property{}).Where("id = ?", property.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The owner's delete goes through
	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/plants/%d", property.ID), nil, sessionCookie(t, "owner@example.com"))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.Model(&domain.Property{}).Where("id = ?", property.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestFeaturedListingCapsAtTwenty(t *testing.T) {
	r, db, _ := newTestRouter(t)
	for i := 0; i < 25; i++ {
		seedProperty(t, db, fmt.Sprintf("Listing %d", i), "agent@example.com")
	}

	w := doRequest(r, http.MethodGet, "/plants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []domain.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 20)

	// The full public listing has everything
	w = doRequest(r, http.MethodGet, "/all-property", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 25)
}

func TestAgentInventoryOnlyOwnListings(t *testing.T) {
	r, db, _ := newTestRouter(t)
	seedUser(t, db, "a@example.com", domain.RoleAgent)
	seedProperty(t, db, "Mine", "a@example.com")
	seedProperty(t, db, "Theirs", "b@example.com")

	w := doRequest(r, http.MethodGet, "/plants/seller", nil, sessionCookie(t, "a@example.com"))
	require.Equal(t, http.StatusOK, w.Code)
	var listed []domain.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Mine", listed[0].Title)
}

func TestGetPropertyNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/plants/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/plants/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
