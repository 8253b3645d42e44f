package controllers

import (
	"encoding/json"
	"net/http"

	"recordapi/services"
)

// Controller handles all request processing against the injected record
// store. It is stateless between calls; the store is the only shared state.
type Controller struct {
	store services.RecordStore
}

// NewController creates a new controller instance backed by the given store.
func NewController(store services.RecordStore) *Controller {
	return &Controller{store: store}
}

// writeJSON serializes payload with the given HTTP status.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
