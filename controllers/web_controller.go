package controllers

import "net/http"

// IndexHandler serves the record sequence on the root path, same contract
// as /get_data.
func (c *Controller) IndexHandler(w http.ResponseWriter, r *http.Request) {
	c.GetDataHandler(w, r)
}

// HealthHandler provides a liveness probe.
func (c *Controller) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"service": "recordapi",
		"store":   c.store.Kind(),
	})
}
