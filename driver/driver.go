package driver

import (
	"net/http"
	"time"
)

// Both hosted-service clients share the same timeout policy. There is no
// retry layer on top of it; the gallery fallback chain is the only recovery.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}
