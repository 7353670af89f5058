package controllers

import (
	"net/http"

	"codecraft-site/utils"
)

type HealthController struct{}

func (hc *HealthController) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, map[string]string{"status": "ok"})
	}
}
