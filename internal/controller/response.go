package controller

import (
	"net/http"

	"github.com/go-chi/render"
)

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, statusResponse{Success: false, Message: message})
}
