package home

import (
	"net/http"

	"github.com/go-chi/render"
)

const Welcome = "Welcome to the Image Generation API. Use the /api/generate endpoint to create images."

// Home returns the welcome text.
// @Summary      Welcome text
// @Tags         meta
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, Welcome)
	}
}
