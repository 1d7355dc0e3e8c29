package controllers

import (
	"errors"
	"log"
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps engine errors onto HTTP statuses. Anything outside the
// taxonomy is a storage/internal failure: logged in full, redacted towards
// the caller when running in production.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		utils.JSONError(c, http.StatusBadRequest, verr.Error())
		return
	}

	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		utils.JSONError(c, http.StatusNotFound, nf.Message)
		return
	}

	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		utils.JSONError(c, http.StatusConflict, conflict.Message)
		return
	}

	log.Printf("❌ internal error: %v", err)
	if utils.IsProduction() {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, err.Error())
}
