package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce plain
// @Success 200 {string} string "Welcome message"
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Welcome to the Customer Ledger API")
}
