package handler

import (
	"github.com/kellyband/site/internal/repository"
)

// Handler serves the operational endpoints that only need the store handle.
type Handler struct {
	db repository.DB
}

func New(db repository.DB) *Handler {
	return &Handler{db: db}
}
