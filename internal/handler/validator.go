package handler

import "github.com/go-playground/validator/v10"

// Satu instance validator untuk semua handler (aman dipakai bersamaan)
var validate = validator.New()
