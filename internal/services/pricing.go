package services

import (
	"math/rand"

	"airline/internal/utils"
)

const (
	minPlaceholderPrice = 100.0
	maxPlaceholderPrice = 999.0
)

// RandomPrice is the placeholder fare: uniform in [100, 999], two decimals.
func RandomPrice() float64 {
	return utils.RoundCents(minPlaceholderPrice + rand.Float64()*(maxPlaceholderPrice-minPlaceholderPrice))
}
