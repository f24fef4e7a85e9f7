package domain

import "errors"

var (
	// ErrDataUnavailable means the catalog or ledger could not be read or
	// parsed. The whole request fails; there is no partial result.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrUnknownProduct means the reference product id is not in the catalog.
	ErrUnknownProduct = errors.New("unknown productId")
)
