package race

import "errors"

// Domain errors for simulation operations.
var (
	// ErrFleetSize indicates a non-positive requested fleet size.
	ErrFleetSize = errors.New("race: fleet size must be positive")

	// ErrWeatherLength indicates a shared weather slice whose length does
	// not match the fleet size.
	ErrWeatherLength = errors.New("race: weather length does not match fleet size")

	// ErrNoFinish indicates the day cap was reached before both fleets
	// arrived.
	ErrNoFinish = errors.New("race: day cap reached before all boats finished")
)
