package cooking

import "errors"

// Errors returned by kitchen interactions. None of them are fatal: the caller
// logs them and the kitchen state is left unchanged.
var (
	ErrInvalidTransition = errors.New("cooking: invalid ingredient state transition")
	ErrNoRecipe          = errors.New("cooking: no recipe for these ingredients")
	ErrHandsFull         = errors.New("cooking: already holding an item")
	ErrHandsEmpty        = errors.New("cooking: not holding anything")
	ErrStationBusy       = errors.New("cooking: station is occupied")
	ErrStillCooking      = errors.New("cooking: ingredient is still cooking")
	ErrDishFinished      = errors.New("cooking: dish is finished and must be served")
	ErrUnknownIngredient = errors.New("cooking: unknown ingredient")
	ErrUnknownDish       = errors.New("cooking: unknown dish")
)
