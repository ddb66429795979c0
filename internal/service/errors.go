package service

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// statuses; anything else is treated as an internal store failure.
var (
	ErrAlreadyMember     = errors.New("already part of a household")
	ErrHouseholdNotFound = errors.New("invalid join code")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrGeneration        = errors.New("failed to generate recipe")
)
