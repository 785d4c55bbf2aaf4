package service

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")

	ErrMealNotFound        = errors.New("meal not found")
	ErrInvalidMeal         = errors.New("invalid meal")
	ErrDuplicateIngredient = errors.New("ingredient listed more than once")

	ErrPlanNotFound = errors.New("plan not found")

	ErrUnsupportedImage   = errors.New("unsupported image type")
	ErrImageTooLarge      = errors.New("image too large")
	ErrStorageUnavailable = errors.New("image storage unavailable")
)
