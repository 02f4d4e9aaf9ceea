package e

import "fmt"

var (
	// Корни таксономии ошибок
	ErrValidation = fmt.Errorf("validation failed")
	ErrEmptyCart  = fmt.Errorf("cart is empty")

	// 400 Bad Request
	ErrItemNameRequired        = fmt.Errorf("%w: item name is required", ErrValidation)
	ErrItemDescriptionRequired = fmt.Errorf("%w: item description is required", ErrValidation)
	ErrPriceRequired           = fmt.Errorf("%w: price is required", ErrValidation)
	ErrInvalidPrice            = fmt.Errorf("%w: price must be a number", ErrValidation)
	ErrPriceMustBePositive     = fmt.Errorf("%w: price must be positive", ErrValidation)
	ErrPricePrecision          = fmt.Errorf("%w: price must have at most 2 decimal places", ErrValidation)
	ErrUnknownCategory         = fmt.Errorf("%w: unknown category", ErrValidation)
	ErrItemIDRequired          = fmt.Errorf("%w: item id is required", ErrValidation)
	ErrDuplicateItemID         = fmt.Errorf("%w: item id already exists", ErrValidation)
	ErrInvalidQuantity         = fmt.Errorf("%w: quantity must be an integer", ErrValidation)
	ErrQuantityTooLarge        = fmt.Errorf("%w: quantity exceeds the per-item limit", ErrValidation)
	ErrInvalidIndex            = fmt.Errorf("%w: index must be a non-negative integer", ErrValidation)
	ErrStatusBadRequest        = fmt.Errorf("%w: bad request", ErrValidation)

	// Ошибки восстановления снапшота
	ErrCorruptedSnapshot = fmt.Errorf("corrupted snapshot")

	// 404 Not Found
	ErrSessionNotFound = fmt.Errorf("session not found")
	ErrItemNotFound    = fmt.Errorf("menu item not found")

	// 409 Conflict
	ErrCartChanged = fmt.Errorf("cart changed since checkout")

	// 500
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrPublishFailed        = fmt.Errorf("failed to publish order event")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
