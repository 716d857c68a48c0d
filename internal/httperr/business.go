package httperr

import "errors"

// Domain failure codes surfaced as business errors.
const (
	CodeAlreadyReserved = "already_reserved"
	CodeCarNotFound     = "car_not_found"
	CodeHotelNotFound   = "hotel_not_found"
	CodeInvalidDates    = "invalid_dates"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
