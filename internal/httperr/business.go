package httperr

import "errors"

// BusinessError is a domain rule violation carried as its code. Use cases
// return these; the transport layer decides which HTTP status each code maps
// onto.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string { return e.Code }

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err is a rule violation with the given code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
