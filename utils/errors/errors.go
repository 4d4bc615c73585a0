package errors

import "github.com/kelasfoto/kelasfoto/constant"

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithDetail overrides the default message, keeping the code and
// HTTP status of errorType. Used for duplicate-field errors that name the key.
func SetCustomErrorWithDetail(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}
