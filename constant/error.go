package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrInvalidInstitution
	ErrInvalidAcademicYear
	ErrInvalidCourse
	ErrInvalidAlbum
	ErrInvalidAccessCode
	ErrCourseNotActive
	ErrCourseLocked
	ErrDuplicateField
	ErrInvalidOrderStatus
	ErrPaymentNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrForbidden:           "forbidden",
	ErrCredentialExists:    "email or phone already exists",
	ErrInvalidPassword:     "password invalid",
	ErrInvalidInstitution:  "Invalid Institution",
	ErrInvalidAcademicYear: "Invalid Academic Year",
	ErrInvalidCourse:       "Invalid Course",
	ErrInvalidAlbum:        "Invalid Album",
	ErrInvalidAccessCode:   "invalid access code",
	ErrCourseNotActive:     "course is outside its validity period",
	ErrCourseLocked:        "course has not been unlocked",
	ErrDuplicateField:      "duplicate value for unique field",
	ErrInvalidOrderStatus:  "invalid order status transition",
	ErrPaymentNotFound:     "payment not found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrForbidden:           http.StatusForbidden,
	ErrCredentialExists:    http.StatusBadRequest,
	ErrInvalidPassword:     http.StatusBadRequest,
	ErrInvalidInstitution:  http.StatusBadRequest,
	ErrInvalidAcademicYear: http.StatusBadRequest,
	ErrInvalidCourse:       http.StatusBadRequest,
	ErrInvalidAlbum:        http.StatusBadRequest,
	ErrInvalidAccessCode:   http.StatusBadRequest,
	ErrCourseNotActive:     http.StatusBadRequest,
	ErrCourseLocked:        http.StatusForbidden,
	ErrDuplicateField:      http.StatusBadRequest,
	ErrInvalidOrderStatus:  http.StatusBadRequest,
	ErrPaymentNotFound:     http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrForbidden:           "0005",
	ErrCredentialExists:    "0006",
	ErrInvalidPassword:     "0007",
	ErrInvalidInstitution:  "0008",
	ErrInvalidAcademicYear: "0009",
	ErrInvalidCourse:       "0010",
	ErrInvalidAlbum:        "0011",
	ErrInvalidAccessCode:   "0012",
	ErrCourseNotActive:     "0013",
	ErrCourseLocked:        "0014",
	ErrDuplicateField:      "0015",
	ErrInvalidOrderStatus:  "0016",
	ErrPaymentNotFound:     "0017",
}
