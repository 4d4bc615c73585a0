package transport

import (
	"encoding/json"
	"net/http"

	"github.com/kelasfoto/kelasfoto/constant"
	"github.com/kelasfoto/kelasfoto/utils/errors"
)

type responseEnvelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeSuccessStatus(w, http.StatusOK, data)
}

func writeSuccessStatus(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(responseEnvelope{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	custom, ok := err.(errors.CustomError)
	if !ok {
		custom = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(custom.ErrorHTTPCode())
	json.NewEncoder(w).Encode(responseEnvelope{
		Code:    custom.ErrorCode(),
		Message: custom.Error(),
	})
}
