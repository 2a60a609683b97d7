package httputil

import (
	"net/http"

	"github.com/goccy/go-json"
)

type SendSuccessResponseParams struct {
	StatusCode int
	ResBody    interface{}
}

func SendSuccessResponse(res http.ResponseWriter, params SendSuccessResponseParams) error {
	return sendJSON(res, params.StatusCode, params.ResBody)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func SendErrorResponse(res http.ResponseWriter, statusCode int, resBody ErrorResponse) error {
	return sendJSON(res, statusCode, resBody)
}

func sendJSON(res http.ResponseWriter, statusCode int, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)

	_, err = res.Write(body)
	return err
}
