package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// decodeAndValidate decodes the request body into dst and runs struct
// validation. Returned errors are safe to show the client.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New(ErrMsgInvalidRequest)
	}
	if err := GetValidator().ValidateStruct(dst); err != nil {
		fields := FormatValidationError(err)
		for field, msg := range fields {
			return fmt.Errorf("%s: %s", field, msg)
		}
		return errors.New(ErrMsgInvalidRequest)
	}
	return nil
}
