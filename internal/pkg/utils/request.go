package utils

import (
	"clinix-service/internal/pkg/exceptions"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

const maxRequestBodyBytes = 1 << 20

// ParseJSONBody decodes the request body into dst. An empty body leaves dst
// untouched so that validation reports the missing fields.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes)).Decode(dst)
	if err != nil && err != io.EOF {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
