package validators

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
)

// DecodeJSONBody decodes and validates a request body against its contract
// tags. Validation failures surface the first offending field, matching the
// contract's 400 body.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body")
	}
	return contract.Validate(dest)
}
