package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
)

// ParseQueryBool reads an optional boolean query parameter. Only "true" and
// "false" are accepted; absence returns the default.
func ParseQueryBool(r *http.Request, key string, defaultVal bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.
			New(pkgerrors.CodeValidation, "query parameter must be true or false").
			WithField(key)
	}
	return value, nil
}

// ParsePathID parses a numeric resource id from a URL segment.
func ParsePathID(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "id is required").WithField("id")
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "id must be a positive integer").WithField("id")
	}
	return id, nil
}
