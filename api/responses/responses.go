package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
	"github.com/snkrsdev/snkrs-backend/pkg/logger"
)

// WriteJSON writes a bare JSON payload. The API contract specifies entities
// and arrays directly on the wire, without an envelope.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

// WriteNoContent writes the empty 204 used by delete endpoints.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError maps a coded error onto the contract's error bodies: validation
// failures carry the first failing field path, everything else is {message}.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		fields := map[string]any{
			"error":       dump.Message,
			"error_code":  dump.Code,
			"error_chain": dump.Chain,
		}
		if dump.PG != nil {
			fields["pg_code"] = dump.PG.Code
			fields["pg_constraint"] = dump.PG.Constraint
			fields["pg_table"] = dump.PG.Table
			fields["pg_detail"] = dump.PG.Detail
		}
		ctx = logg.WithFields(ctx, fields)
		logg.Error(ctx, "request.error", err)
	}

	if typed.Code() == pkgerrors.CodeValidation {
		WriteJSON(w, meta.HTTPStatus, contract.ValidationError{Message: msg, Field: typed.Field()})
		return
	}
	WriteJSON(w, meta.HTTPStatus, contract.NotFoundError{Message: msg})
}
