// controllers/response.go
package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"elara-server/utils"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// DefaultTimeout bounds store calls when a controller is built without one
const DefaultTimeout = 10 * time.Second

// insertAck is the acknowledgement returned by create endpoints
type insertAck struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("failed to write response", zap.Error(err))
	}
}

// writeError maps validation and not-found errors to 4xx with their message;
// everything else is logged and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, serverMsg string) {
	switch {
	case errors.Is(err, utils.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: utils.Message(err)})
	case errors.Is(err, utils.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: utils.Message(err)})
	default:
		zap.L().Error(serverMsg,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: serverMsg})
	}
}

// decodeJSON reads the request body into v and runs its validate tags
func decodeJSON(r *http.Request, v interface{}, requiredMsg string) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return utils.Validationf("Invalid input")
	}
	if err := validate.Struct(v); err != nil {
		return utils.Validationf("%s", requiredMsg)
	}
	return nil
}

func parseObjectID(raw, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, utils.Validationf("Invalid %s", name)
	}
	return id, nil
}

func storeContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}
