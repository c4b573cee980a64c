package adaptor

import (
	"net/http"

	"movie-reviews/pkg/apperr"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// respondServiceError maps an error to a response by its kind. Every failure
// body has the shape {"error": "..."}; internal causes are logged but not
// leaked to the client.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, apperr.Message(err))

	case apperr.KindValidation:
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, apperr.Message(err))

	case apperr.KindUnavailable:
		log.Warn(operation+" failed - upstream unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "movie metadata service unavailable")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "internal server error")
	}
}
