package httputil

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
)

// RespondWithError sends {"detail": ...} with the status the error carries,
// or 500 when it carries none.
func RespondWithError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	if sc, ok := err.(interface{ StatusCode() int }); ok {
		statusCode = sc.StatusCode()
	}

	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(statusCode, model.ErrorDetail{
		Detail: message,
	})
}

// DetailMessage extracts a readable message from an error body returned by
// the prediction service. Both the string and the per-field list forms of
// "detail" are understood; anything else is returned trimmed.
func DetailMessage(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var fields []model.FieldError
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, strings.Join(f.Loc, ".")+": "+f.Msg)
		}
		return strings.Join(parts, "; ")
	}

	return strings.TrimSpace(string(envelope.Detail))
}
