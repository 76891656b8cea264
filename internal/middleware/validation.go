package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/validator"
)

// Validation renders request binding errors as a 422 with one entry per
// rejected field. Handlers report them with c.Error(err).SetType(gin.ErrorTypeBind).
func Validation() gin.HandlerFunc {
	validator.RegisterJSONTagNames()

	return func(c *gin.Context) {
		c.Next()

		bindErrs := c.Errors.ByType(gin.ErrorTypeBind)
		if len(bindErrs) == 0 || c.Writer.Written() {
			return
		}

		var tooLarge *http.MaxBytesError
		if errors.As(bindErrs.Last().Err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, model.ErrorDetail{
				Detail: "Request size exceeds limit",
			})
			return
		}

		var details []model.FieldError
		for _, e := range bindErrs {
			details = append(details, validator.Translate(e.Err)...)
		}

		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, model.ValidationDetail{
			Detail: details,
		})
	}
}
