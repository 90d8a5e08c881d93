package handler

import (
	"errors"
	"net/http"

	"github.com/uiliamvenerio/salada-landing/internal/apierror"
	"github.com/uiliamvenerio/salada-landing/internal/middleware"
	"github.com/uiliamvenerio/salada-landing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Namespace()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pathID parses the :id parameter, answering 400 when it is not a UUID.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors to HTTP. notFoundMsg is the entity
// specific 404 message; anything unexpected is logged and answered with a
// generic 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var partial *service.PartialWriteError
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(notFoundMsg))
	case errors.As(err, &partial):
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("recipe_id", partial.RecipeID).
			Str("stage", partial.Stage).
			Err(partial.Err).
			Msg("recipe write stopped after header")
		c.JSON(http.StatusInternalServerError, apierror.NewPartialWrite(partial.RecipeID, partial.Stage))
	default:
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Err(err).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
	}
}
