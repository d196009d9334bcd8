package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/apierror"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/domain"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/service"
)

// ErrorHandler maps errors attached via c.Error to HTTP statuses. Handlers
// stay mapping-free: they attach the error and abort. Internal details are
// never exposed for 500s.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status, body := clasificar(err)
		if status == http.StatusInternalServerError {
			log.Error().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Err(err).
				Msg("unhandled error")
			body = apierror.New("Error interno del servidor")
		}

		c.AbortWithStatusJSON(status, body)
	}
}

// clasificar resolves the HTTP status for a service/domain error.
func clasificar(err error) (int, interface{}) {
	var (
		noEncontrado *service.NoEncontradoError
		stock        *domain.StockInsuficienteError
		transicion   *domain.TransicionInvalidaError
		validacion   *apierror.ValidationError
	)
	switch {
	case errors.As(err, &noEncontrado):
		return http.StatusNotFound, apierror.New(err.Error())
	case errors.As(err, &stock),
		errors.As(err, &transicion),
		errors.Is(err, domain.ErrEntradaInvalida),
		errors.Is(err, domain.ErrSinCliente),
		errors.Is(err, domain.ErrSinProveedor),
		errors.Is(err, domain.ErrSinLineas):
		return http.StatusBadRequest, apierror.New(err.Error())
	case errors.As(err, &validacion):
		return http.StatusBadRequest, validacion
	case errors.Is(err, service.ErrCredencialesInvalidas):
		return http.StatusUnauthorized, apierror.New(err.Error())
	}
	return http.StatusInternalServerError, nil
}

// Recovery handles panics and converts them into 500 responses.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			}
		}()
		c.Next()
	}
}

// Logger logs each request with method, path, status, latency, and request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
