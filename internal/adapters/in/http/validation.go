package http

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

const apiBasePath = "/api/v1"

// validateRequest checks parameters and bodies against the embedded OpenAPI document.
// Requests the document does not describe fall through so that echo answers 404 or 405.
func (s *Server) validateRequest(next echo.HandlerFunc) echo.HandlerFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}
	return func(c echo.Context) error {
		req := c.Request()
		route, pathParams, err := s.router.FindRoute(req)
		if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
			return next(c)
		}
		if err != nil {
			return badRequest(c, err.Error())
		}

		err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		})
		if err != nil {
			return badRequest(c, err.Error())
		}
		return next(c)
	}
}
