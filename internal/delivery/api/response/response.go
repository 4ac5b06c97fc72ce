package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/errors"
)

type (
	SuccessResponse = domainerrors.SuccessResponse
	ErrorResponse   = domainerrors.ErrorResponse
	ErrorInfo       = domainerrors.ErrorInfo
	MetaInfo        = domainerrors.MetaInfo
)

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return render(c, statusCode, &ErrorInfo{
		Code:    errorCode,
		Message: message,
		Details: details,
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// AppError renders an application error, including its redirect route.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	info := &ErrorInfo{
		Code:    appErr.ErrorCode(),
		Message: appErr.Message(),
	}
	if d := appErr.Details(); d != "" {
		info.Details = d
	}
	if r, ok := appErr.(domainerrors.Redirector); ok {
		info.Redirect = r.Redirect()
	}

	return render(c, appErr.HTTPCode(), info)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}

func render(c echo.Context, statusCode int, info *ErrorInfo) error {
	// Details are only exposed for client errors other than authentication and authorization
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		info.Details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: info,
		Meta:  meta(c),
	})
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}
