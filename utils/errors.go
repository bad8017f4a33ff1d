package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StopWithProblem(statusCode, iris.NewProblem().Title(title).Detail(detail))
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(
		iris.StatusInternalServerError,
		"Internal Server Error",
		"an unexpected error occurred, please try again",
		ctx,
	)
}

// CreateUnavailableError reports a store precondition failure: the document
// database was never configured or reachable. Not a retryable condition.
func CreateUnavailableError(ctx iris.Context) {
	CreateError(
		iris.StatusServiceUnavailable,
		"Service Unavailable",
		"the database is not available",
		ctx,
	)
}

// HandleValidationErrors converts payload binding failures into client
// errors: 422 with field details for schema violations, 400 for bodies that
// could not be decoded at all. No store call happens after either.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		validationErrors := wrapValidationErrors(errs)

		ctx.StopWithProblem(
			iris.StatusUnprocessableEntity,
			iris.NewProblem().
				Title("Validation error").
				Detail("one or more fields failed to be validated").
				Key("errors", validationErrors),
		)
		return
	}

	CreateError(iris.StatusBadRequest, "Bad Request", "invalid payload", ctx)
}

type validationError struct {
	ActualTag string `json:"tag"`
	Namespace string `json:"namespace"`
	Kind      string `json:"kind"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Param     string `json:"param"`
}

func wrapValidationErrors(errs validator.ValidationErrors) []validationError {
	validationErrors := make([]validationError, 0, len(errs))
	for _, validationErr := range errs {
		validationErrors = append(validationErrors, validationError{
			ActualTag: validationErr.ActualTag(),
			Namespace: validationErr.Namespace(),
			Kind:      validationErr.Kind().String(),
			Type:      validationErr.Type().String(),
			Value:     fmt.Sprintf("%v", validationErr.Value()),
			Param:     validationErr.Param(),
		})
	}
	return validationErrors
}
