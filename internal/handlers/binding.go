package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

var registerJSONNames sync.Once

// useJSONFieldNames makes validator errors report the json name of a field
// ("patient_name") instead of the Go one.
func useJSONFieldNames() {
	registerJSONNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body into obj. On failure the error
// response is already written.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		httperr.BadRequest(c, domain.CodeInvalidRequest, "Dados inválidos.")
		return false
	}

	be, _ := httperr.AsBusiness(bindingError(verrs))
	httperr.BadRequest(c, be.Code, be.Message)
	return false
}

// bindingError reports every missing field at once. A status outside the
// accepted set is reported only when nothing is missing.
func bindingError(verrs validator.ValidationErrors) error {
	var missing []string
	var badStatus validator.FieldError

	for _, fe := range verrs {
		if fe.Tag() == "oneof" && fe.Field() == "status" {
			badStatus = fe
			continue
		}
		missing = append(missing, fe.Field())
	}

	if len(missing) > 0 {
		return httperr.Validation(
			domain.CodeMissingField,
			fmt.Sprintf("Campos obrigatórios ausentes: %s.", strings.Join(missing, ", ")),
		)
	}
	if badStatus != nil {
		_, err := domain.ParseStatus(fmt.Sprint(badStatus.Value()))
		if err != nil {
			return err
		}
	}
	return httperr.Validation(domain.CodeInvalidRequest, "Dados inválidos.")
}
