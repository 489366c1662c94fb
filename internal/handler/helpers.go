package handler

import (
	"errors"
	"net/http"
	"reflect"

	"floristeria/internal/apierror"
	"floristeria/internal/pedido"
	"floristeria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// renderError maps domain errors onto HTTP statuses. Validation reports
// carry field and row errors together as 422; unknown references are 400;
// business conflicts are 409.
func renderError(c *gin.Context, err error) {
	var reporte *pedido.ReporteValidacion
	if errors.As(err, &reporte) {
		rows := make([]apierror.RowError, 0, len(reporte.Filas))
		for _, f := range reporte.Filas {
			rows = append(rows, apierror.RowError{Fila: f.Fila, Motivo: f.Motivo})
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidationWithRows(reporte.Campos, rows))
		return
	}
	if errors.Is(err, pedido.ErrPedidoVacio) {
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		return
	}
	var refErr *pedido.ErrorReferencia
	if errors.As(err, &refErr) {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	switch {
	case errors.Is(err, service.ErrDocumentoDuplicado),
		errors.Is(err, service.ErrClienteConVentas),
		errors.Is(err, service.ErrProveedorConCompras):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
