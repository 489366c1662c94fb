package handler

import (
	"net/http"

	"floristeria/internal/apierror"
	"floristeria/internal/dto"
	"floristeria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler { return &ComprasHandler{svc: svc} }

// CrearCompra godoc
// @Summary      Registrar una compra a proveedor
// @Description  Crea la compra con sus detalles de forma atomica y calcula subtotal, descuento y total.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearCompraRequest true "Compra con arreglos paralelos de detalles"
// @Success      201  {object} dto.CompraResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/compras [post]
func (h *ComprasHandler) CrearCompra(c *gin.Context) {
	var req dto.CrearCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarCompra godoc
// @Summary      Editar una compra
// @Description  Reemplaza el encabezado y el conjunto completo de detalles, recalculando los totales.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true "UUID de la compra"
// @Param        body body dto.CrearCompraRequest true "Compra completa"
// @Success      200  {object} dto.CompraResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/compras/{id} [put]
func (h *ComprasHandler) ActualizarCompra(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CrearCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerCompra godoc
// @Summary      Obtener una compra
// @Tags         compras
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la compra"
// @Success      200 {object} dto.CompraResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/compras/{id} [get]
func (h *ComprasHandler) ObtenerCompra(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarCompras godoc
// @Summary      Listar compras
// @Description  Lista paginada, filtrable por proveedor y fecha de emision.
// @Tags         compras
// @Produce      json
// @Security     BearerAuth
// @Param        proveedor_id query string false "UUID del proveedor"
// @Param        fecha        query string false "Fecha YYYY-MM-DD"
// @Param        page         query int    false "Pagina (default 1)"
// @Param        limit        query int    false "Registros por pagina (default 50)"
// @Success      200 {object} dto.CompraListResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/compras [get]
func (h *ComprasHandler) ListarCompras(c *gin.Context) {
	var filter dto.CompraFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compras"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarCompra godoc
// @Summary      Eliminar una compra
// @Description  Borra la compra y sus detalles en cascada.
// @Tags         compras
// @Security     BearerAuth
// @Param        id path string true "UUID de la compra"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/compras/{id} [delete]
func (h *ComprasHandler) EliminarCompra(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
