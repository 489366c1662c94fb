package handler

import (
	"net/http"

	"floristeria/internal/apierror"
	"floristeria/internal/dto"
	"floristeria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ArreglosHandler struct{ svc service.ArregloService }

func NewArreglosHandler(svc service.ArregloService) *ArreglosHandler {
	return &ArreglosHandler{svc: svc}
}

// CrearArreglo godoc
// @Summary      Registrar un arreglo floral
// @Tags         arreglos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearArregloRequest true "Datos del arreglo"
// @Success      201  {object} dto.ArregloResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/arreglos [post]
func (h *ArreglosHandler) CrearArreglo(c *gin.Context) {
	var req dto.CrearArregloRequest
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

// ActualizarArreglo godoc
// @Summary      Editar un arreglo
// @Tags         arreglos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                  true "UUID del arreglo"
// @Param        body body dto.CrearArregloRequest true "Datos del arreglo"
// @Success      200  {object} dto.ArregloResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/arreglos/{id} [put]
func (h *ArreglosHandler) ActualizarArreglo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CrearArregloRequest
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

// ObtenerArreglo godoc
// @Summary      Obtener un arreglo
// @Tags         arreglos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del arreglo"
// @Success      200 {object} dto.ArregloResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/arreglos/{id} [get]
func (h *ArreglosHandler) ObtenerArreglo(c *gin.Context) {
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

// ListarArreglos godoc
// @Summary      Listar arreglos
// @Tags         arreglos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ArregloResponse
// @Router       /v1/arreglos [get]
func (h *ArreglosHandler) ListarArreglos(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar arreglos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarArreglos godoc
// @Summary      Buscar arreglos por nombre de flor
// @Description  Autocompletado para el formulario de ventas.
// @Tags         arreglos
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "Fragmento del nombre"
// @Success      200 {array} dto.ArregloBusquedaItem
// @Router       /v1/arreglos/buscar [get]
func (h *ArreglosHandler) BuscarArreglos(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, []dto.ArregloBusquedaItem{})
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error en la busqueda"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarArreglo godoc
// @Summary      Eliminar un arreglo
// @Tags         arreglos
// @Security     BearerAuth
// @Param        id path string true "UUID del arreglo"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/arreglos/{id} [delete]
func (h *ArreglosHandler) EliminarArreglo(c *gin.Context) {
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
