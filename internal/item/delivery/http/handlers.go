package http

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	pkgErrors "items-api/pkg/errors"
	"items-api/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates a new item. Any field besides name is stored as a free-form attribute.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body     object true "Item fields, name is required"
// @Success     201  {object} map[string]interface{}
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.fail(c, "processCreateReq", err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Create", err)
		return
	}

	response.Created(c, path.Join(c.Request.URL.Path, output.Item.ID), newItemResp(output.Item))
}

// List godoc
// @Summary     List items
// @Description Returns every item in storage order.
// @Tags        Items
// @Produce     json
// @Success     200 {array}  map[string]interface{}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.fail(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required"))
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.fail(c, "uc.Detail", err)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Update an item
// @Description Partially updates an item. Only the fields present in the body change.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string true "Item ID"
// @Param       body body object true "Fields to update"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id} [PUT]
// @Router      /api/items/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.fail(c, "processUpdateReq", err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Update", err)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID and returns it.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required"))
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.fail(c, "uc.Delete", err)
		return
	}

	response.OK(c, newItemResp(output.Item))
}
