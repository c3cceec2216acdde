package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AddInventoryItem registers a stock item.
//
//	@Summary	Register an inventory item
//	@Tags		inventory
//	@Accept		json
//	@Produce	json
//	@Param		item	body		AddInventoryItemRequest	true	"Item to register"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/inventory/items [post]
func (s *Server) AddInventoryItem(ctx echo.Context) error {
	var request AddInventoryItemRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddInventoryItemCommand(itemID,
		request.Name, request.Quantity, request.UnitPrice)
	if err != nil {
		return s.badRequest(ctx, "invalid item data: "+err.Error())
	}

	if handleErr := s.addInventoryItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: itemID.Bytes()})
}

// RestockItem adds stock to an existing item.
//
//	@Summary	Restock an inventory item
//	@Tags		inventory
//	@Accept		json
//	@Param		id		path	string						true	"Item ID"
//	@Param		restock	body	RestockInventoryItemRequest	true	"Quantity to add"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventory/items/{id}/restock [post]
func (s *Server) RestockItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid item id: "+err.Error())
	}

	var request RestockInventoryItemRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRestockInventoryItemCommand(itemID, request.Quantity)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.restockItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConsumeMaterial records material usage against a task and decrements stock.
//
//	@Summary	Consume material for a task
//	@Tags		inventory
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string					true	"Task ID"
//	@Param		consumption	body		ConsumeMaterialRequest	true	"Material to consume"
//	@Success	201			{object}	CreatedResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/tasks/{id}/consumptions [post]
func (s *Server) ConsumeMaterial(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid task id: "+err.Error())
	}

	var request ConsumeMaterialRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}
	itemID, err := kernel.UUIDFromString(request.ItemID)
	if err != nil {
		return s.badRequest(ctx, "invalid item id: "+err.Error())
	}

	recordID := kernel.NewUUID()
	cmd, err := commands.NewConsumeMaterialCommand(recordID, taskID, itemID, request.Quantity)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.consumeMaterialHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: recordID.Bytes()})
}
