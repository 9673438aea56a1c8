package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog_api/internal/models"
	"catalog_api/internal/service"
)

// FoodHandler 處理 foods 資料表的請求
type FoodHandler struct {
	foodService *service.FoodService
	log         *slog.Logger
}

// NewFoodHandler 創建一個新的 FoodHandler 實例
func NewFoodHandler(foodService *service.FoodService, log *slog.Logger) *FoodHandler {
	return &FoodHandler{foodService: foodService, log: log}
}

// CreateFoodInput 新增食物時的必填欄位
type CreateFoodInput struct {
	ItemID    Field `form:"ITEM_ID" json:"ITEM_ID" binding:"required"`
	ItemName  Field `form:"ITEM_NAME" json:"ITEM_NAME" binding:"required"`
	ItemUnit  Field `form:"ITEM_UNIT" json:"ITEM_UNIT" binding:"required"`
	CompanyID Field `form:"COMPANY_ID" json:"COMPANY_ID" binding:"required"`
}

// UpdateFoodInput 更新食物時的必填欄位，ITEM_ID 來自路徑
type UpdateFoodInput struct {
	ItemName  Field `form:"ITEM_NAME" json:"ITEM_NAME" binding:"required"`
	ItemUnit  Field `form:"ITEM_UNIT" json:"ITEM_UNIT" binding:"required"`
	CompanyID Field `form:"COMPANY_ID" json:"COMPANY_ID" binding:"required"`
}

// ListFoods 回傳所有食物
//
//	@Description	Returns details of all foods in the database
//	@Produce		json
//	@Success		200	{array}		models.Food	"Returns details of foods"
//	@Failure		500	{string}	string		"There is an internal server error"
//	@Router			/foods [get]
func (h *FoodHandler) ListFoods(c *gin.Context) {
	foods, err := h.foodService.ListFoods(c.Request.Context())
	if err != nil {
		writeStoreError(c, h.log, "the query to get the food information did not work", err)
		return
	}

	writeRows(c, h.log, foods)
}

// CreateFood 新增一筆食物
//
//	@Description	Creates a new food
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			food	body		CreateFoodInput	true	"Food to create"
//	@Success		201		{object}	models.Food		"New food was successfully created"
//	@Failure		400		{string}	string			"Missing required field(s)"
//	@Failure		500		{string}	string			"There is an internal server error"
//	@Router			/foods [post]
func (h *FoodHandler) CreateFood(c *gin.Context) {
	var input CreateFoodInput
	if !bindInput(c, &input) {
		return
	}

	food := models.Food{
		ItemID:    string(input.ItemID),
		ItemName:  string(input.ItemName),
		ItemUnit:  string(input.ItemUnit),
		CompanyID: string(input.CompanyID),
	}
	if err := h.foodService.CreateFood(c.Request.Context(), &food); err != nil {
		writeStoreError(c, h.log, "failed to create food", err)
		return
	}

	c.JSON(http.StatusCreated, food)
}

// UpdateFood 依 ITEM_ID 更新食物
//
//	@Description	Updates a specific food using its ITEM_ID
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			id	path		string			true	"Food item's id to be updated"
//	@Param			food	body		UpdateFoodInput	true	"New values"
//	@Success		200		{object}	models.Food		"Food was updated successfully"
//	@Failure		400		{string}	string			"Missing required field(s)"
//	@Failure		404		{string}	string			"The food with the given id was not found"
//	@Failure		500		{string}	string			"There is an internal server error"
//	@Router			/foods/{id} [put]
func (h *FoodHandler) UpdateFood(c *gin.Context) {
	var input UpdateFoodInput
	if !bindInput(c, &input) {
		return
	}

	food := models.Food{
		ItemID:    c.Param("id"),
		ItemName:  string(input.ItemName),
		ItemUnit:  string(input.ItemUnit),
		CompanyID: string(input.CompanyID),
	}
	if err := h.foodService.UpdateFood(c.Request.Context(), &food); err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			c.String(http.StatusNotFound, "Food not found")
			return
		}
		writeStoreError(c, h.log, "failed to update food", err)
		return
	}

	c.JSON(http.StatusOK, food)
}

// DeleteFood 依 ITEM_ID 刪除食物
//
//	@Description	Removes a specific food by using its ITEM_ID
//	@Produce		json
//	@Param			id	path		string				true	"The ID of the food item that will be deleted"
//	@Success		200		{object}	map[string]string	"Food was deleted successfully"
//	@Failure		404		{string}	string				"Could not find food to delete"
//	@Failure		500		{string}	string				"There is an internal server error"
//	@Router			/foods/{id} [delete]
func (h *FoodHandler) DeleteFood(c *gin.Context) {
	if err := h.foodService.DeleteFood(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			c.String(http.StatusNotFound, "Food not found")
			return
		}
		writeStoreError(c, h.log, "failed to delete food", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food was deleted successfully"})
}
