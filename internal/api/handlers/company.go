package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog_api/internal/models"
	"catalog_api/internal/service"
)

// CompanyHandler 處理 company 資料表的請求，只有查詢與新增
type CompanyHandler struct {
	companyService *service.CompanyService
	log            *slog.Logger
}

func NewCompanyHandler(companyService *service.CompanyService, log *slog.Logger) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, log: log}
}

type CreateCompanyInput struct {
	CompanyID   Field `form:"COMPANY_ID" json:"COMPANY_ID" binding:"required"`
	CompanyName Field `form:"COMPANY_NAME" json:"COMPANY_NAME" binding:"required"`
	CompanyCity Field `form:"COMPANY_CITY" json:"COMPANY_CITY" binding:"required"`
}

// ListCompanies
//
//	@Description	Returns details of all companies in the database
//	@Produce		json
//	@Success		200	{array}		models.Company	"Returns details of companies"
//	@Failure		500	{string}	string			"There is an internal server error"
//	@Router			/companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		writeStoreError(c, h.log, "the query to get the companies did not work", err)
		return
	}

	writeRows(c, h.log, companies)
}

// CreateCompany
//
//	@Description	Creates a new company
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			company	body		CreateCompanyInput	true	"Company to create"
//	@Success		201		{object}	models.Company		"New company was successfully created"
//	@Failure		400		{string}	string				"Missing required field(s)"
//	@Failure		500		{string}	string				"There is an internal server error"
//	@Router			/companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var input CreateCompanyInput
	if !bindInput(c, &input) {
		return
	}

	company := models.Company{
		CompanyID:   string(input.CompanyID),
		CompanyName: string(input.CompanyName),
		CompanyCity: string(input.CompanyCity),
	}
	if err := h.companyService.CreateCompany(c.Request.Context(), &company); err != nil {
		writeStoreError(c, h.log, "failed to create company", err)
		return
	}

	c.JSON(http.StatusCreated, company)
}
