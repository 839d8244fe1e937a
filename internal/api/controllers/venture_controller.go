package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"founderkit/internal/models/request_models"
	"founderkit/internal/services"
	"founderkit/pkg/utils"
)

type VentureController struct {
	ventureService services.VentureServiceInterface
}

func NewVentureController(ventureService services.VentureServiceInterface) *VentureController {
	return &VentureController{
		ventureService: ventureService,
	}
}

func (vc *VentureController) GetVentureHandler(c *gin.Context) {
	venture, err := vc.ventureService.GetVenture(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, venture, "Fetched venture successfully")
}

func (vc *VentureController) CreateVentureHandler(c *gin.Context) {
	var req request_models.CreateVentureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}
	venture, err := vc.ventureService.CreateVenture(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, venture, "Venture created successfully")
}

// GET /ventures/:id/modules
func (vc *VentureController) VentureModulesHandler(c *gin.Context) {
	progress, err := vc.ventureService.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, progress, "Fetched venture modules successfully")
}

// GET /modules lists the catalog as seen by a venture with nothing completed.
func (vc *VentureController) ListModulesHandler(c *gin.Context) {
	utils.RespondSuccess(c, services.ListModules(nil), "Fetched modules successfully")
}
