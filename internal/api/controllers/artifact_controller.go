package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"founderkit/internal/models/request_models"
	"founderkit/internal/services"
	"founderkit/pkg/utils"
)

type ArtifactController struct {
	artifactService services.ArtifactServiceInterface
}

func NewArtifactController(artifactService services.ArtifactServiceInterface) *ArtifactController {
	return &ArtifactController{
		artifactService: artifactService,
	}
}

func (ac *ArtifactController) ListArtifactsHandler(c *gin.Context) {
	var query request_models.ListArtifactsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	artifacts, err := ac.artifactService.ListArtifacts(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, artifacts, "Fetched artifacts successfully")
}

func (ac *ArtifactController) CreateArtifactHandler(c *gin.Context) {
	var req request_models.CreateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "type, content and ventureId are required")
		return
	}
	artifact, err := ac.artifactService.CreateArtifact(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, artifact, "Artifact created successfully")
}

func (ac *ArtifactController) GetArtifactHandler(c *gin.Context) {
	artifact, err := ac.artifactService.GetArtifact(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, artifact, "Fetched artifact successfully")
}

func (ac *ArtifactController) UpdateArtifactHandler(c *gin.Context) {
	var req request_models.UpdateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	artifact, err := ac.artifactService.UpdateArtifact(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, artifact, "Artifact updated successfully")
}

func (ac *ArtifactController) DeleteArtifactHandler(c *gin.Context) {
	if err := ac.artifactService.DeleteArtifact(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Artifact deleted successfully")
}
