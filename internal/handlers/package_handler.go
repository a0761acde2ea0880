package handlers

import (
	"strconv"

	"mangan/internal/models"
	"mangan/internal/services"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	packageService services.PackageService
}

func NewPackageHandler(packageService services.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

func (h *PackageHandler) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		pkgs, err := h.packageService.GetByCategory(models.PackageCategory(category))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, "", pkgs)
		return
	}

	pkgs, err := h.packageService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", pkgs)
}

func (h *PackageHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	pkg, err := h.packageService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", pkg)
}

func (h *PackageHandler) Create(c *gin.Context) {
	var input services.PackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	pkg, err := h.packageService.CreatePackage(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "package created", pkg)
}

func (h *PackageHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	var input services.PackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	pkg, err := h.packageService.UpdatePackage(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "package updated", pkg)
}

func (h *PackageHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.packageService.DeletePackage(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "package deleted", nil)
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
