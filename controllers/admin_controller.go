package controllers

import (
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"

	"github.com/gin-gonic/gin"
)

type adminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminController struct {
	Auth    *services.AuthService
	Vendors *services.VendorService
}

func NewAdminController(auth *services.AuthService, vendors *services.VendorService) *AdminController {
	return &AdminController{Auth: auth, Vendors: vendors}
}

// POST /api/admin/login
func (ac *AdminController) Login(c *gin.Context) {
	var req adminLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	token, err := ac.Auth.LoginAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token})
}

// PATCH /api/admin/vendors/:vendorId/verify
func (ac *AdminController) SetVendorFlags(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "vendorId")
	if !ok {
		return
	}
	var req services.VendorFlagsInput
	if !bindJSON(c, &req) {
		return
	}
	vendor, err := ac.Vendors.SetFlags(c.Request.Context(), vendorID, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Vendor updated", "vendor": vendor})
}
