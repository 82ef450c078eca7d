package controllers

import (
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
)

type userLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// vendors sign in with username, email or license number
type vendorLoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /api/user/register
func (a *AuthController) RegisterUser(c *gin.Context) {
	var req services.RegisterUserInput
	if !bindJSON(c, &req) {
		return
	}
	token, user, err := a.Auth.RegisterUser(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "user": user})
}

// POST /api/user/login
func (a *AuthController) LoginUser(c *gin.Context) {
	var req userLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	token, user, err := a.Auth.LoginUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /api/user/check-auth
func (a *AuthController) CheckUser(c *gin.Context) {
	user, err := a.Auth.GetUser(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.OK(c, gin.H{"authenticated": false})
		return
	}
	resp.OK(c, gin.H{"authenticated": true, "user": user})
}

// POST /api/auth/register
func (a *AuthController) RegisterVendor(c *gin.Context) {
	var req services.RegisterVendorInput
	if !bindJSON(c, &req) {
		return
	}
	token, vendor, err := a.Auth.RegisterVendor(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "vendor": vendor})
}

// POST /api/auth/login
func (a *AuthController) LoginVendor(c *gin.Context) {
	var req vendorLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	token, vendor, err := a.Auth.LoginVendor(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "vendor": vendor})
}

// GET /api/auth/check-auth
func (a *AuthController) CheckVendor(c *gin.Context) {
	vendor, err := a.Auth.GetVendor(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.OK(c, gin.H{"authenticated": false})
		return
	}
	resp.OK(c, gin.H{"authenticated": true, "vendor": vendor})
}

// GET /api/user/logout, /api/auth/logout
// Tokens are stateless; the client drops it.
func (a *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "Logged out"})
}
