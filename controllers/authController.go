package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/models"
	"foodhub-api/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Signup creates a demo account held in memory for this process only.
func (c *AuthController) Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.Auth.Signup(signUpData); err != nil {
		if errors.Is(err, services.ErrUserExists) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserExists)
			return
		}
		log.Println("Signup error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create account")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgSignupOK})
}

// Login exchanges credentials for a JWT.
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	token, err := c.Auth.Login(loginData)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		log.Println("Login error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": token})
}
