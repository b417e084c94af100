package handler

import (
	"errors"
	"net/http"

	"github.com/artgallery/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type registerPayload struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account.
func (a *API) Register(c *gin.Context) {
	var payload registerPayload
	if !bindJSON(c, &payload, "username, email and password are required") {
		return
	}

	_, err := a.users.Register(service.RegisterInput{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			respondError(c, http.StatusBadRequest, "User already exists")
			return
		}
		respondServiceError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login checks credentials and stores the user in the session.
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "username and password are required") {
		return
	}

	user, err := a.users.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondServiceError(c, err, "Login failed")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondServiceError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// Logout clears the session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
