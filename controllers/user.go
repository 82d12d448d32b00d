package controllers

import (
	"net/http"
	"time"

	"elara-server/models"
	"elara-server/repository"
	"elara-server/utils"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// UserController handles user-related requests
type UserController struct {
	Users   repository.UserRepository
	Timeout time.Duration
}

// NewUserController creates a new UserController
func NewUserController(users repository.UserRepository, timeout time.Duration) *UserController {
	return &UserController{
		Users:   users,
		Timeout: timeout,
	}
}

// GetUsers lists every registered user
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r, uc.Timeout)
	defer cancel()

	users, err := uc.Users.List(ctx)
	if err != nil {
		writeError(w, r, err, "Error fetching users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// CreateUser registers a user. A supplied password is stored hashed.
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeJSON(r, &req, ""); err != nil {
		writeError(w, r, err, "Error creating user")
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Phone: req.Phone,
		Role:  req.Role,
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			err = utils.Validationf("Password is too long")
		}
		if err != nil {
			writeError(w, r, err, "Error hashing password")
			return
		}
		user.PasswordHash = string(hashed)
	}

	ctx, cancel := storeContext(r, uc.Timeout)
	defer cancel()
	id, err := uc.Users.Create(ctx, &user)
	if err != nil {
		writeError(w, r, err, "Error creating user")
		return
	}

	writeJSON(w, http.StatusCreated, insertAck{Acknowledged: true, InsertedID: id})
}
