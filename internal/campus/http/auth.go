package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// AuthHandler handles registration, login and user lookups.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /api/register
//
//	@Summary		Register
//	@Description	Creates a student, faculty or admin account with its role profile.
//	@Description	College-level admins may omit the department.
//	@Description	Admin accounts require a bearer token of a college-level admin.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		campussdk.RegisterRequest	true	"Registration form"
//	@Success		201		{object}	campussdk.RegisterResponse	"message, userId"
//	@Failure		400		{object}	httpx.ErrorBody				"validation_error or user_exists"
//	@Failure		403		{object}	httpx.ErrorBody				"access_denied"
//	@Failure		429		{object}	httpx.ErrorBody				"rate_limit_exceeded"
//	@Failure		500		{object}	httpx.ErrorBody				"server_error"
//	@Router			/api/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req campussdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	var caller domain.Principal
	if claims, ok := httpx.ClaimsFromContext(r.Context()); ok {
		caller = service.PrincipalFromClaims(claims)
	}

	user, err := h.AuthService.Register(r.Context(), caller, service.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Department:  req.Department,
		StudentID:   req.StudentID,
		YearOfStudy: req.YearOfStudy,
		FacultyID:   req.FacultyID,
		Position:    req.Position,
		AdminID:     req.AdminID,
		AdminLevel:  req.AdminLevel,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to register user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, campussdk.RegisterResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

// HandleLogin handles POST /api/login
//
//	@Summary		Login
//	@Description	Exchanges email and password for an HS256 access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	campussdk.LoginResponse	"token, role, department"
//	@Failure		400		{object}	httpx.ErrorBody			"invalid_request"
//	@Failure		401		{object}	httpx.ErrorBody			"invalid_credentials"
//	@Failure		429		{object}	httpx.ErrorBody			"rate_limit_exceeded"
//	@Router			/api/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req campussdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Failed to log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.LoginResponse{
		Message:    "Login successful",
		Token:      res.Token,
		Role:       string(res.User.Role),
		Department: res.User.Department,
		ExpiresIn:  int(res.ExpiresIn.Seconds()),
	})
}

// HandleMe handles GET /api/me
//
//	@Summary		Current user
//	@Description	Returns the authenticated user and their role profile.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	campussdk.User	"user with profile"
//	@Failure		401	{object}	httpx.ErrorBody	"invalid_token"
//	@Failure		404	{object}	httpx.ErrorBody	"not_found"
//	@Router			/api/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		campussdk.ErrInvalidToken.WriteError(w)
		return
	}

	user, profile, err := h.AuthService.Me(r.Context(), claims.Subject)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user, &profile))
}

// HandleListUsers handles GET /api/users
//
//	@Summary		List users
//	@Description	Lists users ordered by username, optionally filtered by department and role.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Param			department	query		string			false	"Department code"
//	@Param			role		query		string			false	"student, faculty or admin"
//	@Success		200			{array}		campussdk.User	"users"
//	@Failure		400			{object}	httpx.ErrorBody	"validation_error"
//	@Failure		401			{object}	httpx.ErrorBody	"invalid_token"
//	@Failure		403			{object}	httpx.ErrorBody	"insufficient_scope"
//	@Router			/api/users [get].
func (h *AuthHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, err := h.AuthService.ListUsers(r.Context(), q.Get("department"), q.Get("role"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list users")
		return
	}

	out := make([]campussdk.User, len(users))
	for i, u := range users {
		out[i] = toUser(u, nil)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// principal returns the caller of an authenticated route.
func principal(r *http.Request) domain.Principal {
	claims, _ := httpx.ClaimsFromContext(r.Context())
	return service.PrincipalFromClaims(claims)
}
