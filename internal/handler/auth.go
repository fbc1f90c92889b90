package handler

import (
    "context"      // provides context with cancellation for DB calls
    "database/sql" // sql sentinel errors
    "log"          // request-level audit logging
    "net/http"     // HTTP status codes
    "time"         // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/svce/hostel-management/internal/config"     // app configuration
    "github.com/svce/hostel-management/internal/repository" // DB repositories
    "github.com/svce/hostel-management/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for the login endpoint.
type AuthHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

func NewAuthHandler(cfg config.Config, a *repository.AdminRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: a}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResp struct {
	Token   string   `json:"token"`
	Message string   `json:"message"`
	User    userPart `json:"user"`
}

// Login authenticates the administrator and returns a token.
//
// In the default trust-all mode the credential pair is compared against the
// configured constants and the token is an opaque random hex string that no
// later request validates.  In bearer mode the pair is verified against the
// admin table's salted hash and the token is a signed JWT that the
// middleware does verify.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	log.Printf("login attempt for username: %s", req.Username)

	if h.Cfg.AuthMode == "bearer" {
		return h.loginBearer(c, req)
	}

	if req.Username != h.Cfg.AdminUsername || req.Password != h.Cfg.AdminPassword {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
	}
	token, err := utils.RandomHex(h.Cfg.TokenBytes)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Could not issue token"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Token:   token,
		Message: "Authentication successful",
		User:    userPart{Username: req.Username, Role: "admin"},
	})
}

// loginBearer verifies the credentials against the admin table and issues
// a signed access token.
func (h *AuthHandler) loginBearer(c echo.Context, req loginReq) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	if !utils.VerifyPassword(a.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, a.Username, "admin", h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Could not issue token"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Token:   access.Token,
		Message: "Authentication successful",
		User:    userPart{Username: a.Username, Role: "admin"},
	})
}
