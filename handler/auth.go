package handler

import (
	"Chirp/config"
	"Chirp/middleware"
	"Chirp/pkg/context"
	"Chirp/pkg/jwt"
	"Chirp/pkg/log"
	"Chirp/pkg/response"
	"Chirp/service"
	"Chirp/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
	Sessions    SessionStore
	Limiter     *middleware.RateLimiter
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/signup", a.Limiter.Handler(), context.Wrap(a.Signup))
	g.POST("/login", a.Limiter.Handler(), context.Wrap(a.Login))
	g.POST("/logout", context.Wrap(a.Logout))
	g.GET("/user", authorize(a.Config, a.Sessions), context.Wrap(a.User))
}

// Signup creates the account and starts a session for it.
func (a *Auth) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := a.UserService.Signup(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	token, err := a.startSession(c, user.ID)
	if err != nil {
		return err
	}

	response.Created(c, types.SessionResponse{User: types.NewSelfView(user), Token: token})
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := a.UserService.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		return err
	}
	token, err := a.startSession(c, user.ID)
	if err != nil {
		return err
	}

	response.Success(c, types.SessionResponse{User: types.NewSelfView(user), Token: token})
	return nil
}

// Logout revokes the presented session, if any, and clears the cookie.
func (a *Auth) Logout(c *gin.Context) error {
	if token := middleware.SessionToken(c, a.Config.Session.CookieName); token != "" {
		claims, err := jwt.ParseToken([]byte(a.Config.Jwt.Secret), jwt.TypeSession, token)
		if err == nil {
			if err := a.Sessions.Revoke(c.Request.Context(), claims.ID, claims.TTL()); err != nil {
				return err
			}
		}
	}
	clearSessionCookie(c, a.Config)
	response.OK(c, "Logged out successfully")
	return nil
}

func (a *Auth) User(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := a.UserService.GetCurrent(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, types.NewSelfView(user))
	return nil
}

func (a *Auth) startSession(c *gin.Context, userID int64) (string, error) {
	expire := a.Config.Jwt.Expire()
	token, claims, err := jwt.GenerateToken([]byte(a.Config.Jwt.Secret), userID, jwt.TypeSession, expire)
	if err != nil {
		return "", err
	}
	setSessionCookie(c, a.Config, token, expire)
	log.L.Info("session started", zap.Int64("user_id", userID), zap.String("jti", claims.ID))
	return token, nil
}
