package router

import (
	"github.com/gin-gonic/gin"

	authhandler "wetube_backend/internal/feature/auth/transport/handler"
	"wetube_backend/internal/platform/externalapi/oauth"
	"wetube_backend/internal/platform/http/handler"
	jwtmw "wetube_backend/internal/platform/jwt"
	"wetube_backend/internal/platform/session"
)

// Deps bundles what the route table needs.
type Deps struct {
	Auth     *authhandler.AuthHandler
	Users    *authhandler.UserHandler
	Health   *handler.HealthHandler
	Signer   jwtmw.SessionIDParser
	Sessions session.Loader

	// UploadDir is served under /uploads when set.
	UploadDir string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	// Health check, no session needed
	r.GET("/healthz", d.Health.Health)
	r.HEAD("/healthz", d.Health.Health)

	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	// Every other route runs with the request session
	app := r.Group("/")
	app.Use(jwtmw.CookieSessionID(d.Signer, session.CookieName), session.Load(d.Sessions))

	// Anonymous only
	public := app.Group("/")
	public.Use(session.PublicOnly())
	{
		public.POST("/join", d.Auth.Join)
		public.POST("/login", d.Auth.Login)
		for _, provider := range []string{oauth.GitHubProvider, oauth.KakaoProvider} {
			public.GET("/users/"+provider+"/start", d.Auth.StartOAuth(provider))
			public.GET("/users/"+provider+"/finish", d.Auth.FinishOAuth(provider))
		}
	}

	// Logged-in only
	protected := app.Group("/users")
	protected.Use(session.Protector())
	{
		protected.GET("/logout", d.Auth.Logout)
		protected.GET("/edit", d.Users.GetEdit)
		protected.POST("/edit", d.Users.PostEdit)
		protected.GET("/change-password", d.Users.GetChangePassword)
		protected.POST("/change-password", d.Users.PostChangePassword)
	}

	// Public profile
	app.GET("/users/:id", d.Users.See)

	return r
}
