package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"animalovers-backend/internal/shared/middleware"
	"animalovers-backend/internal/shared/response"
	"animalovers-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(api, c)
		setupAdminRoutes(api, c)
	}

	return router
}

func setupPublicRoutes(api *gin.RouterGroup, c *container.Container) {
	articles := api.Group("/articles")
	{
		articles.GET("", c.PublicArticles.PublicList)
		articles.GET("/:id", c.PublicArticles.GetByID)
		articles.GET("/slug/:slug", c.PublicArticles.GetBySlug)
	}

	products := api.Group("/products")
	{
		products.GET("", c.PublicProducts.PublicList)
		products.GET("/:id", c.PublicProducts.GetByID)
		products.GET("/slug/:slug", c.PublicProducts.GetBySlug)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", c.PublicCategories.GetHierarchy)
		categories.GET("/:id", c.PublicCategories.GetByID)
		categories.GET("/slug/:slug", c.PublicCategories.GetBySlug)
	}

	campaigns := api.Group("/campaigns")
	{
		campaigns.GET("", c.PublicCampaigns.PublicList)
		campaigns.GET("/slug/:slug", c.PublicCampaigns.GetBySlug)
	}

	donations := api.Group("/donations")
	{
		donations.POST("", c.Donations.Process)
		donations.GET("/kkiapay-callback", c.Donations.Callback)
	}

	adoptions := api.Group("/adoptions")
	{
		adoptions.GET("", c.PublicAdoptions.PublicList)
		adoptions.GET("/:id", c.PublicAdoptions.GetByID)
		adoptions.POST("/:id/reserve", c.PublicAdoptions.Reserve)
	}
}

func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := api.Group("/admin")

	// Login is the only unauthenticated admin route.
	admin.POST("/login", c.Auth.Login)

	admin.Use(middleware.Auth(c.JWTManager), middleware.RequireAdmin())
	{
		admin.GET("/verify-auth", c.Auth.VerifyAuth)

		articles := admin.Group("/articles")
		{
			articles.GET("", c.Articles.List)
			articles.GET("/:id", c.Articles.GetByID)
			articles.POST("", c.Articles.Create)
			articles.PUT("/:id", c.Articles.Update)
			articles.DELETE("/:id", c.Articles.Delete)
		}

		articleCategories := admin.Group("/article-categories")
		{
			articleCategories.GET("", c.ArticleCategories.List)
			articleCategories.POST("", c.ArticleCategories.Create)
			articleCategories.PUT("/:id", c.ArticleCategories.Update)
			articleCategories.DELETE("/:id", c.ArticleCategories.Delete)
		}

		articleTags := admin.Group("/article-tags")
		{
			articleTags.GET("", c.ArticleTags.List)
			articleTags.POST("", c.ArticleTags.Create)
			articleTags.PUT("/:id", c.ArticleTags.Update)
			articleTags.DELETE("/:id", c.ArticleTags.Delete)
		}

		products := admin.Group("/products")
		{
			products.GET("", c.Products.List)
			products.GET("/:id", c.Products.GetByID)
			products.POST("", c.Products.Create)
			products.PUT("/:id", c.Products.Update)
			products.DELETE("/:id", c.Products.Delete)
		}

		categories := admin.Group("/categories")
		{
			categories.GET("", c.Categories.GetHierarchy)
			categories.GET("/:id", c.Categories.GetByID)
			categories.POST("", c.Categories.Create)
			categories.PUT("/:id", c.Categories.Update)
			categories.DELETE("/:id", c.Categories.Delete)
		}

		campaigns := admin.Group("/campaigns")
		{
			campaigns.GET("", c.Campaigns.List)
			campaigns.GET("/:id", c.Campaigns.GetByID)
			campaigns.POST("", c.Campaigns.Create)
			campaigns.PUT("/:id", c.Campaigns.Update)
			campaigns.DELETE("/:id", c.Campaigns.Delete)
		}

		adoptions := admin.Group("/adoptions")
		{
			adoptions.GET("", c.Adoptions.List)
			adoptions.GET("/:id", c.Adoptions.GetByID)
			adoptions.POST("", c.Adoptions.Create)
			adoptions.PUT("/:id", c.Adoptions.Update)
			adoptions.DELETE("/:id", c.Adoptions.Delete)
		}

		donations := admin.Group("/donations")
		{
			donations.GET("", c.AdminDonations.List)
			donations.GET("/stats", c.AdminDonations.Stats)
			donations.GET("/:id", c.AdminDonations.GetByID)
		}

		admin.GET("/users", c.Users.List)

		admin.GET("/settings", c.Settings.Get)
		admin.PUT("/settings", c.Settings.Update)

		admin.GET("/stats", c.Stats.Overview)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.Fail(ctx, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	}
}
