package container

import (
	"context"
	"fmt"
	"time"

	"animalovers-backend/internal/config"
	infraCache "animalovers-backend/internal/infrastructure/cache"
	"animalovers-backend/internal/infrastructure/database"
	"animalovers-backend/pkg/cache"
	"animalovers-backend/pkg/jwt"
	"animalovers-backend/pkg/logger"

	"animalovers-backend/internal/domains/payment/kkiapay"

	adoptionHandler "animalovers-backend/internal/domains/adoption/handler"
	adoptionRepo "animalovers-backend/internal/domains/adoption/repository"
	adoptionService "animalovers-backend/internal/domains/adoption/service"
	articleHandler "animalovers-backend/internal/domains/article/handler"
	articleRepo "animalovers-backend/internal/domains/article/repository"
	articleService "animalovers-backend/internal/domains/article/service"
	campaignHandler "animalovers-backend/internal/domains/campaign/handler"
	campaignRepo "animalovers-backend/internal/domains/campaign/repository"
	campaignService "animalovers-backend/internal/domains/campaign/service"
	categoryHandler "animalovers-backend/internal/domains/category/handler"
	categoryRepo "animalovers-backend/internal/domains/category/repository"
	categoryService "animalovers-backend/internal/domains/category/service"
	donationHandler "animalovers-backend/internal/domains/donation/handler"
	donationRepo "animalovers-backend/internal/domains/donation/repository"
	donationService "animalovers-backend/internal/domains/donation/service"
	productHandler "animalovers-backend/internal/domains/product/handler"
	productRepo "animalovers-backend/internal/domains/product/repository"
	productService "animalovers-backend/internal/domains/product/service"
	settingsHandler "animalovers-backend/internal/domains/settings/handler"
	settingsRepo "animalovers-backend/internal/domains/settings/repository"
	settingsService "animalovers-backend/internal/domains/settings/service"
	statsHandler "animalovers-backend/internal/domains/stats/handler"
	statsRepo "animalovers-backend/internal/domains/stats/repository"
	statsService "animalovers-backend/internal/domains/stats/service"
	userHandler "animalovers-backend/internal/domains/user/handler"
	userRepo "animalovers-backend/internal/domains/user/repository"
	userService "animalovers-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Handlers come in two
// tiers mirroring the database roles: public handlers are wired to the
// restricted pool, admin handlers to the elevated one. A public route
// can never reach the admin pool by construction.
type Container struct {
	Config     *config.Config
	DB         *database.Gateway
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Public tier.
	PublicArticles   *articleHandler.ArticleHandler
	PublicProducts   *productHandler.ProductHandler
	PublicCategories *categoryHandler.CategoryHandler
	PublicCampaigns  *campaignHandler.CampaignHandler
	PublicAdoptions  *adoptionHandler.AdoptionHandler
	Donations        *donationHandler.DonationHandler

	// Admin tier.
	Auth              *userHandler.AuthHandler
	Users             *userHandler.UserHandler
	Articles          *articleHandler.ArticleHandler
	ArticleCategories *articleHandler.TaxonomyHandler
	ArticleTags       *articleHandler.TaxonomyHandler
	Products          *productHandler.ProductHandler
	Categories        *categoryHandler.CategoryHandler
	Campaigns         *campaignHandler.CampaignHandler
	Adoptions         *adoptionHandler.AdoptionHandler
	AdminDonations    *donationHandler.DonationHandler
	Settings          *settingsHandler.SettingsHandler
	Stats             *statsHandler.StatsHandler
}

// NewContainer builds the whole graph in dependency order: config,
// infrastructure, then one repository/service/handler chain per tier.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	gateway, err := database.NewGateway(connectCtx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = gateway

	// Redis is an accelerator, not a dependency: a failed connection is
	// logged and the repositories run uncached.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, running without cache", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		c.Cache = redisCache
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	c.initPublicTier()
	c.initAdminTier()

	return c, nil
}

func (c *Container) initPublicTier() {
	pool := c.DB.Public()

	articles := articleService.NewArticleService(articleRepo.NewPostgresRepository(pool))
	c.PublicArticles = articleHandler.NewArticleHandler(articles)

	products := productService.NewProductService(productRepo.NewPostgresRepository(pool))
	c.PublicProducts = productHandler.NewProductHandler(products)

	categories := categoryService.NewCategoryService(categoryRepo.NewPostgresRepository(pool, c.Cache))
	c.PublicCategories = categoryHandler.NewCategoryHandler(categories)

	campaignRepository := campaignRepo.NewPostgresRepository(pool, c.Cache)
	campaigns := campaignService.NewCampaignService(campaignRepository)
	c.PublicCampaigns = campaignHandler.NewCampaignHandler(campaigns)

	adoptions := adoptionService.NewAdoptionService(adoptionRepo.NewPostgresRepository(pool))
	c.PublicAdoptions = adoptionHandler.NewAdoptionHandler(adoptions)

	// The donation flow writes through the public tier: inserting a
	// donation and crediting a campaign is exactly what the restricted
	// role is allowed to do.
	donations := donationService.NewDonationService(
		donationRepo.NewPostgresRepository(pool),
		campaignRepository,
	)
	verifier := kkiapay.NewClient(&kkiapay.Config{
		PublicKey:  c.Config.KkiaPay.PublicKey,
		PrivateKey: c.Config.KkiaPay.PrivateKey,
		Secret:     c.Config.KkiaPay.Secret,
		APIURL:     c.Config.KkiaPay.APIURL,
		Sandbox:    c.Config.KkiaPay.Sandbox,
	})
	c.Donations = donationHandler.NewDonationHandler(donations, verifier, c.Config.App.SiteURL)
}

func (c *Container) initAdminTier() {
	pool := c.DB.Admin()

	users := userService.NewUserService(userRepo.NewPostgresRepository(pool), c.JWTManager)
	c.Auth = userHandler.NewAuthHandler(users)
	c.Users = userHandler.NewUserHandler(users)

	articles := articleService.NewArticleService(articleRepo.NewPostgresRepository(pool))
	c.Articles = articleHandler.NewArticleHandler(articles)
	c.ArticleCategories = articleHandler.NewTaxonomyHandler(
		articleRepo.NewTaxonomyRepository(pool, articleRepo.TableArticleCategories), "article category")
	c.ArticleTags = articleHandler.NewTaxonomyHandler(
		articleRepo.NewTaxonomyRepository(pool, articleRepo.TableArticleTags), "article tag")

	products := productService.NewProductService(productRepo.NewPostgresRepository(pool))
	c.Products = productHandler.NewProductHandler(products)

	categories := categoryService.NewCategoryService(categoryRepo.NewPostgresRepository(pool, c.Cache))
	c.Categories = categoryHandler.NewCategoryHandler(categories)

	campaignRepository := campaignRepo.NewPostgresRepository(pool, c.Cache)
	campaigns := campaignService.NewCampaignService(campaignRepository)
	c.Campaigns = campaignHandler.NewCampaignHandler(campaigns)

	adoptions := adoptionService.NewAdoptionService(adoptionRepo.NewPostgresRepository(pool))
	c.Adoptions = adoptionHandler.NewAdoptionHandler(adoptions)

	donations := donationService.NewDonationService(
		donationRepo.NewPostgresRepository(pool),
		campaignRepository,
	)
	// The admin tier never serves the payment callback.
	c.AdminDonations = donationHandler.NewDonationHandler(donations, nil, c.Config.App.SiteURL)

	siteSettings := settingsService.NewSettingsService(settingsRepo.NewPostgresRepository(pool, c.Cache))
	c.Settings = settingsHandler.NewSettingsHandler(siteSettings)

	c.Stats = statsHandler.NewStatsHandler(statsService.NewStatsService(statsRepo.NewPostgresRepository(pool)))
}

// Cleanup releases infrastructure resources, in reverse order of
// acquisition.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
