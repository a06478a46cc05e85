package routes

import (
	"github.com/basiljilani/Foodo-admin/controllers"
	"github.com/basiljilani/Foodo-admin/repository"
	"github.com/basiljilani/Foodo-admin/services"
	"github.com/basiljilani/Foodo-admin/storage"
	"github.com/basiljilani/Foodo-admin/uploads"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store storage.Store) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewMenuItemRepository(db)
	offerRepo := repository.NewOfferRepository(db)

	// Uploaders, one per image bucket
	restUploader := uploads.NewUploader(store, storage.BucketRestaurantImages)
	itemUploader := uploads.NewUploader(store, storage.BucketMenuItemImages)

	// Services
	catalog := services.NewCatalogService(restRepo)
	offers := services.NewOfferService(offerRepo)

	// Controllers
	restCtrl := controllers.NewRestaurantController(catalog, restUploader)
	menuCtrl := controllers.NewMenuController(restRepo, catRepo, itemRepo, itemUploader)
	offerCtrl := controllers.NewOfferController(offers)
	uploadCtrl := controllers.NewUploadController(restUploader, itemUploader)

	// Restaurants
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Get)
	r.POST("/restaurants", restCtrl.Create)
	r.PATCH("/restaurants/:id", restCtrl.Update)
	r.DELETE("/restaurants/:id", restCtrl.Delete)

	// Menu manager, scoped to a restaurant
	r.GET("/restaurants/:id/menu", menuCtrl.Menu)
	r.POST("/restaurants/:id/categories", menuCtrl.CreateCategory)
	r.PATCH("/restaurants/:id/categories/:categoryId", menuCtrl.UpdateCategory)
	r.DELETE("/restaurants/:id/categories/:categoryId", menuCtrl.DeleteCategory)
	r.POST("/restaurants/:id/menu-items", menuCtrl.CreateItem)
	r.PATCH("/restaurants/:id/menu-items/:itemId", menuCtrl.UpdateItem)
	r.DELETE("/restaurants/:id/menu-items/:itemId", menuCtrl.DeleteItem)

	// Cross-restaurant item search
	r.GET("/menu-items", menuCtrl.SearchItems)

	// Offers
	r.GET("/offers", offerCtrl.List)
	r.POST("/offers", offerCtrl.Create)
	r.PATCH("/offers/:id", offerCtrl.Update)
	r.DELETE("/offers/:id", offerCtrl.Delete)
	r.POST("/offers/:id/copy", offerCtrl.CopyCode)

	// Direct image upload
	r.POST("/uploads/:bucket", uploadCtrl.Upload)
}
