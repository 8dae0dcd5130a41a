package routes

import (
    "github.com/AdisornNangnoi/foodtracker-backend/cache"
    "github.com/AdisornNangnoi/foodtracker-backend/controllers"
    "github.com/AdisornNangnoi/foodtracker-backend/middlewares"
    "github.com/AdisornNangnoi/foodtracker-backend/services"
    "github.com/AdisornNangnoi/foodtracker-backend/storage"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, store storage.ObjectStore, profiles cache.ProfileCache) *gin.Engine {
    r := gin.Default()

    authController := controllers.NewAuthController(services.NewAuthService(db, store, profiles))
    profileController := controllers.NewProfileController(services.NewProfileService(db, store, profiles))
    foodController := controllers.NewFoodController(services.NewFoodService(db, store))

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", authController.Register)
        auth.POST("/login", authController.Login)
    }

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/me", profileController.Me)
        user.GET("/profile", profileController.GetProfile)
        user.PUT("/profile", profileController.UpdateProfile)
        user.POST("/logout", authController.Logout)
    }

    // Protected food diary routes
    foods := r.Group("/foods")
    foods.Use(middlewares.AuthMiddleware())
    {
        foods.GET("", foodController.List)
        foods.POST("", foodController.Create)
        foods.PUT("/:id", foodController.Update)
        foods.DELETE("/:id", foodController.Delete)
    }

    return r
}
