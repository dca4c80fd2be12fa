package route

import (
	"bangrak/controller"
	"bangrak/utils"

	"github.com/gin-gonic/gin"
)

func Routes(router *gin.Engine) {
	api := router.Group("/api")

	api.GET("/health", controller.Health)
	api.GET("/restaurants", controller.GetRestaurants)
	api.GET("/restaurants/:id", controller.GetRestaurant)
	api.POST("/admin/login", controller.AdminLogin)
	api.GET("/admin/verify", controller.AdminVerify)

	adminGroup := api.Group("")
	adminGroup.Use(utils.AdminMiddleware())
	{
		adminGroup.POST("/restaurants", controller.CreateRestaurant)
		adminGroup.PUT("/restaurants/:id", controller.UpdateRestaurant)
		adminGroup.DELETE("/restaurants/:id", controller.DeleteRestaurant)
		adminGroup.PATCH("/restaurants/:id/pin", controller.UpdatePinPosition)
		adminGroup.POST("/import/csv", controller.ImportFromFile)
	}
}
