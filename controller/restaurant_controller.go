package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bangrak/database"
	"bangrak/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetRestaurants(c *gin.Context) {
	query := database.DB

	if category := c.Query("category"); category != "" {
		if !model.Category(category).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Unknown category: %s", category),
			})
			return
		}
		query = query.Where("category = ?", category)
	}

	if subDistrict := c.Query("subDistrict"); subDistrict != "" {
		if !model.SubDistrict(subDistrict).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Unknown subDistrict: %s", subDistrict),
			})
			return
		}
		query = query.Where("sub_district = ?", subDistrict)
	}

	var restaurants []model.Restaurant
	if err := query.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to fetch restaurants: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    restaurants,
	})
}

func GetRestaurant(c *gin.Context) {
	restaurant, ok := findRestaurant(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    restaurant,
	})
}

func CreateRestaurant(c *gin.Context) {
	var restaurant model.Restaurant
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	restaurant.ID = 0
	if err := validateRestaurant(&restaurant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if err := database.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create restaurant: %v", err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Restaurant created successfully",
		"data":    restaurant,
	})
}

func UpdateRestaurant(c *gin.Context) {
	restaurant, ok := findRestaurant(c)
	if !ok {
		return
	}

	var details model.Restaurant
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	if err := validateRestaurant(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	// Full-record replace: identity and creation time survive, everything
	// else comes from the request.
	details.ID = restaurant.ID
	details.CreatedAt = restaurant.CreatedAt
	restaurant = details

	if err := database.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to update restaurant: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Restaurant updated successfully",
		"data":    restaurant,
	})
}

func DeleteRestaurant(c *gin.Context) {
	restaurant, ok := findRestaurant(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to delete restaurant: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Restaurant deleted successfully",
		"data":    gin.H{"id": restaurant.ID},
	})
}

func UpdatePinPosition(c *gin.Context) {
	restaurant, ok := findRestaurant(c)
	if !ok {
		return
	}

	// Pin coordinates locate the marker on the map overlay; their range is
	// owned by the rendering client and deliberately not validated here.
	var req struct {
		PinX *float64 `json:"pinX" binding:"required"`
		PinY *float64 `json:"pinY" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "pinX and pinY are required",
		})
		return
	}

	restaurant.PinX = *req.PinX
	restaurant.PinY = *req.PinY

	if err := database.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to update pin position: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pin position updated successfully",
		"data":    restaurant,
	})
}

// findRestaurant resolves the :id path param and loads the record, writing
// the error response itself when the lookup fails.
func findRestaurant(c *gin.Context) (model.Restaurant, bool) {
	var restaurant model.Restaurant

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid restaurant ID format",
		})
		return restaurant, false
	}

	if err := database.DB.First(&restaurant, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Restaurant not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch restaurant: %v", err),
			})
		}
		return restaurant, false
	}

	return restaurant, true
}

func validateRestaurant(r *model.Restaurant) error {
	if r.NameTh == "" {
		return errors.New("nameTh is required")
	}
	if r.DescriptionTh == "" {
		return errors.New("descriptionTh is required")
	}
	if r.GoogleMapsUrl == "" {
		return errors.New("googleMapsUrl is required")
	}
	if !r.Category.Valid() {
		return fmt.Errorf("unknown category: %s", r.Category)
	}
	if !r.SubDistrict.Valid() {
		return fmt.Errorf("unknown subDistrict: %s", r.SubDistrict)
	}
	return nil
}
