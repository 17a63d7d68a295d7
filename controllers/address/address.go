package addressControllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/surampallyshivasai/Wearsy/middleware"
	"github.com/surampallyshivasai/Wearsy/models"
)

var (
	ErrInvalidPhone     = errors.New("phone must be exactly 10 digits")
	ErrInvalidPincode   = errors.New("pincode must be exactly 6 digits")
	ErrDuplicateAddress = errors.New("address already saved")
	ErrAddressNotFound  = errors.New("address not found")
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

type AddressInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	City    string `json:"city" binding:"required"`
	Pincode string `json:"pincode" binding:"required"`
}

// -------- Core Logic --------

// SaveAddress validates the profile and rejects an exact duplicate of an
// existing entry for the same user.
func SaveAddress(db *gorm.DB, userID uint, input AddressInput) (models.SavedAddress, error) {
	if !phonePattern.MatchString(input.Phone) {
		return models.SavedAddress{}, ErrInvalidPhone
	}
	if !pincodePattern.MatchString(input.Pincode) {
		return models.SavedAddress{}, ErrInvalidPincode
	}

	var existing models.SavedAddress
	err := db.Where(
		"user_id = ? AND name = ? AND address = ? AND phone = ? AND city = ? AND pincode = ?",
		userID, input.Name, input.Address, input.Phone, input.City, input.Pincode,
	).First(&existing).Error
	if err == nil {
		return models.SavedAddress{}, ErrDuplicateAddress
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SavedAddress{}, err
	}

	addr := models.SavedAddress{
		UserID:  userID,
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		City:    input.City,
		Pincode: input.Pincode,
	}
	return addr, db.Create(&addr).Error
}

func ListAddresses(db *gorm.DB, userID uint) ([]models.SavedAddress, error) {
	var addresses []models.SavedAddress
	err := db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&addresses).Error
	return addresses, err
}

func DeleteAddress(db *gorm.DB, userID, addressID uint) error {
	result := db.Where("id = ? AND user_id = ?", addressID, userID).Delete(&models.SavedAddress{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

// -------- Handlers --------

// GET /addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		addresses, err := ListAddresses(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		addr, err := SaveAddress(db, userID, input)
		switch {
		case errors.Is(err, ErrInvalidPhone), errors.Is(err, ErrInvalidPincode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrDuplicateAddress):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
		default:
			c.JSON(http.StatusOK, addr)
		}
	}
}

// DELETE /addresses/:id
func DeleteAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		addressID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}

		switch err := DeleteAddress(db, userID, uint(addressID)); {
		case errors.Is(err, ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
		}
	}
}
