package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/govlash-laundry/models"
	"github.com/yeremiapane/govlash-laundry/utils"
	"github.com/yeremiapane/govlash-laundry/validators"
)

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// GetAllServices -> katalog layanan (dipakai admin dan form order customer).
func (sc *ServiceController) GetAllServices(c *gin.Context) {
	var services []models.Service
	if err := sc.DB.Find(&services).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of services", services)
}

// CreateService -> admin menambahkan layanan baru.
// Price dan duration diterima sebagai string, parsing ada di validator.
func (sc *ServiceController) CreateService(c *gin.Context) {
	type request struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       string `json:"price"`
		Duration    string `json:"duration"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	price, duration, err := validators.ValidateService(req.Name, req.Description, req.Price, req.Duration)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	service := models.Service{
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		DurationDays: duration,
	}

	if err := sc.DB.Create(&service).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.InfoLogger.Printf("Service created: %s (price=%d, duration=%d days)",
		service.Name, service.Price, service.DurationDays)

	utils.RespondJSON(c, http.StatusCreated, "Service created", service)
}

// DeleteService -> admin menghapus layanan dari katalog.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	idStr := c.Param("service_id")
	id, _ := strconv.Atoi(idStr)

	var service models.Service
	if err := sc.DB.First(&service, id).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("Service not found."))
		return
	}

	if err := sc.DB.Delete(&service).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Service deleted", gin.H{"service_id": service.ID})
}
