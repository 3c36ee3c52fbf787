package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/govlash-laundry/models"
	"github.com/yeremiapane/govlash-laundry/utils"
	"github.com/yeremiapane/govlash-laundry/validators"
)

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// CreateTransaction -> customer membuat order baru (status awal Pending,
// belum dipegang staff). Weight diterima sebagai string mentah.
func (tc *TransactionController) CreateTransaction(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	type request struct {
		ServiceID uint   `json:"service_id"`
		Weight    string `json:"weight"`
		Notes     string `json:"notes"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	weight, err := validators.ValidateTransaction(req.Weight, req.Notes)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var service models.Service
	if err := tc.DB.First(&service, req.ServiceID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("Service not found."))
		return
	}

	transaction := models.Transaction{
		ServiceID:  service.ID,
		CustomerID: customerID,
		Status:     models.StatusPending,
		Weight:     weight,
		Notes:      req.Notes,
	}

	if err := tc.DB.Create(&transaction).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.InfoLogger.Printf("Transaction #%d created by customer %d (%.2f kg)",
		transaction.ID, customerID, weight)

	utils.RespondJSON(c, http.StatusCreated, "Transaction created", transaction)
}

// GetTransactionHistory -> riwayat order milik customer yang login.
func (tc *TransactionController) GetTransactionHistory(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var transactions []models.Transaction
	if err := tc.DB.Scopes(models.CustomerHistory(customerID)).
		Preload("Service").
		Find(&transactions).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Transaction history", transactions)
}

// GetAssignmentQueue -> antrian receptionist: order Pending yang belum
// dipegang laundry staff.
func (tc *TransactionController) GetAssignmentQueue(c *gin.Context) {
	var transactions []models.Transaction
	if err := tc.DB.Scopes(models.AssignmentQueue()).
		Preload("Service").
		Preload("Customer").
		Find(&transactions).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Unassigned pending transactions", transactions)
}

// AssignTransaction -> receptionist memasangkan order ke laundry staff.
// StaffID dan ReceptionistID diisi bersamaan dalam satu update.
func (tc *TransactionController) AssignTransaction(c *gin.Context) {
	receptionistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	type request struct {
		TransactionID *uint `json:"transaction_id"`
		StaffID       *uint `json:"staff_id"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.TransactionID == nil {
		utils.RespondAppError(c, utils.NewSelectionError("Please select a Transaction."))
		return
	}
	if req.StaffID == nil {
		utils.RespondAppError(c, utils.NewSelectionError("Please select a Staff worker."))
		return
	}

	var transaction models.Transaction
	if err := tc.DB.First(&transaction, *req.TransactionID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("Transaction not found."))
		return
	}

	var staff models.User
	if err := tc.DB.Scopes(models.AssignableStaff()).
		First(&staff, *req.StaffID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("Staff not found."))
		return
	}

	if err := transaction.Assign(staff.ID, receptionistID); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if err := tc.DB.Save(&transaction).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.InfoLogger.Printf("Transaction #%d assigned to staff %d by receptionist %d",
		transaction.ID, staff.ID, receptionistID)

	utils.RespondJSON(c, http.StatusOK, "Transaction assigned", transaction)
}

// GetJobQueue -> pekerjaan Pending milik laundry staff yang login.
func (tc *TransactionController) GetJobQueue(c *gin.Context) {
	staffID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var jobs []models.Transaction
	if err := tc.DB.Scopes(models.StaffJobQueue(staffID)).
		Preload("Service").
		Preload("Customer").
		Find(&jobs).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pending jobs", jobs)
}

// FinishTransaction -> staff menandai order selesai. Assignment tidak
// diwajibkan sebelumnya; order Pending mana pun boleh diselesaikan.
func (tc *TransactionController) FinishTransaction(c *gin.Context) {
	idStr := c.Param("transaction_id")
	id, _ := strconv.Atoi(idStr)

	var transaction models.Transaction
	if err := tc.DB.First(&transaction, id).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("Transaction not found."))
		return
	}

	if err := transaction.Finish(); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if err := tc.DB.Save(&transaction).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.InfoLogger.Printf("Transaction #%d finished", transaction.ID)

	utils.RespondJSON(c, http.StatusOK, "Transaction finished", transaction)
}

// GetAllTransactions -> monitoring admin, opsional filter ?status=.
// Selain "Pending" / "Finished" berarti tanpa filter.
func (tc *TransactionController) GetAllTransactions(c *gin.Context) {
	statusFilter := c.Query("status")

	var transactions []models.Transaction
	if err := tc.DB.Scopes(models.AdminTransactionList(statusFilter)).
		Preload("Service").
		Preload("Customer").
		Find(&transactions).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of transactions", transactions)
}
