package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/govlash-laundry/models"
	"github.com/yeremiapane/govlash-laundry/utils"
)

// Template pesan notifikasi order selesai.
const completionMessageTemplate = "Good news! Your order #%d is finished and ready for pickup. Thank you for choosing GoVlash!"

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// SendCompletionNotification -> admin mengirim notifikasi order selesai.
// transaction_id dan customer_id dipercaya dari caller, tidak dicek silang
// terhadap transaksinya. Tidak idempotent: dua kali kirim = dua notifikasi.
func (nc *NotificationController) SendCompletionNotification(c *gin.Context) {
	type request struct {
		TransactionID uint `json:"transaction_id"`
		CustomerID    uint `json:"customer_id"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	notification := models.Notification{
		RecipientID:   req.CustomerID,
		TransactionID: req.TransactionID,
		Message:       fmt.Sprintf(completionMessageTemplate, req.TransactionID),
		IsRead:        false,
	}

	if err := nc.DB.Create(&notification).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.InfoLogger.Printf("Completion notification sent for transaction #%d to customer %d",
		req.TransactionID, req.CustomerID)

	utils.RespondJSON(c, http.StatusCreated, "Notification sent", notification)
}

// GetMyNotifications -> inbox customer yang login, terbaru dulu.
func (nc *NotificationController) GetMyNotifications(c *gin.Context) {
	recipientID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var notifications []models.Notification
	if err := nc.DB.Scopes(models.RecipientInbox(recipientID)).
		Find(&notifications).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notifications", notifications)
}

// MarkNotificationRead -> customer menandai notifikasi miliknya sudah dibaca.
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	recipientID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	idStr := c.Param("notif_id")
	id, _ := strconv.Atoi(idStr)

	var notification models.Notification
	if err := nc.DB.Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notification).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("Notification not found."))
		return
	}

	notification.IsRead = true
	if err := nc.DB.Save(&notification).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", notification)
}

// DeleteNotification -> customer menghapus notifikasi miliknya.
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	recipientID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	idStr := c.Param("notif_id")
	id, _ := strconv.Atoi(idStr)

	var notification models.Notification
	if err := nc.DB.Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notification).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("Notification not found."))
		return
	}

	if err := nc.DB.Delete(&notification).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"notif_id": notification.ID})
}
