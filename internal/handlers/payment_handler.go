package handlers

import (
	"net/http"
	"os"
	"strings"

	"clinic-backend/internal/config"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// Payment order IDs sent to the gateway carry this prefix so the webhook
// can map them back to a treatment log.
const paymentOrderPrefix = "TRT-"

// CreateTreatmentCheckout opens a Midtrans Snap transaction for an unpaid
// treatment log and returns the token the frontend uses to pay.
func CreateTreatmentCheckout(c *gin.Context) {
	logID := c.Param("logId")

	var entry models.TreatmentLog
	if err := config.DB.First(&entry, "id = ?", logID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Treatment log not found", nil)
		return
	}
	if entry.Paid {
		utils.APIResponse(c, http.StatusBadRequest, false, "Treatment already paid", nil)
		return
	}
	if entry.Cost <= 0 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Nothing to pay for this treatment", nil)
		return
	}

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", entry.PatientID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	var s snap.Client
	s.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtrans.Sandbox)

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  paymentOrderPrefix + entry.ID,
			GrossAmt: int64(entry.Cost),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: patient.Name,
			Email: patient.Email,
			Phone: patient.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    entry.ID,
				Name:  entry.Treatment,
				Price: int64(entry.Cost),
				Qty:   1,
			},
		},
	}

	snapResp, errSnap := s.CreateTransaction(req)
	if errSnap != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Payment gateway error", errSnap.GetMessage())
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Checkout created", gin.H{
		"order_id":     paymentOrderPrefix + entry.ID,
		"amount":       entry.Cost,
		"snap_token":   snapResp.Token,
		"redirect_url": snapResp.RedirectURL,
	})
}

type midtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	OrderID           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
}

// HandleMidtransNotification receives the gateway webhook and marks the
// referenced treatment log as paid on settlement.
func HandleMidtransNotification(c *gin.Context) {
	var notification midtransNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid JSON", nil)
		return
	}

	paid := false
	switch notification.TransactionStatus {
	case "capture":
		paid = notification.FraudStatus == "accept"
	case "settlement":
		paid = true
	}

	log.WithFields(map[string]interface{}{
		"order_id":           notification.OrderID,
		"transaction_status": notification.TransactionStatus,
		"fraud_status":       notification.FraudStatus,
	}).Info("midtrans notification received")

	logID := strings.TrimPrefix(notification.OrderID, paymentOrderPrefix)
	if logID == notification.OrderID {
		utils.APIResponse(c, http.StatusNotFound, false, "Unknown order", nil)
		return
	}

	var entry models.TreatmentLog
	if err := config.DB.First(&entry, "id = ?", logID).Error; err != nil {
		log.WithField("order_id", notification.OrderID).Warn("treatment log not found for notification")
		utils.APIResponse(c, http.StatusNotFound, false, "Treatment log not found", nil)
		return
	}

	if paid && !entry.Paid {
		if err := config.DB.Model(&entry).Update("paid", true).Error; err != nil {
			utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update treatment log", nil)
			return
		}
		log.WithField("log_id", entry.ID).Info("treatment settled via gateway")
	}

	// Midtrans expects a plain 200 acknowledgement.
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
