package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/application"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
	"github.com/oksasatya/go-ddd-wallet/pkg/response"
)

type TransactionHandler struct {
	Create  *application.CreateTransactionUseCase
	List    *application.GetTransactionsUseCase
	Balance *application.GetBalanceUseCase
	Logger  logrus.FieldLogger
}

func NewTransactionHandler(create *application.CreateTransactionUseCase, list *application.GetTransactionsUseCase, balance *application.GetBalanceUseCase, logger logrus.FieldLogger) *TransactionHandler {
	return &TransactionHandler{Create: create, List: list, Balance: balance, Logger: logger}
}

// amount stays raw so both 100 and "100" are accepted and a bad value can be echoed back.
type createTransactionRequest struct {
	Amount json.RawMessage `json:"amount"`
	Type   string          `json:"type"`
}

func (r createTransactionRequest) missingFields() []string {
	var missing []string
	if raw := bytes.TrimSpace(r.Amount); len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(r.Type) == "" {
		missing = append(missing, "type")
	}
	return missing
}

// parseAmount returns the amount when it is a finite number greater than zero.
// Otherwise it returns the decoded value for the error payload.
func parseAmount(raw json.RawMessage) (float64, any, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, string(raw), false
	}
	var amount float64
	switch x := v.(type) {
	case float64:
		amount = x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, v, false
		}
		amount = f
	default:
		return 0, v, false
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, v, false
	}
	return amount, v, true
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if missing := req.missingFields(); len(missing) > 0 {
		response.Error(c, http.StatusBadRequest, "Missing required fields", gin.H{
			"code":   apperror.CodeMissingFields,
			"fields": missing,
		})
		return
	}
	amount, echoed, ok := parseAmount(req.Amount)
	if !ok {
		response.Error(c, http.StatusBadRequest, "Amount must be a positive number", gin.H{
			"code":  apperror.CodeInvalidAmount,
			"value": echoed,
		})
		return
	}
	txType, ok := entity.ParseTransactionType(req.Type)
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid transaction type", gin.H{
			"code":  apperror.CodeInvalidTransactionType,
			"value": req.Type,
		})
		return
	}

	// Not atomic: two concurrent debits can both pass this check.
	if txType == entity.TransactionDebit {
		balance, err := h.Balance.Execute(c.Request.Context(), uid)
		if err != nil {
			writeError(c, h.Logger, err)
			return
		}
		if balance.Amount < amount {
			response.Error(c, http.StatusBadRequest, "Insufficient funds", gin.H{
				"code":            apperror.CodeInsufficientFunds,
				"currentBalance":  balance.Amount,
				"requestedAmount": amount,
			})
			return
		}
	}

	tx, err := h.Create.Execute(c.Request.Context(), application.CreateTransactionInput{
		UserID: uid,
		Amount: amount,
		Type:   txType,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, presentTransaction(tx), "Transaction created", nil)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var filter repository.TransactionFilter
	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		t, ok := entity.ParseTransactionType(raw)
		if !ok {
			response.Error(c, http.StatusBadRequest, "Invalid transaction type", gin.H{
				"code":  apperror.CodeInvalidTransactionType,
				"value": raw,
			})
			return
		}
		filter.Type = &t
	}

	txs, err := h.List.Execute(c.Request.Context(), uid, filter)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presentTransactions(txs), "Transactions", gin.H{"count": len(txs)})
}

func (h *TransactionHandler) GetBalance(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	b, err := h.Balance.Execute(c.Request.Context(), uid)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, balanceResponse{Amount: b.Amount}, "Balance", nil)
}
