package store

import (
	"errors"
	"time"

	handlershared "github.com/storehub/internal/http/handlers/shared"
	"github.com/storehub/internal/http/response"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/service"

	"github.com/gin-gonic/gin"
)

const birthDateLayout = "2006-01-02"

// CustomerRequest 顾客创建/更新请求
type CustomerRequest struct {
	UserID     uint   `json:"user_id"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"` // YYYY-MM-DD
	Membership string `json:"membership"`
}

// CustomerPatchRequest 顾客局部更新请求，缺省字段保持原值
type CustomerPatchRequest struct {
	Phone      *string `json:"phone"`
	BirthDate  *string `json:"birth_date"` // YYYY-MM-DD
	Membership *string `json:"membership"`
}

// CustomerResponse 顾客响应
type CustomerResponse struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date,omitempty"`
	Membership string `json:"membership"`
}

func newCustomerResponse(customer models.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:         customer.ID,
		UserID:     customer.UserID,
		Phone:      customer.Phone,
		Membership: customer.Membership,
	}
	if customer.BirthDate != nil {
		resp.BirthDate = customer.BirthDate.Format(birthDateLayout)
	}
	return resp
}

func parseBirthDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// ListCustomers 顾客列表（管理操作）
func (h *Handler) ListCustomers(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c, h.paginationLimits())
	customers, total, err := h.CustomerService.List(service.CustomerListInput{
		Page:       page,
		PageSize:   pageSize,
		Membership: c.Query("membership"),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMembershipInvalid):
			respondError(c, response.CodeBadRequest, "invalid membership tier", nil)
		default:
			respondError(c, response.CodeInternal, "failed to list customers", err)
		}
		return
	}
	items := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		items = append(items, newCustomerResponse(customer))
	}
	response.SuccessWithPage(c, gin.H{"items": items}, response.NewPagination(page, pageSize, total))
}

// GetCustomer 顾客详情（管理操作）
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "customer not found", nil)
		return
	}
	customer, err := h.CustomerService.Get(id)
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}
	response.Success(c, newCustomerResponse(*customer))
}

// CreateCustomer 创建顾客档案（管理操作）
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if req.UserID == 0 {
		respondError(c, response.CodeBadRequest, "user_id is required", nil)
		return
	}
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		respondError(c, response.CodeBadRequest, "birth_date must be YYYY-MM-DD", nil)
		return
	}
	customer, err := h.CustomerService.Create(req.UserID, service.CustomerInput{
		Phone:      req.Phone,
		BirthDate:  birthDate,
		Membership: req.Membership,
	})
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}
	response.Created(c, newCustomerResponse(*customer))
}

// UpdateCustomer 更新顾客档案（管理操作）
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "customer not found", nil)
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		respondError(c, response.CodeBadRequest, "birth_date must be YYYY-MM-DD", nil)
		return
	}
	customer, err := h.CustomerService.Update(id, service.CustomerInput{
		Phone:      req.Phone,
		BirthDate:  birthDate,
		Membership: req.Membership,
	})
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}
	response.Success(c, newCustomerResponse(*customer))
}

// PatchCustomer 局部更新顾客档案，仅覆盖请求体中出现的字段（管理操作）
func (h *Handler) PatchCustomer(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "customer not found", nil)
		return
	}
	var req CustomerPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	patch := service.CustomerPatch{
		Phone:      req.Phone,
		Membership: req.Membership,
	}
	if req.BirthDate != nil {
		birthDate, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			respondError(c, response.CodeBadRequest, "birth_date must be YYYY-MM-DD", nil)
			return
		}
		patch.BirthDate = birthDate
	}
	customer, err := h.CustomerService.Patch(id, patch)
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}
	response.Success(c, newCustomerResponse(*customer))
}

// DeleteCustomer 删除顾客档案（管理操作）
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "customer not found", nil)
		return
	}
	if err := h.CustomerService.Delete(id); err != nil {
		h.respondCustomerError(c, err)
		return
	}
	response.NoContent(c)
}

// GetMe 当前用户的顾客档案，首次访问时自动创建
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	customer, err := h.CustomerService.GetOrCreateByUserID(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch profile", err)
		return
	}
	response.Success(c, newCustomerResponse(*customer))
}

// UpdateMe 更新当前用户的顾客档案
func (h *Handler) UpdateMe(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		respondError(c, response.CodeBadRequest, "birth_date must be YYYY-MM-DD", nil)
		return
	}
	customer, err := h.CustomerService.UpdateProfile(userID, service.CustomerInput{
		Phone:     req.Phone,
		BirthDate: birthDate,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to update profile", err)
		return
	}
	response.Success(c, newCustomerResponse(*customer))
}

func (h *Handler) respondCustomerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCustomerNotFound):
		respondError(c, response.CodeNotFound, "customer not found", nil)
	case errors.Is(err, service.ErrCustomerExists):
		respondError(c, response.CodeBadRequest, "customer already exists for this user", nil)
	case errors.Is(err, service.ErrCustomerInUse):
		respondError(c, response.CodeMethodNotAllowed, "customer cannot be deleted because they have one or more orders", nil)
	case errors.Is(err, service.ErrMembershipInvalid):
		respondError(c, response.CodeBadRequest, "invalid membership tier", nil)
	default:
		respondError(c, response.CodeInternal, "failed to process customer", err)
	}
}
