package repository

import (
	"errors"

	"github.com/storehub/internal/models"

	"gorm.io/gorm"
)

// CustomerRepository 顾客数据访问接口
type CustomerRepository interface {
	List(filter CustomerListFilter) ([]models.Customer, int64, error)
	GetByID(id uint) (*models.Customer, error)
	GetByUserID(userID uint) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(id uint) error
	CountOrders(customerID uint) (int64, error)
}

// GormCustomerRepository GORM 实现
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建顾客仓库
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// List 顾客列表
func (r *GormCustomerRepository) List(filter CustomerListFilter) ([]models.Customer, int64, error) {
	var customers []models.Customer
	query := r.db.Model(&models.Customer{})
	if filter.Membership != "" {
		query = query.Where("membership = ?", filter.Membership)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// GetByID 根据 ID 获取顾客
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByUserID 根据外部用户 ID 获取顾客
func (r *GormCustomerRepository) GetByUserID(userID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Create 创建顾客
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update 更新顾客
func (r *GormCustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// Delete 删除顾客
func (r *GormCustomerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Customer{}, id).Error
}

// CountOrders 统计顾客订单数
func (r *GormCustomerRepository) CountOrders(customerID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
