package service

import (
	"errors"
	"testing"
	"time"

	"github.com/storehub/internal/constants"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCustomerServiceTest(t *testing.T) (*CustomerService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCustomerService(repository.NewCustomerRepository(db)), db
}

func TestGetOrCreateByUserIDIsIdempotent(t *testing.T) {
	svc, db := setupCustomerServiceTest(t)

	first, err := svc.GetOrCreateByUserID(42)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if first.Membership != constants.MembershipBronze {
		t.Fatalf("default membership want %q got %q", constants.MembershipBronze, first.Membership)
	}

	second, err := svc.GetOrCreateByUserID(42)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same customer row, got %d and %d", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&models.Customer{}).Where("user_id = ?", 42).Count(&count).Error; err != nil {
		t.Fatalf("count customers failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("customer rows want 1 got %d", count)
	}
}

func TestCreateCustomerRejectsDuplicateUser(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	if _, err := svc.Create(7, CustomerInput{Membership: constants.MembershipSilver}); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	if _, err := svc.Create(7, CustomerInput{}); !errors.Is(err, ErrCustomerExists) {
		t.Fatalf("want ErrCustomerExists got %v", err)
	}
}

func TestUpdateCustomerValidatesMembership(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	customer, err := svc.Create(8, CustomerInput{})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	if _, err := svc.Update(customer.ID, CustomerInput{Membership: "Z"}); !errors.Is(err, ErrMembershipInvalid) {
		t.Fatalf("want ErrMembershipInvalid got %v", err)
	}

	updated, err := svc.Update(customer.ID, CustomerInput{Membership: constants.MembershipGold})
	if err != nil {
		t.Fatalf("update customer failed: %v", err)
	}
	if updated.Membership != constants.MembershipGold {
		t.Fatalf("membership want %q got %q", constants.MembershipGold, updated.Membership)
	}
}

func TestUpdateProfileKeepsMembership(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	customer, err := svc.Create(9, CustomerInput{Membership: constants.MembershipGold})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	updated, err := svc.UpdateProfile(customer.UserID, CustomerInput{Phone: "13800000009", Membership: constants.MembershipBronze})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Phone != "13800000009" {
		t.Fatalf("phone want 13800000009 got %q", updated.Phone)
	}
	// 会员等级不可通过个人资料接口自改
	if updated.Membership != constants.MembershipGold {
		t.Fatalf("membership want %q got %q", constants.MembershipGold, updated.Membership)
	}
}

func TestPatchCustomerKeepsUnsetFields(t *testing.T) {
	svc, _ := setupCustomerServiceTest(t)

	birthDate := time.Date(1992, 3, 8, 0, 0, 0, 0, time.UTC)
	customer, err := svc.Create(15, CustomerInput{
		Phone:      "13800000015",
		BirthDate:  &birthDate,
		Membership: constants.MembershipGold,
	})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	phone := "13900000015"
	patched, err := svc.Patch(customer.ID, CustomerPatch{Phone: &phone})
	if err != nil {
		t.Fatalf("patch customer failed: %v", err)
	}
	if patched.Phone != phone {
		t.Fatalf("phone want %q got %q", phone, patched.Phone)
	}
	// 未出现在请求中的字段必须保持原值
	if patched.Membership != constants.MembershipGold {
		t.Fatalf("membership want %q got %q", constants.MembershipGold, patched.Membership)
	}
	if patched.BirthDate == nil || !patched.BirthDate.Equal(birthDate) {
		t.Fatalf("birth_date should be untouched, got %v", patched.BirthDate)
	}

	bad := "Z"
	if _, err := svc.Patch(customer.ID, CustomerPatch{Membership: &bad}); !errors.Is(err, ErrMembershipInvalid) {
		t.Fatalf("want ErrMembershipInvalid got %v", err)
	}
}

func TestDeleteCustomerBlockedByOrders(t *testing.T) {
	svc, db := setupCustomerServiceTest(t)

	customer, err := svc.Create(10, CustomerInput{})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	order := &models.Order{CustomerID: customer.ID, PaymentStatus: constants.PaymentStatusPending}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := svc.Delete(customer.ID); !errors.Is(err, ErrCustomerInUse) {
		t.Fatalf("want ErrCustomerInUse got %v", err)
	}

	if err := db.Unscoped().Delete(order).Error; err != nil {
		t.Fatalf("remove order failed: %v", err)
	}
	if err := svc.Delete(customer.ID); err != nil {
		t.Fatalf("delete customer failed: %v", err)
	}
}
