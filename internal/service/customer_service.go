package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
)

type ICustomerService interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetCustomer(ctx context.Context, id uint) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
}

type CustomerService struct {
	customerRepo db.ICustomerRepository
}

func NewCustomerService(customerRepo db.ICustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

var _ ICustomerService = (*CustomerService)(nil)

func (c *CustomerService) CreateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	if err := c.customerRepo.CreateCustomer(ctx, customer); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, errs.Conflict("customer with the same email or document already exists")
		}
		return nil, errs.Internal("create customer failed", err)
	}
	return customer, nil
}

func (c *CustomerService) GetCustomer(ctx context.Context, id uint) (*model.Customer, error) {
	customer, err := c.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, errs.Internal("get customer failed", err)
	}
	if customer == nil {
		return nil, errs.NotFound("customer with id %d not found", id)
	}
	return customer, nil
}

func (c *CustomerService) UpdateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	existing, err := c.customerRepo.GetCustomerByID(ctx, customer.CustomerID)
	if err != nil {
		return nil, errs.Internal("get customer failed", err)
	}
	if existing == nil {
		return nil, errs.NotFound("customer with id %d not found", customer.CustomerID)
	}

	if err := c.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, errs.Conflict("customer with the same email or document already exists")
		}
		return nil, errs.Internal("update customer failed", err)
	}

	return c.GetCustomer(ctx, customer.CustomerID)
}

func (c *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	existing, err := c.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return errs.Internal("get customer failed", err)
	}
	if existing == nil {
		return errs.NotFound("customer with id %d not found", id)
	}

	if err := c.customerRepo.DeleteCustomer(ctx, id); err != nil {
		if db.IsForeignKeyViolation(err) {
			return errs.Conflict("customer with id %d is referenced by existing orders", id)
		}
		return errs.Internal("delete customer failed", err)
	}
	return nil
}

func validateCustomer(customer *model.Customer) error {
	if customer.Name == "" || len(customer.Name) > 100 {
		return errs.InvalidRequest("customer name is required and cannot exceed 100 characters")
	}
	if customer.Email == "" || !strings.Contains(customer.Email, "@") {
		return errs.InvalidRequest("customer email is invalid")
	}
	if customer.Document == "" || len(customer.Document) > 20 {
		return errs.InvalidRequest("customer document is required and cannot exceed 20 characters")
	}
	return nil
}
