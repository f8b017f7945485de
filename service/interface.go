package service

import "storefront/model"

type ServiceInterface interface {
	CreateProduct(p model.Product) (int64, error)
	ListProducts(query string) ([]model.Product, error)
	GetProduct(id int64) (model.Product, error)
	UpdatePrice(id int64, price int64, sale *int64) error
}
