package handlers

import (
	"github.com/dentalshop/config"
	"github.com/dentalshop/shop"
)

var (
	svc *shop.Service
	cfg *config.Config
)

// Init wires the shop service and configuration into the handler package.
// Must be called before any route is served.
func Init(service *shop.Service, c *config.Config) {
	svc = service
	cfg = c
}
