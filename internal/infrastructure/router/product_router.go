package router

import (
	"jetsetter-booking/internal/domain/entity"
	"jetsetter-booking/internal/usecase"
	"jetsetter-booking/pkg/logger"
)

// ProductRouter maps product types to their checkout flow definitions.
// One generic wizard serves every product line; the router supplies the
// per-product step list.
type ProductRouter struct {
	flows  map[entity.ProductType][]usecase.StepDefinition
	logger logger.Logger
}

// NewProductRouter creates a router preloaded with the four standard
// flows: three steps for flight and cruise, two for hotel and package.
func NewProductRouter(logger logger.Logger) *ProductRouter {
	r := &ProductRouter{
		flows:  make(map[entity.ProductType][]usecase.StepDefinition),
		logger: logger,
	}
	for _, product := range entity.AllProductTypes() {
		r.Register(product, usecase.FlowFor(product))
	}
	return r
}

// Register binds a flow definition to a product type, replacing any
// previous binding.
func (r *ProductRouter) Register(product entity.ProductType, steps []usecase.StepDefinition) {
	r.flows[product] = steps
	r.logger.Info("Registered checkout flow", "product", string(product), "steps", len(steps))
}

// Flow returns the step definitions for a product type, or nil when
// none is registered.
func (r *ProductRouter) Flow(product entity.ProductType) []usecase.StepDefinition {
	return r.flows[product]
}
