package menu

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// CatalogAPI es lo que el service necesita del catálogo.
// Permite testear el service con un fake.
type CatalogAPI interface {
	Create(draft Draft) (MenuItem, error)
	List() []MenuItem
}

// FilterResult es el resultado de un listado filtrado ("Showing X of Y items").
type FilterResult struct {
	Selector Selector
	Items    []MenuItem
	Shown    int
	Total    int
}

// Service contiene los casos de uso del menú.
type Service struct {
	catalog CatalogAPI
	logger  *zap.Logger
}

// NewService crea un service de menú. Si logger es nil se usa un logger no-op.
func NewService(catalog CatalogAPI, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, logger: logger.Named("menu")}
}

// Create valida y agrega un plato al catálogo.
func (service *Service) Create(ctx context.Context, input CreateItemInput) (MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return MenuItem{}, err
	}

	item, err := service.catalog.Create(input.Draft())
	if err != nil {
		var validationError *ValidationError
		if errors.As(err, &validationError) {
			service.logger.Debug("menu item rejected",
				zap.String("field", validationError.Field),
				zap.String("reason", validationError.Reason),
			)
		}
		return MenuItem{}, err
	}

	service.logger.Info("menu item created",
		zap.String("id", item.ID),
		zap.String("course", item.Course.String()),
		zap.String("price", item.Price.StringFixed(priceDecimals)),
	)
	return item, nil
}

// List filtra una foto del catálogo por curso. rawCourse vacío o "All" no filtra.
func (service *Service) List(ctx context.Context, rawCourse string) (FilterResult, error) {
	if err := ctx.Err(); err != nil {
		return FilterResult{}, err
	}

	selector, err := ParseSelector(rawCourse)
	if err != nil {
		return FilterResult{}, err
	}

	snapshot := service.catalog.List()
	filtered := FilterByCourse(snapshot, selector)

	return FilterResult{
		Selector: selector,
		Items:    filtered,
		Shown:    len(filtered),
		Total:    len(snapshot),
	}, nil
}

// Statistics calcula las estadísticas por curso sobre una foto del catálogo.
func (service *Service) Statistics(ctx context.Context) ([]CourseSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Summarize(service.catalog.List()), nil
}
