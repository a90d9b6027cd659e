package menu

import (
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 50
	maxDescriptionLength = 200
	priceDecimals        = 2
)

// Solo forma decimal plana y acotada: sin exponente ni signo, hasta 9 enteros y 9 decimales.
var pricePattern = regexp.MustCompile(`^\d{1,9}(\.\d{1,9})?$`)

// Catalog es la fuente de verdad de los platos: una secuencia append-only en orden de inserción.
// Es seguro para uso concurrente.
type Catalog struct {
	mutex sync.RWMutex
	items []MenuItem

	newID func() string
	now   func() time.Time
}

// NewCatalog crea un catálogo vacío.
func NewCatalog() *Catalog {
	return &Catalog{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Create valida el borrador, le asigna un id y lo agrega al final.
// Si la validación falla no se modifica nada.
func (catalog *Catalog) Create(draft Draft) (MenuItem, error) {
	item, err := validateDraft(draft)
	if err != nil {
		return MenuItem{}, err
	}

	// Asignación de id y append en un solo paso atómico.
	catalog.mutex.Lock()
	defer catalog.mutex.Unlock()

	item.ID = catalog.newID()
	item.CreatedAt = catalog.now().UTC()
	catalog.items = append(catalog.items, item)

	return item, nil
}

// List devuelve una copia de todos los platos en orden de inserción.
func (catalog *Catalog) List() []MenuItem {
	catalog.mutex.RLock()
	defer catalog.mutex.RUnlock()

	return slices.Clone(catalog.items)
}

// Len devuelve la cantidad de platos almacenados.
func (catalog *Catalog) Len() int {
	catalog.mutex.RLock()
	defer catalog.mutex.RUnlock()

	return len(catalog.items)
}

// validateDraft normaliza y valida un borrador. Orden: name, description, course, price.
func validateDraft(draft Draft) (MenuItem, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return MenuItem{}, newValidationError(FieldName, "is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return MenuItem{}, newValidationError(FieldName, "must be at most 50 characters")
	}

	description := strings.TrimSpace(draft.Description)
	if description == "" {
		return MenuItem{}, newValidationError(FieldDescription, "is required")
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return MenuItem{}, newValidationError(FieldDescription, "must be at most 200 characters")
	}

	course, err := ParseCourse(draft.Course)
	if err != nil {
		return MenuItem{}, err
	}

	price, err := parsePrice(draft.Price)
	if err != nil {
		return MenuItem{}, err
	}

	return MenuItem{
		Name:        name,
		Description: description,
		Course:      course,
		Price:       price,
	}, nil
}

// parsePrice acepta un número decimal positivo y lo redondea a centavos.
func parsePrice(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Decimal{}, newValidationError(FieldPrice, "is required")
	}

	if !pricePattern.MatchString(value) {
		return decimal.Decimal{}, newValidationError(FieldPrice, "must be a number")
	}

	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, newValidationError(FieldPrice, "must be a number")
	}

	price = price.Round(priceDecimals)
	if !price.IsPositive() {
		return decimal.Decimal{}, newValidationError(FieldPrice, "must be greater than zero")
	}

	return price, nil
}
