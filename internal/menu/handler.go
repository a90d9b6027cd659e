package menu

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Lelo88/menu-api-golang/internal/httpx"
)

// ServiceAPI define lo que el handler necesita.
// Permite testear handlers con stubs sin tocar el catálogo.
type ServiceAPI interface {
	Create(ctx context.Context, in CreateItemInput) (MenuItem, error)
	List(ctx context.Context, course string) (FilterResult, error)
	Statistics(ctx context.Context) ([]CourseSummary, error)
}

// Handler HTTP para el menú.
// Solo traduce HTTP <-> dominio (service).
type Handler struct {
	service ServiceAPI
}

// NewHandler crea un handler de menú.
func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

// ItemView es la representación JSON de un plato. El precio sale siempre con dos decimales.
type ItemView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Course      string    `json:"course"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatisticsView es una fila de estadísticas por curso.
type StatisticsView struct {
	Course  string  `json:"course"`
	Count   int     `json:"count"`
	Total   string  `json:"total"`
	Average *string `json:"average,omitempty"`
}

// ListView es la respuesta de GET /menu/items.
type ListView struct {
	Course string     `json:"course"`
	Items  []ItemView `json:"items"`
	Shown  int        `json:"shown"`
	Total  int        `json:"total"`
}

// NewItemView mapea un plato del dominio a su vista JSON.
func NewItemView(item MenuItem) ItemView {
	return ItemView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Course:      item.Course.String(),
		Price:       item.Price.StringFixed(priceDecimals),
		CreatedAt:   item.CreatedAt,
	}
}

// Create maneja POST /menu/items.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var itemInput CreateItemInput
	if err := json.NewDecoder(request.Body).Decode(&itemInput); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	item, err := handler.service.Create(request.Context(), itemInput)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	httpx.OK(writer, request, http.StatusCreated, NewItemView(item))
}

// List maneja GET /menu/items con filtro opcional ?course=.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.List(request.Context(), request.URL.Query().Get("course"))
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	views := make([]ItemView, 0, len(result.Items))
	for _, item := range result.Items {
		views = append(views, NewItemView(item))
	}

	httpx.OK(writer, request, http.StatusOK, ListView{
		Course: result.Selector.String(),
		Items:  views,
		Shown:  result.Shown,
		Total:  result.Total,
	})
}

// Statistics maneja GET /menu/statistics.
func (handler *Handler) Statistics(writer http.ResponseWriter, request *http.Request) {
	summaries, err := handler.service.Statistics(request.Context())
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	views := make([]StatisticsView, 0, len(summaries))
	for _, summary := range summaries {
		view := StatisticsView{
			Course: summary.Course.String(),
			Count:  summary.Count,
			Total:  summary.Total.StringFixed(priceDecimals),
		}
		if summary.Average != nil {
			average := summary.Average.StringFixed(priceDecimals)
			view.Average = &average
		}
		views = append(views, view)
	}

	httpx.OK(writer, request, http.StatusOK, views)
}

// Courses maneja GET /menu/courses.
func (handler *Handler) Courses(writer http.ResponseWriter, request *http.Request) {
	names := make([]string, 0, len(Courses))
	for _, course := range Courses {
		names = append(names, course.String())
	}
	httpx.OK(writer, request, http.StatusOK, names)
}

func (handler *Handler) fail(writer http.ResponseWriter, request *http.Request, err error) {
	var validationError *ValidationError
	switch {
	case errors.As(err, &validationError):
		httpx.FailField(writer, request, http.StatusBadRequest, "invalid_input", validationError.Field, validationError.Error())
	case errors.Is(err, ErrorInvalidInput):
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_input", "invalid input data")
	default:
		// No filtramos detalles internos.
		httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}
