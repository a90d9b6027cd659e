package menu

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Course es la categoría de un plato. El conjunto es cerrado: no hay cursos dinámicos.
type Course int

const (
	CourseStarter Course = iota + 1
	CourseMain
	CourseDessert
	CourseSide
	CourseDrink
)

// Courses lista todos los cursos válidos en el orden canónico de la carta.
var Courses = []Course{CourseStarter, CourseMain, CourseDessert, CourseSide, CourseDrink}

var courseNames = map[Course]string{
	CourseStarter: "Starter",
	CourseMain:    "Main",
	CourseDessert: "Dessert",
	CourseSide:    "Side",
	CourseDrink:   "Drink",
}

func (course Course) String() string {
	if name, ok := courseNames[course]; ok {
		return name
	}
	return "Unknown"
}

// Valid indica si el curso pertenece al conjunto cerrado.
func (course Course) Valid() bool {
	_, ok := courseNames[course]
	return ok
}

// ParseCourse normaliza el texto recibido (trim + case-insensitive) y lo mapea a un Course.
func ParseCourse(raw string) (Course, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, newValidationError(FieldCourse, "is required")
	}
	for _, course := range Courses {
		if strings.EqualFold(value, courseNames[course]) {
			return course, nil
		}
	}
	return 0, newValidationError(FieldCourse, "unknown course "+quote(value))
}

// MarshalText permite usar Course como clave de mapas JSON y como string en los payloads.
func (course Course) MarshalText() ([]byte, error) {
	if !course.Valid() {
		return nil, newValidationError(FieldCourse, "unknown course")
	}
	return []byte(course.String()), nil
}

func (course *Course) UnmarshalText(text []byte) error {
	parsed, err := ParseCourse(string(text))
	if err != nil {
		return err
	}
	*course = parsed
	return nil
}

// MenuItem es un plato ya validado y almacenado en el catálogo.
// Es inmutable: el catálogo solo entrega copias.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Course      Course
	Price       decimal.Decimal
	CreatedAt   time.Time
}

// Draft son los datos de un plato todavía sin validar ni identidad.
// Course y Price llegan como texto crudo del llamador.
type Draft struct {
	Name        string
	Description string
	Course      string
	Price       string
}

// CreateItemInput representa el payload para crear un plato.
type CreateItemInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Course      string     `json:"course"`
	Price       PriceInput `json:"price"`
}

// Draft convierte el payload en un borrador para el catálogo.
func (input CreateItemInput) Draft() Draft {
	return Draft{
		Name:        input.Name,
		Description: input.Description,
		Course:      input.Course,
		Price:       string(input.Price),
	}
}

// PriceInput acepta el precio como string ("35.00") o como número (35).
// La validación real la hace el catálogo.
type PriceInput string

func (price *PriceInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*price = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*price = PriceInput(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*price = PriceInput(number.String())
	return nil
}
