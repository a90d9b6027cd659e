package menu

import (
	"strings"

	"github.com/shopspring/decimal"
)

const allCoursesName = "All"

// Selector elige qué platos devuelve FilterByCourse: todos o los de un curso concreto.
type Selector struct {
	course Course
}

// AllCourses es el selector que no filtra.
var AllCourses = Selector{}

// ForCourse crea un selector para un curso concreto.
func ForCourse(course Course) Selector {
	return Selector{course: course}
}

// All indica si el selector no filtra.
func (selector Selector) All() bool {
	return selector.course == 0
}

// Course devuelve el curso seleccionado; ok es false para AllCourses.
func (selector Selector) Course() (Course, bool) {
	return selector.course, !selector.All()
}

func (selector Selector) String() string {
	if selector.All() {
		return allCoursesName
	}
	return selector.course.String()
}

// ParseSelector acepta "" o "All" (sin filtro) o el nombre de un curso.
// Cualquier otro valor es un error de validación, no un filtro vacío.
func ParseSelector(raw string) (Selector, error) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, allCoursesName) {
		return AllCourses, nil
	}
	course, err := ParseCourse(value)
	if err != nil {
		return Selector{}, err
	}
	return ForCourse(course), nil
}

// FilterByCourse devuelve los platos que matchean el selector, preservando el orden.
// Siempre devuelve un slice nuevo; items no se modifica.
func FilterByCourse(items []MenuItem, selector Selector) []MenuItem {
	filtered := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if selector.All() || item.Course == selector.course {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// CourseStats acumula cantidad y total de precios de un curso.
type CourseStats struct {
	Count int
	Total decimal.Decimal
}

// Average devuelve total/count. Para cursos vacíos no hay promedio (ok=false).
func (stats CourseStats) Average() (decimal.Decimal, bool) {
	if stats.Count == 0 {
		return decimal.Decimal{}, false
	}
	return stats.Total.Div(decimal.NewFromInt(int64(stats.Count))), true
}

// CourseStatistics recorre los platos una sola vez y acumula por curso.
// Todos los cursos del conjunto tienen entrada, aunque estén vacíos.
func CourseStatistics(items []MenuItem) map[Course]CourseStats {
	stats := make(map[Course]CourseStats, len(Courses))
	for _, course := range Courses {
		stats[course] = CourseStats{Total: decimal.Zero}
	}

	for _, item := range items {
		current, ok := stats[item.Course]
		if !ok {
			continue
		}
		current.Count++
		current.Total = current.Total.Add(item.Price)
		stats[item.Course] = current
	}

	return stats
}

// CourseSummary es una fila de estadísticas lista para mostrar.
// Average es nil cuando el curso no tiene platos.
type CourseSummary struct {
	Course  Course
	Count   int
	Total   decimal.Decimal
	Average *decimal.Decimal
}

// Summarize ordena las estadísticas según Courses.
func Summarize(items []MenuItem) []CourseSummary {
	stats := CourseStatistics(items)

	summaries := make([]CourseSummary, 0, len(Courses))
	for _, course := range Courses {
		courseStats := stats[course]
		summary := CourseSummary{
			Course: course,
			Count:  courseStats.Count,
			Total:  courseStats.Total,
		}
		if average, ok := courseStats.Average(); ok {
			summary.Average = &average
		}
		summaries = append(summaries, summary)
	}

	return summaries
}
