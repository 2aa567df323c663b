package course

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=course_repo.go -destination=../mock/course/course_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id string) (Course, error)
}

type repository struct {
	mu      sync.RWMutex
	courses map[string]Course
}

// NewRepository returns a read-only catalog seeded with courses. With no
// arguments it serves the built-in catalog.
func NewRepository(courses ...Course) Repository {
	if len(courses) == 0 {
		courses = Catalog()
	}
	r := &repository{courses: make(map[string]Course, len(courses))}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	return r
}

func (r *repository) List(ctx context.Context) ([]Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.courses[id]
	if !ok {
		return Course{}, ErrCourseNotFound
	}
	return c, nil
}

func rub(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func rubPtr(v int64) *decimal.Decimal {
	d := rub(v)
	return &d
}

// Catalog is the static course list shown on the details page.
func Catalog() []Course {
	return []Course{
		{
			ID:       "ui-ux-basics",
			Title:    "Основы UI/UX дизайна",
			Category: "UI/UX",
			Level:    "Начальный",
			Summary: "Изучите основы пользовательского интерфейса и создайте свой первый проект. " +
				"Освойте принципы UX-исследований и современные инструменты дизайна.",
			Weeks:    8,
			Lessons:  32,
			Students: 1024,
			Program: []ProgramSection{
				{
					Title:  "Основы дизайна",
					Topics: []string{"Принципы композиции", "Типографика и цвет", "Создание wireframes"},
				},
				{
					Title:  "UX исследования",
					Topics: []string{"Интервью с пользователями", "Создание персон", "Тестирование прототипов"},
				},
			},
			Instructors: []Instructor{
				{
					Name:       "Анна Петрова",
					Role:       "Lead UX Designer",
					Experience: "8 лет в дизайне",
					AvatarURL:  "https://images.unsplash.com/photo-1494790108755-2616b612b47c?w=200&h=200&fit=crop&crop=face",
				},
				{
					Name:       "Михаил Козлов",
					Role:       "Senior UI Designer",
					Experience: "6 лет в интерфейсах",
					AvatarURL:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop&crop=face",
				},
			},
			Packages: []Package{
				{
					Name:          "Начальный",
					Price:         rub(12000),
					OriginalPrice: rubPtr(15000),
					Features:      []string{"Основы интерфейса", "Базовые принципы", "5 практических заданий", "Сертификат"},
				},
				{
					Name:     "Продвинутый",
					Price:    rub(19000),
					Features: []string{"Весь контент начального", "Продвинутые техники", "15 практических проектов", "Менторство", "Портфолио"},
					Popular:  true,
				},
				{
					Name:     "Профессиональный",
					Price:    rub(29000),
					Features: []string{"Весь контент продвинутого", "Индивидуальные консультации", "Помощь в трудоустройстве", "Доступ к закрытому сообществу"},
				},
			},
		},
	}
}
