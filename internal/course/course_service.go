package course

import (
	"context"
	"strings"
)

//go:generate mockgen -source=course_service.go -destination=../mock/course/course_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]CourseSummaryResponse, error)
	GetByID(ctx context.Context, id string) (CourseResponse, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

func (s *service) List(ctx context.Context) ([]CourseSummaryResponse, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CourseSummaryResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, mapSummary(c))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CourseResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CourseResponse{}, ErrCourseNotFound
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return CourseResponse{}, err
	}
	return mapCourse(c), nil
}
