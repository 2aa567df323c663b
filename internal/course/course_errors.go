package course

import (
	"net/http"

	"go-course-portal/internal/pkg/apperror"
)

var ErrCourseNotFound = apperror.New(
	apperror.CodeNotFound,
	"Course not found",
	http.StatusNotFound,
)
