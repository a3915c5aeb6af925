package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutorai/core/school"
)

type courseApi struct {
	svc      school.ServiceInterface
	validate *validator.Validate
}

func registerCourseAPI(g *echo.Group, svc school.ServiceInterface, validate *validator.Validate) {
	api := courseApi{
		svc:      svc,
		validate: validate,
	}

	cg := g.Group("/courses")
	cg.GET("", api.query)
	cg.POST("", api.create)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)

	// enrollments
	cg.POST("/:courseId/students/:studentId", api.enroll)
	cg.DELETE("/:courseId/students/:studentId", api.unenroll)
}

func (api *courseApi) query(ctx echo.Context) error {
	courses, err := api.svc.QueryAllCourses()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) create(ctx echo.Context) error {
	var data school.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	course, err := api.svc.CreateCourse(data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, course)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	id, err := paramID(ctx, "id", school.ErrCourseNotFound)
	if err != nil {
		return err
	}

	course, err := api.svc.GetCourseByID(id)
	if err != nil {
		return errors.Wrap(err, "finding course by ID")
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *courseApi) update(ctx echo.Context) error {
	id, err := paramID(ctx, "id", school.ErrCourseNotFound)
	if err != nil {
		return err
	}

	var data school.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	course, err := api.svc.UpdateCourse(id, data)
	if err != nil {
		return errors.Wrap(err, "updating course")
	}
	return ctx.JSON(http.StatusOK, course)
}

// destroy deletes the course along with its tasks and enrollments.
func (api *courseApi) destroy(ctx echo.Context) error {
	id, err := paramID(ctx, "id", school.ErrCourseNotFound)
	if err != nil {
		return err
	}

	if err := api.svc.DeleteCourse(id); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *courseApi) enrollmentIDs(ctx echo.Context) (courseID, studentID int, err error) {
	if courseID, err = paramID(ctx, "courseId", school.ErrCourseOrStudentNotFound); err != nil {
		return 0, 0, err
	}
	if studentID, err = paramID(ctx, "studentId", school.ErrCourseOrStudentNotFound); err != nil {
		return 0, 0, err
	}
	return courseID, studentID, nil
}

func (api *courseApi) enroll(ctx echo.Context) error {
	courseID, studentID, err := api.enrollmentIDs(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Enroll(courseID, studentID); err != nil {
		return errors.Wrap(err, "enrolling student")
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Student enrolled successfully"})
}

func (api *courseApi) unenroll(ctx echo.Context) error {
	courseID, studentID, err := api.enrollmentIDs(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Unenroll(courseID, studentID); err != nil {
		return errors.Wrap(err, "unenrolling student")
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Student unenrolled successfully"})
}
