package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutorai/core/school"
)

type taskApi struct {
	svc      school.ServiceInterface
	validate *validator.Validate
}

func registerTaskAPI(g *echo.Group, svc school.ServiceInterface, validate *validator.Validate) {
	api := taskApi{
		svc:      svc,
		validate: validate,
	}

	tg := g.Group("/tasks")
	tg.GET("", api.query)
	tg.POST("", api.create)
	tg.GET("/:id", api.retrieve)
	tg.PUT("/:id", api.update)
	tg.DELETE("/:id", api.destroy)
}

func (api *taskApi) query(ctx echo.Context) error {
	tasks, err := api.svc.QueryAllTasks()
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	return ctx.JSON(http.StatusOK, tasks)
}

func (api *taskApi) create(ctx echo.Context) error {
	var data school.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	task, err := api.svc.CreateTask(data)
	if err != nil {
		return errors.Wrap(err, "creating task")
	}
	return ctx.JSON(http.StatusCreated, task)
}

func (api *taskApi) retrieve(ctx echo.Context) error {
	id, err := paramID(ctx, "id", school.ErrTaskNotFound)
	if err != nil {
		return err
	}

	task, err := api.svc.GetTaskByID(id)
	if err != nil {
		return errors.Wrap(err, "finding task by ID")
	}
	return ctx.JSON(http.StatusOK, task)
}

// update ignores courseId and studentIds: UpdateTask does not carry them.
func (api *taskApi) update(ctx echo.Context) error {
	id, err := paramID(ctx, "id", school.ErrTaskNotFound)
	if err != nil {
		return err
	}

	var data school.UpdateTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTask")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	task, err := api.svc.UpdateTask(id, data)
	if err != nil {
		return errors.Wrap(err, "updating task")
	}
	return ctx.JSON(http.StatusOK, task)
}

func (api *taskApi) destroy(ctx echo.Context) error {
	id, err := paramID(ctx, "id", school.ErrTaskNotFound)
	if err != nil {
		return err
	}

	if err := api.svc.DeleteTask(id); err != nil {
		return errors.Wrap(err, "deleting task")
	}
	return ctx.NoContent(http.StatusNoContent)
}
