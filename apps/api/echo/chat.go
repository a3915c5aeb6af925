package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutorai/core/chat"
)

type chatApi struct {
	validate *validator.Validate
	now      func() time.Time
}

func registerChatAPI(g *echo.Group, validate *validator.Validate) {
	api := chatApi{
		validate: validate,
		now:      time.Now,
	}
	g.POST("/chat", api.reply)
}

func (api *chatApi) reply(ctx echo.Context) error {
	var data chat.Message
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to chat.Message")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, chat.Respond(data.Message, api.now()))
}
