package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body not parseable")
		return errors.New("request data not readable")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	value := ctx.Params(key)
	if value == "" {
		return "", errors.Errorf("path parameter %v is empty", key)
	}
	return value, nil
}
