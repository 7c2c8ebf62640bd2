package handlers

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}

func getBoolParam(c echo.Context, name string) bool {
	value, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && value
}

func getUUIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func getIDParam(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
