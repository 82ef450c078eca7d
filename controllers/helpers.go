package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fail writes a service error with the status its kind maps to.
func fail(c *gin.Context, err error) {
	var appErr *services.AppError
	if !errors.As(err, &appErr) {
		resp.ServerError(c, err)
		return
	}
	switch appErr.Kind {
	case services.KindValidation, services.KindUnavailable,
		services.KindInsufficientInventory, services.KindDuplicate:
		resp.BadRequest(c, appErr.Message)
	case services.KindNotFound:
		resp.NotFound(c, appErr.Message)
	case services.KindUnauthorized:
		resp.Unauthorized(c, appErr.Message)
	default:
		resp.ServerError(c, err)
	}
}

// bindJSON binds the body and answers 400 itself when it cannot.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp.BadRequest(c, bindError(err))
		return false
	}
	return true
}

func bindError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "timeslot":
		return fmt.Sprintf("%s is not a valid delivery time slot", fe.Field())
	case "weekday":
		return fmt.Sprintf("%s contains an invalid day", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// pageJSON renders pagination with the list-specific total key.
func pageJSON(p utils.Pagination, totalKey string) gin.H {
	return gin.H{
		"current_page": p.CurrentPage,
		"total_pages":  p.TotalPages,
		totalKey:       p.Total,
	}
}

func statusOK(c *gin.Context) bool {
	s := c.Writer.Status()
	return s >= http.StatusOK && s < http.StatusMultipleChoices
}

// queryDay reads an optional YYYY-MM-DD filter; nil means no filter.
func queryDay(c *gin.Context, key string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	day, ok := services.ParseDay(raw)
	if !ok {
		resp.BadRequest(c, "Invalid "+key)
		return nil, false
	}
	return &day, true
}
