package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/middleware"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

// fail hands err to middleware.ErrorHandler.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, ok := utils.ParseID(c.Param(name))
	if !ok {
		fail(c, utils.IncorrectData(
			fmt.Sprintf("%s: %s is not a valid id", name, c.Param(name)),
			fmt.Sprintf("the value of %s must be a positive integer.", name)))
	}
	return id, ok
}

func bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, err)
		return false
	}
	return true
}

// definedFields returns the non-empty fields of a patch body keyed by JSON name. Patch
// bodies use pointer fields tagged omitempty so absent fields drop out.
func definedFields(v interface{}) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// patchBody binds a patch body and rejects it when no field is set.
func patchBody(c *gin.Context, dst interface{}) (map[string]any, bool) {
	if !bind(c, dst) {
		return nil, false
	}
	changes, err := definedFields(dst)
	if err != nil {
		fail(c, err)
		return nil, false
	}
	if len(changes) == 0 {
		fail(c, utils.MissingData("updated info"))
		return nil, false
	}
	return changes, true
}

func created(c *gin.Context, id uint, data interface{}) {
	utils.JSONSuccess(c, http.StatusCreated, data, gin.H{"insertedId": id})
}

// listed writes one page; total counts every match across pages.
func listed(c *gin.Context, data interface{}, length int, total int64, f *services.Filter) {
	utils.JSONSuccess(c, http.StatusOK, data, gin.H{"filter": f.Echo(), "length": length, "total": total})
}

func patched(c *gin.Context, id uint, data interface{}, modified bool) {
	utils.JSONSuccess(c, http.StatusOK, data, gin.H{"filter": gin.H{"id": id}, "modified": modified})
}

func userID(c *gin.Context) uint {
	if claims := middleware.CurrentUser(c); claims != nil {
		return claims.UserID
	}
	return 0
}

// parseDate converts an optional date string, raising a 422 for bad input.
func parseDate(value *string, name string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	if _, err := utils.IsDate(*value, name, true); err != nil {
		return nil, err
	}
	t, _ := utils.ToDate(*value)
	return &t, nil
}
