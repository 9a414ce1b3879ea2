package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartparker-api/cache"
	"smartparker-api/repositories"
	"smartparker-api/utils"
)

const jsonContentType = "application/json; charset=utf-8"

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parsePageRequest reads page, size and sort query parameters. Sort keys are
// whitelisted per entity; anything else falls back to the entity default.
func parsePageRequest(c *gin.Context, sortColumns map[string]string) repositories.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(repositories.DefaultPageSize)))
	if size < 1 || size > 100 {
		size = repositories.DefaultPageSize
	}

	req := repositories.PageRequest{Page: page, Size: size}

	if sort := c.Query("sort"); sort != "" {
		field := sort
		if i := strings.IndexByte(sort, ','); i >= 0 {
			field = sort[:i]
			req.Desc = strings.EqualFold(strings.TrimSpace(sort[i+1:]), "desc")
		}
		if column, ok := sortColumns[field]; ok {
			req.Sort = column
		}
	}

	return req
}

func queryString(c *gin.Context, name string) *string {
	if value, ok := c.GetQuery(name); ok && value != "" {
		return &value
	}
	return nil
}

func queryInt(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func queryUint(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	id := uint(value)
	return &id
}

func queryTime(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if value, err := time.Parse(layout, raw); err == nil {
			return &value
		}
	}
	return nil
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}

func cacheKey(c *gin.Context) string {
	return c.Request.URL.RequestURI()
}

// serveCached replays a previously cached response for this URI.
func serveCached(c *gin.Context, store cache.Store, family, contentType string) bool {
	body, ok := store.Get(c.Request.Context(), family, cacheKey(c))
	if !ok {
		return false
	}
	c.Data(http.StatusOK, contentType, body)
	return true
}

// respondCachedJSON renders the payload and stores the exact bytes sent.
func respondCachedJSON(c *gin.Context, store cache.Store, family string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusOK, payload)
		return
	}
	store.Set(c.Request.Context(), family, cacheKey(c), body)
	c.Data(http.StatusOK, jsonContentType, body)
}

// sendSaveError maps storage failures on save: duplicate unique fields become
// 409, everything else is a 500.
func sendSaveError(c *gin.Context, err error, conflictMessage string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		utils.SendError(c, http.StatusConflict, conflictMessage)
		return
	}
	utils.SendError(c, http.StatusInternalServerError, "Falha ao salvar registro.")
}
