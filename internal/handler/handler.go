package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/realestate-api/pkg/response"
)

// bindPayload decodes the request body into a generic JSON object.
// A body that is absent, not valid JSON, or not an object (array,
// scalar, null) is rejected with a 400 before any field validation.
func bindPayload(c *gin.Context) (map[string]any, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		response.BadRequest(c, "Invalid JSON data in request")
		return nil, false
	}
	return payload, true
}

// parseID reads the numeric id path parameter. A non-numeric id is
// indistinguishable from a missing row, so it maps to the entity's
// not-found message.
func parseID(c *gin.Context, notFoundMessage string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c, notFoundMessage)
		return 0, false
	}
	return uint(id), true
}
