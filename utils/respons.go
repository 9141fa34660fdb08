package utils

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same {status, ...} envelope.

func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"data":   data,
	})
}

func RespondList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"count":  count,
		"data":   data,
	})
}

// RespondPagedList adds the pagination metadata emitted only when a limit
// is in effect.
func RespondPagedList(c *gin.Context, count int, data interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"count":  count,
		"data":   data,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

func RespondCreated(c *gin.Context, fields gin.H) {
	body := gin.H{"status": "ok"}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusCreated, body)
}

func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": message,
	})
}

func RespondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "bad_request",
		"message": message,
	})
}

func RespondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
	})
}

func RespondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  "not_found",
		"message": message,
	})
}

func RespondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{
		"status":  "conflict",
		"message": message,
	})
}

// RespondDBError logs the driver error and answers a generic 500. The raw
// error text is only exposed when APP_DEBUG is set.
func RespondDBError(c *gin.Context, err error) {
	ErrorLogger.Printf("[DB ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)

	body := gin.H{
		"status":  "error",
		"message": "Database error",
	}
	if os.Getenv("APP_DEBUG") == "true" {
		body["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

func RespondServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": message,
	})
}
