package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeInput strips markup from every top-level string field of a JSON
// body. It guards the routes that accept text written by site visitors.
// Text is stored unescaped; rendering is left to the client.
func SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			HTTPHelper.SendBadRequest(c, "Invalid body", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			HTTPHelper.SendBadRequest(c, "Malformed JSON", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		for k, v := range body {
			if str, ok := v.(string); ok {
				body[k] = html.UnescapeString(strictPolicy.Sanitize(str))
			}
		}

		newBody, err := json.Marshal(body)
		if err != nil {
			HTTPHelper.SendBadRequest(c, "Malformed JSON", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}
