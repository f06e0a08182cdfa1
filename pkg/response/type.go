package response

import "github.com/gin-gonic/gin"

// Resp is the standard webhook JSON response body: a success flag, a
// human-readable message, plus optional extra fields merged at the top
// level (e.g. post_id, comment_id).
type Resp struct {
	Success bool
	Message string
	Extra   gin.H
}

// Body flattens the response into the JSON object sent on the wire.
func (r Resp) Body() gin.H {
	body := gin.H{
		"success": r.Success,
		"message": r.Message,
	}
	for k, v := range r.Extra {
		body[k] = v
	}
	return body
}
