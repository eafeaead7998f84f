package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Response is the fixed envelope for mutation results and every error body.
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Code: status, Msg: msg})
}

func success(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Msg: "success"})
}

// storeFailure reports an underlying store error. The driver detail is only
// exposed when running in debug mode.
func storeFailure(c *gin.Context, prefix string, err error, debug bool) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("store operation failed")
	msg := prefix
	if debug {
		msg += err.Error()
	}
	fail(c, http.StatusNotFound, msg)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
