package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog_api/internal/echo"
	"catalog_api/internal/service"
)

// SayHandler 代理到遠端的 Keyword Echo Service
type SayHandler struct {
	echoClient *service.EchoClient
	log        *slog.Logger
}

func NewSayHandler(echoClient *service.EchoClient, log *slog.Logger) *SayHandler {
	return &SayHandler{echoClient: echoClient, log: log}
}

// Say 把 keyword 轉送給遠端服務，並原樣回傳狀態碼與內容
//
//	@Description	Forwards the keyword to the Keyword Echo Service and relays its answer
//	@Produce		plain
//	@Param			keyword	query		string	true	"Keyword to echo"
//	@Success		200		{string}	string	"<name> says <keyword>."
//	@Failure		400		{string}	string	"There is no keyword. Please put in a keyword."
//	@Failure		500		{string}	string	"There is an internal server error"
//	@Router			/say [get]
func (h *SayHandler) Say(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.String(http.StatusBadRequest, echo.MissingKeywordMessage)
		return
	}

	resp, err := h.echoClient.Say(c.Request.Context(), keyword)
	if err != nil {
		h.log.Error("echo service request failed", "keyword", keyword, "error", err)
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, internalErrorMessage)
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}
