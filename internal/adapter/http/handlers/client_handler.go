package handlers

import (
	"net/http"
	"strings"

	response "ordem_servico/internal/adapter/http/dto/response"
	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the client name autocomplete.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// SearchClients godoc
// @Summary      Client suggestions
// @Description  Without q every client of the shop is returned.
// @Tags         clients
// @Produce      json
// @Param        q  query  string  false  "Name contains (accent insensitive)"
// @Success      200  {array}  response.ClientResponse
// @Router       /clients [get]
func (h *ClientHandler) SearchClients(c *gin.Context) {
	ctx := c.Request.Context()
	s := sessionFrom(c)
	q := strings.TrimSpace(c.Query("q"))

	var (
		clients []entities.Client
		err     error
	)
	if q == "" {
		clients, err = h.usecase.List(ctx, s)
	} else {
		clients, err = h.usecase.Search(ctx, s, q)
	}
	if err != nil {
		abortWithError(c, "[client][handler] search failed", err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}
