package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/Scrin/wordbag/corpus"
	"github.com/Scrin/wordbag/source"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const maxTextBytes = 10 << 20

// IngestResponse is the response for the texts endpoint
type IngestResponse struct {
	Format source.Format `json:"format"`
	Bytes  int           `json:"bytes"`
	Stats  corpus.Stats  `json:"stats"`
}

// IngestTextHandler adds the words of the request body to the corpus
// POST /api/texts?format=plain|markdown|html
func IngestTextHandler(c *gin.Context) {
	ctx := c.Request.Context()

	format, err := source.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxTextBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Text too large"})
			return
		}
		log.Warn().Ctx(ctx).Err(err).Msg("Failed to read request body")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	stats, err := corp.Ingest(ctx, format, string(body))
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("format", string(format)).Msg("Failed to ingest text")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to ingest text"})
		return
	}

	c.JSON(http.StatusOK, IngestResponse{
		Format: format,
		Bytes:  len(body),
		Stats:  stats,
	})
}
