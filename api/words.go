package api

import (
	"net/http"
	"strconv"

	"github.com/Scrin/wordbag/bag"
	"github.com/Scrin/wordbag/corpus"
	"github.com/gin-gonic/gin"
)

// WordsResponse is the response for the words endpoint
type WordsResponse struct {
	Words []corpus.WordCount `json:"words"`
}

// WordsHandler lists the words in the corpus in alphabetical order, or the
// most frequent ones when top is given
// GET /api/words?top=N
func WordsHandler(c *gin.Context) {
	if topStr, ok := c.GetQuery("top"); ok {
		top, err := strconv.Atoi(topStr)
		if err != nil || top < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "top must be a positive integer"})
			return
		}
		c.JSON(http.StatusOK, WordsResponse{Words: corp.Top(top)})
		return
	}
	c.JSON(http.StatusOK, WordsResponse{Words: corp.Words()})
}

// WordHandler returns the count of a single word. The word must already be
// lowercase and alphabetic, anything else is rejected.
// GET /api/words/:word
func WordHandler(c *gin.Context) {
	word := c.Param("word")
	if !bag.IsWord(word) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "word must be lowercase and contain only letters"})
		return
	}
	c.JSON(http.StatusOK, corpus.WordCount{Word: word, Count: corp.MatchCount(word)})
}

// StatsHandler returns the number of unique and total words
// GET /api/stats
func StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, corp.Stats())
}

// ResetHandler removes every word from the corpus
// DELETE /api/words
func ResetHandler(c *gin.Context) {
	corp.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
