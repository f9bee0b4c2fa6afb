package api

import (
	"github.com/Scrin/wordbag/corpus"
)

var corp *corpus.Corpus

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// Init sets the corpus served by the handlers and starts the uptime clock
func Init(c *corpus.Corpus) {
	corp = c
	initStartTime()
}
