package mux

import (
	"net/http"
	"pokerhands/internal/config"
	"pokerhands/internal/util"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  muxConfig
	version string
}

type muxConfig struct {
	// rejectDuplicateCards returns an error for hands that repeat a card
	rejectDuplicateCards bool
	// maxHandsPerRequest limits the number of hands that can be ranked at once
	maxHandsPerRequest int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		config: muxConfig{
			rejectDuplicateCards: cfg.RejectDuplicateCards,
			maxHandsPerRequest:   cfg.MaxHandsPerRequest,
		},
	}

	this.Router.Use(requestIDMiddleware)

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/hand").Handler(this.postHand())
	r.Methods(http.MethodPost).Path("/compare").Handler(this.postCompare())
	r.Methods(http.MethodPost).Path("/rank").Handler(this.postRank())

	return this
}

// requestIDMiddleware tags every response (and the debug log) with a request identifier
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = util.NewRequestID()
		}

		w.Header().Set(requestIDHeader, id)
		logrus.WithFields(logrus.Fields{
			"requestID": id,
			"method":    r.Method,
			"path":      r.URL.Path,
		}).Debug("request")

		next.ServeHTTP(w, r)
	})
}
