package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает на проверку живости балансировщика. Во время
// остановки сервиса отдаёт 503, чтобы трафик перестал приходить
// до закрытия слушателя.
type Handler struct {
	shuttingDown *atomic.Bool
}

func New(shuttingDown *atomic.Bool) *Handler {
	return &Handler{
		shuttingDown: shuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.shuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
