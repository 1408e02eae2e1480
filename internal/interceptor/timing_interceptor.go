package interceptor

import (
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/jt828/perfmon/pkg/observability"
	"github.com/jt828/perfmon/pkg/perf"
)

// UnmatchedLabel is the label of requests no ServeMux pattern matched.
const UnmatchedLabel = "http other"

// TimingInterceptor measures every request under label "http <pattern>",
// where pattern is the ServeMux route that served it. Requests that matched no
// route share UnmatchedLabel, so arbitrary paths cannot add label values. A
// panicking handler is logged and answered with 500 instead of taking the
// server down; its request is still measured.
//
// The interceptor must wrap a ServeMux: the route is read from r.Pattern after
// the mux has served the request.
func TimingInterceptor(monitor perf.Monitor, log observability.Logger) func(http.Handler) http.Handler {
	var seq atomic.Uint64

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// marks are keyed by name, so concurrent requests need distinct names
			name := "http-" + strconv.FormatUint(seq.Add(1), 10)

			monitor.Mark(name)
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered",
						observability.String("panic", fmt.Sprintf("%v", rec)),
						observability.String("path", r.URL.Path),
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
				// a name is never reused, so a mark left open by a disable
				// would stay in the monitor forever
				if _, ok := monitor.Measure(name, routeLabel(r)); !ok {
					monitor.Discard(name)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return UnmatchedLabel
	}
	return "http " + r.Pattern
}
