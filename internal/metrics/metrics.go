// Package metrics counts viewer interactions and simulated audience activity
// and can expose them on a Prometheus /metrics endpoint.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// scrapeLimit bounds how often /metrics is rendered.
var scrapeLimit = rate.Every(100 * time.Millisecond)

const scrapeBurst = 5

// Metrics holds every collector the app updates. A nil *Metrics is a no-op.
type Metrics struct {
	VideoOpens      *prometheus.CounterVec
	VideoSteps      *prometheus.CounterVec
	FavoriteToggles prometheus.Counter
	SimulatorTicks  prometheus.Counter
	SimulatedViews  prometheus.Counter
	Favorites       prometheus.Gauge
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		VideoOpens: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "videohub_video_opens_total",
				Help: "Total number of videos opened in the player",
			},
			[]string{"platform"},
		),
		VideoSteps: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "videohub_video_steps_total",
				Help: "Total number of next/previous moves in the player",
			},
			[]string{"direction"},
		),
		FavoriteToggles: f.NewCounter(prometheus.CounterOpts{
			Name: "videohub_favorite_toggles_total",
			Help: "Total number of favorite toggles",
		}),
		SimulatorTicks: f.NewCounter(prometheus.CounterOpts{
			Name: "videohub_simulator_ticks_total",
			Help: "Total number of simulator ticks applied",
		}),
		SimulatedViews: f.NewCounter(prometheus.CounterOpts{
			Name: "videohub_simulated_views_total",
			Help: "Total views added by the simulator",
		}),
		Favorites: f.NewGauge(prometheus.GaugeOpts{
			Name: "videohub_favorites",
			Help: "Number of videos currently marked favorite",
		}),
	}
}

// ObserveOpen counts a video opened from the given platform.
func (m *Metrics) ObserveOpen(platform string) {
	if m == nil {
		return
	}
	m.VideoOpens.WithLabelValues(platform).Inc()
}

// Step counts a player move; direction is "next", "prev" or "auto".
func (m *Metrics) Step(direction string) {
	if m == nil {
		return
	}
	m.VideoSteps.WithLabelValues(direction).Inc()
}

// Favorite counts a toggle and records the new favorite total.
func (m *Metrics) Favorite(total int) {
	if m == nil {
		return
	}
	m.FavoriteToggles.Inc()
	m.Favorites.Set(float64(total))
}

// SetFavorites records the favorite total without counting a toggle.
func (m *Metrics) SetFavorites(total int) {
	if m == nil {
		return
	}
	m.Favorites.Set(float64(total))
}

// Tick counts a simulator tick and the views it added.
func (m *Metrics) Tick(added int64) {
	if m == nil {
		return
	}
	m.SimulatorTicks.Inc()
	if added > 0 {
		m.SimulatedViews.Add(float64(added))
	}
}

// Serve exposes g on addr at /metrics until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	limiter := rate.NewLimiter(scrapeLimit, scrapeBurst)
	mux.Handle("/metrics", limitScrapes(promhttp.HandlerFor(g, promhttp.HandlerOpts{}), limiter))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics listener %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics shutdown: %w", err)
		}
		return nil
	}
}

// limitScrapes answers 429 once the limiter is exhausted.
func limitScrapes(next http.Handler, limiter *rate.Limiter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many scrapes", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
