package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/scholar-cli/internal/citation"
	"github.com/sells-group/scholar-cli/internal/credibility"
	"github.com/sells-group/scholar-cli/internal/model"
	"github.com/sells-group/scholar-cli/internal/pipeline"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP extraction API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		evaluator, err := initEvaluator()
		if err != nil {
			return err
		}
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		p := pipeline.New(cfg, st, evaluator)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           newRouter(p, evaluator, cfg.Server.RequestsPerSecond, cfg.Credibility.QualityThreshold),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("server listening", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

// newRouter builds the API routes with CORS and a shared token-bucket
// rate limit.
func newRouter(p *pipeline.Pipeline, evaluator *credibility.Evaluator, rps, defaultThreshold float64) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(rateLimit(rate.NewLimiter(rate.Limit(rps), int(rps)+1)))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/extract", func(w http.ResponseWriter, req *http.Request) {
		doc, ok := decodeDocument(w, req)
		if !ok {
			return
		}
		var c = citation.ExtractFromText(doc.Text, doc.Source)
		if doc.HTML != "" {
			c = citation.ExtractFromWebpage(doc.HTML, doc.Source)
		}
		if c == nil {
			writeJSON(w, http.StatusOK, map[string]any{"citation": nil})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"citation": c})
	})

	r.Post("/evaluate", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Citations []model.Citation `json:"citations"`
			Threshold *float64         `json:"threshold,omitempty"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		threshold := defaultThreshold
		if body.Threshold != nil {
			threshold = *body.Threshold
		}
		annotated, err := evaluator.FilterLowQuality(body.Citations, threshold)
		if err != nil {
			httpError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"sources": annotated})
	})

	r.Post("/analyze", func(w http.ResponseWriter, req *http.Request) {
		doc, ok := decodeDocument(w, req)
		if !ok {
			return
		}
		a, err := p.Run(req.Context(), doc)
		if err != nil {
			zap.L().Error("analyze request failed", zap.String("source", doc.Source), zap.Error(err))
			httpError(w, http.StatusInternalServerError, "analysis failed")
			return
		}
		writeJSON(w, http.StatusOK, a)
	})

	return r
}

// rateLimit rejects requests with 429 once the shared bucket is empty.
func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				httpError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func decodeDocument(w http.ResponseWriter, req *http.Request) (model.Document, bool) {
	var doc model.Document
	if err := json.NewDecoder(req.Body).Decode(&doc); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return doc, false
	}
	if doc.Text == "" && doc.HTML == "" {
		httpError(w, http.StatusBadRequest, "text or html is required")
		return doc, false
	}
	return doc, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
