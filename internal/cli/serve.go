package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wordfield/wordfield/pkg/cache"
	wferrors "github.com/wordfield/wordfield/pkg/errors"
	"github.com/wordfield/wordfield/pkg/pipeline"
)

const (
	serveReadTimeout     = 10 * time.Second
	serveWriteTimeout    = 60 * time.Second
	serveShutdownTimeout = 10 * time.Second
)

// contentTypes maps output formats to their MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// serveCommand creates the serve command for the HTTP rendering endpoint.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered word clouds over HTTP",
		Long: `Serve rendered word clouds over HTTP.

The serve command starts an HTTP server exposing a single endpoint:

  GET /cloud?text=...&width=800&height=600&format=svg

The response is the rendered cloud in the requested format. Layouts and
artifacts are cached per server instance, so repeated requests with the
same parameters are served from cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	cc, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	// Each server instance gets its own cache namespace so restarting
	// with different defaults never serves stale artifacts.
	keyer := cache.NewScopedKeyer(nil, "instance:"+uuid.NewString()+":")
	runner := pipeline.NewRunner(cc, keyer, c.Logger)
	defer runner.Close()

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Get("/cloud", c.handleCloud(runner))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  serveReadTimeout,
		WriteTimeout: serveWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("Listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	c.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// handleCloud renders a cloud from query parameters.
func (c *CLI) handleCloud(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, format, err := parseCloudRequest(r)
		if err != nil {
			writeHTTPError(w, http.StatusBadRequest, err)
			return
		}
		opts.Logger = c.Logger.With("request_id", middleware.GetReqID(r.Context()))

		result, err := runner.Execute(r.Context(), opts)
		if err != nil {
			status := http.StatusInternalServerError
			if wferrors.GetCode(err) != "" {
				status = http.StatusBadRequest
			}
			writeHTTPError(w, status, err)
			return
		}

		data, ok := result.Artifacts[format]
		if !ok {
			writeHTTPError(w, http.StatusInternalServerError,
				fmt.Errorf("no artifact for format %q", format))
			return
		}

		w.Header().Set("Content-Type", contentTypes[format])
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// parseCloudRequest maps query parameters onto pipeline options.
func parseCloudRequest(r *http.Request) (pipeline.Options, string, error) {
	q := r.URL.Query()

	text := q.Get("text")
	if text == "" {
		return pipeline.Options{}, "", fmt.Errorf("missing required parameter: text")
	}

	opts := pipeline.Options{Text: text}

	if v := q.Get("width"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pipeline.Options{}, "", fmt.Errorf("invalid width: %q", v)
		}
		opts.Width = f
	}
	if v := q.Get("height"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pipeline.Options{}, "", fmt.Errorf("invalid height: %q", v)
		}
		opts.Height = f
	}
	if v := q.Get("seed"); v != "" {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return pipeline.Options{}, "", fmt.Errorf("invalid seed: %q", v)
		}
		opts.Seed = s
	}
	if v := q.Get("style"); v != "" {
		if err := pipeline.ValidateStyle(v); err != nil {
			return pipeline.Options{}, "", err
		}
		opts.Style = v
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return pipeline.Options{}, "", err
	}
	opts.Formats = []string{format}

	return opts, format, nil
}

// requestID attaches a UUID request ID to each request context and the
// response headers.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeHTTPError writes a JSON error response.
func writeHTTPError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`+"\n", err.Error())
}
