package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"linear-memos-sync/config"
	"linear-memos-sync/pkg/log"
)

// The proxy relays webhook requests from a public endpoint to the private
// API host. The body is forwarded byte-for-byte: re-serializing the JSON
// would break signature verification upstream.

const forwardTimeout = 15 * time.Second

// maxBodySize caps inbound webhook bodies at 1 MB, matching the API side.
const maxBodySize = 1 << 20

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Linear webhook proxy forwarding to %s", cfg.Proxy.TargetURL)

	gin.SetMode(cfg.HTTPServer.Mode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	client := &http.Client{Timeout: forwardTimeout}

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Linear webhook proxy is running. Send POST requests to /webhook")
	})
	engine.POST("/webhook", forwardWebhook(logger, client, cfg.Proxy.TargetURL))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Proxy.Port),
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof(ctx, "Proxy listening on :%d", cfg.Proxy.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Error(ctx, "Proxy failed: ", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Proxy shutdown failed: ", err)
		}
	}
}

// forwardWebhook relays the raw request body and the Linear-Signature
// header unchanged, then passes the upstream response through.
func forwardWebhook(logger log.Logger, client *http.Client, targetURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize))
		if err != nil {
			logger.Errorf(ctx, "Failed to read webhook body: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "failed to read request body"})
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
		if err != nil {
			logger.Errorf(ctx, "Failed to build forward request: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to build forward request"})
			return
		}
		req.Header.Set("Content-Type", "application/json")
		if sig := c.GetHeader("Linear-Signature"); sig != "" {
			req.Header.Set("Linear-Signature", sig)
		}

		resp, err := client.Do(req)
		if err != nil {
			logger.Errorf(ctx, "Error forwarding webhook: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Error forwarding webhook: " + err.Error()})
			return
		}
		defer resp.Body.Close()

		logger.Infof(ctx, "Forwarded webhook, upstream responded %d", resp.StatusCode)
		c.DataFromReader(resp.StatusCode, resp.ContentLength, resp.Header.Get("Content-Type"), resp.Body, nil)
	}
}
