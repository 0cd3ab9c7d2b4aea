package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/aniladanir/devutil/here"
	"github.com/aniladanir/devutil/retry"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := retry.New(
		retry.WithSlog(logger),
		retry.WithTimeFactor(time.Millisecond*500),
		retry.WithMaxInterval(time.Second*30),
	)
	if err != nil {
		logger.Error(here.Msg("invalid retrier configuration"), "error", err)
		os.Exit(1)
	}

	status, err := retry.Do(ctx, r, func(ctx context.Context) (int, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.google.com", nil)
		if err != nil {
			return 0, here.Errorf("build request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return 0, here.Errorf("request: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode >= http.StatusInternalServerError {
			return 0, here.Errorf("server responded %d", resp.StatusCode)
		}
		return resp.StatusCode, nil
	})
	if err != nil {
		logger.Error(here.Msg("request abandoned"), "error", err)
		os.Exit(1)
	}

	fmt.Println(here.Msgf("request is successful with status %d", status))
}
