package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/metabase/throttle/pkg/throttle"
)

var errBadCredentials = errors.New("invalid email or password")

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	byEmail, err := throttle.New("email",
		throttle.WithThreshold(5),
		throttle.WithInitialDelay(2*time.Second),
		throttle.WithAttemptTTL(10*time.Minute),
	)
	if err != nil {
		logger.Fatal("building email throttler", zap.Error(err))
	}

	byIP, err := throttle.New("ip-address",
		throttle.WithThreshold(10),
		throttle.WithInitialDelay(5*time.Second),
		throttle.WithAttemptTTL(time.Hour),
	)
	if err != nil {
		logger.Fatal("building ip throttler", zap.Error(err))
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)

	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		email := req.FormValue("email")
		ip, _, splitErr := net.SplitHostPort(req.RemoteAddr)
		if splitErr != nil {
			ip = req.RemoteAddr
		}

		// A wrong password charges both ledgers; a throttled email or IP
		// never reaches the credential check at all.
		err := throttle.Do([]throttle.Guard{
			{Throttler: byEmail, Key: email},
			{Throttler: byIP, Key: ip},
		}, func() error {
			return checkCredentials(email, req.FormValue("password"))
		})

		var rle *throttle.RateLimitedError
		switch {
		case errors.As(err, &rle):
			logger.Info("login throttled",
				zap.String("label", rle.Label),
				zap.Duration("retry_after", rle.RetryAfter),
				zap.String("ip", ip),
			)
			w.Header().Set("Retry-After", fmt.Sprintf("%.0f", rle.RetryAfter.Seconds()))
			http.Error(w, rle.Message, http.StatusTooManyRequests)
		case err != nil:
			http.Error(w, err.Error(), http.StatusUnauthorized)
		default:
			w.Write([]byte("Welcome!\n"))
		}
	})

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logger.Info("server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// checkCredentials stands in for a real credential store.
func checkCredentials(email, password string) error {
	if email == "demo@example.com" && password == "hunter2" {
		return nil
	}
	return errBadCredentials
}
