package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mhorn/skyfall/internal/config"
	"github.com/mhorn/skyfall/internal/draw"
	"github.com/mhorn/skyfall/internal/loop"
	"github.com/mhorn/skyfall/internal/score"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHTTPPort    = "8081"
	defaultHostKeyPath = "/app/keys/host_key"

	scoreboardLimit    = 10
	scoreboardInterval = 2 * time.Second
)

// Shared score table for all SSH sessions and the websocket feed.
var scores = score.NewStore()

func main() {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	httpPort := config.GetEnv("HTTP_PORT", defaultHTTPPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyfall",
	})
	logger.Info("starting", "ssh", net.JoinHostPort(host, port), "http", net.JoinHostPort(host, httpPort))

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(logger),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Game input is latency-sensitive.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	sshServer, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create ssh server", "err", err)
	}

	httpServer := &http.Server{
		Addr:    net.JoinHostPort(host, httpPort),
		Handler: newHTTPHandler(logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		sshErr := sshServer.Shutdown(shutdownCtx)
		httpErr := httpServer.Shutdown(shutdownCtx)
		return errors.Join(sshErr, httpErr)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", "err", err)
	}
	logger.Info("stopped")
}

// gameMiddleware runs one game session per SSH connection.
func gameMiddleware(logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessionID := uuid.NewString()
			sessLog := logger.With("session", sessionID, "user", sess.User())
			sessLog.Info("session started", "term", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			reader := bufio.NewReader(sess)
			opts := loop.Options{
				TermSizeFunc: sizeTracker.getSize,
				Store:        scores,
				PlayerName:   sess.User(),
			}
			if err := loop.Run(reader, sess, opts); err != nil {
				sessLog.Error("session error", "err", err)
			}

			sessLog.Info("session ended")
			next(sess)
		}
	}
}

// newHTTPHandler serves the health check and the live scoreboard feed.
func newHTTPHandler(logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	mux.HandleFunc("/scores", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(scores.TopScores(score.DefaultGame, scoreboardLimit))
	})

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveScoreboardFeed(logger, w, r)
	})

	return mux
}

// serveScoreboardFeed pushes the top-score table to a websocket client on a
// fixed interval until the client disconnects.
func serveScoreboardFeed(logger *log.Logger, w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		logger.Warn("websocket accept failed", "err", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	ticker := time.NewTicker(scoreboardInterval)
	defer ticker.Stop()

	for {
		payload, err := json.Marshal(scores.TopScores(score.DefaultGame, scoreboardLimit))
		if err != nil {
			return
		}
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "server shutting down")
			return
		case <-ticker.C:
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
