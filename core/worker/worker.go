package worker

import (
	"enoki-admin/core/config"
	"enoki-admin/core/logger"

	"github.com/hibiken/asynq"
)

// Task type names processed by the background worker
const (
	TypePageDispatch = "page:dispatch"
	TypePageExpire   = "page:expire"
)

// Worker owns the asynq client used to enqueue tasks and the embedded
// server that processes them.
type Worker struct {
	client *asynq.Client
	server *asynq.Server
	mux    *asynq.ServeMux
}

func New(cfg config.RedisConfig) *Worker {
	opt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	return &Worker{
		client: asynq.NewClient(opt),
		server: asynq.NewServer(opt, asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		}),
		mux: asynq.NewServeMux(),
	}
}

func (w *Worker) Client() *asynq.Client {
	return w.client
}

// HandleFunc registers a task handler; modules call this during Init
func (w *Worker) HandleFunc(pattern string, handler asynq.HandlerFunc) {
	w.mux.HandleFunc(pattern, handler)
}

// Start runs the task server in the background
func (w *Worker) Start() {
	go func() {
		if err := w.server.Run(w.mux); err != nil {
			logger.Error("Worker server stopped", "error", err)
		}
	}()
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
	if err := w.client.Close(); err != nil {
		logger.Warn("Worker client close failed", "error", err)
	}
}
