package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alitto/pond"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/klothoplatform/farmcreator/pkg/logging"
	"github.com/klothoplatform/farmcreator/pkg/provision"
	"github.com/klothoplatform/farmcreator/pkg/settings"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	Route = "/farm_creator"

	MsgNoParameters = "Error: No parameters could be parsed."
	MsgNotAProject  = "Error: Please run this Action Menu Item from the Project Actions menu of a Project page."
	MsgNoResult     = "Error: No result was returned by the farm creator. Please check the farm creator logs for more information."

	defaultShutdownTimeout = 2 * time.Minute
)

// Runner runs the provisioning workflow.
type Runner interface {
	CreateFarmAndFleet(ctx context.Context, req provision.Request) (*provision.Progress, error)
}

type Server struct {
	Settings *settings.Settings
	Runner   Runner
	// ShutdownTimeout bounds how long Serve waits for in-flight runs after its
	// context is done.
	ShutdownTimeout time.Duration

	pool     *pond.WorkerPool
	inFlight *atomic.Int64
}

// NewServer creates a Server that runs at most cfg.MaxConcurrentRuns
// workflows at a time; further requests wait for a free slot.
func NewServer(cfg *settings.Settings, runner Runner) *Server {
	workers := cfg.MaxConcurrentRuns
	if workers < 1 {
		workers = 1
	}
	return &Server{
		Settings:        cfg,
		Runner:          runner,
		ShutdownTimeout: defaultShutdownTimeout,
		pool:            pond.New(workers, 0),
		inFlight:        atomic.NewInt64(0),
	}
}

// ConsoleURL is the console page of a farm.
func ConsoleURL(region, farmID string) string {
	return fmt.Sprintf("https://%s.console.aws.amazon.com/deadlinecloud/home?region=%s#/farms/%s", region, region, farmID)
}

// NewRequest builds the workflow request for a project: the farm is named
// after the project, the queue and fleet after the farm.
func NewRequest(cfg *settings.Settings, projectName string) provision.Request {
	return provision.Request{
		StudioID:               cfg.StudioID,
		FarmName:               projectName,
		QueueName:              projectName + " Queue",
		FleetName:              projectName + " Fleet",
		Region:                 cfg.EffectiveRegion(),
		FleetConfigurationPath: cfg.FleetConfigurationPath,
		TrustPolicyPath:        cfg.TrustPolicyPath,
		WorkerPermissionsPath:  cfg.WorkerPermissionsPath,
		MaxWorkerCount:         cfg.MaxWorkerCount,
		JobRunAsUser:           cfg.JobRunAsUser,
		JobAttachmentSettings:  cfg.JobAttachmentSettings,
	}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(Route, s.farmCreator).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)
	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"in_flight": s.inFlight.Load(),
	})
}

func plainError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = fmt.Fprint(w, msg)
}

func statusFor(err error) int {
	var (
		verr *provision.ValidationError
		rerr *provision.RemoteCallError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &rerr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) farmCreator(w http.ResponseWriter, r *http.Request) {
	log := logging.GetLogger(r.Context()).Named("listener").With(zap.String("request_id", uuid.NewString()))
	log.Debug("request", zap.String("method", r.Method), zap.String("uri", r.RequestURI))

	var (
		params Params
		err    error
	)
	switch r.Method {
	case http.MethodPost:
		if err = r.ParseForm(); err == nil {
			params = formParams(r.PostForm)
		}
	default:
		params, err = ParseQuery(r.RequestURI)
	}
	if err != nil {
		log.Warn("couldn't parse parameters", zap.Error(err))
		plainError(w, http.StatusBadRequest, MsgNoParameters)
		return
	}
	if params.Empty() {
		plainError(w, http.StatusBadRequest, MsgNoParameters)
		return
	}

	project, ok := params.Get("project_name")
	if !ok {
		plainError(w, http.StatusBadRequest, MsgNotAProject)
		return
	}
	serverHostname, ok := params.Get("server_hostname")
	if !ok {
		plainError(w, http.StatusBadRequest, "Error: No server_hostname was given.")
		return
	}
	hostname, _, _ := strings.Cut(serverHostname, ".")
	log = log.With(zap.String("project", project), zap.String("hostname", hostname))

	req := NewRequest(s.Settings, project)
	// A run must not be abandoned half way because the browser went away.
	ctx := logging.WithLogger(context.WithoutCancel(r.Context()), log)

	var progress *provision.Progress
	s.inFlight.Inc()
	s.pool.SubmitAndWait(func() {
		progress, err = s.Runner.CreateFarmAndFleet(ctx, req)
	})
	s.inFlight.Dec()

	if err == nil && progress == nil {
		log.Error("no result was returned by the farm creator")
		plainError(w, http.StatusInternalServerError, MsgNoResult)
		return
	}
	if err != nil {
		log.Error("farm creation failed", zap.Error(err))
		plainError(w, statusFor(err), "Error: "+err.Error())
		return
	}

	target := ConsoleURL(req.Region, progress.FarmID)
	log.Info("redirecting", zap.String("url", target))
	http.Redirect(w, r, target, http.StatusFound)
}

// ListenAndServe listens on addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then waits for in-flight runs to
// finish, up to ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logging.GetLogger(ctx).Named("listener")
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return logging.WithLogger(context.Background(), logging.GetLogger(ctx))
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Int64("in_flight", s.inFlight.Load()))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		s.pool.StopAndWait()
		return err
	})
	return g.Wait()
}
