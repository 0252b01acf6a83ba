package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /broadcasts)
	SendBroadcast(w http.ResponseWriter, r *http.Request)
	// (GET /broadcasts)
	ListBroadcasts(w http.ResponseWriter, r *http.Request, params ListBroadcastsParams)
	// (GET /broadcasts/analytics)
	GetBroadcastAnalytics(w http.ResponseWriter, r *http.Request, params GetBroadcastAnalyticsParams)
	// (GET /broadcasts/{id})
	GetBroadcast(w http.ResponseWriter, r *http.Request, id string)
	// (POST /moments/{id}/broadcast)
	DispatchMoment(w http.ResponseWriter, r *http.Request, id string)
	// (POST /scheduler/start)
	StartScheduler(w http.ResponseWriter, r *http.Request)
	// (POST /scheduler/stop)
	StopScheduler(w http.ResponseWriter, r *http.Request)
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// ServerInterfaceWrapper binds request parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) SendBroadcast(w http.ResponseWriter, r *http.Request) {
	siw.Handler.SendBroadcast(w, r)
}

func (siw *ServerInterfaceWrapper) ListBroadcasts(w http.ResponseWriter, r *http.Request) {
	var params ListBroadcastsParams
	query := r.URL.Query()

	bindings := []struct {
		name string
		dest interface{}
	}{
		{"moment_id", &params.MomentId},
		{"status", &params.Status},
		{"from", &params.From},
		{"to", &params.To},
		{"page", &params.Page},
		{"limit", &params.Limit},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: b.name, Err: err})
			return
		}
	}

	siw.Handler.ListBroadcasts(w, r, params)
}

func (siw *ServerInterfaceWrapper) GetBroadcastAnalytics(w http.ResponseWriter, r *http.Request) {
	var params GetBroadcastAnalyticsParams
	if err := runtime.BindQueryParameter("form", true, false, "days", r.URL.Query(), &params.Days); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "days", Err: err})
		return
	}

	siw.Handler.GetBroadcastAnalytics(w, r, params)
}

func (siw *ServerInterfaceWrapper) GetBroadcast(w http.ResponseWriter, r *http.Request) {
	var id string
	if err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, chi.URLParam(r, "id"), &id); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	siw.Handler.GetBroadcast(w, r, id)
}

func (siw *ServerInterfaceWrapper) DispatchMoment(w http.ResponseWriter, r *http.Request) {
	var id string
	if err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, chi.URLParam(r, "id"), &id); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	siw.Handler.DispatchMoment(w, r, id)
}

func (siw *ServerInterfaceWrapper) StartScheduler(w http.ResponseWriter, r *http.Request) {
	siw.Handler.StartScheduler(w, r)
}

func (siw *ServerInterfaceWrapper) StopScheduler(w http.ResponseWriter, r *http.Request) {
	siw.Handler.StopScheduler(w, r)
}

func (siw *ServerInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	siw.Handler.HealthCheck(w, r)
}

// InvalidParamFormatError is passed to ErrorHandlerFunc when a parameter
// cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   "INVALID_PARAMETER",
		Message: err.Error(),
	})
}

// Handler creates http.Handler with routing matching the API contract.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, chi.NewRouter(), nil)
}

// HandlerWithOptions mounts the routes on r and uses errorHandler for
// parameter binding failures.
func HandlerWithOptions(si ServerInterface, r chi.Router, errorHandler func(w http.ResponseWriter, r *http.Request, err error)) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}
	wrapper := ServerInterfaceWrapper{
		Handler:          si,
		ErrorHandlerFunc: errorHandler,
	}

	r.Post("/broadcasts", wrapper.SendBroadcast)
	r.Get("/broadcasts", wrapper.ListBroadcasts)
	r.Get("/broadcasts/analytics", wrapper.GetBroadcastAnalytics)
	r.Get("/broadcasts/{id}", wrapper.GetBroadcast)
	r.Post("/moments/{id}/broadcast", wrapper.DispatchMoment)
	r.Post("/scheduler/start", wrapper.StartScheduler)
	r.Post("/scheduler/stop", wrapper.StopScheduler)
	r.Get("/health", wrapper.HealthCheck)

	return r
}
