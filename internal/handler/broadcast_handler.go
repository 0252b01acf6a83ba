package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/api"
	"github.com/popeskul/moments-broadcast/internal/client"
	"github.com/popeskul/moments-broadcast/internal/middleware"
	"github.com/popeskul/moments-broadcast/internal/models"
	"github.com/popeskul/moments-broadcast/internal/service"
)

// SendBroadcast implements api.ServerInterface. The broadcast record is
// created before responding; delivery runs on the dispatcher.
func (h *Handler) SendBroadcast(w http.ResponseWriter, r *http.Request) {
	var body api.SendBroadcastRequest
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeValidation, errorMessageInvalidBody)
		return
	}

	req := service.BroadcastRequest{
		Message:    body.Message,
		Recipients: body.Recipients,
	}
	if body.MomentId != nil {
		req.MomentID = *body.MomentId
	}
	if body.MediaUrls != nil {
		req.MediaURLs = *body.MediaUrls
	}

	broadcast, err := h.service.Broadcast.Create(r.Context(), req)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeValidation, errorMessageInvalidRequest, validationErr.Fields...)
		case errors.Is(err, client.ErrMissingCredentials):
			h.sendError(w, r, http.StatusServiceUnavailable, middleware.ErrorCodeConfiguration, errorMessageMissingCredentials)
		default:
			h.logError(r, "Failed to create broadcast", err)
			h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToCreate)
		}
		return
	}

	// The record belongs to the dispatcher once submitted.
	accepted := api.BroadcastAccepted{
		BroadcastId:     broadcast.ID,
		Status:          api.BroadcastStatus(broadcast.Status),
		TotalRecipients: broadcast.RecipientCount,
	}

	if err := h.service.Dispatcher.SubmitBroadcast(r.Context(), broadcast, req); err != nil {
		h.logError(r, "Failed to queue broadcast", err, zap.String("broadcast_id", accepted.BroadcastId))
		h.sendError(w, r, http.StatusServiceUnavailable, middleware.ErrorCodeUnavailable, errorMessageDispatchUnavailable)
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, accepted)
}

// ListBroadcasts implements api.ServerInterface.
func (h *Handler) ListBroadcasts(w http.ResponseWriter, r *http.Request, params api.ListBroadcastsParams) {
	list := service.ListParams{
		From: params.From,
		To:   params.To,
	}
	if params.MomentId != nil {
		list.MomentID = *params.MomentId
	}
	if params.Status != nil {
		list.Status = models.Status(*params.Status)
	}
	if params.Page != nil {
		list.Page = *params.Page
	}
	if params.Limit != nil {
		list.Limit = *params.Limit
	}

	page, err := h.service.Query.ListBroadcasts(r.Context(), list)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeValidation, validationErr.Error(), validationErr.Fields...)
			return
		}
		h.logError(r, "Failed to list broadcasts", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToList)
		return
	}

	resp := api.BroadcastListResponse{
		Broadcasts: make([]api.Broadcast, 0, len(page.Broadcasts)),
		Pagination: api.Pagination{
			CurrentPage:  page.Page,
			TotalPages:   page.TotalPages(),
			TotalItems:   int(page.Total),
			ItemsPerPage: page.Limit,
		},
	}
	for _, b := range page.Broadcasts {
		resp.Broadcasts = append(resp.Broadcasts, toAPIBroadcast(b))
	}

	render.JSON(w, r, resp)
}

// GetBroadcast implements api.ServerInterface.
func (h *Handler) GetBroadcast(w http.ResponseWriter, r *http.Request, id string) {
	details, err := h.service.Query.GetBroadcast(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.sendError(w, r, http.StatusNotFound, middleware.ErrorCodeNotFound, errorMessageBroadcastNotFound)
			return
		}
		h.logError(r, "Failed to get broadcast", err, zap.String("broadcast_id", id))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToGet)
		return
	}

	resp := toAPIBroadcast(details.Broadcast)
	batches := make([]api.BroadcastBatch, 0, len(details.Batches))
	for _, b := range details.Batches {
		batches = append(batches, toAPIBatch(b))
	}
	resp.Batches = &batches

	render.JSON(w, r, resp)
}

// GetBroadcastAnalytics implements api.ServerInterface.
func (h *Handler) GetBroadcastAnalytics(w http.ResponseWriter, r *http.Request, params api.GetBroadcastAnalyticsParams) {
	days := 0
	if params.Days != nil {
		days = *params.Days
	}

	summary, err := h.service.Query.GetAnalytics(r.Context(), days)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeValidation, validationErr.Error(), validationErr.Fields...)
			return
		}
		h.logError(r, "Failed to compute analytics", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToAnalyze)
		return
	}

	render.JSON(w, r, api.AnalyticsResponse{
		Days:            summary.Days,
		TotalBroadcasts: summary.TotalBroadcasts,
		TotalRecipients: summary.TotalRecipients,
		TotalSuccess:    summary.TotalSuccess,
		TotalFailures:   summary.TotalFailures,
		SuccessRate:     summary.SuccessRate(),
	})
}

// DispatchMoment implements api.ServerInterface.
func (h *Handler) DispatchMoment(w http.ResponseWriter, r *http.Request, id string) {
	err := h.service.Dispatcher.SubmitMoment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyDispatched):
			h.sendError(w, r, http.StatusConflict, errorCodeAlreadyDispatched, errorMessageAlreadyDispatched)
		case errors.Is(err, service.ErrNotFound):
			h.sendError(w, r, http.StatusNotFound, middleware.ErrorCodeNotFound, errorMessageMomentNotFound)
		case errors.Is(err, service.ErrQueueFull), errors.Is(err, service.ErrDispatcherStopped):
			h.sendError(w, r, http.StatusServiceUnavailable, middleware.ErrorCodeUnavailable, errorMessageDispatchUnavailable)
		default:
			h.logError(r, "Failed to dispatch moment", err, zap.String("moment_id", id))
			h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToDispatch)
		}
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, api.MomentDispatchResponse{
		MomentId: id,
		Status:   string(models.MomentStatusBroadcasting),
		Message:  momentMessageQueued,
	})
}

func toAPIBroadcast(b *models.Broadcast) api.Broadcast {
	out := api.Broadcast{
		Id:             b.ID,
		Status:         api.BroadcastStatus(b.Status),
		RecipientCount: b.RecipientCount,
		SuccessCount:   b.SuccessCount,
		FailureCount:   b.FailureCount,
		CreatedAt:      b.CreatedAt,
	}
	if b.MomentID.Valid {
		out.MomentId = &b.MomentID.String
	}
	if b.StartedAt.Valid {
		out.StartedAt = &b.StartedAt.Time
	}
	if b.CompletedAt.Valid {
		out.CompletedAt = &b.CompletedAt.Time
	}
	if b.FailureReason.Valid {
		out.FailureReason = &b.FailureReason.String
	}
	if a := b.AuthorityContext; a != nil {
		out.AuthorityContext = &api.AuthorityContext{
			AuthorityId:             a.AuthorityID,
			AuthorityLevel:          a.AuthorityLevel,
			BlastRadius:             a.BlastRadius,
			Scope:                   a.Scope,
			OriginalSubscriberCount: a.OriginalSubscriberCount,
			FilteredSubscriberCount: a.FilteredSubscriberCount,
		}
	}
	return out
}

func toAPIBatch(b *models.BroadcastBatch) api.BroadcastBatch {
	out := api.BroadcastBatch{
		Id:             b.ID,
		BatchNumber:    b.BatchNumber,
		RecipientCount: len(b.Recipients),
		Status:         api.BroadcastStatus(b.Status),
		SuccessCount:   b.SuccessCount,
		FailureCount:   b.FailureCount,
	}
	if b.StartedAt.Valid {
		out.StartedAt = &b.StartedAt.Time
	}
	if b.CompletedAt.Valid {
		out.CompletedAt = &b.CompletedAt.Time
	}
	return out
}
