package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

type NotificationsListResponse struct {
	Data []domain.Notification `json:"data"`
}

// NotificationsList handles GET /v1/notifications, newest first.
type NotificationsList struct {
	Lister datasources.NotificationLister
}

func (c NotificationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		writeError(ctx, w, "notification list without user", domain.ErrUnauthorized)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		writeError(ctx, w, "unable to parse pagination", err)
		return
	}

	notifications, err := c.Lister.ListNotifications(ctx, userID, page, pageSize)
	if err != nil {
		writeError(ctx, w, "unable to list notifications", err)
		return
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}

	w.Header().Set("Cache-Control", "private, no-store")
	writeJSON(ctx, w, http.StatusOK, NotificationsListResponse{Data: notifications})
}

// NotificationsRead handles POST /v1/notifications/read, marking all of the
// caller's notifications read.
type NotificationsRead struct {
	Marker datasources.NotificationsReadMarker
	Now    func() time.Time
}

func (c NotificationsRead) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		writeError(ctx, w, "notification read without user", domain.ErrUnauthorized)
		return
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	if err := c.Marker.MarkNotificationsRead(ctx, userID, now()); err != nil {
		writeError(ctx, w, "unable to mark notifications read", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, okResponse{OK: true})
}

// NotificationDelete handles DELETE /v1/notifications/{id}. Deleting a
// notification that does not exist still succeeds.
type NotificationDelete struct {
	Deleter datasources.NotificationDeleter
}

func (c NotificationDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		writeError(ctx, w, "notification delete without user", domain.ErrUnauthorized)
		return
	}

	id, err := domain.ParseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(ctx, w, "invalid notification id", err)
		return
	}

	if err := c.Deleter.DeleteNotification(ctx, id, userID); err != nil {
		writeError(ctx, w, "unable to delete notification", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, okResponse{OK: true})
}
