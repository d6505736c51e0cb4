package announcements

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cruzhacks/portal/handler"
	"github.com/cruzhacks/portal/pkg/validator"
	"github.com/cruzhacks/portal/svc/announcement"
)

// envelope is the body of every announcement response.
type envelope struct {
	Error   bool   `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func reply(status int, message string) handler.Response {
	return handler.JSON(envelope{
		Error:   status >= http.StatusBadRequest,
		Status:  status,
		Message: message,
	}, handler.WithJSONStatus(status))
}

// item is an announcement as served to clients; date is Unix milliseconds.
type item struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Date    int64  `json:"date"`
}

type listResponse struct {
	envelope
	Count         int    `json:"count"`
	Announcements []item `json:"announcements"`
}

func (m *Module) list(ctx handler.Context, _ struct{}) handler.Response {
	latest, err := m.svc.Latest(ctx)
	if err != nil {
		return reply(http.StatusInternalServerError, MsgInternalError)
	}

	items := make([]item, 0, len(latest))
	for _, a := range latest {
		items = append(items, item{
			ID:      a.ID,
			Title:   a.Title,
			Message: a.Message,
			Date:    a.CreatedAt.UnixMilli(),
		})
	}

	return handler.JSON(listResponse{
		envelope:      envelope{Status: http.StatusOK, Message: MsgListed},
		Count:         len(items),
		Announcements: items,
	})
}

type createRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (m *Module) create(ctx handler.Context, req createRequest) handler.Response {
	_, err := m.svc.Create(ctx, req.Title, req.Message)
	if err != nil {
		if msgs := validator.ExtractValidationErrors(err).Messages(); len(msgs) > 0 {
			return reply(http.StatusBadRequest, msgs[0])
		}
		return reply(http.StatusInternalServerError, MsgInternalError)
	}
	return reply(http.StatusCreated, MsgCreated)
}

func (m *Module) delete(ctx handler.Context, _ struct{}) handler.Response {
	err := m.svc.Delete(ctx, chi.URLParam(ctx.Request(), "id"))
	switch {
	case err == nil:
		return reply(http.StatusOK, MsgDeleted)
	case errors.Is(err, announcement.ErrInvalidID):
		return reply(http.StatusBadRequest, MsgInvalidID)
	default:
		return reply(http.StatusInternalServerError, MsgInternalError)
	}
}
