package feed

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

func GetCurrentUserHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encodeJSON(w, http.StatusOK, svc.CurrentUser())
	})
}

func GetPostsHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encodeJSON(w, http.StatusOK, svc.Posts())
	})
}

func CreatePostHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var d Draft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			encodeError(errBadRequest, w)
			return
		}

		p, err := svc.AddPost(d)
		if err != nil {
			encodeError(err, w)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("%s/%s", r.URL.Path, p.ID))
		encodeJSON(w, http.StatusCreated, p)
	})
}

func GetPostHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Post(postIDParam(r))
		if err != nil {
			encodeError(err, w)
			return
		}
		encodeJSON(w, http.StatusOK, p)
	})
}

func LikePostHandler(svc Service) http.Handler {
	return toggleHandler(svc.LikePost)
}

func BookmarkPostHandler(svc Service) http.Handler {
	return toggleHandler(svc.BookmarkPost)
}

func GetBookmarksHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encodeJSON(w, http.StatusOK, svc.Bookmarks())
	})
}

func GetLikedPostsHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encodeJSON(w, http.StatusOK, svc.LikedPosts())
	})
}

func GetUserPostsHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		encodeJSON(w, http.StatusOK, svc.PostsBy(ID(id)))
	})
}

func GetTrendsHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if l := r.URL.Query().Get("limit"); l != "" {
			n, err := strconv.Atoi(l)
			if err != nil || n < 0 {
				encodeError(errBadRequest, w)
				return
			}
			limit = n
		}
		encodeJSON(w, http.StatusOK, svc.Trends(limit))
	})
}

// LoggingMiddleware logs every request once it has been served.
func LoggingMiddleware(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		}
		if rec.status >= http.StatusInternalServerError {
			logger.Error("request failed", fields...)
			return
		}
		logger.Info("request served", fields...)
	})
}

func toggleHandler(toggle func(PostID) (Post, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := toggle(postIDParam(r))
		if err != nil {
			encodeError(err, w)
			return
		}
		encodeJSON(w, http.StatusOK, p)
	})
}

func postIDParam(r *http.Request) PostID {
	return PostID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Hijack lets the stream endpoint upgrade through the middleware.
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := s.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response does not support hijacking")
	}
	s.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

var errBadRequest = errors.New("malformed request")

func encodeError(err error, w http.ResponseWriter) {
	var code int
	switch err {
	case errBadRequest:
		code = http.StatusBadRequest
	case ErrPostNotFound:
		code = http.StatusNotFound
	case ErrExistingPost:
		code = http.StatusConflict
	case ErrEmptyPost, ErrInvalidPostID:
		code = http.StatusUnprocessableEntity
	default:
		code = http.StatusInternalServerError
	}
	encodeJSON(w, code, map[string]interface{}{"error": err.Error()})
}

func encodeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
