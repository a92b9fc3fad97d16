package server

import (
	"log"
	"net/http"
	"time"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// handlePreviewStream pushes a freshly rendered preview after every change to
// the session's record. The stream ends when the client disconnects or the
// session is discarded.
func (s *Server) handlePreviewStream(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	changes, unsubscribe := sess.Builder.Subscribe()
	defer unsubscribe()

	data, version := sess.Builder.Snapshot()
	if err := s.writePreview(sse, version, data); err != nil {
		return
	}

	keepAlive := time.NewTicker(s.keepAlive)
	defer keepAlive.Stop()

	// Sessions removed from the store keep their builder alive, so the stream
	// also polls the store to notice a discarded session.
	for {
		select {
		case <-r.Context().Done():
			return
		case change, ok := <-changes:
			if !ok {
				sse.WriteClosed(sess.ID)
				return
			}
			if change.Version <= version {
				continue
			}
			version = change.Version
			if err := s.writePreview(sse, change.Version, change.Data); err != nil {
				return
			}
		case <-keepAlive.C:
			if !s.sessions.Exists(sess.ID) {
				sse.WriteClosed(sess.ID)
				return
			}
			if err := sse.WriteKeepAlive(); err != nil {
				return
			}
		}
	}
}

func (s *Server) writePreview(sse *SSEWriter, version uint64, data types.ResumeData) error {
	html, err := rendering.RenderPreview(data)
	if err != nil {
		log.Printf("[server] Error rendering preview: %v", err)
		sse.WriteError("failed to render preview")
		return err
	}
	return sse.WritePreview(version, html)
}
