package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

func handleGetGrid(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Grid())
	}
}

func handleSetText(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TextRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		svc.SetText(req.Text)
		writeJSON(w, http.StatusOK, svc.Grid())
	}
}

func handleSetAnnotation(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnnotationRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := svc.SetAnnotation(req.Row, req.Col, req.Kind, req.Value); err != nil {
			errResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, svc.Grid())
	}
}

func handleToggleBorder(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BorderRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		state, err := svc.ToggleBorder(req.Row, req.Col, req.Side)
		if err != nil {
			errResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, BorderResponse{Row: req.Row, Col: req.Col, Border: state})
	}
}

func handleSetField(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FieldRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := svc.SetField(req.Kind, req.Active); err != nil {
			errResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, svc.Grid())
	}
}

func handleSetViewport(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ViewportRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		svc.SetViewport(req.Width)
		writeJSON(w, http.StatusOK, svc.Grid())
	}
}

func handleExport(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.Export(r.Context())
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			slog.Error("export failed", "error", err)
			errResponse(w, http.StatusInternalServerError, "export failed")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="song-grid.pdf"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			slog.Error("write pdf response", "error", err)
		}
	}
}
