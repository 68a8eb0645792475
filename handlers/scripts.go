// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/example/scripthub/blob"
	"github.com/example/scripthub/gameinfo"
	"github.com/example/scripthub/middleware"
	"github.com/example/scripthub/models"
	"github.com/example/scripthub/store"
)

// maxUploadMemory caps how much of a multipart body stays in memory before
// spilling to temp files.
const maxUploadMemory = 32 << 20

type ScriptHandler struct {
	store   *store.Store
	uploads blob.Uploader
	games   *gameinfo.Client
}

func NewScriptHandler(s *store.Store, uploads blob.Uploader, games *gameinfo.Client) *ScriptHandler {
	return &ScriptHandler{store: s, uploads: uploads, games: games}
}

// Serve handles GET and POST /scripts
func (h *ScriptHandler) Serve(w http.ResponseWriter, r *http.Request) {
	switch resolveAction(r) {
	case actionGameInfo:
		h.gameInfo(w, r)
	case actionGetOne:
		h.getOne(w, r)
	case actionList:
		h.list(w, r)
	case actionLike:
		h.vote(w, r, "like", models.CounterLikes)
	case actionDislike:
		h.vote(w, r, "dislike", models.CounterDislikes)
	case actionCreate:
		h.create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *ScriptHandler) getOne(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid id")
		return
	}

	script, err := h.store.GetByID(id)
	if err == store.ErrNotFound {
		middleware.JSONResponse(w, http.StatusNotFound, struct{}{})
		return
	}
	if err != nil {
		slog.Error("failed to get script", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, script)
}

func (h *ScriptHandler) list(w http.ResponseWriter, r *http.Request) {
	scripts, err := h.store.ListAll()
	if err != nil {
		slog.Error("failed to list scripts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scripts)
}

func (h *ScriptHandler) gameInfo(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("placeId")
	if placeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing placeId")
		return
	}
	// placeID is spliced into an upstream query string; only digits go through.
	if _, err := strconv.ParseInt(placeID, 10, 64); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid placeId")
		return
	}

	info, err := h.games.Resolve(placeID)
	if err != nil {
		slog.Error("game info lookup failed", "error", err, "place_id", placeID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GameInfoResponse{
		GameIcon: info.IconURL,
		GameName: info.Name,
	})
}

func (h *ScriptHandler) vote(w http.ResponseWriter, r *http.Request, name, counter string) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid id")
		return
	}

	value, err := h.store.IncrementCounter(id, counter)
	if err == store.ErrNotFound {
		middleware.JSONResponse(w, http.StatusNotFound, struct{}{})
		return
	}
	if err != nil {
		slog.Error("failed to increment counter", "error", err, "id", id, "counter", counter)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "DB error")
		return
	}

	slog.Info("vote recorded", "id", id, "counter", counter, "value", value)

	middleware.JSONResponse(w, http.StatusOK, map[string]int{name: value})
}

func (h *ScriptHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Parse error")
		return
	}
	// Large uploads spill to temp files; make sure they are released no
	// matter how this handler exits.
	defer func() {
		if r.MultipartForm != nil {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				slog.Warn("failed to remove multipart temp files", "error", err)
			}
		}
	}()

	req := models.CreateScript{
		Title:    r.FormValue("title"),
		GameIcon: r.FormValue("gameIcon"),
		GameName: r.FormValue("gameName"),
		Code:     r.FormValue("code"),
		Author:   r.FormValue("author"),
	}
	if discord := r.FormValue("discord"); discord != "" {
		req.Discord = &discord
	}

	// Required fields are checked before any upload or insert happens; a
	// missing field must not leave a stored blob behind.
	if req.Title == "" || req.Code == "" || req.Author == "" || req.GameIcon == "" || req.GameName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing fields")
		return
	}

	var uploaded *blob.Object
	file, header, err := r.FormFile("thumbnail")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Parse error")
		return
	}
	if err == nil {
		data, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		obj, upErr := h.uploads.Upload(header.Filename, data)
		if upErr != nil {
			slog.Error("thumbnail upload failed", "error", upErr, "filename", header.Filename)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Upload failed")
			return
		}
		uploaded = &obj
		req.ThumbnailURL = obj.URL
	}

	id, err := h.store.Create(req)
	if err != nil {
		slog.Error("failed to insert script", "error", err)
		// The upload already happened; clean it up so the blob store does
		// not accumulate orphans.
		if uploaded != nil {
			if delErr := h.uploads.Delete(uploaded.Key); delErr != nil {
				slog.Warn("failed to delete orphaned thumbnail", "error", delErr, "key", uploaded.Key)
			}
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, "DB error")
		return
	}

	slog.Info("script published", "id", id, "title", req.Title, "author", req.Author)

	middleware.JSONResponse(w, http.StatusCreated, models.PublishResponse{Message: "Published"})
}
