package server

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/me/msuite/internal/validate"
	"github.com/me/msuite/pkg/kbrpc"
	"github.com/me/msuite/pkg/model"
	"github.com/me/msuite/pkg/params"
)

func kindInfo(kind string) (model.KindInfo, error) {
	rec, err := params.New(kind)
	if err != nil {
		return model.KindInfo{}, err
	}
	info := model.KindInfo{Kind: kind}
	info.Method, _ = kbrpc.MethodForKind(kind)
	for _, f := range params.Fields(rec) {
		info.Fields = append(info.Fields, model.FieldInfo{Name: f.Name, Type: f.Type})
	}
	return info, nil
}

func (s *Server) handleListKinds(w http.ResponseWriter, r *http.Request) {
	kinds := params.Kinds()
	infos := make([]model.KindInfo, 0, len(kinds))
	for _, k := range kinds {
		info, err := kindInfo(k)
		if err != nil {
			respondError(w, r, http.StatusInternalServerError, &model.APIError{Code: model.ErrInternal, Message: err.Error()})
			return
		}
		infos = append(infos, info)
	}
	respondOK(w, r, infos)
}

func (s *Server) handleGetKind(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	info, err := kindInfo(kind)
	if err != nil {
		respondError(w, r, http.StatusNotFound, model.NewNotFoundError("Kind", kind))
		return
	}
	respondOK(w, r, info)
}

// handleValidate decodes the body as a record of {kind}, trims it, applies
// defaults unless ?defaults=false, validates it and plans its commands.
// YAML bodies are accepted with a YAML content type.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	if _, err := params.New(kind); err != nil {
		respondError(w, r, http.StatusNotFound, model.NewNotFoundError("Kind", kind))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRPCBody))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, model.NewBadRequestError("reading body: "+err.Error()))
		return
	}
	rec, err := params.Decode(kind, body, bodyFormat(r))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, model.NewBadRequestError(err.Error()))
		return
	}

	if err := validate.TrimStrings(rec); err != nil {
		respondError(w, r, http.StatusBadRequest, model.NewBadRequestError(err.Error()))
		return
	}
	if applyDefaults, err := strconv.ParseBool(r.URL.Query().Get("defaults")); err != nil || applyDefaults {
		validate.ApplyDefaults(rec)
	}

	result := model.ValidationResult{Valid: true, Normalized: rec}
	if apiErr := s.validator.Validate(rec); apiErr != nil {
		result.Valid = false
		result.Errors = apiErr.Details
		respondJSON(w, r, http.StatusUnprocessableEntity, result, nil, apiErr)
		return
	}

	cmds, err := s.builder.Build(rec)
	switch {
	case err == nil:
		for _, c := range cmds {
			result.Command = append(result.Command, c.String())
		}
	case errors.Is(err, params.ErrUnknownKind):
		// Result records have no command.
	default:
		respondError(w, r, http.StatusInternalServerError, &model.APIError{Code: model.ErrInternal, Message: err.Error()})
		return
	}
	respondOK(w, r, result)
}

func bodyFormat(r *http.Request) string {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return params.FormatYAML
	default:
		return params.FormatJSON
	}
}
