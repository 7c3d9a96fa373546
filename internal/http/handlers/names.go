package handlers

import (
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"petnames/internal/domain"
	"petnames/internal/namegen"
)

const (
	msgInvalidBody  = "Invalid request body"
	msgRecentFailed = "Failed to fetch recent names"
)

type generateRequest struct {
	Count *int `json:"count"`
}

type animalTypeRequest struct {
	AnimalType *string `json:"animalType"`
}

type bulkRequest struct {
	Count any `json:"count"`
}

type recentResponse struct {
	Success bool                   `json:"success"`
	Names   []domain.GeneratedName `json:"names"`
	Count   int                    `json:"count"`
	Message string                 `json:"message,omitempty"`
}

type animalTypeInfo struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

func statusFor(kind namegen.Kind) int {
	switch kind {
	case namegen.KindOK:
		return http.StatusOK
	case namegen.KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (a *App) writeResult(w http.ResponseWriter, res namegen.Result) {
	a.json(w, statusFor(res.Kind), res)
}

func (a *App) invalidBody(w http.ResponseWriter, err error) {
	a.Logger.Debug().Err(err).Msg("decode request body")
	a.json(w, http.StatusBadRequest, namegen.Result{Names: []string{}, Message: msgInvalidBody})
}

// Generate handles POST /api/generate. A missing count generates one name.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(w, r, &req); err != nil {
		a.invalidBody(w, err)
		return
	}
	count := namegen.DefaultCount
	if req.Count != nil {
		count = *req.Count
	}
	a.writeResult(w, a.Names.Generate(r.Context(), count))
}

func (a *App) GenerateByAnimalType(w http.ResponseWriter, r *http.Request) {
	var req animalTypeRequest
	if err := decodeBody(w, r, &req); err != nil {
		a.invalidBody(w, err)
		return
	}
	var raw string
	if req.AnimalType != nil {
		raw = *req.AnimalType
	}
	a.writeResult(w, a.Names.GenerateByAnimalType(r.Context(), raw))
}

// GenerateBulk passes the decoded count through untouched so the validator
// sees strings, fractions and nulls as the client sent them.
func (a *App) GenerateBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := decodeBody(w, r, &req); err != nil {
		a.invalidBody(w, err)
		return
	}
	a.writeResult(w, a.Names.GenerateBulk(r.Context(), req.Count))
}

func (a *App) RecentNames(w http.ResponseWriter, r *http.Request) {
	if a.Repo == nil {
		a.json(w, http.StatusOK, recentResponse{Success: true, Names: []domain.GeneratedName{}})
		return
	}
	names, err := a.Repo.ListRecent(r.Context(), a.RecentLimit)
	if err != nil {
		a.Logger.Error().Err(err).Msg(msgRecentFailed)
		a.json(w, http.StatusInternalServerError, recentResponse{Names: []domain.GeneratedName{}, Message: msgRecentFailed})
		return
	}
	if names == nil {
		names = []domain.GeneratedName{}
	}
	a.json(w, http.StatusOK, recentResponse{Success: true, Names: names, Count: len(names)})
}

// AnimalTypes lists the categories the name source accepts.
func (a *App) AnimalTypes(w http.ResponseWriter, r *http.Request) {
	tokens := namegen.Categories()
	if lister, ok := a.Names.Engine().Source().(interface{ Categories() []string }); ok {
		tokens = lister.Categories()
	}
	title := cases.Title(language.English)
	out := make([]animalTypeInfo, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, animalTypeInfo{Token: token, Label: title.String(token)})
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "animalTypes": out})
}
