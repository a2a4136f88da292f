package dto

import (
	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
)

/* =========================================================
   CLASS
   ========================================================= */

type ClassCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=10"`
}

type ClassUpdateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=10"`
}

type ClassLite struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

/* =========================================================
   AREA
   ========================================================= */

type AreaCreateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=60"`
	ClassID int    `json:"classId" validate:"required,min=1"`
}

type AreaUpdateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=60"`
	ClassID int    `json:"classId" validate:"required,min=1"`
}

type AreaResponse struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Rank  int        `json:"rank"`
	Class *ClassLite `json:"class,omitempty"`
}

func FromAreaModel(m settingsModel.AreaModel) AreaResponse {
	resp := AreaResponse{
		ID:   m.ID,
		Name: m.Name,
		Rank: m.Rank,
	}
	if m.Class != nil {
		resp.Class = &ClassLite{ID: m.Class.ID, Name: m.Class.Name}
	}
	return resp
}

/* =========================================================
   DEFAULT
   ========================================================= */

type DefaultCreateRequest struct {
	Shorthand string `json:"shorthand" validate:"required,min=1,max=20"`
	Text      string `json:"text" validate:"required,min=1"`
}

type DefaultUpdateRequest struct {
	Shorthand string `json:"shorthand" validate:"required,min=1,max=20"`
	Text      string `json:"text" validate:"required,min=1"`
}

type DefaultResponse struct {
	ID        int    `json:"id"`
	Shorthand string `json:"shorthand"`
	Text      string `json:"text"`
	Rank      int    `json:"rank"`
}

func FromDefaultModel(m settingsModel.DefaultModel) DefaultResponse {
	return DefaultResponse{
		ID:        m.ID,
		Shorthand: m.Shorthand,
		Text:      m.Text,
		Rank:      m.Rank,
	}
}

/* =========================================================
   ACCOUNT (allow-list)
   ========================================================= */

type AccountCreateRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AccountResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}
