package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"safarsaathi/models"
)

const leadsTable = "leads"

// SupabaseStore talks to the hosted Supabase project through its PostgREST
// endpoint using the anon key. Only inserts against the leads table are
// issued from this codebase.
type SupabaseStore struct {
	baseURL string
	anonKey string
	client  *http.Client
	logger  *logrus.Entry
}

func NewSupabaseStore(baseURL, anonKey string) *SupabaseStore {
	return &SupabaseStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logrus.WithField("component", "supabase-store"),
	}
}

// supabaseLeadRow mirrors the leads table columns. The API speaks camelCase
// (models.Lead); the table speaks snake_case, so the mapping lives here.
type supabaseLeadRow struct {
	ID           string     `json:"id,omitempty"`
	ParentName   string     `json:"parent_name"`
	ChildGrade   string     `json:"child_grade"`
	SchoolName   *string    `json:"school_name,omitempty"`
	City         string     `json:"city"`
	MobileNumber string     `json:"mobile_number"`
	Email        *string    `json:"email,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// supabaseError is the PostgREST error body.
type supabaseError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Hint    string `json:"hint"`
	Details string `json:"details"`
}

func (s *SupabaseStore) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	row := supabaseLeadRow{
		ParentName:   lead.ParentName,
		ChildGrade:   lead.ChildGrade,
		SchoolName:   lead.SchoolName,
		City:         lead.City,
		MobileNumber: lead.MobileNumber,
		Email:        lead.Email,
	}

	body, err := json.Marshal(row)
	if err != nil {
		return nil, &models.PersistenceError{Message: fmt.Sprintf("encode lead row: %v", err)}
	}

	url := s.baseURL + "/rest/v1/" + leadsTable
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &models.PersistenceError{Message: fmt.Sprintf("build insert request: %v", err)}
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", "Bearer "+s.anonKey)
	req.Header.Set("Content-Type", "application/json")
	// Ask PostgREST to echo the inserted row so we get id and created_at back.
	req.Header.Set("Prefer", "return=representation")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WithError(err).Error("lead insert request failed")
		return nil, &models.PersistenceError{Message: fmt.Sprintf("insert request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, s.decodeError(resp)
	}

	// PostgREST returns the representation as a one-element array.
	var rows []supabaseLeadRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, &models.PersistenceError{Message: fmt.Sprintf("decode inserted row: %v", err)}
	}
	if len(rows) == 0 {
		return nil, &models.PersistenceError{Message: "insert returned no rows"}
	}
	return rows[0].toLead(), nil
}

func (s *SupabaseStore) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var sbErr supabaseError
	if err := json.Unmarshal(raw, &sbErr); err != nil || sbErr.Message == "" {
		sbErr.Message = fmt.Sprintf("insert failed with status %d", resp.StatusCode)
	}

	s.logger.WithFields(logrus.Fields{
		"status": resp.StatusCode,
		"code":   sbErr.Code,
	}).Error("lead insert rejected by store")

	return &models.PersistenceError{
		Message: sbErr.Message,
		Code:    sbErr.Code,
		Hint:    sbErr.Hint,
		Details: sbErr.Details,
	}
}

func (r *supabaseLeadRow) toLead() *models.Lead {
	lead := &models.Lead{
		ID:           r.ID,
		ParentName:   r.ParentName,
		ChildGrade:   r.ChildGrade,
		SchoolName:   r.SchoolName,
		City:         r.City,
		MobileNumber: r.MobileNumber,
		Email:        r.Email,
	}
	if r.CreatedAt != nil {
		lead.CreatedAt = *r.CreatedAt
	}
	return lead
}
