package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"codecraft-site/models"
)

// ErrNoRows is returned when a keyed lookup matches no row.
var ErrNoRows = errors.New("no rows found")

// ErrEventFull is returned when the conditional increment matches no row
// because registered has already reached capacity.
var ErrEventFull = errors.New("event is full")

// Supabase talks to the hosted datastore over its PostgREST contract.
// Construct it once in main and pass the handle into each controller.
type Supabase struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewSupabase(baseURL, apiKey string) *Supabase {
	return &Supabase{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  newHTTPClient(),
	}
}

func (s *Supabase) rest(ctx context.Context, method, path string, query url.Values, body interface{}, prefer string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(buf)
	}

	endpoint := s.baseURL + "/rest/v1/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
	return s.client.Do(req)
}

func restError(resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return errors.Errorf("supabase: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
}

// GetEvent looks up one event by identifier. The id is kept opaque: it is
// passed through to the eq filter exactly as the caller received it.
func (s *Supabase) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)
	query.Set("select", "*")

	resp, err := s.rest(ctx, http.MethodGet, "events", query, nil, "")
	if err != nil {
		return nil, errors.Wrap(err, "query events")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, restError(resp)
	}

	var rows []models.Event
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, errors.Wrap(err, "decode events")
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return &rows[0], nil
}

// ListEvents returns the full event list, soonest first. The UI splits
// upcoming from past on the is_past flag.
func (s *Supabase) ListEvents(ctx context.Context) ([]models.Event, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "date.asc")

	resp, err := s.rest(ctx, http.MethodGet, "events", query, nil, "")
	if err != nil {
		return nil, errors.Wrap(err, "query events")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, restError(resp)
	}

	events := []models.Event{}
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, errors.Wrap(err, "decode events")
	}
	return events, nil
}

// InsertRegistration writes one registration row and returns its id.
func (s *Supabase) InsertRegistration(ctx context.Context, registration models.EventRegistration) (int, error) {
	resp, err := s.rest(ctx, http.MethodPost, "event_registrations", nil, registration, "return=representation")
	if err != nil {
		return 0, errors.Wrap(err, "insert registration")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return 0, restError(resp)
	}

	var rows []models.EventRegistration
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return 0, errors.Wrap(err, "decode registration")
	}
	if len(rows) == 0 {
		return 0, errors.New("insert returned no representation")
	}
	return rows[0].ID, nil
}

// IncrementRegistered bumps the registered counter through the
// increment_registered function so the capacity check and the increment are
// one statement on the datastore side. A null result means no row matched
// the "registered < capacity" condition.
func (s *Supabase) IncrementRegistered(ctx context.Context, eventID int) error {
	body := map[string]int{"p_event_id": eventID}

	resp, err := s.rest(ctx, http.MethodPost, "rpc/increment_registered", nil, body, "")
	if err != nil {
		return errors.Wrap(err, "increment registered")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return restError(resp)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return errors.Wrap(err, "read increment result")
	}
	result := strings.TrimSpace(string(raw))
	if result == "" || result == "null" {
		return ErrEventFull
	}
	if _, err := strconv.Atoi(result); err != nil {
		return errors.Errorf("supabase: unexpected increment result %q", result)
	}
	return nil
}

// ListTeamMembers returns the leadership roster in display order.
func (s *Supabase) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "sort_order.asc")

	resp, err := s.rest(ctx, http.MethodGet, "team_members", query, nil, "")
	if err != nil {
		return nil, errors.Wrap(err, "query team members")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, restError(resp)
	}

	members := []models.TeamMember{}
	if err := json.NewDecoder(resp.Body).Decode(&members); err != nil {
		return nil, errors.Wrap(err, "decode team members")
	}
	return members, nil
}
