package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const apiPrefix = "/api/v1"

// Client calls the operations API and unwraps the response envelope.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is the error half of the envelope plus the HTTP status.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error (%d %s): %s", e.StatusCode, e.Code, e.Message)
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  *PageMeta       `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type PageMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

// do sends the request and decodes data into out when out is not nil.
// The returned status lets callers tell 200 from 202.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (int, *PageMeta, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	endpoint := c.BaseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.Token != "" {
		req.Header.Add("Authorization", "Bearer "+c.Token)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return resp.StatusCode, nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
		}
		return resp.StatusCode, nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Ok {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return resp.StatusCode, nil, apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp.StatusCode, nil, fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return resp.StatusCode, env.Meta, nil
}

type Profile struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Status     string `json:"status"`
}

type LoginResult struct {
	AccessToken string  `json:"access_token"`
	ExpiresAt   int64   `json:"expires_at"`
	User        Profile `json:"user"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"username": username, "password": password}
	if _, _, err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type Job struct {
	ID                string   `json:"id"`
	ShipperName       string   `json:"shipper_name"`
	Priority          string   `json:"priority"`
	LoadingType       string   `json:"loading_type"`
	JobDate           string   `json:"job_date"`
	JobTime           string   `json:"job_time"`
	Status            string   `json:"status"`
	RequesterID       string   `json:"requester_id"`
	AssignedTo        string   `json:"assigned_to"`
	IsLocked          bool     `json:"is_locked"`
	IsImportClearance bool     `json:"is_import_clearance"`
	TeamLeader        string   `json:"team_leader"`
	Vehicle           string   `json:"vehicle"`
	WriterCrew        []string `json:"writer_crew"`
	CustomsStatus     string   `json:"customs_status"`
}

func (c *Client) ListJobs(ctx context.Context, query url.Values) ([]Job, *PageMeta, error) {
	var out []Job
	_, meta, err := c.do(ctx, http.MethodGet, "/jobs", query, nil, &out)
	return out, meta, err
}

func (c *Client) CreateJob(ctx context.Context, req map[string]any) (*Job, error) {
	var out Job
	if _, _, err := c.do(ctx, http.MethodPost, "/jobs", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type DeleteResult struct {
	Deleted bool `json:"deleted"`
	Job     *Job `json:"job"`
}

func (c *Client) DeleteJob(ctx context.Context, id string) (*DeleteResult, error) {
	var out DeleteResult
	if _, _, err := c.do(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleLock(ctx context.Context, id string) (*Job, error) {
	var out Job
	if _, _, err := c.do(ctx, http.MethodPost, "/jobs/"+url.PathEscape(id)+"/lock", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Complete(ctx context.Context, id string) (*Job, error) {
	var out Job
	if _, _, err := c.do(ctx, http.MethodPost, "/jobs/"+url.PathEscape(id)+"/complete", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAllocation(ctx context.Context, id string, req map[string]any) (*Job, error) {
	var out Job
	if _, _, err := c.do(ctx, http.MethodPut, "/jobs/"+url.PathEscape(id)+"/allocation", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomsStatus(ctx context.Context, id, status string) (*Job, error) {
	var out Job
	body := map[string]string{"customs_status": status}
	if _, _, err := c.do(ctx, http.MethodPut, "/jobs/"+url.PathEscape(id)+"/customs-status", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ApprovalOutcome struct {
	Outcome string `json:"outcome"`
	Job     *Job   `json:"job"`
}

func (c *Client) ResolveApproval(ctx context.Context, id string, approved bool) (*ApprovalOutcome, error) {
	var out ApprovalOutcome
	body := map[string]bool{"approved": approved}
	if _, _, err := c.do(ctx, http.MethodPost, "/jobs/"+url.PathEscape(id)+"/approval", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type Capacity struct {
	Date               string `json:"date"`
	Holiday            bool   `json:"holiday"`
	Limit              int    `json:"limit"`
	Used               int    `json:"used"`
	Remaining          int    `json:"remaining"`
	ClearanceLimit     int    `json:"clearance_limit"`
	ClearanceUsed      int    `json:"clearance_used"`
	ClearanceRemaining int    `json:"clearance_remaining"`
}

func (c *Client) Capacity(ctx context.Context, date string) (*Capacity, error) {
	var out Capacity
	if _, _, err := c.do(ctx, http.MethodGet, "/capacity/"+url.PathEscape(date), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type Settings struct {
	DailyJobLimits map[string]int `json:"daily_job_limits"`
	Holidays       []string       `json:"holidays"`
}

func (c *Client) GetSettings(ctx context.Context) (*Settings, error) {
	var out Settings
	if _, _, err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetDailyLimit(ctx context.Context, date string, limit int) (*Settings, error) {
	var out Settings
	body := map[string]int{"limit": limit}
	if _, _, err := c.do(ctx, http.MethodPut, "/settings/limits/"+url.PathEscape(date), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleHoliday(ctx context.Context, date string) (*Settings, error) {
	var out Settings
	if _, _, err := c.do(ctx, http.MethodPost, "/settings/holidays/"+url.PathEscape(date)+"/toggle", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Resource covers both personnel and vehicles; unused fields stay empty.
type Resource struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Plate      string `json:"plate"`
	Status     string `json:"status"`
}

func (c *Client) ListResources(ctx context.Context, kind string) ([]Resource, error) {
	var out []Resource
	if _, _, err := c.do(ctx, http.MethodGet, "/"+kind, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateResourceStatus(ctx context.Context, kind, id, status string) (*Resource, error) {
	var out Resource
	body := map[string]string{"status": status}
	if _, _, err := c.do(ctx, http.MethodPut, "/"+kind+"/"+url.PathEscape(id)+"/status", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteResource(ctx context.Context, kind, id string) error {
	_, _, err := c.do(ctx, http.MethodDelete, "/"+kind+"/"+url.PathEscape(id), nil, nil, nil)
	return err
}
