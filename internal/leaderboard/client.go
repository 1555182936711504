package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the score service over HTTP.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) SubmitScore(ctx context.Context, playerName string, score int) (Score, error) {
	body, err := json.Marshal(submitRequest{PlayerName: playerName, Score: score})
	if err != nil {
		return Score{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/scores", bytes.NewReader(body))
	if err != nil {
		return Score{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var rec Score
	if err := c.do(req, http.StatusCreated, &rec); err != nil {
		return Score{}, fmt.Errorf("submit score: %w", err)
	}
	return rec, nil
}

func (c *Client) GetTopScores(ctx context.Context) ([]Score, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/scores/top", nil)
	if err != nil {
		return nil, err
	}
	var top []Score
	if err := c.do(req, http.StatusOK, &top); err != nil {
		return nil, fmt.Errorf("get top scores: %w", err)
	}
	return top, nil
}

func (c *Client) do(req *http.Request, want int, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, e.Error)
		}
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
