package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/rest/httpc"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

type gameStatus struct {
	ID       string         `json:"id"`
	GameUid  string         `json:"gameUid"`
	Snapshot chess.Snapshot `json:"snapshot"`
}

type moveResponse struct {
	Applied  bool              `json:"applied"`
	Reason   string            `json:"reason,omitempty"`
	Result   *chess.MoveResult `json:"result,omitempty"`
	Snapshot chess.Snapshot    `json:"snapshot"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type createRequest struct {
	BoardSize  int    `json:"boardSize"`
	Opponent   string `json:"opponent"`
	Difficulty string `json:"difficulty"`
}

type gameRequest struct {
	ID string `path:"id"`
}

type moveRequest struct {
	ID   string `path:"id"`
	Line string `json:"line"`
}

type restartRequest struct {
	ID        string `path:"id"`
	BoardSize int    `json:"boardSize"`
}

type boardRequest struct {
	ID    string `path:"id"`
	Color string `form:"color"`
}

// Client talks to one game on the serve HTTP API.
type Client struct {
	baseURL string
	id      string
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) Create(ctx context.Context, size int, opponent, difficulty string) (status gameStatus, err error) {
	err = c.call(ctx, http.MethodPost, "/games", &createRequest{
		BoardSize:  size,
		Opponent:   opponent,
		Difficulty: difficulty,
	}, &status)
	if err == nil {
		c.id = status.ID
	}
	return
}

func (c *Client) Move(ctx context.Context, l chess.Line) (resp moveResponse, err error) {
	err = c.call(ctx, http.MethodPost, "/games/:id/moves", &moveRequest{ID: c.id, Line: l.String()}, &resp)
	return
}

func (c *Client) Undo(ctx context.Context) (resp moveResponse, err error) {
	err = c.call(ctx, http.MethodPost, "/games/:id/undo", &gameRequest{ID: c.id}, &resp)
	return
}

func (c *Client) Redo(ctx context.Context) (resp moveResponse, err error) {
	err = c.call(ctx, http.MethodPost, "/games/:id/redo", &gameRequest{ID: c.id}, &resp)
	return
}

func (c *Client) Restart(ctx context.Context, size int) (status gameStatus, err error) {
	err = c.call(ctx, http.MethodPost, "/games/:id/restart", &restartRequest{ID: c.id, BoardSize: size}, &status)
	return
}

func (c *Client) Board(ctx context.Context, colors bool) (string, error) {
	color := "off"
	if colors {
		color = "on"
	}
	body, err := c.send(ctx, http.MethodGet, "/games/:id/board", &boardRequest{ID: c.id, Color: color})
	return string(body), err
}

func (c *Client) Delete(ctx context.Context) error {
	_, err := c.send(ctx, http.MethodDelete, "/games/:id", &gameRequest{ID: c.id})
	return err
}

func (c *Client) call(ctx context.Context, method, path string, req, resp any) error {
	body, err := c.send(ctx, method, path, req)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(body, resp)
}

func (c *Client) send(ctx context.Context, method, path string, req any) ([]byte, error) {
	resp, err := httpc.Do(ctx, method, c.baseURL+path, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var e errorResponse
		if sonic.Unmarshal(body, &e) == nil && e.Error != "" {
			return nil, fmt.Errorf("%s %s: %s", method, path, e.Error)
		}
		return nil, fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
	return body, nil
}
