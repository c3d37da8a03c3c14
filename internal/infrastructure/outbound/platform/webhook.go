package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	platform_port "pinstack-publish-service/internal/domain/ports/output/platform"
)

const maxResponseBody = 1 << 20

// Webhook publishes by POSTing the resolved content to a platform bridge. The
// bridge answers with a PublishResult body; any non-2xx status is a failure.
type Webhook struct {
	platform string
	endpoint string
	token    string
	client   *http.Client
	log      ports.Logger
}

func NewWebhook(platform, endpoint, token string, client *http.Client, log ports.Logger) *Webhook {
	if client == nil {
		client = http.DefaultClient
	}
	return &Webhook{
		platform: platform,
		endpoint: endpoint,
		token:    token,
		client:   client,
		log:      log.With(slog.String("platform", platform)),
	}
}

type webhookMedia struct {
	URL  string          `json:"url"`
	Type model.MediaType `json:"type"`
}

type webhookRequest struct {
	PostID      int64          `json:"post_id"`
	TargetID    int64          `json:"target_id"`
	WorkspaceID int64          `json:"workspace_id"`
	AccountID   int64          `json:"account_id"`
	Platform    string         `json:"platform"`
	Content     string         `json:"content"`
	Media       []webhookMedia `json:"media"`
}

func (w *Webhook) Publish(ctx context.Context, target *model.PostTarget, post *model.Post, media []*model.PostMedia) (*platform_port.PublishResult, error) {
	req := webhookRequest{
		PostID:      post.ID,
		TargetID:    target.ID,
		WorkspaceID: post.WorkspaceID,
		AccountID:   target.AccountID,
		Platform:    w.platform,
		Content:     target.Content(post),
		Media:       make([]webhookMedia, 0, len(media)),
	}
	for _, m := range media {
		req.Media = append(req.Media, webhookMedia{URL: m.URL, Type: m.Type})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if w.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+w.token)
	}

	resp, err := w.client.Do(httpReq)
	if err != nil {
		w.log.Error("Platform bridge request failed", slog.Int64("target_id", target.ID), slog.String("error", err.Error()))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read webhook response: %w", err)
	}

	var result platform_port.PublishResult
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil && resp.StatusCode < 300 {
			return nil, fmt.Errorf("failed to decode webhook response: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.Success = false
		if result.ErrorCode == "" {
			result.ErrorCode = fmt.Sprintf("http_%d", resp.StatusCode)
		}
		if result.ErrorMessage == "" {
			result.ErrorMessage = http.StatusText(resp.StatusCode)
		}
	}

	w.log.Debug("Platform bridge responded",
		slog.Int64("target_id", target.ID),
		slog.Int("status", resp.StatusCode),
		slog.Bool("success", result.Success))
	return &result, nil
}
