package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

type webhookSink struct {
	url    string
	client *retryablehttp.Client
}

// NewWebhook posts every event as json to url, retrying up to retryMax times
func NewWebhook(url string, retryMax int) Sink {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = retryMax
	return &webhookSink{url, client}
}

func (s *webhookSink) Name() string {
	return "webhook"
}

func (s *webhookSink) Send(c ctx.Ctx, evt marketplace.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequest(http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req = req.WithContext(c)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}
	return nil
}
