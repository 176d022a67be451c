package decision

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// HTTPReporter posts the tracking payload to an ingestion endpoint in a
// background goroutine. The call is fire-and-forget: errors and the
// response are discarded, and no timeout is imposed beyond the client's.
type HTTPReporter struct {
	URL    string
	Client *http.Client
}

func (r *HTTPReporter) Report(p TrackPayload) {
	body, err := json.Marshal(p)
	if err != nil {
		return
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	go func() {
		resp, err := client.Post(r.URL, "application/json", bytes.NewReader(body))
		if err != nil {
			return
		}
		_ = resp.Body.Close()
	}()
}
