package ghactions

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Event is the subset of a GitHub Actions event payload the sweeper reads.
// pull_request, pull_request_review, and pull_request_review_comment events
// carry a pull_request object; push events carry only a ref.
type Event struct {
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Ref string `json:"ref"`
}

// ReadEvent parses the Actions event payload at path.
func ReadEvent(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading event payload %s: %w", path, err)
	}

	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("parsing event payload %s: %w", path, err)
	}
	return &event, nil
}

// PRNumber returns the pull request number carried by the event, or 0 when
// the event has none.
func (e *Event) PRNumber() int {
	if e.PullRequest == nil {
		return 0
	}
	return e.PullRequest.Number
}

// HeadBranch returns the branch a push event targeted ("refs/heads/x"
// yields "x"), or "" for tag pushes and non-push events.
func (e *Event) HeadBranch() string {
	branch, ok := strings.CutPrefix(e.Ref, "refs/heads/")
	if !ok {
		return ""
	}
	return branch
}
