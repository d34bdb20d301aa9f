package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"balancewheel/internal/domain/wheel"
	"balancewheel/pkg/logger"
)

// Config controls a seeding run.
type Config struct {
	BaseURL   string
	Snapshots int
	Interval  time.Duration
	Timeout   time.Duration
}

// Runner posts generated snapshots to a running service.
type Runner struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

// NewRunner creates a seeding runner.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    logger.Named("seed"),
	}
}

type saveBody struct {
	Ratings map[wheel.Category]int    `json:"ratings"`
	Notes   map[wheel.Category]string `json:"notes"`
}

type saveReply struct {
	Changed   bool   `json:"changed"`
	Timestamp string `json:"timestamp"`
}

// Run posts cfg.Snapshots saves, pausing cfg.Interval between them so
// each lands under a distinct timestamp key.
func (r *Runner) Run(ctx context.Context) error {
	for i := 0; i < r.cfg.Snapshots; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ratings, notes := GenerateInputs()
		ts, err := r.postSave(ctx, ratings, notes)
		if err != nil {
			return fmt.Errorf("save %d/%d: %w", i+1, r.cfg.Snapshots, err)
		}
		r.log.Info(ctx, "seeded snapshot",
			logger.Int("n", i+1),
			logger.String("timestamp", ts),
		)
		if i < r.cfg.Snapshots-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.cfg.Interval):
			}
		}
	}
	return nil
}

func (r *Runner) postSave(ctx context.Context, ratings map[wheel.Category]int, notes map[wheel.Category]string) (string, error) {
	body, err := json.Marshal(saveBody{Ratings: ratings, Notes: notes})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+"/api/history", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	var reply saveReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", err
	}
	return reply.Timestamp, nil
}
