package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/botwatch-dev/botwatch/internal/config"
	"github.com/botwatch-dev/botwatch/internal/util"
)

// NewStatusCmd returns the status command, which asks a running server for
// its health.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether a botwatch server is running",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(resolveBaseDir())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			url := fmt.Sprintf("http://%s:%d/api/info/health", util.ResolveHost(cfg.Host), cfg.Port)
			client := &http.Client{Timeout: 3 * time.Second}
			resp, err := client.Get(url)
			if err != nil {
				fmt.Printf("Server is not running (%s)\n", url)
				return nil
			}
			defer resp.Body.Close()

			var health struct {
				Health  bool   `json:"health"`
				Status  string `json:"status"`
				Service string `json:"service"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
				return fmt.Errorf("unexpected health response: %w", err)
			}

			fmt.Printf("Service: %s\n", health.Service)
			fmt.Printf("Status:  %s\n", health.Status)
			return nil
		},
	}
}
