package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL  string
	sentence string
	nOutput  int
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "smoke",
	Short:        "Run an end-to-end check against a running paraphrase server",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSmoke(&http.Client{Timeout: timeout})
	},
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "base URL of a running server")
	rootCmd.Flags().StringVar(&sentence, "sentence", "The sky is blue.", "sentence to paraphrase")
	rootCmd.Flags().IntVarP(&nOutput, "n", "n", 3, "number of paraphrases to request")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "per-request timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSmoke(client *http.Client) error {
	fmt.Println("Starting smoke test...")

	fmt.Println("1. Ping...")
	status, body, err := get(client, baseURL+"/ping")
	if err != nil || status != http.StatusOK || body != "pong" {
		return fmt.Errorf("ping failed (status %d, body %q): %v", status, body, err)
	}
	fmt.Println("PASSED: ping")

	fmt.Println("2. Invalid usage...")
	status, body, err = get(client, baseURL+"/style?n_output=1")
	if err != nil || status != http.StatusBadRequest {
		return fmt.Errorf("invalid usage check failed (status %d, body %s): %v", status, body, err)
	}
	var apiErr struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(body), &apiErr); err != nil || apiErr.Name != "InvalidAPIUsage" {
		return fmt.Errorf("unexpected invalid usage body: %s", body)
	}
	fmt.Println("PASSED: invalid usage")

	fmt.Println("3. Paraphrase...")
	q := url.Values{
		"sentence": {sentence},
		"n_output": {strconv.Itoa(nOutput)},
	}
	status, body, err = get(client, baseURL+"/style?"+q.Encode())
	if err != nil || status != http.StatusOK {
		return fmt.Errorf("paraphrase failed (status %d, body %s): %v", status, body, err)
	}
	var result struct {
		Output []string `json:"output"`
	}
	if err := json.Unmarshal([]byte(body), &result); err != nil || result.Output == nil {
		return fmt.Errorf("unexpected paraphrase body: %s", body)
	}
	if len(result.Output) > nOutput {
		return fmt.Errorf("got %d paraphrases for n_output=%d", len(result.Output), nOutput)
	}
	for _, p := range result.Output {
		fmt.Printf("   - %s\n", p)
	}
	fmt.Println("PASSED: paraphrase")

	fmt.Println("Smoke test finished successfully.")
	return nil
}

func get(client *http.Client, target string) (int, string, error) {
	resp, err := client.Get(target)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(body), nil
}
