package main

import (
	"bytes"
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
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tefanote-cli",
		Short: "TefaNote CLI tool",
		Long:  `A command line interface for interacting with the TefaNote API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the TefaNote API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(clearCmd())
	rootCmd.AddCommand(resetStatsCmd())
	rootCmd.AddCommand(presetsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func statsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show income aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if date != "" {
				q.Set("date", date)
			}
			return getJSON("/api/v1/stats", q)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date to inspect (YYYY-MM-DD, default today)")

	return cmd
}

func listCmd() *cobra.Command {
	var (
		date   string
		search string
		sortBy string
		dir    string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if date != "" {
				q.Set("date", date)
			}
			if search != "" {
				q.Set("search", search)
			}
			q.Set("sort", sortBy)
			q.Set("dir", dir)
			q.Set("page", strconv.Itoa(page))
			return getJSON("/api/v1/transactions", q)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date to list (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&search, "search", "", "Filter by buyer or item name")
	cmd.Flags().StringVar(&sortBy, "sort", "date", "Sort key: date or total")
	cmd.Flags().StringVar(&dir, "dir", "desc", "Sort direction: asc or desc")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")

	return cmd
}

func addCmd() *cobra.Command {
	var (
		item     string
		price    int64
		qty      int64
		category string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/transactions", map[string]any{
				"itemName": item,
				"price":    price,
				"qty":      qty,
				"type":     category,
			})
		},
	}
	cmd.Flags().StringVar(&item, "item", "", "Item name")
	cmd.Flags().Int64Var(&price, "price", 0, "Unit price")
	cmd.Flags().Int64Var(&qty, "qty", 1, "Quantity")
	cmd.Flags().StringVar(&category, "type", "print", "Category: print, goods or service")
	cmd.MarkFlagRequired("item")
	cmd.MarkFlagRequired("price")

	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction, folding its value into the archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodDelete, "/api/v1/transactions/"+args[0], nil, nil)
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Archive every live transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodDelete, "/api/v1/transactions", nil, nil)
		},
	}
}

func resetStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-stats",
		Short: "Zero the archived aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/stats/reset", nil)
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Show the preset catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/presets", nil)
		},
	}
}

func getJSON(path string, q url.Values) error {
	target := path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	return doRequest(http.MethodGet, target, nil, nil)
}

func postJSON(path string, body any) error {
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}
	return doRequest(http.MethodPost, path, buf, nil)
}

// doRequest performs one API call and pretty-prints the JSON response.
func doRequest(method, path string, body io.Reader, headers map[string]string) error {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(data), 200))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		fmt.Println("ok")
		return nil
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		fmt.Println(string(data))
		return nil
	}
	printJSON(parsed)
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
