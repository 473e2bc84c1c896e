package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL   string
	timeout   time.Duration
	authToken string

	bcryptGenerate = bcrypt.GenerateFromPassword
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cortectl",
		Short: "Cash-cut back-office CLI",
		Long:  `A command line interface for the gym cash-cut reconciliation API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the cash-cut API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", os.Getenv("CASHCUT_TOKEN"), "Bearer token for authenticated endpoints")

	cutCmd := &cobra.Command{
		Use:   "cut",
		Short: "Cash cut operations",
	}

	cutCmd.AddCommand(&cobra.Command{
		Use:   "show <date>",
		Short: "Show the cut for a calendar day (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/cuts/date/" + args[0])
		},
	})

	cutCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List cuts, most recent first",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/cuts/")
		},
	})

	cutCmd.AddCommand(&cobra.Command{
		Use:   "sync <cut-id>",
		Short: "Check a cut's expenses against the expense ledger",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/cuts/" + args[0] + "/expense-sync")
		},
	})

	cutCmd.AddCommand(&cobra.Command{
		Use:   "adopt <cut-id>",
		Short: "Adopt the ledger expense figure into a cut",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			postAndPrint("/api/v1/cuts/" + args[0] + "/expense-sync")
		},
	})

	cutCmd.AddCommand(&cobra.Command{
		Use:   "recompute <cut-id>",
		Short: "Force a full recompute of a cut's derived figures",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			// An empty edit still runs the full rebuild server-side.
			doRequestWithBody(http.MethodPut, "/api/v1/cuts/"+args[0], "{}")
		},
	})

	cutCmd.AddCommand(&cobra.Command{
		Use:   "close <cut-id>",
		Short: "Close a cut",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			postAndPrint("/api/v1/cuts/" + args[0] + "/close")
		},
	})

	expensesCmd := &cobra.Command{
		Use:   "expenses <date>",
		Short: "Show the expense ledger summary for a day (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/expenses/daily/" + args[0])
		},
	}

	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User utilities",
	}

	userCmd.AddCommand(&cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password for manual user provisioning",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			hashPassword(args[0])
		},
	})

	rootCmd.AddCommand(cutCmd, expensesCmd, userCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getAndPrint(path string) {
	doRequest(http.MethodGet, path)
}

func postAndPrint(path string) {
	doRequest(http.MethodPost, path)
}

func doRequest(method, path string) {
	doRequestWithBody(method, path, "")
}

func doRequestWithBody(method, path, body string) {
	client := &http.Client{Timeout: timeout}

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(respBody, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func hashPassword(password string) {
	hash, err := bcryptGenerate([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
