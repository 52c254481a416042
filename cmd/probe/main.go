package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type ProbeClient struct {
	baseURL string
	client  *http.Client
}

func NewProbeClient(baseURL string) *ProbeClient {
	return &ProbeClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the server")
	testType := flag.String("test", "all", "Test type: all, health, score, rewrite, trending, custom")
	title := flag.String("title", "", "Title to analyze (for custom test)")
	flag.Parse()

	client := NewProbeClient(*baseURL)

	printHeader("TitleBoost - Smoke Test Suite")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		client.runAllTests()
	case "health":
		client.testHealthCheck()
	case "score":
		client.testScore()
	case "rewrite":
		client.testRewrite()
	case "trending":
		client.testTrending()
	case "custom":
		if *title == "" {
			printError("Title is required for custom test. Use -title flag")
			os.Exit(1)
		}
		client.testCustomScore(*title)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, score, rewrite, trending, custom")
		os.Exit(1)
	}
}

func (pc *ProbeClient) runAllTests() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", pc.testHealthCheck},
		{"Title Score", pc.testScore},
		{"Title Rewrite", pc.testRewrite},
		{"Trending Feed", pc.testTrending},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (pc *ProbeClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	url := fmt.Sprintf("%s/health", pc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := pc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}

	var health map[string]interface{}
	if err := json.Unmarshal(body, &health); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	if health["status"] != "ok" {
		printError(fmt.Sprintf("Expected status 'ok', got '%v'", health["status"]))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (pc *ProbeClient) testScore() bool {
	return pc.testCustomScore("How to Learn Guitar in 30 Days - Complete Beginner Guide")
}

func (pc *ProbeClient) testCustomScore(title string) bool {
	printTestHeader("Testing Title Score Endpoint")

	url := fmt.Sprintf("%s/api/v1/score", pc.baseURL)
	fmt.Printf("POST %s\n", url)
	fmt.Printf("%sTitle:%s %s\n\n", colorCyan, colorReset, title)

	body, ok := pc.post(url, map[string]interface{}{"title": title})
	if !ok {
		return false
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	overall, ok := response["overall"].(float64)
	if !ok || overall < 0 || overall > 100 {
		printError(fmt.Sprintf("Overall score out of range: %v", response["overall"]))
		return false
	}

	breakdown, ok := response["breakdown"].(map[string]interface{})
	if !ok {
		printError("Missing breakdown in response")
		return false
	}

	for _, field := range []string{"length", "keywords", "engagement", "clarity", "trending"} {
		if _, ok := breakdown[field]; !ok {
			printError(fmt.Sprintf("Missing breakdown field: %s", field))
			return false
		}
	}

	printSuccess(fmt.Sprintf("Title scored %d/100", int(overall)))
	printJSON(body)
	return true
}

func (pc *ProbeClient) testRewrite() bool {
	printTestHeader("Testing Title Rewrite Endpoint")

	title := "my vacation video"
	url := fmt.Sprintf("%s/api/v1/rewrite", pc.baseURL)
	fmt.Printf("POST %s\n", url)
	fmt.Printf("%sTitle:%s %s\n\n", colorCyan, colorReset, title)

	body, ok := pc.post(url, map[string]interface{}{"title": title})
	if !ok {
		return false
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	variants, ok := response["variants"].([]interface{})
	if !ok || len(variants) == 0 {
		printError("Expected non-empty variants array")
		return false
	}

	if fallback, ok := response["fallbackUsed"].(bool); ok && fallback {
		fmt.Printf("%sNote: server responded with template fallback%s\n", colorYellow, colorReset)
	}

	printSuccess(fmt.Sprintf("Received %d rewrite variants", len(variants)))
	for _, v := range variants {
		fmt.Printf("  %s-%s %v\n", colorBlue, colorReset, v)
	}
	return true
}

func (pc *ProbeClient) testTrending() bool {
	printTestHeader("Testing Trending Feed Endpoint")

	url := fmt.Sprintf("%s/api/v1/trending", pc.baseURL)
	fmt.Printf("POST %s\n", url)

	body, ok := pc.post(url, map[string]interface{}{})
	if !ok {
		return false
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	searches, ok := response["trending"].([]interface{})
	if !ok {
		printError("Missing trending list in response")
		return false
	}

	printSuccess(fmt.Sprintf("Received %d trending searches", len(searches)))
	printJSON(body)
	return true
}

// post sends a JSON body and returns the response bytes. A non-200 status is
// reported and treated as a failed probe.
func (pc *ProbeClient) post(url string, payload map[string]interface{}) ([]byte, bool) {
	jsonData, _ := json.Marshal(payload)

	resp, err := pc.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return nil, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return nil, false
	}

	return body, true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
