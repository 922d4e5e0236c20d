// Command smoke checks a running schemagraph server end to end.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

const sample = `Alice: I moved to Denver last spring, mostly for the mountains.
Bob: Did it work out?
Alice: Completely. I hike almost every weekend now. Last month we got caught in a storm above the tree line and had to turn back.
Bob: That sounds terrifying.
Alice: It was, but we learned to check the forecast twice.`

func main() {
	baseURL := os.Getenv("SCHEMAGRAPH_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test against", baseURL)

	fmt.Println("1. Fetching taxonomy...")
	body, ok := sendRequest(baseURL, http.MethodGet, "/taxonomy", nil)
	if !ok || gjson.GetBytes(body, "schemas.#").Int() != 5 {
		fmt.Println("FAILED: Taxonomy")
		os.Exit(1)
	}
	fmt.Println("PASSED: Taxonomy")

	fmt.Println("2. Processing transcript...")
	body, ok = sendRequest(baseURL, http.MethodPost, "/process", map[string]string{"transcript": sample})
	if !ok {
		fmt.Println("FAILED: Process")
		os.Exit(1)
	}
	filtered := gjson.GetBytes(body, "filtered")
	if !filtered.IsObject() || !filtered.Get("topic_1").Exists() {
		fmt.Println("FAILED: Process returned no topics")
		os.Exit(1)
	}
	filtered.ForEach(func(key, topic gjson.Result) bool {
		fmt.Printf("  %s %q: %d nodes, %d connections\n", key.String(),
			topic.Get("title").String(), topic.Get("nodes.#").Int(), topic.Get("connections.#").Int())
		return true
	})
	fmt.Println("PASSED: Process")
}

func sendRequest(baseURL, method, endpoint string, payload any) ([]byte, bool) {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return nil, false
	}
	return respBody, true
}
